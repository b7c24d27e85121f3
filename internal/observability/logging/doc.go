// Package logging builds the service's slog loggers.
//
// New selects a JSON or text handler and a level from config (LOG_FORMAT,
// LOG_LEVEL); NewLogger does the same from the environment alone and is used
// before config is loaded. Request-scoped loggers are stored on the context by
// the Logging middleware and carry the request_id attribute:
//
//	logger := logging.FromContext(r.Context())
//	logger.Warn("summary not found", slog.Int64("id", id))
package logging
