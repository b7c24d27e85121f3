// Package respond writes JSON responses in the {"detail": ...} envelope used by
// every endpoint. Internal errors are logged with secrets masked and never
// returned to the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"summarizer/internal/domain/entity"
)

// Client-facing details for non-validation failures.
const (
	DetailNotFound            = "Summary not found"
	DetailInternalServerError = "Internal Server Error"
	DetailEntityTooLarge      = "Request Entity Too Large"
)

// DetailBody is the error envelope. Detail is a string for 4xx/5xx messages
// and a list of entity.FieldError for 422 responses.
type DetailBody struct {
	Detail any `json:"detail"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダー送信済みのためログのみ
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Detail writes {"detail": msg}.
func Detail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, DetailBody{Detail: msg})
}

// ValidationError writes a 422 response listing every field error.
func ValidationError(w http.ResponseWriter, ve *entity.ValidationError) {
	errs := []entity.FieldError{}
	if ve != nil {
		errs = append(errs, ve.Errors...)
	}
	JSON(w, http.StatusUnprocessableEntity, DetailBody{Detail: errs})
}

// SafeError maps err onto a response without leaking internals.
// Validation errors become 422 regardless of code. For code >= 500 the
// sanitized error is logged and a generic detail is returned; below 500 the
// error text is returned as the detail.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		ValidationError(w, ve)
		return
	}

	if code < http.StatusInternalServerError {
		Detail(w, code, err.Error())
		return
	}

	// 機密情報をマスクしてログ出力
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Detail(w, code, DetailInternalServerError)
}
