package summary

import (
	"context"
	"errors"
	"net/http"

	"summarizer/internal/domain/entity"
	"summarizer/internal/handler/http/pathutil"
	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

// writeError maps usecase and decoding errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationError(w, ve)
	case errors.Is(err, sumUC.ErrSummaryNotFound):
		respond.Detail(w, http.StatusNotFound, respond.DetailNotFound)
	case errors.Is(err, errBodyTooLarge):
		respond.Detail(w, http.StatusRequestEntityTooLarge, respond.DetailEntityTooLarge)
	case errors.Is(err, context.DeadlineExceeded):
		respond.Detail(w, http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// pathID validates the {id} wildcard into ve.
func pathID(r *http.Request, ve *entity.ValidationError) int64 {
	id, fe := pathutil.ExtractID(r, "id")
	if fe != nil {
		ve.Add(*fe)
		return 0
	}
	return id
}
