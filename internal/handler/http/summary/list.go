package summary

import (
	"net/http"

	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

type ListHandler struct{ Svc *sumUC.Service }

// ServeHTTP サマリー一覧
// @Summary      サマリー一覧
// @Description  全サマリーをID順に返します。0件の場合は空配列です
// @Tags         summaries
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /summaries/ [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}
