package summary

import (
	"net/http"

	"summarizer/internal/domain/entity"
	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

type GetHandler struct{ Svc *sumUC.Service }

// ServeHTTP サマリー取得
// @Summary      サマリー取得
// @Description  指定されたIDのサマリーを取得します
// @Tags         summaries
// @Produce      json
// @Param        id path int true "サマリーID" minimum(1)
// @Success      200 {object} DTO
// @Failure      404 {object} ErrorResponse "Summary not found"
// @Failure      422 {object} ValidationErrorResponse "IDが不正"
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /summaries/{id}/ [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ve := &entity.ValidationError{}
	id := pathID(r, ve)
	if err := ve.OrNil(); err != nil {
		writeError(w, err)
		return
	}

	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}
