package summary

import (
	"net/http"

	"summarizer/internal/domain/entity"
	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

type DeleteHandler struct{ Svc *sumUC.Service }

// ServeHTTP サマリー削除
// @Summary      サマリー削除
// @Description  サマリーを削除し、削除したレコードの id と url を返します
// @Tags         summaries
// @Produce      json
// @Param        id path int true "サマリーID" minimum(1)
// @Success      200 {object} ResponseDTO
// @Failure      404 {object} ErrorResponse "Summary not found"
// @Failure      422 {object} ValidationErrorResponse "IDが不正"
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /summaries/{id}/ [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ve := &entity.ValidationError{}
	id := pathID(r, ve)
	if err := ve.OrNil(); err != nil {
		writeError(w, err)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toResponseDTO(deleted))
}
