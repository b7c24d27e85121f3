package summary

import (
	"net/http"

	"summarizer/internal/domain/entity"
	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

type UpdateHandler struct{ Svc *sumUC.Service }

// ServeHTTP サマリー更新
// @Summary      サマリー更新
// @Description  url と summary を置き換えます。存在しないIDの場合は更新を行わず404を返します
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        id path int true "サマリーID" minimum(1)
// @Param        payload body UpdateRequest true "更新内容"
// @Success      200 {object} DTO
// @Failure      404 {object} ErrorResponse "Summary not found"
// @Failure      413 {object} ErrorResponse "リクエストボディが大きすぎます"
// @Failure      422 {object} ValidationErrorResponse "バリデーションエラー"
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /summaries/{id}/ [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// パスのエラーを先に、ボディのエラーを後に積む
	ve := &entity.ValidationError{}
	id := pathID(r, ve)
	payload, err := ParseUpdatePayload(r, ve)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := ve.OrNil(); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, sumUC.UpdateInput{
		URL:     payload.URL,
		Summary: payload.Summary,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
