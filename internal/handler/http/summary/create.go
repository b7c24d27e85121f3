package summary

import (
	"net/http"

	"summarizer/internal/handler/http/respond"
	sumUC "summarizer/internal/usecase/summary"
)

type CreateHandler struct{ Svc *sumUC.Service }

// ServeHTTP サマリー作成
// @Summary      サマリー作成
// @Description  URLを登録し、採番されたIDと正規化済みURLを返します。summary は空で作成されます
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        payload body CreateRequest true "登録するURL"
// @Success      201 {object} ResponseDTO
// @Failure      413 {object} ErrorResponse "リクエストボディが大きすぎます"
// @Failure      422 {object} ValidationErrorResponse "バリデーションエラー"
// @Failure      500 {object} ErrorResponse "サーバーエラー"
// @Router       /summaries/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, err := ParseCreatePayload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), sumUC.CreateInput{URL: payload.URL})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toResponseDTO(created))
}
