package api

import (
	"encoding/json"
	"net/http"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// SubscribeNewsletter godoc
// @Summary      Join the newsletter
// @Description  Subscribing an already subscribed address succeeds silently.
// @Tags         public
// @Accept       json
// @Success      204
// @Failure      422 {object} ResponseError "Invalid email"
// @Router       /newsletter [post]
func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	if err := h.s.SubscribeNewsletter(ctx, req.Email); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Chat godoc
// @Summary      Ask the site assistant a question
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Visitor message, up to 500 characters"
// @Success      200 {object} ChatResponse
// @Failure      422 {object} ResponseError
// @Router       /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	reply, err := h.s.Chat(ctx, req.Message)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ChatResponse{Reply: reply})
}
