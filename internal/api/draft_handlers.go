package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
)

const maxAttachmentBody = 6 << 20

type StartDraftRequest struct {
	Flow entity.FlowKind `json:"flow"`
}

type SubmitResponse struct {
	RecordID uuid.UUID `json:"recordId"`
}

// StartDraft godoc
// @Summary      Open a new wizard draft
// @Description  Candidate and partner flows require a signed in user; the contact flow does not.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body StartDraftRequest true "Flow kind"
// @Success      201 {object} entity.Draft
// @Router       /drafts [post]
func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Flow.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	// Only the contact flow accepts anonymous drafts; the other flows
	// need an owner to resume and to link the final record to.
	var userID uuid.UUID
	if user, err := entity.UserFromContext(ctx); err == nil {
		userID = user.ID
	} else if req.Flow != entity.FlowContactIntake {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	draft, err := h.s.StartDraft(ctx, userID, req.Flow)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, draft)
}

// Draft godoc
// @Summary      Current draft state
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200 {object} service.DraftState
// @Failure      404 {object} ResponseError
// @Router       /drafts/{id} [get]
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	SendJSON(ctx, w, http.StatusOK, state)
}

// UpdateDraft godoc
// @Summary      Save partial wizard data
// @Description  The payload is stored as is; step requirements are only enforced on next and submit.
// @Tags         drafts
// @Accept       json
// @Param        id path string true "Draft ID"
// @Success      204
// @Failure      409 {object} ResponseError "Application already submitted"
// @Router       /drafts/{id} [put]
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxAttachmentBody))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.UpdateDraft(ctx, state.Draft.ID, body); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachFile godoc
// @Summary      Stage a document for the draft
// @Description  Multipart form with a "field" value and a "file" part. Files stay in the database until submission.
// @Tags         drafts
// @Accept       multipart/form-data
// @Param        id path string true "Draft ID"
// @Success      204
// @Failure      400 {object} ResponseError
// @Router       /drafts/{id}/attachments [post]
func (h *Handler) AttachFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentBody); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	field := r.FormValue("field")

	file, header, err := r.FormFile("file")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	err = h.s.AttachFile(ctx, state.Draft.ID, field, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NextStep godoc
// @Summary      Advance the wizard to the next step
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200 {object} service.DraftState
// @Failure      422 {object} ResponseError "Step requirements are not met"
// @Router       /drafts/{id}/next [post]
func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	next, err := h.s.NextStep(ctx, state.Draft.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, next)
}

// PrevStep godoc
// @Summary      Return to the previous step
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200 {object} service.DraftState
// @Router       /drafts/{id}/back [post]
func (h *Handler) PrevStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	prev, err := h.s.PrevStep(ctx, state.Draft.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, prev)
}

// Submit godoc
// @Summary      Submit the completed wizard
// @Description  Uploads every staged document and creates the final record. All uploads succeed or the submission fails.
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Draft ID"
// @Success      200 {object} SubmitResponse
// @Failure      409 {object} ResponseError "Application already submitted"
// @Failure      422 {object} ResponseError "Step requirements are not met"
// @Router       /drafts/{id}/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, ok := h.ownedDraft(w, r)
	if !ok {
		return
	}

	recordID, err := h.s.Submit(ctx, state.Draft.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, SubmitResponse{RecordID: recordID})
}

// ownedDraft loads the draft from the id path param and checks that the
// caller may touch it. Anonymous drafts are keyed by their unguessable id
// alone.
func (h *Handler) ownedDraft(w http.ResponseWriter, r *http.Request) (service.DraftState, bool) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return service.DraftState{}, false
	}

	state, err := h.s.Draft(ctx, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return service.DraftState{}, false
	}

	if state.Draft.UserID != uuid.Nil {
		user, err := entity.UserFromContext(ctx)
		if err != nil || user.ID != state.Draft.UserID {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, errMsgForbidden)
			return service.DraftState{}, false
		}
	}

	return state, true
}
