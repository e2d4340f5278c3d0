package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type CandidateRecordsResponse struct {
	Records []entity.CandidateRecord `json:"records"`
	Total   int                      `json:"total"`
}

// CandidateRecords godoc
// @Summary      Candidate registrations for review
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} CandidateRecordsResponse
// @Router       /admin/candidates [get]
func (h *Handler) CandidateRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit := parsePageParams(r)

	records, total, err := h.s.CandidateRecords(ctx, entity.CandidateStatus(r.URL.Query().Get("status")), page, limit)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CandidateRecordsResponse{Records: records, Total: total})
}

// CandidateRecord godoc
// @Summary      One candidate registration
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} entity.CandidateRecord
// @Failure      404 {object} ResponseError
// @Router       /admin/candidates/{id} [get]
func (h *Handler) CandidateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	record, err := h.s.CandidateRecord(ctx, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, record)
}

// MyCandidateRecord godoc
// @Summary      Registration record of the current candidate
// @Tags         candidates
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} entity.CandidateRecord
// @Failure      404 {object} ResponseError
// @Router       /candidates/me [get]
func (h *Handler) MyCandidateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	record, err := h.s.MyCandidateRecord(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, record)
}

// ReviewCandidate godoc
// @Summary      Move a candidate registration through review
// @Description  Placement requires a verified payment; rejection is final.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Record ID"
// @Param        request body StatusRequest true "Target status"
// @Success      204
// @Failure      409 {object} ResponseError "Status can no longer be changed"
// @Router       /admin/candidates/{id}/status [put]
func (h *Handler) ReviewCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, req, ok := idAndStatus(w, r)
	if !ok {
		return
	}

	if err := h.s.ReviewCandidate(ctx, id, entity.CandidateStatus(req.Status)); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PartnerRecords godoc
// @Summary      Partner applications for review
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Status filter"
// @Success      200 {array} entity.PartnerRecord
// @Router       /admin/partners [get]
func (h *Handler) PartnerRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.s.PartnerRecords(ctx, entity.PartnerStatus(r.URL.Query().Get("status")))
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, records)
}

// ReviewPartner godoc
// @Summary      Approve or reject a partner application
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Record ID"
// @Param        request body StatusRequest true "approved or rejected"
// @Success      204
// @Failure      409 {object} ResponseError "Status can no longer be changed"
// @Router       /admin/partners/{id}/status [put]
func (h *Handler) ReviewPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, req, ok := idAndStatus(w, r)
	if !ok {
		return
	}

	if err := h.s.ReviewPartner(ctx, id, entity.PartnerStatus(req.Status)); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ContactSubmissions godoc
// @Summary      Contact form submissions
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.ContactSubmission
// @Router       /admin/contacts [get]
func (h *Handler) ContactSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissions, err := h.s.ContactSubmissions(ctx)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, submissions)
}

// MarkContactReviewed godoc
// @Summary      Mark a contact submission as reviewed
// @Tags         admin
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Success      204
// @Router       /admin/contacts/{id}/reviewed [put]
func (h *Handler) MarkContactReviewed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.MarkContactReviewed(ctx, id); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
