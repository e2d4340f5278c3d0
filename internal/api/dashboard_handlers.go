package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

type ApplyRequest struct {
	JobID uuid.UUID `json:"jobId"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ProgressRequest struct {
	Status   entity.ProjectStatus `json:"status"`
	Progress int                  `json:"progress"`
}

type EvaluateResumeRequest struct {
	Resume string `json:"resume"`
}

type EvaluateResumeResponse struct {
	Evaluation string `json:"evaluation"`
}

// Jobs godoc
// @Summary      Job board listings
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Param        type query string false "Full-time, Contract or Remote"
// @Param        location query string false "Location filter"
// @Param        search query string false "Matches title or company"
// @Success      200 {array} entity.Job
// @Router       /jobs [get]
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	jobType := entity.JobType(q.Get("type"))
	if jobType != "" && !jobType.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Unknown job type")
		return
	}

	jobs, err := h.s.Jobs(ctx, repository.JobFilter{
		Type:     jobType,
		Location: q.Get("location"),
		Search:   q.Get("search"),
	})
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, jobs)
}

// CreateJob godoc
// @Summary      Post a job opening
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body entity.Job true "Job"
// @Success      201 {object} entity.Job
// @Router       /admin/jobs [post]
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var job entity.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	created, err := h.s.CreateJob(ctx, job)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// DeleteJob godoc
// @Summary      Remove a job opening
// @Description  Existing applications keep their snapshot of the posting.
// @Tags         jobs
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      204
// @Router       /admin/jobs/{id} [delete]
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.DeleteJob(ctx, id); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ApplyRequest true "Job ID"
// @Success      201 {object} entity.JobApplication
// @Failure      409 {object} ResponseError "Already applied"
// @Router       /applications [post]
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JobID == uuid.Nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	application, err := h.s.Apply(ctx, user.ID, req.JobID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, application)
}

// MyApplications godoc
// @Summary      Applications of the current candidate
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.JobApplication
// @Router       /applications [get]
func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	applications, err := h.s.MyApplications(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, applications)
}

// AdvanceApplication godoc
// @Summary      Move an application through the pipeline
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Application ID"
// @Param        request body StatusRequest true "Applied, Screening, Interview, Offer or Rejected"
// @Success      204
// @Router       /admin/applications/{id}/status [put]
func (h *Handler) AdvanceApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, req, ok := idAndStatus(w, r)
	if !ok {
		return
	}

	if err := h.s.AdvanceApplication(ctx, id, entity.ApplicationStatus(req.Status)); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EvaluateResume godoc
// @Summary      Career copilot resume evaluation
// @Description  Grades the resume against the candidate's desired positions.
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body EvaluateResumeRequest true "Resume text"
// @Success      200 {object} EvaluateResumeResponse
// @Router       /copilot/resume [post]
func (h *Handler) EvaluateResume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	var req EvaluateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Resume == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	evaluation, err := h.s.EvaluateResume(ctx, user.ID, req.Resume)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, EvaluateResumeResponse{Evaluation: evaluation})
}

// CreateInvoice godoc
// @Summary      Issue an invoice to a client
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body entity.Invoice true "Invoice"
// @Success      201 {object} entity.Invoice
// @Router       /admin/invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var inv entity.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	created, err := h.s.CreateInvoice(ctx, inv)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// MyInvoices godoc
// @Summary      Invoices of the current client
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.Invoice
// @Router       /invoices [get]
func (h *Handler) MyInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	invoices, err := h.s.MyInvoices(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoices)
}

// MarkInvoicePaid godoc
// @Summary      Mark an invoice as paid
// @Tags         billing
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Success      204
// @Router       /admin/invoices/{id}/paid [put]
func (h *Handler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.MarkInvoicePaid(ctx, id); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTask godoc
// @Summary      Create a partner task
// @Tags         tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body entity.Task true "Task"
// @Success      201 {object} entity.Task
// @Router       /admin/tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var task entity.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	created, err := h.s.CreateTask(ctx, task)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// MyTasks godoc
// @Summary      Tasks assigned to the current partner
// @Tags         tasks
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.Task
// @Router       /tasks [get]
func (h *Handler) MyTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	tasks, err := h.s.MyTasks(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tasks)
}

// MoveTask godoc
// @Summary      Move a task across the board
// @Tags         tasks
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Task ID"
// @Param        request body StatusRequest true "todo, in-progress, review or done"
// @Success      204
// @Router       /tasks/{id}/status [put]
func (h *Handler) MoveTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, req, ok := idAndStatus(w, r)
	if !ok {
		return
	}

	if err := h.s.MoveTask(ctx, id, entity.TaskStatus(req.Status)); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateProject godoc
// @Summary      Open a client project
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body entity.Project true "Project"
// @Success      201 {object} entity.Project
// @Router       /admin/projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var project entity.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	created, err := h.s.CreateProject(ctx, project)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// MyProjects godoc
// @Summary      Projects of the current client
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.Project
// @Router       /projects [get]
func (h *Handler) MyProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	projects, err := h.s.MyProjects(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, projects)
}

// UpdateProjectProgress godoc
// @Summary      Update project status and progress
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Project ID"
// @Param        request body ProgressRequest true "Status and progress percent"
// @Success      204
// @Router       /admin/projects/{id}/progress [put]
func (h *Handler) UpdateProjectProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return
	}

	if err := h.s.UpdateProjectProgress(ctx, id, req.Status, req.Progress); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyNotifications godoc
// @Summary      Notifications of the current user
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.Notification
// @Router       /notifications [get]
func (h *Handler) MyNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	notifications, err := h.s.MyNotifications(ctx, user.ID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      204
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return
	}

	if err := h.s.MarkNotificationRead(ctx, id, user.ID); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead godoc
// @Summary      Mark every notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /notifications/read [put]
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, errMsgUnauthorized)
		return
	}

	if err := h.s.MarkAllNotificationsRead(ctx, user.ID); err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idAndStatus(w http.ResponseWriter, r *http.Request) (uuid.UUID, StatusRequest, bool) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errMsgBadBody)
		return uuid.Nil, StatusRequest{}, false
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errMsgBadBody)
		return uuid.Nil, StatusRequest{}, false
	}

	return id, req, true
}
