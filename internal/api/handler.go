package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
)

type Service interface {
	SignInWithProvider(ctx context.Context, idToken string) (entity.UserTokens, error)
	SignInWithPassword(ctx context.Context, email, password string) (entity.UserTokens, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) (entity.UserTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (entity.UserTokens, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (entity.User, error)

	StartDraft(ctx context.Context, userID uuid.UUID, flow entity.FlowKind) (entity.Draft, error)
	Draft(ctx context.Context, id uuid.UUID) (service.DraftState, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	AttachFile(ctx context.Context, draftID uuid.UUID, field, filename, contentType string, data []byte) error
	NextStep(ctx context.Context, id uuid.UUID) (service.DraftState, error)
	PrevStep(ctx context.Context, id uuid.UUID) (service.DraftState, error)
	Submit(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	CreatePost(ctx context.Context, author entity.UserJwtInfo, post entity.NewsPost) (entity.NewsPost, error)
	ModeratePost(ctx context.Context, id uuid.UUID, status entity.NewsStatus) error
	PublishedPosts(ctx context.Context, category entity.NewsCategory) ([]entity.NewsPost, error)
	AllPosts(ctx context.Context, status entity.NewsStatus) ([]entity.NewsPost, error)
	LikePost(ctx context.Context, id uuid.UUID) (int, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	CandidateRecords(ctx context.Context, status entity.CandidateStatus, page, limit uint64) ([]entity.CandidateRecord, int, error)
	CandidateRecord(ctx context.Context, id uuid.UUID) (entity.CandidateRecord, error)
	MyCandidateRecord(ctx context.Context, userID uuid.UUID) (entity.CandidateRecord, error)
	ReviewCandidate(ctx context.Context, id uuid.UUID, status entity.CandidateStatus) error
	PartnerRecords(ctx context.Context, status entity.PartnerStatus) ([]entity.PartnerRecord, error)
	ReviewPartner(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error
	ContactSubmissions(ctx context.Context) ([]entity.ContactSubmission, error)
	MarkContactReviewed(ctx context.Context, id uuid.UUID) error
	SubscribeNewsletter(ctx context.Context, email string) error
	EvaluateResume(ctx context.Context, userID uuid.UUID, resume string) (string, error)

	CreateJob(ctx context.Context, job entity.Job) (entity.Job, error)
	Jobs(ctx context.Context, filter repository.JobFilter) ([]entity.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	Apply(ctx context.Context, candidateID, jobID uuid.UUID) (entity.JobApplication, error)
	MyApplications(ctx context.Context, candidateID uuid.UUID) ([]entity.JobApplication, error)
	AdvanceApplication(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	MyInvoices(ctx context.Context, clientID uuid.UUID) ([]entity.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id uuid.UUID) error
	CreateTask(ctx context.Context, task entity.Task) (entity.Task, error)
	MyTasks(ctx context.Context, assigneeID uuid.UUID) ([]entity.Task, error)
	MoveTask(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error
	CreateProject(ctx context.Context, project entity.Project) (entity.Project, error)
	MyProjects(ctx context.Context, clientID uuid.UUID) ([]entity.Project, error)
	UpdateProjectProgress(ctx context.Context, id uuid.UUID, status entity.ProjectStatus, progress int) error
	MyNotifications(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error

	Chat(ctx context.Context, message string) (string, error)
}

// @title Jackson Multifacet API
// @version 1.0
// @description Marketing site and role based dashboard backend for the Jackson Multifacet recruitment agency.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s  Service
	mw *Middleware
}

func NewHandler(s Service, mw *Middleware) *Handler {
	return &Handler{
		s:  s,
		mw: mw,
	}
}

// Health godoc
// @Summary      Service health check
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errMsgInternal)
	}
}
