package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user entity.User) error
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, error)
	AssignRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	PasswordHashByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
}

type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	FindRefreshToken(ctx context.Context, token string) error
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	CleanExpired(ctx context.Context) error
}

type DraftRepository interface {
	CreateDraft(ctx context.Context, draft entity.Draft) error
	DraftByID(ctx context.Context, id uuid.UUID) (entity.Draft, error)
	UpdateDraftData(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	UpdateDraftStep(ctx context.Context, id uuid.UUID, step int) error
	MarkSubmitted(ctx context.Context, id uuid.UUID) error
	SaveAttachment(ctx context.Context, att entity.Attachment) error
	AttachmentsByDraftID(ctx context.Context, draftID uuid.UUID) ([]entity.Attachment, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	DeleteStaleDrafts(ctx context.Context, olderThan time.Time) error
}

type RegistrationRepository interface {
	CreateCandidateRecord(ctx context.Context, record entity.CandidateRecord) error
	CandidateRecordByID(ctx context.Context, id uuid.UUID) (entity.CandidateRecord, error)
	CandidateRecordByUserID(ctx context.Context, userID uuid.UUID) (entity.CandidateRecord, error)
	CandidateRecords(ctx context.Context, filter repository.CandidateFilter) ([]entity.CandidateRecord, int, error)
	UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status entity.CandidateStatus) error
	VerifyCandidateByPaymentReference(ctx context.Context, paymentReference string) error
	CreatePartnerRecord(ctx context.Context, record entity.PartnerRecord) error
	PartnerRecordByID(ctx context.Context, id uuid.UUID) (entity.PartnerRecord, error)
	PartnerRecords(ctx context.Context, status entity.PartnerStatus) ([]entity.PartnerRecord, error)
	UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error
	CreateContactSubmission(ctx context.Context, sub entity.ContactSubmission) error
	ContactSubmissions(ctx context.Context) ([]entity.ContactSubmission, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) error
	SaveNewsletterSubscriber(ctx context.Context, sub entity.NewsletterSubscriber) error
}

type NewsRepository interface {
	CreatePost(ctx context.Context, post entity.NewsPost) error
	PostByID(ctx context.Context, id uuid.UUID) (entity.NewsPost, error)
	Posts(ctx context.Context, filter repository.NewsFilter) ([]entity.NewsPost, error)
	UpdatePostStatus(ctx context.Context, id uuid.UUID, status entity.NewsStatus) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type DashboardRepository interface {
	CreateJob(ctx context.Context, job entity.Job) error
	JobByID(ctx context.Context, id uuid.UUID) (entity.Job, error)
	Jobs(ctx context.Context, filter repository.JobFilter) ([]entity.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	CreateApplication(ctx context.Context, app entity.JobApplication) error
	ApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]entity.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
	CreateInvoice(ctx context.Context, inv entity.Invoice) error
	InvoicesByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error
	CreateTask(ctx context.Context, task entity.Task) error
	TasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]entity.Task, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error
	CreateProject(ctx context.Context, project entity.Project) error
	ProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Project, error)
	UpdateProjectProgress(ctx context.Context, id uuid.UUID, status entity.ProjectStatus, progress int) error
	CreateNotification(ctx context.Context, n entity.Notification) error
	NotificationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error
}

type IdentityClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (entity.ExternalIdentity, error)
}

type StorageClient interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type AssistantClient interface {
	Reply(ctx context.Context, question string) (string, error)
	EvaluateProfile(ctx context.Context, profile string, positions []string) (string, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

type SubmissionProducer interface {
	SendSubmission(ctx context.Context, recordID uuid.UUID, kind, email string)
}

type Publisher interface {
	PublishPost(post entity.NewsPost)
}

type Service struct {
	cfg              config.Config
	userRepo         UserRepository
	refreshTokenRepo RefreshTokenRepository
	draftRepo        DraftRepository
	registrationRepo RegistrationRepository
	newsRepo         NewsRepository
	dashboardRepo    DashboardRepository
	identityClient   IdentityClient
	storageClient    StorageClient
	assistantClient  AssistantClient
	mailer           Mailer
	producer         SubmissionProducer
	publisher        Publisher
}

func NewService(
	cfg config.Config,
	userRepo UserRepository,
	refreshTokenRepo RefreshTokenRepository,
	draftRepo DraftRepository,
	registrationRepo RegistrationRepository,
	newsRepo NewsRepository,
	dashboardRepo DashboardRepository,
	identityClient IdentityClient,
	storageClient StorageClient,
	assistantClient AssistantClient,
	mailer Mailer,
	producer SubmissionProducer,
	publisher Publisher,
) *Service {
	return &Service{
		cfg:              cfg,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		draftRepo:        draftRepo,
		registrationRepo: registrationRepo,
		newsRepo:         newsRepo,
		dashboardRepo:    dashboardRepo,
		identityClient:   identityClient,
		storageClient:    storageClient,
		assistantClient:  assistantClient,
		mailer:           mailer,
		producer:         producer,
		publisher:        publisher,
	}
}
