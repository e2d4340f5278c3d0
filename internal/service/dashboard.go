package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
)

func (s *Service) CreateJob(ctx context.Context, job entity.Job) (entity.Job, error) {
	if err := requireFields(map[string]string{
		"title":    job.Title,
		"company":  job.Company,
		"location": job.Location,
	}); err != nil {
		return entity.Job{}, err
	}

	if !job.Type.IsValid() {
		return entity.Job{}, fmt.Errorf("%w: unknown job type %q", entity.ErrIncorrectRequestBody, job.Type)
	}

	job.ID = uuid.Must(uuid.NewV4())
	job.PostedAt = time.Now()

	if err := s.dashboardRepo.CreateJob(ctx, job); err != nil {
		return entity.Job{}, fmt.Errorf("create job: %w", err)
	}

	slog.InfoContext(ctx, "job posted", "job_id", job.ID, "title", job.Title)

	return job, nil
}

func (s *Service) Jobs(ctx context.Context, filter repository.JobFilter) ([]entity.Job, error) {
	jobs, err := s.dashboardRepo.Jobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if err := s.dashboardRepo.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	return nil
}

// Apply creates a job application carrying a snapshot of the job title and
// company so the candidate's history survives job edits and deletions.
func (s *Service) Apply(ctx context.Context, candidateID, jobID uuid.UUID) (entity.JobApplication, error) {
	job, err := s.dashboardRepo.JobByID(ctx, jobID)
	if err != nil {
		return entity.JobApplication{}, fmt.Errorf("get job: %w", err)
	}

	app := entity.JobApplication{
		ID:          uuid.Must(uuid.NewV4()),
		JobID:       job.ID,
		CandidateID: candidateID,
		JobTitle:    job.Title,
		Company:     job.Company,
		Status:      entity.ApplicationStatusApplied,
		AppliedAt:   time.Now(),
	}

	if err := s.dashboardRepo.CreateApplication(ctx, app); err != nil {
		return entity.JobApplication{}, fmt.Errorf("create application: %w", err)
	}

	slog.InfoContext(ctx, "job application created", "application_id", app.ID, "job_id", jobID, "candidate_id", candidateID)

	return app, nil
}

func (s *Service) MyApplications(ctx context.Context, candidateID uuid.UUID) ([]entity.JobApplication, error) {
	apps, err := s.dashboardRepo.ApplicationsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

func (s *Service) AdvanceApplication(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown application status %q", entity.ErrIncorrectRequestBody, status)
	}

	if err := s.dashboardRepo.UpdateApplicationStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	return nil
}

func (s *Service) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	if inv.ClientID.IsNil() || inv.InvoiceNumber == "" {
		return entity.Invoice{}, fmt.Errorf("%w: clientId and invoiceNumber", entity.ErrMissingRequiredField)
	}

	if !inv.Status.IsValid() {
		inv.Status = entity.InvoiceStatusPending
	}

	inv.ID = uuid.Must(uuid.NewV4())
	if inv.IssuedAt.IsZero() {
		inv.IssuedAt = time.Now()
	}

	if err := s.dashboardRepo.CreateInvoice(ctx, inv); err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) MyInvoices(ctx context.Context, clientID uuid.UUID) ([]entity.Invoice, error) {
	invoices, err := s.dashboardRepo.InvoicesByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

func (s *Service) MarkInvoicePaid(ctx context.Context, id uuid.UUID) error {
	if err := s.dashboardRepo.UpdateInvoiceStatus(ctx, id, entity.InvoiceStatusPaid); err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}

	return nil
}

func (s *Service) CreateTask(ctx context.Context, task entity.Task) (entity.Task, error) {
	if task.Title == "" {
		return entity.Task{}, fmt.Errorf("%w: title", entity.ErrMissingRequiredField)
	}

	if !task.Status.IsValid() {
		task.Status = entity.TaskStatusTodo
	}

	if !task.Priority.IsValid() {
		task.Priority = entity.TaskPriorityMedium
	}

	task.ID = uuid.Must(uuid.NewV4())

	if err := s.dashboardRepo.CreateTask(ctx, task); err != nil {
		return entity.Task{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (s *Service) MyTasks(ctx context.Context, assigneeID uuid.UUID) ([]entity.Task, error) {
	tasks, err := s.dashboardRepo.TasksByAssignee(ctx, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (s *Service) MoveTask(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown task status %q", entity.ErrIncorrectRequestBody, status)
	}

	if err := s.dashboardRepo.UpdateTaskStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	return nil
}

func (s *Service) CreateProject(ctx context.Context, project entity.Project) (entity.Project, error) {
	if project.Name == "" {
		return entity.Project{}, fmt.Errorf("%w: name", entity.ErrMissingRequiredField)
	}

	if !project.Status.IsValid() {
		project.Status = entity.ProjectStatusPlanning
	}

	project.ID = uuid.Must(uuid.NewV4())

	if err := s.dashboardRepo.CreateProject(ctx, project); err != nil {
		return entity.Project{}, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

func (s *Service) MyProjects(ctx context.Context, clientID uuid.UUID) ([]entity.Project, error) {
	projects, err := s.dashboardRepo.ProjectsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (s *Service) UpdateProjectProgress(ctx context.Context, id uuid.UUID, status entity.ProjectStatus, progress int) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown project status %q", entity.ErrIncorrectRequestBody, status)
	}

	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress must be 0..100", entity.ErrIncorrectRequestBody)
	}

	if err := s.dashboardRepo.UpdateProjectProgress(ctx, id, status, progress); err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (s *Service) Notify(ctx context.Context, userID uuid.UUID, nType entity.NotificationType, title, message, link string) error {
	n := entity.Notification{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      nType,
		Link:      link,
		CreatedAt: time.Now(),
	}

	if err := s.dashboardRepo.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

func (s *Service) MyNotifications(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	notifications, err := s.dashboardRepo.NotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.dashboardRepo.MarkNotificationRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.dashboardRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}

	return nil
}
