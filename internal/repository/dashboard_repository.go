package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CreateJob(ctx context.Context, job entity.Job) error {
	q := `
	INSERT INTO jobs (id, title, company, location, job_type, salary_range, description, posted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.SalaryRange,
		job.Description,
		job.PostedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DashboardRepository) JobByID(ctx context.Context, id uuid.UUID) (entity.Job, error) {
	q := `
	SELECT id, title, company, location, job_type, salary_range, description, posted_at
	FROM jobs
	WHERE id = $1`

	var job entity.Job

	err := r.db.QueryRow(ctx, q, id).Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&job.SalaryRange,
		&job.Description,
		&job.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Job{}, entity.ErrNotFound
		}

		return entity.Job{}, err
	}

	return job, nil
}

type JobFilter struct {
	Type     entity.JobType
	Location string
	Search   string
}

func (r *DashboardRepository) Jobs(ctx context.Context, filter JobFilter) ([]entity.Job, error) {
	stmt := sq.Select(
		"id",
		"title",
		"company",
		"location",
		"job_type",
		"salary_range",
		"description",
		"posted_at",
	).From("jobs").
		OrderBy("posted_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Type != "" {
		stmt = stmt.Where(sq.Eq{"job_type": filter.Type})
	}

	if filter.Location != "" {
		stmt = stmt.Where(sq.ILike{"location": "%" + filter.Location + "%"})
	}

	if filter.Search != "" {
		stmt = stmt.Where(sq.Or{
			sq.ILike{"title": "%" + filter.Search + "%"},
			sq.ILike{"company": "%" + filter.Search + "%"},
		})
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var jobs []entity.Job

	for rows.Next() {
		var job entity.Job

		err = rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.Type,
			&job.SalaryRange,
			&job.Description,
			&job.PostedAt,
		)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func (r *DashboardRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM jobs WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) CreateApplication(ctx context.Context, app entity.JobApplication) error {
	q := `
	INSERT INTO job_applications (id, job_id, candidate_id, job_title, company, status, applied_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		app.ID,
		app.JobID,
		app.CandidateID,
		app.JobTitle,
		app.Company,
		app.Status,
		app.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (r *DashboardRepository) ApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]entity.JobApplication, error) {
	q := `
	SELECT id, job_id, candidate_id, job_title, company, status, applied_at
	FROM job_applications
	WHERE candidate_id = $1
	ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var apps []entity.JobApplication

	for rows.Next() {
		var app entity.JobApplication

		err = rows.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.JobTitle, &app.Company, &app.Status, &app.AppliedAt)
		if err != nil {
			return nil, err
		}

		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (r *DashboardRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	q := `UPDATE job_applications SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	q := `
	INSERT INTO invoices (id, client_id, invoice_number, description, amount, status, issued_at, due_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		inv.ID,
		inv.ClientID,
		inv.InvoiceNumber,
		inv.Description,
		inv.Amount,
		inv.Status,
		inv.IssuedAt,
		inv.DueDate,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DashboardRepository) InvoicesByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Invoice, error) {
	q := `
	SELECT id, client_id, invoice_number, description, amount, status, issued_at, due_date
	FROM invoices
	WHERE client_id = $1
	ORDER BY issued_at DESC`

	rows, err := r.db.Query(ctx, q, clientID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		var inv entity.Invoice

		err = rows.Scan(
			&inv.ID,
			&inv.ClientID,
			&inv.InvoiceNumber,
			&inv.Description,
			&inv.Amount,
			&inv.Status,
			&inv.IssuedAt,
			&inv.DueDate,
		)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *DashboardRepository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	q := `UPDATE invoices SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) CreateTask(ctx context.Context, task entity.Task) error {
	q := `
	INSERT INTO tasks (id, title, project, assignee_id, status, priority, due_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		task.ID,
		task.Title,
		task.Project,
		nilUUIDToNull(task.AssigneeID),
		task.Status,
		task.Priority,
		task.DueDate,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DashboardRepository) TasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]entity.Task, error) {
	q := `
	SELECT id, title, project, COALESCE(assignee_id, '00000000-0000-0000-0000-000000000000'), status, priority, due_date
	FROM tasks
	WHERE assignee_id = $1
	ORDER BY due_date`

	rows, err := r.db.Query(ctx, q, assigneeID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tasks []entity.Task

	for rows.Next() {
		var task entity.Task

		err = rows.Scan(&task.ID, &task.Title, &task.Project, &task.AssigneeID, &task.Status, &task.Priority, &task.DueDate)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *DashboardRepository) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) error {
	q := `UPDATE tasks SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) CreateProject(ctx context.Context, project entity.Project) error {
	q := `
	INSERT INTO projects (id, name, client_id, client_name, status, progress, deadline, category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		project.ID,
		project.Name,
		nilUUIDToNull(project.ClientID),
		project.ClientName,
		project.Status,
		project.Progress,
		project.Deadline,
		project.Category,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DashboardRepository) ProjectsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Project, error) {
	q := `
	SELECT id, name, COALESCE(client_id, '00000000-0000-0000-0000-000000000000'), client_name, status, progress, deadline, category
	FROM projects
	WHERE client_id = $1
	ORDER BY deadline`

	rows, err := r.db.Query(ctx, q, clientID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var projects []entity.Project

	for rows.Next() {
		var project entity.Project

		err = rows.Scan(
			&project.ID,
			&project.Name,
			&project.ClientID,
			&project.ClientName,
			&project.Status,
			&project.Progress,
			&project.Deadline,
			&project.Category,
		)
		if err != nil {
			return nil, err
		}

		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *DashboardRepository) UpdateProjectProgress(ctx context.Context, id uuid.UUID, status entity.ProjectStatus, progress int) error {
	q := `UPDATE projects SET status = $1, progress = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, q, status, progress, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) CreateNotification(ctx context.Context, n entity.Notification) error {
	q := `
	INSERT INTO notifications (id, user_id, title, message, notification_type, read, link, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.Link, n.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *DashboardRepository) NotificationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	q := `
	SELECT id, user_id, title, message, notification_type, read, link, created_at
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var notifications []entity.Notification

	for rows.Next() {
		var n entity.Notification

		err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.Link, &n.CreatedAt)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *DashboardRepository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	q := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DashboardRepository) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	q := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	_, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return err
	}

	return nil
}
