package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) CreateCandidateRecord(ctx context.Context, record entity.CandidateRecord) error {
	q := `
	INSERT INTO candidate_registrations (id, user_id, full_name, email, payment_reference, status, data, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	data, err := json.Marshal(record.Data)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q,
		record.ID,
		nilUUIDToNull(record.UserID),
		record.Data.FullName(),
		record.Data.Email,
		record.Data.PaymentReference,
		record.Status,
		data,
		record.SubmittedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *RegistrationRepository) CandidateRecordByID(ctx context.Context, id uuid.UUID) (entity.CandidateRecord, error) {
	q := `
	SELECT id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'), status, data, submitted_at
	FROM candidate_registrations
	WHERE id = $1`

	var (
		record entity.CandidateRecord
		data   []byte
	)

	err := r.db.QueryRow(ctx, q, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Status,
		&data,
		&record.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CandidateRecord{}, entity.ErrNotFound
		}

		return entity.CandidateRecord{}, err
	}

	err = json.Unmarshal(data, &record.Data)
	if err != nil {
		return entity.CandidateRecord{}, err
	}

	return record, nil
}

func (r *RegistrationRepository) CandidateRecordByUserID(ctx context.Context, userID uuid.UUID) (entity.CandidateRecord, error) {
	q := `
	SELECT id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'), status, data, submitted_at
	FROM candidate_registrations
	WHERE user_id = $1
	ORDER BY submitted_at DESC
	LIMIT 1`

	var (
		record entity.CandidateRecord
		data   []byte
	)

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&record.ID,
		&record.UserID,
		&record.Status,
		&data,
		&record.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CandidateRecord{}, entity.ErrNotFound
		}

		return entity.CandidateRecord{}, err
	}

	err = json.Unmarshal(data, &record.Data)
	if err != nil {
		return entity.CandidateRecord{}, err
	}

	return record, nil
}

type CandidateFilter struct {
	Status entity.CandidateStatus
	Page   uint64
	Limit  uint64
}

func (r *RegistrationRepository) CandidateRecords(ctx context.Context, filter CandidateFilter) ([]entity.CandidateRecord, int, error) {
	countStmt := sq.Select("count(*)").From("candidate_registrations").PlaceholderFormat(sq.Dollar)
	if filter.Status != "" {
		countStmt = countStmt.Where(sq.Eq{"status": filter.Status})
	}

	sqlQuery, args, err := countStmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	stmt := sq.Select(
		"id",
		"COALESCE(user_id, '00000000-0000-0000-0000-000000000000')",
		"status",
		"data",
		"submitted_at",
	).From("candidate_registrations").PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	}

	stmt = stmt.OrderBy("submitted_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	records := make([]entity.CandidateRecord, 0, filter.Limit)

	for rows.Next() {
		var (
			record entity.CandidateRecord
			data   []byte
		)

		err = rows.Scan(&record.ID, &record.UserID, &record.Status, &data, &record.SubmittedAt)
		if err != nil {
			return nil, 0, err
		}

		err = json.Unmarshal(data, &record.Data)
		if err != nil {
			return nil, 0, err
		}

		records = append(records, record)
	}

	return records, count, rows.Err()
}

func (r *RegistrationRepository) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status entity.CandidateStatus) error {
	q := `UPDATE candidate_registrations SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// VerifyCandidateByPaymentReference is driven by the payment.verified event
// stream; it transitions a pending record only.
func (r *RegistrationRepository) VerifyCandidateByPaymentReference(ctx context.Context, paymentReference string) error {
	q := `
	UPDATE candidate_registrations
	SET status = $1
	WHERE payment_reference = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, q, entity.CandidateStatusVerified, paymentReference, entity.CandidateStatusPendingPayment)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no pending registration for reference %s", entity.ErrNotFound, paymentReference)
	}

	return nil
}

func (r *RegistrationRepository) CreatePartnerRecord(ctx context.Context, record entity.PartnerRecord) error {
	q := `
	INSERT INTO partner_applications (id, user_id, partner_type, contact_email, status, data, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	data, err := json.Marshal(record.Application)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q,
		record.ID,
		nilUUIDToNull(record.UserID),
		record.Application.Type,
		record.Application.ContactEmail(),
		record.Status,
		data,
		record.SubmittedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *RegistrationRepository) PartnerRecordByID(ctx context.Context, id uuid.UUID) (entity.PartnerRecord, error) {
	q := `
	SELECT id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'), status, data, submitted_at
	FROM partner_applications
	WHERE id = $1`

	var (
		record entity.PartnerRecord
		data   []byte
	)

	err := r.db.QueryRow(ctx, q, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Status,
		&data,
		&record.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PartnerRecord{}, entity.ErrNotFound
		}

		return entity.PartnerRecord{}, err
	}

	err = json.Unmarshal(data, &record.Application)
	if err != nil {
		return entity.PartnerRecord{}, err
	}

	return record, nil
}

func (r *RegistrationRepository) PartnerRecords(ctx context.Context, status entity.PartnerStatus) ([]entity.PartnerRecord, error) {
	stmt := sq.Select(
		"id",
		"COALESCE(user_id, '00000000-0000-0000-0000-000000000000')",
		"status",
		"data",
		"submitted_at",
	).From("partner_applications").
		OrderBy("submitted_at DESC").
		PlaceholderFormat(sq.Dollar)

	if status != "" {
		stmt = stmt.Where(sq.Eq{"status": status})
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

	var records []entity.PartnerRecord

	for rows.Next() {
		var (
			record entity.PartnerRecord
			data   []byte
		)

		err = rows.Scan(&record.ID, &record.UserID, &record.Status, &data, &record.SubmittedAt)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal(data, &record.Application)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *RegistrationRepository) UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error {
	q := `UPDATE partner_applications SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RegistrationRepository) CreateContactSubmission(ctx context.Context, sub entity.ContactSubmission) error {
	q := `
	INSERT INTO contact_submissions (id, category, sub_services, name, email, budget, message, status, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, q,
		sub.ID,
		sub.Category,
		sub.SubServices,
		sub.Name,
		sub.Email,
		sub.Budget,
		sub.Message,
		sub.Status,
		sub.SubmittedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *RegistrationRepository) ContactSubmissions(ctx context.Context) ([]entity.ContactSubmission, error) {
	q := `
	SELECT id, category, sub_services, name, email, budget, message, status, submitted_at
	FROM contact_submissions
	ORDER BY submitted_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var subs []entity.ContactSubmission

	for rows.Next() {
		var sub entity.ContactSubmission

		err = rows.Scan(
			&sub.ID,
			&sub.Category,
			&sub.SubServices,
			&sub.Name,
			&sub.Email,
			&sub.Budget,
			&sub.Message,
			&sub.Status,
			&sub.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *RegistrationRepository) UpdateContactStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) error {
	q := `UPDATE contact_submissions SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RegistrationRepository) SaveNewsletterSubscriber(ctx context.Context, sub entity.NewsletterSubscriber) error {
	q := `
	INSERT INTO newsletter_subscribers (id, email, subscribed_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (email) DO NOTHING`

	_, err := r.db.Exec(ctx, q, sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		return err
	}

	return nil
}
