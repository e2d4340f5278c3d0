package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type DraftRepository struct {
	db *pgxpool.Pool
}

func NewDraftRepository(db *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) CreateDraft(ctx context.Context, draft entity.Draft) error {
	q := `
	INSERT INTO drafts (id, user_id, flow, step, data, submitted, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	userID := nilUUIDToNull(draft.UserID)

	_, err := r.db.Exec(ctx, q,
		draft.ID,
		userID,
		draft.Flow,
		draft.Step,
		draft.Data,
		draft.Submitted,
		draft.CreatedAt,
		draft.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DraftRepository) DraftByID(ctx context.Context, id uuid.UUID) (entity.Draft, error) {
	q := `
	SELECT id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'), flow, step, data, submitted, created_at, updated_at
	FROM drafts
	WHERE id = $1`

	var draft entity.Draft

	err := r.db.QueryRow(ctx, q, id).Scan(
		&draft.ID,
		&draft.UserID,
		&draft.Flow,
		&draft.Step,
		&draft.Data,
		&draft.Submitted,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Draft{}, entity.ErrNotFound
		}

		return entity.Draft{}, err
	}

	return draft, nil
}

func (r *DraftRepository) UpdateDraftData(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	q := `UPDATE drafts SET data = $1, updated_at = $2 WHERE id = $3 AND NOT submitted`

	tag, err := r.db.Exec(ctx, q, data, time.Now(), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DraftRepository) UpdateDraftStep(ctx context.Context, id uuid.UUID, step int) error {
	q := `UPDATE drafts SET step = $1, updated_at = $2 WHERE id = $3 AND NOT submitted`

	tag, err := r.db.Exec(ctx, q, step, time.Now(), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DraftRepository) MarkSubmitted(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE drafts SET submitted = TRUE, updated_at = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, q, time.Now(), id)
	if err != nil {
		return err
	}

	return nil
}

// SaveAttachment replaces a previously staged file for the same field, so a
// user re-uploading an ID card does not accumulate stale blobs.
func (r *DraftRepository) SaveAttachment(ctx context.Context, att entity.Attachment) error {
	q := `
	INSERT INTO draft_attachments (id, draft_id, field, filename, content_type, data, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (draft_id, field) DO UPDATE
	SET filename = EXCLUDED.filename, content_type = EXCLUDED.content_type, data = EXCLUDED.data, created_at = EXCLUDED.created_at`

	_, err := r.db.Exec(ctx, q,
		att.ID,
		att.DraftID,
		att.Field,
		att.Filename,
		att.ContentType,
		att.Data,
		att.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *DraftRepository) AttachmentsByDraftID(ctx context.Context, draftID uuid.UUID) ([]entity.Attachment, error) {
	q := `
	SELECT id, draft_id, field, filename, content_type, data, created_at
	FROM draft_attachments
	WHERE draft_id = $1`

	rows, err := r.db.Query(ctx, q, draftID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var attachments []entity.Attachment

	for rows.Next() {
		var att entity.Attachment

		err = rows.Scan(
			&att.ID,
			&att.DraftID,
			&att.Field,
			&att.Filename,
			&att.ContentType,
			&att.Data,
			&att.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		attachments = append(attachments, att)
	}

	return attachments, rows.Err()
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM drafts WHERE id = $1`

	_, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *DraftRepository) DeleteStaleDrafts(ctx context.Context, olderThan time.Time) error {
	q := `DELETE FROM drafts WHERE NOT submitted AND updated_at < $1`

	_, err := r.db.Exec(ctx, q, olderThan)
	if err != nil {
		return err
	}

	return nil
}

func nilUUIDToNull(id uuid.UUID) *uuid.UUID {
	if id.IsNil() {
		return nil
	}

	return &id
}
