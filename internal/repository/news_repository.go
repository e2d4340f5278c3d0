package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type NewsRepository struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) CreatePost(ctx context.Context, post entity.NewsPost) error {
	q := `
	INSERT INTO news_posts (id, title, category, excerpt, content, author, author_id, image_url, status, likes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		post.ID,
		post.Title,
		post.Category,
		post.Excerpt,
		post.Content,
		post.Author,
		nilUUIDToNull(post.AuthorID),
		post.ImageURL,
		post.Status,
		post.Likes,
		post.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *NewsRepository) PostByID(ctx context.Context, id uuid.UUID) (entity.NewsPost, error) {
	q := `
	SELECT id, title, category, excerpt, content, author, COALESCE(author_id, '00000000-0000-0000-0000-000000000000'),
		image_url, status, likes, created_at
	FROM news_posts
	WHERE id = $1`

	var post entity.NewsPost

	err := r.db.QueryRow(ctx, q, id).Scan(
		&post.ID,
		&post.Title,
		&post.Category,
		&post.Excerpt,
		&post.Content,
		&post.Author,
		&post.AuthorID,
		&post.ImageURL,
		&post.Status,
		&post.Likes,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewsPost{}, entity.ErrNotFound
		}

		return entity.NewsPost{}, err
	}

	return post, nil
}

type NewsFilter struct {
	Status   entity.NewsStatus
	Category entity.NewsCategory
	AuthorID uuid.UUID
	Page     uint64
	Limit    uint64
}

func (r *NewsRepository) Posts(ctx context.Context, filter NewsFilter) ([]entity.NewsPost, error) {
	stmt := sq.Select(
		"id",
		"title",
		"category",
		"excerpt",
		"content",
		"author",
		"COALESCE(author_id, '00000000-0000-0000-0000-000000000000')",
		"image_url",
		"status",
		"likes",
		"created_at",
	).From("news_posts").PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	}

	if filter.Category != "" {
		stmt = stmt.Where(sq.Eq{"category": filter.Category})
	}

	if !filter.AuthorID.IsNil() {
		stmt = stmt.Where(sq.Eq{"author_id": filter.AuthorID})
	}

	stmt = stmt.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
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

	var posts []entity.NewsPost

	for rows.Next() {
		var post entity.NewsPost

		err = rows.Scan(
			&post.ID,
			&post.Title,
			&post.Category,
			&post.Excerpt,
			&post.Content,
			&post.Author,
			&post.AuthorID,
			&post.ImageURL,
			&post.Status,
			&post.Likes,
			&post.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *NewsRepository) UpdatePostStatus(ctx context.Context, id uuid.UUID, status entity.NewsStatus) error {
	q := `UPDATE news_posts SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// IncrementLikes bumps the counter in the database so concurrent likes
// never lose updates. Returns the new total.
func (r *NewsRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	q := `
	UPDATE news_posts
	SET likes = likes + 1
	WHERE id = $1 AND status = $2
	RETURNING likes`

	var likes int

	err := r.db.QueryRow(ctx, q, id, entity.NewsStatusPublished).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrNotFound
		}

		return 0, err
	}

	return likes, nil
}

func (r *NewsRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM news_posts WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
