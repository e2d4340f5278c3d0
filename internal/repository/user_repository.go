package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user entity.User) error {
	q := `
	INSERT INTO users (id, email, name, avatar_url, role, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		user.ID,
		user.Email,
		user.Name,
		user.AvatarURL,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	q := `
	SELECT id, email, name, avatar_url, role, created_at, updated_at
	FROM users
	WHERE email = $1`

	var user entity.User

	err := r.db.QueryRow(ctx, q, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := `
	SELECT id, email, name, avatar_url, role, created_at, updated_at
	FROM users
	WHERE id = $1`

	var user entity.User

	err := r.db.QueryRow(ctx, q, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

// RoleByID is the secondary lookup performed after external authentication.
func (r *UserRepository) RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, error) {
	q := `SELECT role FROM users WHERE id = $1`

	var role entity.Role

	err := r.db.QueryRow(ctx, q, id).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RoleUnset, entity.ErrNotFound
		}

		return entity.RoleUnset, err
	}

	return role, nil
}

// AssignRole updates only the role column, merge-style, leaving the rest of
// the record untouched.
func (r *UserRepository) AssignRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	q := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, q, role, time.Now(), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *UserRepository) PasswordHashByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	q := `SELECT id, password_hash FROM users WHERE email = $1 AND password_hash IS NOT NULL`

	var (
		id   uuid.UUID
		hash string
	)

	err := r.db.QueryRow(ctx, q, email).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, "", entity.ErrNotFound
		}

		return uuid.Nil, "", err
	}

	return id, hash, nil
}
