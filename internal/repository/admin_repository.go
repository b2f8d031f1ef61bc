package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"impilo/registry/internal/models"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	const query = `
		SELECT id, email, password_hash, role, created_at
		FROM admins WHERE lower(email) = lower($1)
	`

	var admin models.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// Create inserts the admin unless an account with the email already exists.
// Used by the boot seed.
func (r *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	const query = `
		INSERT INTO admins (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.CreatedAt,
	)
	return err
}
