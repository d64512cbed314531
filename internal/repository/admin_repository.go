package repository

import (
	"context"
	"fmt"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// adminRepository implements AdminRepository using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

// GetByEmail retrieves an admin identity by email.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var admin model.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("email", email).Msg("admin not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &admin, nil
}

// Exists reports whether the given identity is a member of the admins set.
// Membership alone grants access to every admin operation.
func (r *adminRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to check admin membership")
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return exists, nil
}
