package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// AdminRepository defines persistence access for admin identities.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	Update(ctx context.Context, admin *domain.Admin) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

const adminColumns = `id, first_name, last_name, email, password_hash, phone,
        profile_image, role, active, last_login_at, created_at, updated_at`

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (first_name, last_name, email, password_hash, phone, profile_image, role, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		admin.FirstName,
		admin.LastName,
		strings.ToLower(admin.Email),
		admin.PasswordHash,
		admin.Phone,
		admin.ProfileImage,
		admin.Role,
		admin.Active,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	const query = `
        UPDATE admins SET first_name=$1, last_name=$2, phone=$3, profile_image=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		admin.FirstName,
		admin.LastName,
		admin.Phone,
		admin.ProfileImage,
		admin.Active,
		admin.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE admins SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE admins SET last_login_at=$1 WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, at, id)
	return err
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE email=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, strings.ToLower(email)))
}

func (r *adminRepository) scanOne(row pgx.Row) (*domain.Admin, error) {
	var admin domain.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.FirstName,
		&admin.LastName,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Phone,
		&admin.ProfileImage,
		&admin.Role,
		&admin.Active,
		&admin.LastLoginAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
