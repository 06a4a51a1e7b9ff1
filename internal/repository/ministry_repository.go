package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// MinistryRequestRepository defines persistence access for join requests.
type MinistryRequestRepository interface {
	Create(ctx context.Context, req *domain.MinistryRequest) error
	Update(ctx context.Context, req *domain.MinistryRequest) error
	GetByID(ctx context.Context, id string) (*domain.MinistryRequest, error)
	List(ctx context.Context, filter MinistryRequestFilter) ([]domain.MinistryRequest, int, error)
}

// MinistryRequestFilter narrows request listings.
type MinistryRequestFilter struct {
	Status   domain.MinistryRequestStatus
	Ministry string
	Limit    int
	Offset   int
}

// MinistryMemberRepository defines persistence access for approved members.
type MinistryMemberRepository interface {
	Create(ctx context.Context, member *domain.MinistryMember) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ministry string, limit, offset int) ([]domain.MinistryMember, int, error)
}

type ministryRequestRepository struct {
	pool *pgxpool.Pool
}

// NewMinistryRequestRepository returns a Postgres-backed implementation.
func NewMinistryRequestRepository(pool *pgxpool.Pool) MinistryRequestRepository {
	return &ministryRequestRepository{pool: pool}
}

const ministryRequestColumns = `id, first_name, last_name, email, phone, address, city, state,
        ministry, ministry_label, availability, skills, status, decline_reason,
        reviewed_by, reviewed_at, created_at, updated_at`

func (r *ministryRequestRepository) Create(ctx context.Context, req *domain.MinistryRequest) error {
	const query = `
        INSERT INTO ministry_requests
            (first_name, last_name, email, phone, address, city, state,
             ministry, ministry_label, availability, skills, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Address,
		req.City,
		req.State,
		req.Ministry,
		req.MinistryLabel,
		req.Availability,
		req.Skills,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *ministryRequestRepository) Update(ctx context.Context, req *domain.MinistryRequest) error {
	const query = `
        UPDATE ministry_requests
        SET status=$1, decline_reason=$2, reviewed_by=$3, reviewed_at=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		req.Status,
		req.DeclineReason,
		req.ReviewedBy,
		req.ReviewedAt,
		req.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ministryRequestRepository) GetByID(ctx context.Context, id string) (*domain.MinistryRequest, error) {
	const query = `SELECT ` + ministryRequestColumns + ` FROM ministry_requests WHERE id=$1`

	var req domain.MinistryRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.FirstName,
		&req.LastName,
		&req.Email,
		&req.Phone,
		&req.Address,
		&req.City,
		&req.State,
		&req.Ministry,
		&req.MinistryLabel,
		&req.Availability,
		&req.Skills,
		&req.Status,
		&req.DeclineReason,
		&req.ReviewedBy,
		&req.ReviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ministryRequestRepository) List(ctx context.Context, filter MinistryRequestFilter) ([]domain.MinistryRequest, int, error) {
	where := ""
	args := []any{}

	if filter.Status != "" {
		where = ` WHERE status=$1`
		args = append(args, filter.Status)
	}
	if filter.Ministry != "" {
		if where == "" {
			where = ` WHERE ministry=$1`
		} else {
			where += ` AND ministry=$2`
		}
		args = append(args, filter.Ministry)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ministry_requests`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + ministryRequestColumns + ` FROM ministry_requests` + where + ` ORDER BY created_at DESC`
	switch len(args) {
	case 0:
		query += ` LIMIT $1 OFFSET $2`
	case 1:
		query += ` LIMIT $2 OFFSET $3`
	case 2:
		query += ` LIMIT $3 OFFSET $4`
	}

	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.MinistryRequest
	for rows.Next() {
		var req domain.MinistryRequest
		if err := rows.Scan(
			&req.ID,
			&req.FirstName,
			&req.LastName,
			&req.Email,
			&req.Phone,
			&req.Address,
			&req.City,
			&req.State,
			&req.Ministry,
			&req.MinistryLabel,
			&req.Availability,
			&req.Skills,
			&req.Status,
			&req.DeclineReason,
			&req.ReviewedBy,
			&req.ReviewedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

type ministryMemberRepository struct {
	pool *pgxpool.Pool
}

// NewMinistryMemberRepository returns a Postgres-backed implementation.
func NewMinistryMemberRepository(pool *pgxpool.Pool) MinistryMemberRepository {
	return &ministryMemberRepository{pool: pool}
}

func (r *ministryMemberRepository) Create(ctx context.Context, member *domain.MinistryMember) error {
	const query = `
        INSERT INTO ministry_members
            (first_name, last_name, email, phone, address, city, state,
             ministry, ministry_label, availability, skills, approved_by, request_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.FirstName,
		member.LastName,
		member.Email,
		member.Phone,
		member.Address,
		member.City,
		member.State,
		member.Ministry,
		member.MinistryLabel,
		member.Availability,
		member.Skills,
		member.ApprovedBy,
		member.RequestID,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *ministryMemberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ministry_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ministryMemberRepository) List(ctx context.Context, ministry string, limit, offset int) ([]domain.MinistryMember, int, error) {
	where := ""
	args := []any{}
	if ministry != "" {
		where = ` WHERE ministry=$1`
		args = append(args, ministry)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ministry_members`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT id, first_name, last_name, email, phone, address, city, state,
               ministry, ministry_label, availability, skills, approved_by, request_id,
               created_at, updated_at
        FROM ministry_members` + where + ` ORDER BY created_at DESC`
	if ministry != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.MinistryMember
	for rows.Next() {
		var m domain.MinistryMember
		if err := rows.Scan(
			&m.ID,
			&m.FirstName,
			&m.LastName,
			&m.Email,
			&m.Phone,
			&m.Address,
			&m.City,
			&m.State,
			&m.Ministry,
			&m.MinistryLabel,
			&m.Availability,
			&m.Skills,
			&m.ApprovedBy,
			&m.RequestID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}
