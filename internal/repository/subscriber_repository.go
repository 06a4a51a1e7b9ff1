package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// SubscriberRepository defines persistence access for the mailing list.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.Subscriber) error
	Update(ctx context.Context, sub *domain.Subscriber) error
	Delete(ctx context.Context, id string) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	List(ctx context.Context, status domain.SubscriberStatus, limit, offset int) ([]domain.Subscriber, int, error)
	ListActiveEmails(ctx context.Context) ([]string, error)
}

type subscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{pool: pool}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	const query = `
        INSERT INTO subscribers (email, status, source)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		strings.ToLower(sub.Email),
		sub.Status,
		sub.Source,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *subscriberRepository) Update(ctx context.Context, sub *domain.Subscriber) error {
	const query = `
        UPDATE subscribers SET status=$1, unsubscribed_at=$2, unsubscribe_reason=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		sub.Status,
		sub.UnsubscribedAt,
		sub.UnsubscribeReason,
		sub.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *subscriberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const query = `
        SELECT id, email, status, source, unsubscribed_at, unsubscribe_reason, created_at, updated_at
        FROM subscribers WHERE email=$1`

	var sub domain.Subscriber
	if err := r.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Status,
		&sub.Source,
		&sub.UnsubscribedAt,
		&sub.UnsubscribeReason,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) List(ctx context.Context, status domain.SubscriberStatus, limit, offset int) ([]domain.Subscriber, int, error) {
	query := `
        SELECT id, email, status, source, unsubscribed_at, unsubscribe_reason, created_at, updated_at
        FROM subscribers`
	countQuery := `SELECT COUNT(*) FROM subscribers`
	args := []any{}

	if status != "" {
		query += ` WHERE status=$1`
		countQuery += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if status != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.Status,
			&sub.Source,
			&sub.UnsubscribedAt,
			&sub.UnsubscribeReason,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}
	return subs, total, rows.Err()
}

func (r *subscriberRepository) ListActiveEmails(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT email FROM subscribers WHERE status=$1 ORDER BY created_at`,
		domain.SubscriberStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
