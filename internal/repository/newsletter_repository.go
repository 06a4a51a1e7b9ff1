package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// NewsletterRepository is the delivery ledger: one campaign record plus one
// status row per recipient. AppendRecipient is safe for concurrent use by
// the dispatcher's fan-out.
type NewsletterRepository interface {
	Create(ctx context.Context, n *domain.Newsletter) error
	AppendRecipient(ctx context.Context, newsletterID string, rec domain.NewsletterRecipient) error
	Finalize(ctx context.Context, id string, successCount, failureCount int, completedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Newsletter, error)
	List(ctx context.Context, limit, offset int) ([]domain.Newsletter, int, error)
}

type newsletterRepository struct {
	pool *pgxpool.Pool
}

// NewNewsletterRepository returns a Postgres-backed implementation.
func NewNewsletterRepository(pool *pgxpool.Pool) NewsletterRepository {
	return &newsletterRepository{pool: pool}
}

func (r *newsletterRepository) Create(ctx context.Context, n *domain.Newsletter) error {
	const query = `
        INSERT INTO newsletters (id, subject, body, sent_by, recipient_count, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		n.ID,
		n.Subject,
		n.Body,
		n.SentBy,
		n.RecipientCount,
		n.Status,
	).Scan(&n.CreatedAt)
}

func (r *newsletterRepository) AppendRecipient(ctx context.Context, newsletterID string, rec domain.NewsletterRecipient) error {
	const query = `
        INSERT INTO newsletter_recipients (newsletter_id, email, status, sent_at, error)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		newsletterID,
		rec.Email,
		rec.Status,
		rec.SentAt,
		rec.Error,
	)
	return err
}

// Finalize transitions sending -> completed. The conditional WHERE guards
// against double-finalization of a retried dispatch.
func (r *newsletterRepository) Finalize(ctx context.Context, id string, successCount, failureCount int, completedAt time.Time) error {
	const query = `
        UPDATE newsletters
        SET status=$1, success_count=$2, failure_count=$3, completed_at=$4
        WHERE id=$5 AND status=$6`

	cmd, err := r.pool.Exec(ctx, query,
		domain.NewsletterStatusCompleted,
		successCount,
		failureCount,
		completedAt,
		id,
		domain.NewsletterStatusSending,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *newsletterRepository) GetByID(ctx context.Context, id string) (*domain.Newsletter, error) {
	const query = `
        SELECT id, subject, body, sent_by, recipient_count, success_count, failure_count,
               status, created_at, completed_at
        FROM newsletters WHERE id=$1`

	var n domain.Newsletter
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.Subject,
		&n.Body,
		&n.SentBy,
		&n.RecipientCount,
		&n.SuccessCount,
		&n.FailureCount,
		&n.Status,
		&n.CreatedAt,
		&n.CompletedAt,
	); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT email, status, sent_at, error FROM newsletter_recipients WHERE newsletter_id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.NewsletterRecipient
		if err := rows.Scan(&rec.Email, &rec.Status, &rec.SentAt, &rec.Error); err != nil {
			return nil, err
		}
		n.Recipients = append(n.Recipients, rec)
	}
	return &n, rows.Err()
}

// List returns campaign records without their recipient rows, newest first.
func (r *newsletterRepository) List(ctx context.Context, limit, offset int) ([]domain.Newsletter, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletters`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT id, subject, body, sent_by, recipient_count, success_count, failure_count,
               status, created_at, completed_at
        FROM newsletters
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var newsletters []domain.Newsletter
	for rows.Next() {
		var n domain.Newsletter
		if err := rows.Scan(
			&n.ID,
			&n.Subject,
			&n.Body,
			&n.SentBy,
			&n.RecipientCount,
			&n.SuccessCount,
			&n.FailureCount,
			&n.Status,
			&n.CreatedAt,
			&n.CompletedAt,
		); err != nil {
			return nil, 0, err
		}
		newsletters = append(newsletters, n)
	}
	return newsletters, total, rows.Err()
}
