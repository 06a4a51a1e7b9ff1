package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// MessageRepository defines persistence access for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) error
	SaveReply(ctx context.Context, id, replyBody, repliedBy string, repliedAt time.Time) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]domain.Message, int, error)
}

// MessageFilter narrows message listings.
type MessageFilter struct {
	Status   domain.MessageStatus
	Category string
	Limit    int
	Offset   int
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

const messageColumns = `id, name, email, phone, subject, category, body, status,
        reply_body, replied_by, replied_at, created_at, updated_at`

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (name, email, phone, subject, category, body, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Category,
		msg.Body,
		msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE messages SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SaveReply stores the admin's reply and marks the message replied in one
// statement.
func (r *messageRepository) SaveReply(ctx context.Context, id, replyBody, repliedBy string, repliedAt time.Time) error {
	const query = `
        UPDATE messages
        SET reply_body=$1, replied_by=$2, replied_at=$3, status=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query, replyBody, repliedBy, repliedAt, domain.MessageStatusReplied, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	const query = `SELECT ` + messageColumns + ` FROM messages WHERE id=$1`

	var msg domain.Message
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&msg.Category,
		&msg.Body,
		&msg.Status,
		&msg.ReplyBody,
		&msg.RepliedBy,
		&msg.RepliedAt,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context, filter MessageFilter) ([]domain.Message, int, error) {
	where := ""
	args := []any{}

	if filter.Status != "" {
		where = ` WHERE status=$1`
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		if where == "" {
			where = ` WHERE category=$1`
		} else {
			where += ` AND category=$2`
		}
		args = append(args, filter.Category)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + messageColumns + ` FROM messages` + where + ` ORDER BY created_at DESC`
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

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Category,
			&msg.Body,
			&msg.Status,
			&msg.ReplyBody,
			&msg.RepliedBy,
			&msg.RepliedAt,
			&msg.CreatedAt,
			&msg.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}
	return messages, total, rows.Err()
}
