package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// EventRepository defines persistence access for church events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, int, error)
}

// EventFilter narrows event listings.
type EventFilter struct {
	Category      string
	PublishedOnly bool
	UpcomingOnly  bool
	Limit         int
	Offset        int
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, title, description, start_date, end_date, start_time, end_time,
        location, address, category, image_url, registration_required, registration_link,
        max_attendees, current_attendees, published, featured, created_by, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events
            (title, description, start_date, end_date, start_time, end_time,
             location, address, category, image_url, registration_required,
             registration_link, max_attendees, published, featured, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.Address,
		event.Category,
		event.ImageURL,
		event.RegistrationRequired,
		event.RegistrationLink,
		event.MaxAttendees,
		event.Published,
		event.Featured,
		event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events
        SET title=$1, description=$2, start_date=$3, end_date=$4, start_time=$5, end_time=$6,
            location=$7, address=$8, category=$9, image_url=$10, registration_required=$11,
            registration_link=$12, max_attendees=$13, current_attendees=$14,
            published=$15, featured=$16, updated_at=NOW()
        WHERE id=$17`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.Address,
		event.Category,
		event.ImageURL,
		event.RegistrationRequired,
		event.RegistrationLink,
		event.MaxAttendees,
		event.CurrentAttendees,
		event.Published,
		event.Featured,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]domain.Event, int, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += ` AND category=$1`
	}
	if filter.PublishedOnly {
		where += ` AND published=TRUE`
	}
	if filter.UpcomingOnly {
		where += ` AND start_date >= NOW()`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY start_date ASC`
	if filter.Category != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := r.scanOne(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *event)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) scanOne(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.Address,
		&event.Category,
		&event.ImageURL,
		&event.RegistrationRequired,
		&event.RegistrationLink,
		&event.MaxAttendees,
		&event.CurrentAttendees,
		&event.Published,
		&event.Featured,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}
