package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// SermonRepository defines persistence access for sermons.
type SermonRepository interface {
	Create(ctx context.Context, sermon *domain.Sermon) error
	Update(ctx context.Context, sermon *domain.Sermon) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Sermon, error)
	List(ctx context.Context, filter SermonFilter) ([]domain.Sermon, int, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementDownloads(ctx context.Context, id string) error
}

// SermonFilter narrows sermon listings.
type SermonFilter struct {
	Category      string
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int
	Offset        int
}

type sermonRepository struct {
	pool *pgxpool.Pool
}

// NewSermonRepository returns a Postgres-backed implementation.
func NewSermonRepository(pool *pgxpool.Pool) SermonRepository {
	return &sermonRepository{pool: pool}
}

const sermonColumns = `id, title, preacher, date, description, scripture, category, sermon_type,
        video_url, youtube_url, audio_url, thumbnail_url, duration, views, downloads,
        published, featured, created_by, created_at, updated_at`

func (r *sermonRepository) Create(ctx context.Context, sermon *domain.Sermon) error {
	const query = `
        INSERT INTO sermons
            (title, preacher, date, description, scripture, category, sermon_type,
             video_url, youtube_url, audio_url, thumbnail_url, duration,
             published, featured, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		sermon.Title,
		sermon.Preacher,
		sermon.Date,
		sermon.Description,
		sermon.Scripture,
		sermon.Category,
		sermon.SermonType,
		sermon.VideoURL,
		sermon.YoutubeURL,
		sermon.AudioURL,
		sermon.ThumbnailURL,
		sermon.Duration,
		sermon.Published,
		sermon.Featured,
		sermon.CreatedBy,
	).Scan(&sermon.ID, &sermon.CreatedAt, &sermon.UpdatedAt)
}

func (r *sermonRepository) Update(ctx context.Context, sermon *domain.Sermon) error {
	const query = `
        UPDATE sermons
        SET title=$1, preacher=$2, date=$3, description=$4, scripture=$5, category=$6,
            sermon_type=$7, video_url=$8, youtube_url=$9, audio_url=$10, thumbnail_url=$11,
            duration=$12, published=$13, featured=$14, updated_at=NOW()
        WHERE id=$15`

	cmd, err := r.pool.Exec(ctx, query,
		sermon.Title,
		sermon.Preacher,
		sermon.Date,
		sermon.Description,
		sermon.Scripture,
		sermon.Category,
		sermon.SermonType,
		sermon.VideoURL,
		sermon.YoutubeURL,
		sermon.AudioURL,
		sermon.ThumbnailURL,
		sermon.Duration,
		sermon.Published,
		sermon.Featured,
		sermon.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sermonRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sermons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sermonRepository) GetByID(ctx context.Context, id string) (*domain.Sermon, error) {
	const query = `SELECT ` + sermonColumns + ` FROM sermons WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *sermonRepository) List(ctx context.Context, filter SermonFilter) ([]domain.Sermon, int, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += ` AND category=$1`
	}
	if filter.PublishedOnly {
		where += ` AND published=TRUE`
	}
	if filter.FeaturedOnly {
		where += ` AND featured=TRUE`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sermons`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + sermonColumns + ` FROM sermons` + where + ` ORDER BY date DESC`
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

	var sermons []domain.Sermon
	for rows.Next() {
		sermon, err := r.scanOne(rows)
		if err != nil {
			return nil, 0, err
		}
		sermons = append(sermons, *sermon)
	}
	return sermons, total, rows.Err()
}

func (r *sermonRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE sermons SET views=views+1 WHERE id=$1`, id)
	return err
}

func (r *sermonRepository) IncrementDownloads(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE sermons SET downloads=downloads+1 WHERE id=$1`, id)
	return err
}

func (r *sermonRepository) scanOne(row pgx.Row) (*domain.Sermon, error) {
	var sermon domain.Sermon
	if err := row.Scan(
		&sermon.ID,
		&sermon.Title,
		&sermon.Preacher,
		&sermon.Date,
		&sermon.Description,
		&sermon.Scripture,
		&sermon.Category,
		&sermon.SermonType,
		&sermon.VideoURL,
		&sermon.YoutubeURL,
		&sermon.AudioURL,
		&sermon.ThumbnailURL,
		&sermon.Duration,
		&sermon.Views,
		&sermon.Downloads,
		&sermon.Published,
		&sermon.Featured,
		&sermon.CreatedBy,
		&sermon.CreatedAt,
		&sermon.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sermon, nil
}
