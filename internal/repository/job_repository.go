package repository

import (
	"context"
	"errors"

	"balikerja/internal/database"
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListOpen(ctx context.Context) ([]job.Job, error)
	Insert(ctx context.Context, j job.Job) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, business_id, category, wage, status, shift_date, start_time, end_time, urgent, latitude, longitude, worker_count, created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC`,
		job.StatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Insert(ctx context.Context, j job.Job) error {
	var lat, lon *float64
	if j.Location != nil {
		lat = &j.Location.Latitude
		lon = &j.Location.Longitude
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		j.ID, j.BusinessID, j.Category, j.Wage, j.Status,
		j.ShiftDate, j.StartTime, j.EndTime, j.Urgent,
		lat, lon, j.WorkerCount, j.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// scanJob converts a jobs row into the typed entity. Nullable columns come
// back as pointers; a coordinate only materializes when both halves are set.
func scanJob(row database.Row) (job.Job, error) {
	var (
		j        job.Job
		status   string
		lat, lon *float64
	)
	if err := row.Scan(
		&j.ID, &j.BusinessID, &j.Category, &j.Wage, &status,
		&j.ShiftDate, &j.StartTime, &j.EndTime, &j.Urgent,
		&lat, &lon, &j.WorkerCount, &j.CreatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	if lat != nil && lon != nil {
		j.Location = &geo.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	return j, nil
}
