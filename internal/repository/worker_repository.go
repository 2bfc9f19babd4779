package repository

import (
	"context"
	"errors"

	"balikerja/internal/database"
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrWorkerNotFound = errors.New("worker not found")

type WorkerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (worker.Profile, error)
	ListAll(ctx context.Context) ([]worker.Profile, error)
}

type PostgresWorkerRepository struct {
	db database.DB
}

func NewPostgresWorkerRepository(db database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

const workerColumns = `id, skills, COALESCE(rating, 0), COALESCE(no_show_rate, 0), available, latitude, longitude, last_active`

func (r *PostgresWorkerRepository) GetByID(ctx context.Context, id uuid.UUID) (worker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+workerColumns+` FROM worker_profiles WHERE id = $1`, id)

	p, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Profile{}, ErrWorkerNotFound
		}
		return worker.Profile{}, err
	}
	return p, nil
}

func (r *PostgresWorkerRepository) ListAll(ctx context.Context) ([]worker.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+workerColumns+` FROM worker_profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]worker.Profile, 0)
	for rows.Next() {
		p, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanWorker(row database.Row) (worker.Profile, error) {
	var (
		p        worker.Profile
		lat, lon *float64
	)
	if err := row.Scan(
		&p.ID, &p.Skills, &p.Rating, &p.NoShowRate,
		&p.Available, &lat, &lon, &p.LastActive,
	); err != nil {
		return worker.Profile{}, err
	}
	if lat != nil && lon != nil {
		p.Location = &geo.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	return p, nil
}
