package repository

import (
	"context"
	"errors"
	"time"

	"balikerja/internal/database"
	"balikerja/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateKey surfaces the (job_id, worker_id) uniqueness constraint.
	// The constraint is the authoritative duplicate guard; the workflow's
	// own history check is best-effort and can lose a race.
	ErrDuplicateKey = errors.New("duplicate key")
)

// HistoryFilter narrows application history fetches. Nil fields are skipped.
type HistoryFilter struct {
	WorkerID   *uuid.UUID
	BusinessID *uuid.UUID
	Since      time.Time
}

type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	History(ctx context.Context, f HistoryFilter) ([]application.Application, error)
	Insert(ctx context.Context, a application.Application) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, startedAt, completedAt *time.Time) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, worker_id, business_id, status, started_at, completed_at, created_at`

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)

	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) History(ctx context.Context, f HistoryFilter) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE created_at >= $1`
	args := []any{f.Since}

	if f.WorkerID != nil {
		args = append(args, *f.WorkerID)
		query += ` AND worker_id = $2`
	}
	if f.BusinessID != nil {
		args = append(args, *f.BusinessID)
		if f.WorkerID != nil {
			query += ` AND business_id = $3`
		} else {
			query += ` AND business_id = $2`
		}
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.JobID, a.WorkerID, a.BusinessID, a.Status,
		a.StartedAt, a.CompletedAt, a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, startedAt, completedAt *time.Time) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET status = $2,
		     started_at = COALESCE($3, started_at),
		     completed_at = COALESCE($4, completed_at)
		 WHERE id = $1`,
		id, status, startedAt, completedAt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	if err := row.Scan(
		&a.ID, &a.JobID, &a.WorkerID, &a.BusinessID, &status,
		&a.StartedAt, &a.CompletedAt, &a.CreatedAt,
	); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
