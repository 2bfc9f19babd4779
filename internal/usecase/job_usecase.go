package usecase

import (
	"context"
	"fmt"
	"time"

	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/repository"

	"github.com/google/uuid"
)

const (
	minWorkerCount = 1
	maxWorkerCount = 10
)

type CreateJobInput struct {
	BusinessID  uuid.UUID
	Category    string
	Wage        float64
	ShiftDate   time.Time
	StartTime   time.Time
	EndTime     time.Time
	Urgent      bool
	Location    *geo.Coordinate
	WorkerCount int
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (job.Job, error)
}

type JobWorkflow struct {
	jobs repository.JobRepository

	now func() time.Time
}

func NewJobWorkflow(jobs repository.JobRepository) *JobWorkflow {
	return &JobWorkflow{jobs: jobs, now: time.Now}
}

// CreateJob validates a posting before anything is persisted. Every rule
// failure wraps ErrValidation so the delivery layer maps them uniformly.
func (u *JobWorkflow) CreateJob(ctx context.Context, in CreateJobInput) (job.Job, error) {
	if in.BusinessID == uuid.Nil {
		return job.Job{}, fmt.Errorf("%w: business id required", ErrValidation)
	}
	if in.Category == "" {
		return job.Job{}, fmt.Errorf("%w: category required", ErrValidation)
	}
	if in.Wage <= 0 {
		return job.Job{}, fmt.Errorf("%w: wage must be positive", ErrValidation)
	}
	if in.WorkerCount < minWorkerCount || in.WorkerCount > maxWorkerCount {
		return job.Job{}, fmt.Errorf("%w: worker count must be between %d and %d", ErrValidation, minWorkerCount, maxWorkerCount)
	}
	if !in.EndTime.After(in.StartTime) {
		return job.Job{}, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}

	today := u.now().UTC().Truncate(24 * time.Hour)
	if in.ShiftDate.Before(today) {
		return job.Job{}, fmt.Errorf("%w: shift date must not be in the past", ErrValidation)
	}

	wage := in.Wage
	j := job.Job{
		ID:          uuid.New(),
		BusinessID:  in.BusinessID,
		Category:    in.Category,
		Wage:        &wage,
		Status:      job.StatusOpen,
		ShiftDate:   in.ShiftDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Urgent:      in.Urgent,
		Location:    in.Location,
		WorkerCount: in.WorkerCount,
		CreatedAt:   u.now().UTC(),
	}

	if err := u.jobs.Insert(ctx, j); err != nil {
		return job.Job{}, fetchErr(err)
	}
	return j, nil
}
