package job

import (
	"time"

	"balikerja/internal/domain/geo"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusFilled    Status = "filled"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Terminal reports whether the job can no longer change status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AcceptsApplications reports whether workers may still apply. A filled job
// still accepts applications so businesses can keep a backup bench.
func (s Status) AcceptsApplications() bool {
	return s == StatusOpen || s == StatusFilled
}

type Job struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Category    string
	Wage        *float64
	Status      Status
	ShiftDate   time.Time
	StartTime   time.Time
	EndTime     time.Time
	Urgent      bool
	Location    *geo.Coordinate
	WorkerCount int
	CreatedAt   time.Time
}
