package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInterview  Status = "interview"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusOngoing    Status = "ongoing"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRated      Status = "rated"
	StatusCancelled  Status = "cancelled"
)

// WorkPerformed reports whether the status denotes actual labor, which is
// what counts toward the PP 35/2021 day total. Pending, rejected and
// cancelled applications never count.
func (s Status) WorkPerformed() bool {
	return s == StatusCompleted || s == StatusOngoing || s == StatusInProgress
}

func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusRated
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusInterview, StatusAccepted, StatusRejected},
	StatusInterview:  {StatusAccepted, StatusRejected},
	StatusAccepted:   {StatusOngoing, StatusCancelled},
	StatusOngoing:    {StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusRated},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	WorkerID    uuid.UUID
	// BusinessID is denormalized from the job so compliance queries never
	// need a join against the jobs table.
	BusinessID  uuid.UUID
	Status      Status
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}
