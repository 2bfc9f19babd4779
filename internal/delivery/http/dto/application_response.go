package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"job_id"`
	WorkerID    uuid.UUID  `json:"worker_id"`
	BusinessID  uuid.UUID  `json:"business_id"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PaymentSplitResponse struct {
	ApplicationID      uuid.UUID `json:"application_id"`
	CompletedAt        time.Time `json:"completed_at"`
	HoursWorked        float64   `json:"hours_worked"`
	GrossAmount        int64     `json:"gross_amount"`
	PlatformCommission int64     `json:"platform_commission"`
	NetWorkerAmount    int64     `json:"net_worker_amount"`
}
