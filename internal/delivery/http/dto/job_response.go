package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"business_id"`
	Category    string     `json:"category"`
	Wage        *float64   `json:"wage,omitempty"`
	Status      string     `json:"status"`
	ShiftDate   time.Time  `json:"shift_date"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Urgent      bool       `json:"urgent"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	WorkerCount int        `json:"worker_count"`
	CreatedAt   time.Time  `json:"created_at"`
}
