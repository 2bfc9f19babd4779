package worker

import (
	"time"

	"balikerja/internal/domain/geo"

	"github.com/google/uuid"
)

type Profile struct {
	ID         uuid.UUID
	Skills     []string
	Rating     float64
	NoShowRate float64
	// Available is fail-open: nil means the worker has not toggled the flag
	// and is treated as available. Only an explicit false blocks matching.
	Available  *bool
	Location   *geo.Coordinate
	LastActive *time.Time
}

// HasSkill reports whether the profile carries the exact category tag.
// Matching is exact, no partial or fuzzy credit.
func (p Profile) HasSkill(category string) bool {
	for _, s := range p.Skills {
		if s == category {
			return true
		}
	}
	return false
}

// IsAvailable treats an unset flag as available.
func (p Profile) IsAvailable() bool {
	return p.Available == nil || *p.Available
}
