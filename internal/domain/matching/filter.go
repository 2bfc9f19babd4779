package matching

import (
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/domain/worker"
)

const (
	minFilterRating = 3.0
	maxFilterKm     = 20.0
)

// EligibleWorker applies the pre-scoring eligibility rules for the
// business-finds-workers direction. All four predicates must hold:
// exact skill match, rating at least 3.0, within 20km when both coordinates
// are known (unknown distance passes, it does not fail), and availability
// not explicitly switched off. A worker failing any rule is never scored.
func EligibleWorker(w worker.Profile, j job.Job, businessLocation *geo.Coordinate) bool {
	if !w.HasSkill(j.Category) {
		return false
	}
	if w.Rating < minFilterRating {
		return false
	}
	if businessLocation != nil && w.Location != nil {
		if geo.DistanceKm(*businessLocation, *w.Location) > maxFilterKm {
			return false
		}
	}
	return w.IsAvailable()
}
