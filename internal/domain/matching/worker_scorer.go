package matching

import (
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/domain/worker"
)

// Business-direction weights. Distance 25, skill 30, rating 20,
// reliability 15, availability 10; always sums to 100.
const (
	workerDistanceWeight     = 25.0
	workerSkillWeight        = 30.0
	workerRatingWeight       = 20.0
	workerReliabilityWeight  = 15.0
	workerAvailabilityWeight = 10.0
)

var workerDistanceBuckets = []distanceBucket{
	{maxKm: 2, points: 25},
	{maxKm: 5, points: 20},
	{maxKm: 10, points: 15},
	{maxKm: 20, points: 10},
}

// ScoreWorker scores a worker candidate against a job from the business's
// perspective. Pure function of its inputs; businessLocation may be nil,
// which zeroes the distance component rather than treating the worker as
// nearby.
func ScoreWorker(w worker.Profile, j job.Job, businessLocation *geo.Coordinate) ScoreBreakdown {
	var b ScoreBreakdown

	if businessLocation != nil && w.Location != nil {
		d := geo.DistanceKm(*businessLocation, *w.Location)
		b.Distance = bucketScore(d, workerDistanceBuckets)
	}

	if w.HasSkill(j.Category) {
		b.Skill = workerSkillWeight
	}

	b.Rating = w.Rating / 5.0 * workerRatingWeight
	b.Reliability = (1 - w.NoShowRate) * workerReliabilityWeight

	if w.IsAvailable() {
		b.Extra = workerAvailabilityWeight
	}

	b.Total = b.Distance + b.Skill + b.Rating + b.Reliability + b.Extra
	return b
}
