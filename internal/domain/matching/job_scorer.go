package matching

import (
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/domain/worker"
)

// Worker-direction weights. Distance 30, skill 25, rating 20, reliability 15,
// urgency 10; always sums to 100. Deliberately a separate table from the
// business direction: the two scorers are not symmetric and must never share
// a weight table.
const (
	jobDistanceWeight    = 30.0
	jobSkillWeight       = 25.0
	jobRatingWeight      = 20.0
	jobReliabilityWeight = 15.0
	jobUrgencyWeight     = 10.0
)

var jobDistanceBuckets = []distanceBucket{
	{maxKm: 2, points: 30},
	{maxKm: 5, points: 25},
	{maxKm: 10, points: 15},
	{maxKm: 20, points: 5},
	{maxKm: 30, points: 2},
}

// ScoreJob scores a job against a worker profile from the worker's
// perspective. Pure function of its inputs; workerLocation may be nil.
func ScoreJob(j job.Job, w worker.Profile, workerLocation *geo.Coordinate) ScoreBreakdown {
	var b ScoreBreakdown

	if workerLocation != nil && j.Location != nil {
		d := geo.DistanceKm(*workerLocation, *j.Location)
		b.Distance = bucketScore(d, jobDistanceBuckets)
	}

	if w.HasSkill(j.Category) {
		b.Skill = jobSkillWeight
	}

	b.Rating = w.Rating / 5.0 * jobRatingWeight
	b.Reliability = (1 - w.NoShowRate) * jobReliabilityWeight

	if j.Urgent {
		b.Extra = jobUrgencyWeight
	}

	b.Total = b.Distance + b.Skill + b.Rating + b.Reliability + b.Extra
	return b
}
