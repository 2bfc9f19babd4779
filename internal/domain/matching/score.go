package matching

// ScoreBreakdown is the per-component view of a match score. Components are
// computed fresh on every call and always sum to Total; nothing here is ever
// persisted as a source of truth.
type ScoreBreakdown struct {
	Distance    float64
	Skill       float64
	Rating      float64
	Reliability float64
	// Extra holds the direction-specific component: availability when
	// scoring a worker for a business, urgency when scoring a job for a
	// worker.
	Extra float64
	Total float64
}

type distanceBucket struct {
	maxKm  float64
	points float64
}

// bucketScore walks the buckets nearest-first. The first boundary is strict
// (<2km is the top bucket, exactly 2km falls through) and every later
// boundary is inclusive, so a tie at a boundary lands in the higher-scoring
// bucket. A NaN distance fails every comparison and scores 0, which is how
// an unknown coordinate is meant to land.
func bucketScore(distanceKm float64, buckets []distanceBucket) float64 {
	for i, b := range buckets {
		if i == 0 {
			if distanceKm < b.maxKm {
				return b.points
			}
			continue
		}
		if distanceKm <= b.maxKm {
			return b.points
		}
	}
	return 0
}
