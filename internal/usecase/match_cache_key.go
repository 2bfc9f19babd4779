package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"balikerja/internal/domain/geo"

	"github.com/google/uuid"
)

type matchCacheKeyInput struct {
	Direction string   `json:"direction"`
	SubjectID string   `json:"subject_id"`
	Location  *geo.Coordinate `json:"location,omitempty"`
}

func workersForJobCacheKey(jobID uuid.UUID, loc *geo.Coordinate) string {
	return matchCacheKey(matchCacheKeyInput{Direction: "workers_for_job", SubjectID: jobID.String(), Location: loc})
}

func jobsForWorkerCacheKey(workerID uuid.UUID, loc *geo.Coordinate) string {
	return matchCacheKey(matchCacheKeyInput{Direction: "jobs_for_worker", SubjectID: workerID.String(), Location: loc})
}

func matchCacheKey(in matchCacheKeyInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:" + in.Direction + ":" + hex.EncodeToString(sum[:])
}
