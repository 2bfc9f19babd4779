package dto

import "github.com/google/uuid"

type ScoreBreakdownResponse struct {
	Distance    float64 `json:"distance"`
	Skill       float64 `json:"skill"`
	Rating      float64 `json:"rating"`
	Reliability float64 `json:"reliability"`
	Extra       float64 `json:"extra"`
	Total       float64 `json:"total"`
}

type WorkerCandidateResponse struct {
	WorkerID    uuid.UUID              `json:"worker_id"`
	Score       ScoreBreakdownResponse `json:"score"`
	DaysWorked  int                    `json:"days_worked"`
	IsCompliant bool                   `json:"is_compliant"`
}

type MatchingStatsResponse struct {
	TotalCandidates  int        `json:"total_candidates"`
	StrongCandidates int        `json:"strong_candidates"`
	MeanScore        float64    `json:"mean_score"`
	TopWorkerID      *uuid.UUID `json:"top_worker_id,omitempty"`
}

type BusinessMatchingResponse struct {
	JobID      uuid.UUID                 `json:"job_id"`
	Candidates []WorkerCandidateResponse `json:"candidates"`
	Stats      MatchingStatsResponse     `json:"stats"`
}

type JobWithScoreResponse struct {
	Job   JobResponse            `json:"job"`
	Score ScoreBreakdownResponse `json:"score"`
}
