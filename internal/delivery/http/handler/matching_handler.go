package handler

import (
	"balikerja/internal/delivery/http/dto"
	"balikerja/internal/delivery/http/middleware"
	"balikerja/internal/domain/matching"
	"balikerja/internal/pkg/jwt"
	"balikerja/internal/pkg/response"
	"balikerja/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchingHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchingHandler(uc usecase.MatchingUsecase) *MatchingHandler {
	return &MatchingHandler{uc: uc}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:job_id/candidates", h.CandidatesForJob, middleware.RequireRole(jwt.RoleBusiness))
	r.Get("/feed", h.FeedForWorker, middleware.RequireRole(jwt.RoleWorker))
}

// CandidatesForJob ranks the worker pool for one posting. The optional
// lat/lng override the job's own location as the distance origin.
func (h *MatchingHandler) CandidatesForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	result, err := h.uc.ScoreWorkersForJob(c.Context(), jobID, coordinateFromQuery(c))
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, businessMatchingToResponse(result))
}

// FeedForWorker returns the caller's ranked open jobs. Postings at
// businesses where the caller hit the work-day cap never appear.
func (h *MatchingHandler) FeedForWorker(c fiber.Ctx) error {
	workerID, ok := callerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	feed, err := h.uc.ScoreJobsForWorker(c.Context(), workerID, coordinateFromQuery(c))
	if err != nil {
		return mapEngineError(err)
	}

	out := make([]dto.JobWithScoreResponse, 0, len(feed))
	for _, item := range feed {
		out = append(out, dto.JobWithScoreResponse{
			Job:   jobToResponse(item.Job),
			Score: scoreToResponse(item.Score),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func scoreToResponse(s matching.ScoreBreakdown) dto.ScoreBreakdownResponse {
	return dto.ScoreBreakdownResponse{
		Distance:    s.Distance,
		Skill:       s.Skill,
		Rating:      s.Rating,
		Reliability: s.Reliability,
		Extra:       s.Extra,
		Total:       s.Total,
	}
}

func businessMatchingToResponse(r usecase.BusinessMatchingResult) dto.BusinessMatchingResponse {
	candidates := make([]dto.WorkerCandidateResponse, 0, len(r.Candidates))
	for _, cand := range r.Candidates {
		candidates = append(candidates, dto.WorkerCandidateResponse{
			WorkerID:    cand.WorkerID,
			Score:       scoreToResponse(cand.Score),
			DaysWorked:  cand.DaysWorked,
			IsCompliant: cand.IsCompliant,
		})
	}
	return dto.BusinessMatchingResponse{
		JobID:      r.JobID,
		Candidates: candidates,
		Stats: dto.MatchingStatsResponse{
			TotalCandidates:  r.Stats.TotalCandidates,
			StrongCandidates: r.Stats.StrongCandidates,
			MeanScore:        r.Stats.MeanScore,
			TopWorkerID:      r.Stats.TopWorkerID,
		},
	}
}
