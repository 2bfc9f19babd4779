package usecase

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"balikerja/internal/domain/application"
	"balikerja/internal/domain/compliance"
	"balikerja/internal/domain/geo"
	"balikerja/internal/domain/job"
	"balikerja/internal/domain/matching"
	"balikerja/internal/domain/worker"
	"balikerja/internal/repository"

	"github.com/google/uuid"
)

// strongScoreThreshold marks a candidate worth calling out in the stats.
const strongScoreThreshold = 70.0

// parallelScoringThreshold is the pool size above which scoring fans out
// across goroutines. Scoring is pure, so only the final sort needs ordering.
const parallelScoringThreshold = 64

type WorkerCandidate struct {
	WorkerID   uuid.UUID
	Score      matching.ScoreBreakdown
	DaysWorked int
	// IsCompliant is informational in the business direction: a business
	// sees the warning but the candidate stays in the list. Only the
	// worker direction filters on it.
	IsCompliant bool
}

type MatchingStats struct {
	TotalCandidates  int
	StrongCandidates int
	MeanScore        float64
	TopWorkerID      *uuid.UUID
}

type BusinessMatchingResult struct {
	JobID      uuid.UUID
	Candidates []WorkerCandidate
	Stats      MatchingStats
}

type JobWithScore struct {
	Job   job.Job
	Score matching.ScoreBreakdown
}

type MatchingUsecase interface {
	ScoreWorkersForJob(ctx context.Context, jobID uuid.UUID, businessLocation *geo.Coordinate) (BusinessMatchingResult, error)
	ScoreJobsForWorker(ctx context.Context, workerID uuid.UUID, workerLocation *geo.Coordinate) ([]JobWithScore, error)
}

type Matching struct {
	jobs         repository.JobRepository
	workers      repository.WorkerRepository
	applications repository.ApplicationRepository

	cache    MatchCache
	cacheTTL time.Duration

	now func() time.Time
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	workers repository.WorkerRepository,
	applications repository.ApplicationRepository,
	cache MatchCache,
	cacheTTL time.Duration,
) *Matching {
	return &Matching{
		jobs:         jobs,
		workers:      workers,
		applications: applications,
		cache:        cache,
		cacheTTL:     cacheTTL,
		now:          time.Now,
	}
}

func (u *Matching) ScoreWorkersForJob(ctx context.Context, jobID uuid.UUID, businessLocation *geo.Coordinate) (BusinessMatchingResult, error) {
	if jobID == uuid.Nil {
		return BusinessMatchingResult{}, ErrNotFound
	}

	cacheKey := workersForJobCacheKey(jobID, businessLocation)
	if u.cache != nil {
		var cached BusinessMatchingResult
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return BusinessMatchingResult{}, ErrNotFound
		}
		return BusinessMatchingResult{}, fetchErr(err)
	}

	loc := businessLocation
	if loc == nil {
		loc = j.Location
	}

	pool, err := u.workers.ListAll(ctx)
	if err != nil {
		return BusinessMatchingResult{}, fetchErr(err)
	}

	history, err := u.applications.History(ctx, repository.HistoryFilter{
		BusinessID: &j.BusinessID,
		Since:      u.historySince(),
	})
	if err != nil {
		return BusinessMatchingResult{}, fetchErr(err)
	}
	historyByWorker := groupByWorker(history)

	eligible := make([]worker.Profile, 0, len(pool))
	for _, w := range pool {
		if matching.EligibleWorker(w, j, loc) {
			eligible = append(eligible, w)
		}
	}

	scores := u.scoreWorkerPool(eligible, j, loc)

	asOf := u.now()
	candidates := make([]WorkerCandidate, 0, len(eligible))
	for i, w := range eligible {
		days := compliance.DaysWorkedForBusiness(historyByWorker[w.ID], j.BusinessID, asOf)
		candidates = append(candidates, WorkerCandidate{
			WorkerID:    w.ID,
			Score:       scores[i],
			DaysWorked:  days,
			IsCompliant: days <= compliance.MaxDaysPer30,
		})
	}

	// Descending by total score; equal totals order by worker id so the
	// ranking is deterministic regardless of fetch order.
	sort.SliceStable(candidates, func(i, k int) bool {
		if candidates[i].Score.Total != candidates[k].Score.Total {
			return candidates[i].Score.Total > candidates[k].Score.Total
		}
		return candidates[i].WorkerID.String() < candidates[k].WorkerID.String()
	})

	result := BusinessMatchingResult{
		JobID:      j.ID,
		Candidates: candidates,
		Stats:      buildStats(candidates),
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL)
	}
	return result, nil
}

func (u *Matching) ScoreJobsForWorker(ctx context.Context, workerID uuid.UUID, workerLocation *geo.Coordinate) ([]JobWithScore, error) {
	if workerID == uuid.Nil {
		return nil, ErrNotFound
	}

	cacheKey := jobsForWorkerCacheKey(workerID, workerLocation)
	if u.cache != nil {
		cached := make([]JobWithScore, 0)
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	w, err := u.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fetchErr(err)
	}

	loc := workerLocation
	if loc == nil {
		loc = w.Location
	}

	history, err := u.applications.History(ctx, repository.HistoryFilter{
		WorkerID: &w.ID,
		Since:    u.historySince(),
	})
	if err != nil {
		return nil, fetchErr(err)
	}

	openJobs, err := u.jobs.ListOpen(ctx)
	if err != nil {
		return nil, fetchErr(err)
	}

	asOf := u.now()
	out := make([]JobWithScore, 0, len(openJobs))
	for _, j := range openJobs {
		// Hard filter, asymmetric with the business direction: a worker
		// over the 20-day cap is legally blocked from applying, so the
		// job disappears from the feed instead of carrying a warning.
		if !compliance.IsCompliant(history, j.BusinessID, asOf) {
			continue
		}
		out = append(out, JobWithScore{Job: j, Score: matching.ScoreJob(j, w, loc)})
	}

	sort.SliceStable(out, func(i, k int) bool {
		if out[i].Score.Total != out[k].Score.Total {
			return out[i].Score.Total > out[k].Score.Total
		}
		return out[i].Job.ID.String() < out[k].Job.ID.String()
	})

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL)
	}
	return out, nil
}

// historySince fetches double the compliance window because created_at lags
// started_at for shifts accepted early and started later.
func (u *Matching) historySince() time.Time {
	return u.now().AddDate(0, 0, -2*compliance.WindowDays)
}

// scoreWorkerPool keeps scores index-aligned with the input pool. Large
// pools fan out across a bounded set of goroutines.
func (u *Matching) scoreWorkerPool(pool []worker.Profile, j job.Job, loc *geo.Coordinate) []matching.ScoreBreakdown {
	scores := make([]matching.ScoreBreakdown, len(pool))

	if len(pool) < parallelScoringThreshold {
		for i, w := range pool {
			scores[i] = matching.ScoreWorker(w, j, loc)
		}
		return scores
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	for i, w := range pool {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, w worker.Profile) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i] = matching.ScoreWorker(w, j, loc)
		}(i, w)
	}
	wg.Wait()
	return scores
}

func groupByWorker(history []application.Application) map[uuid.UUID][]application.Application {
	out := make(map[uuid.UUID][]application.Application, len(history))
	for _, a := range history {
		out[a.WorkerID] = append(out[a.WorkerID], a)
	}
	return out
}

func buildStats(candidates []WorkerCandidate) MatchingStats {
	stats := MatchingStats{TotalCandidates: len(candidates)}
	if len(candidates) == 0 {
		return stats
	}

	var sum float64
	for _, c := range candidates {
		sum += c.Score.Total
		if c.Score.Total >= strongScoreThreshold {
			stats.StrongCandidates++
		}
	}
	stats.MeanScore = sum / float64(len(candidates))

	top := candidates[0].WorkerID
	stats.TopWorkerID = &top
	return stats
}
