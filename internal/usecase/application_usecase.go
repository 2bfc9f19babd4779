package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"balikerja/internal/domain/application"
	"balikerja/internal/domain/compliance"
	"balikerja/internal/repository"

	"github.com/google/uuid"
)

// commissionRate is the platform's cut of the gross shift wage. The
// commission is floored once; no other rounding touches the split.
const commissionRate = 0.06

// Notifier pushes application lifecycle events to connected clients.
// Delivery is best-effort; the workflow never fails on a notify.
type Notifier interface {
	ApplicationUpdated(applicationID, jobID uuid.UUID, status application.Status)
}

// PaymentSplit is the completion payout in integer currency minor units.
// A nil wage yields an all-zero split; that is policy, not an accident.
type PaymentSplit struct {
	ApplicationID      uuid.UUID
	CompletedAt        time.Time
	HoursWorked        float64
	GrossAmount        int64
	PlatformCommission int64
	NetWorkerAmount    int64
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, workerID, jobID uuid.UUID) (application.Application, error)
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, next application.Status) (application.Application, error)
	Complete(ctx context.Context, applicationID uuid.UUID, completedAt time.Time) (PaymentSplit, error)
}

type ApplicationWorkflow struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	ledger       repository.LedgerRepository

	notifier Notifier
	cache    MatchCache

	now func() time.Time
}

func NewApplicationWorkflow(
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	ledger repository.LedgerRepository,
	notifier Notifier,
	cache MatchCache,
) *ApplicationWorkflow {
	return &ApplicationWorkflow{
		jobs:         jobs,
		applications: applications,
		ledger:       ledger,
		notifier:     notifier,
		cache:        cache,
		now:          time.Now,
	}
}

func (u *ApplicationWorkflow) Apply(ctx context.Context, workerID, jobID uuid.UUID) (application.Application, error) {
	if workerID == uuid.Nil || jobID == uuid.Nil {
		return application.Application{}, ErrNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, fetchErr(err)
	}
	if !j.Status.AcceptsApplications() {
		return application.Application{}, ErrJobUnavailable
	}

	// Full worker history: the duplicate check spans all time, not just the
	// compliance window, and matches on job id regardless of prior status.
	history, err := u.applications.History(ctx, repository.HistoryFilter{WorkerID: &workerID})
	if err != nil {
		return application.Application{}, fetchErr(err)
	}
	for _, prior := range history {
		if prior.JobID == jobID {
			return application.Application{}, ErrDuplicateApplication
		}
	}

	asOf := u.now()
	if compliance.DaysWorkedForBusiness(history, j.BusinessID, asOf) > compliance.MaxDaysPer30 {
		return application.Application{}, ErrComplianceViolation
	}

	app := application.Application{
		ID:         uuid.New(),
		JobID:      jobID,
		WorkerID:   workerID,
		BusinessID: j.BusinessID,
		Status:     application.StatusPending,
		CreatedAt:  asOf.UTC(),
	}

	if err := u.applications.Insert(ctx, app); err != nil {
		// The (job_id, worker_id) constraint wins any race the history
		// check lost.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return application.Application{}, ErrDuplicateApplication
		}
		return application.Application{}, fetchErr(err)
	}

	if u.notifier != nil {
		u.notifier.ApplicationUpdated(app.ID, app.JobID, app.Status)
	}
	u.invalidateMatches(ctx, jobID, workerID)

	return app, nil
}

// UpdateStatus walks the application through its lifecycle (interview,
// accept, reject, start, cancel). Completion goes through Complete so the
// payout is never skipped. Entering ongoing stamps the shift start.
func (u *ApplicationWorkflow) UpdateStatus(ctx context.Context, applicationID uuid.UUID, next application.Status) (application.Application, error) {
	if applicationID == uuid.Nil {
		return application.Application{}, ErrNotFound
	}
	if next == application.StatusCompleted {
		return application.Application{}, ErrInvalidState
	}

	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, fetchErr(err)
	}

	if !application.CanTransition(a.Status, next) {
		return application.Application{}, ErrInvalidState
	}

	var startedAt *time.Time
	if next == application.StatusOngoing && a.StartedAt == nil {
		t := u.now().UTC()
		startedAt = &t
	}

	if err := u.applications.UpdateStatus(ctx, a.ID, next, startedAt, nil); err != nil {
		return application.Application{}, fetchErr(err)
	}

	a.Status = next
	if startedAt != nil {
		a.StartedAt = startedAt
	}

	if u.notifier != nil {
		u.notifier.ApplicationUpdated(a.ID, a.JobID, next)
	}
	u.invalidateMatches(ctx, a.JobID, a.WorkerID)

	return a, nil
}

func (u *ApplicationWorkflow) Complete(ctx context.Context, applicationID uuid.UUID, completedAt time.Time) (PaymentSplit, error) {
	if applicationID == uuid.Nil {
		return PaymentSplit{}, ErrNotFound
	}

	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return PaymentSplit{}, ErrNotFound
		}
		return PaymentSplit{}, fetchErr(err)
	}

	switch a.Status {
	case application.StatusAccepted, application.StatusOngoing, application.StatusInProgress:
	default:
		return PaymentSplit{}, ErrInvalidState
	}

	if a.StartedAt == nil {
		return PaymentSplit{}, ErrNotStarted
	}

	hours := completedAt.Sub(*a.StartedAt).Hours()
	if hours <= 0 {
		return PaymentSplit{}, ErrInvalidDuration
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return PaymentSplit{}, ErrNotFound
		}
		return PaymentSplit{}, fetchErr(err)
	}

	var gross int64
	if j.Wage != nil {
		gross = int64(math.Floor(*j.Wage))
	}
	commission := int64(math.Floor(float64(gross) * commissionRate))
	net := gross - commission

	if err := u.applications.UpdateStatus(ctx, a.ID, application.StatusCompleted, nil, &completedAt); err != nil {
		return PaymentSplit{}, fetchErr(err)
	}

	split := PaymentSplit{
		ApplicationID:      a.ID,
		CompletedAt:        completedAt,
		HoursWorked:        hours,
		GrossAmount:        gross,
		PlatformCommission: commission,
		NetWorkerAmount:    net,
	}

	if err := u.ledger.RecordPayout(ctx, repository.PayoutEntry{
		ApplicationID:      a.ID,
		WorkerID:           a.WorkerID,
		BusinessID:         a.BusinessID,
		CompletedAt:        completedAt,
		HoursWorked:        hours,
		GrossAmount:        gross,
		PlatformCommission: commission,
		NetWorkerAmount:    net,
	}); err != nil {
		return PaymentSplit{}, fetchErr(err)
	}

	if u.notifier != nil {
		u.notifier.ApplicationUpdated(a.ID, a.JobID, application.StatusCompleted)
	}
	u.invalidateMatches(ctx, a.JobID, a.WorkerID)

	return split, nil
}

// invalidateMatches drops the location-less cache entries for both
// directions. Location-keyed entries age out on their TTL.
func (u *ApplicationWorkflow) invalidateMatches(ctx context.Context, jobID, workerID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, workersForJobCacheKey(jobID, nil))
	_ = u.cache.Delete(ctx, jobsForWorkerCacheKey(workerID, nil))
}
