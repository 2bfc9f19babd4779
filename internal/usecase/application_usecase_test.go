package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"balikerja/internal/domain/application"
	"balikerja/internal/domain/job"
	"balikerja/internal/repository"

	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 { return &v }

func newTestWorkflow(jobs *stubJobRepo, apps *stubApplicationRepo, ledger *stubLedger, notifier *stubNotifier) *ApplicationWorkflow {
	var n Notifier
	if notifier != nil {
		n = notifier
	}
	u := NewApplicationWorkflow(jobs, apps, ledger, n, nil)
	u.now = fixedNow
	return u
}

func openJob(biz uuid.UUID) job.Job {
	return job.Job{ID: uuid.New(), BusinessID: biz, Category: "waiter", Status: job.StatusOpen, Wage: floatPtr(150000)}
}

func TestApply_Succeeds(t *testing.T) {
	biz := uuid.New()
	j := openJob(biz)
	workerID := uuid.New()
	apps := &stubApplicationRepo{}
	notifier := &stubNotifier{}

	u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, apps, &stubLedger{}, notifier)

	a, err := u.Apply(context.Background(), workerID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusPending {
		t.Fatalf("new application must be pending, got %s", a.Status)
	}
	if a.BusinessID != biz {
		t.Fatalf("business id must be denormalized onto the application")
	}
	if len(apps.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(apps.inserted))
	}
	if len(notifier.events) != 1 || notifier.events[0] != application.StatusPending {
		t.Fatalf("expected a pending notification")
	}
}

func TestApply_ClosedJobUnavailable(t *testing.T) {
	j := openJob(uuid.New())
	j.Status = job.StatusClosed

	u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, &stubApplicationRepo{}, &stubLedger{}, nil)

	_, err := u.Apply(context.Background(), uuid.New(), j.ID)
	if !errors.Is(err, ErrJobUnavailable) {
		t.Fatalf("expected ErrJobUnavailable, got %v", err)
	}
}

func TestApply_FilledJobStillAccepts(t *testing.T) {
	j := openJob(uuid.New())
	j.Status = job.StatusFilled

	u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, &stubApplicationRepo{}, &stubLedger{}, nil)

	if _, err := u.Apply(context.Background(), uuid.New(), j.ID); err != nil {
		t.Fatalf("filled jobs must still accept applications, got %v", err)
	}
}

func TestApply_DuplicateRegardlessOfPriorStatus(t *testing.T) {
	j := openJob(uuid.New())
	workerID := uuid.New()

	prior := application.Application{
		ID:         uuid.New(),
		JobID:      j.ID,
		WorkerID:   workerID,
		BusinessID: j.BusinessID,
		Status:     application.StatusRejected,
	}

	u := newTestWorkflow(
		&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
		&stubApplicationRepo{history: []application.Application{prior}},
		&stubLedger{}, nil,
	)

	_, err := u.Apply(context.Background(), workerID, j.ID)
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("a rejected prior application still blocks re-applying, got %v", err)
	}
}

func TestApply_DifferentJobWithUnrelatedHistorySucceeds(t *testing.T) {
	biz := uuid.New()
	j := openJob(biz)
	other := openJob(biz)
	workerID := uuid.New()

	prior := application.Application{
		ID:         uuid.New(),
		JobID:      other.ID,
		WorkerID:   workerID,
		BusinessID: biz,
		Status:     application.StatusPending,
	}

	u := newTestWorkflow(
		&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j, other.ID: other}},
		&stubApplicationRepo{history: []application.Application{prior}},
		&stubLedger{}, nil,
	)

	if _, err := u.Apply(context.Background(), workerID, j.ID); err != nil {
		t.Fatalf("unrelated history must not block, got %v", err)
	}
}

func TestApply_ComplianceGate(t *testing.T) {
	biz := uuid.New()
	workerID := uuid.New()

	j := openJob(biz)
	jobs := &stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}

	// Exactly 20 qualifying days: still allowed.
	u := newTestWorkflow(jobs, &stubApplicationRepo{history: workHistoryEntry(workerID, biz, 20)}, &stubLedger{}, nil)
	if _, err := u.Apply(context.Background(), workerID, j.ID); err != nil {
		t.Fatalf("20 days must be compliant, got %v", err)
	}

	// A 21st qualifying day tips the worker over the cap.
	u = newTestWorkflow(jobs, &stubApplicationRepo{history: workHistoryEntry(workerID, biz, 21)}, &stubLedger{}, nil)
	_, err := u.Apply(context.Background(), workerID, j.ID)
	if !errors.Is(err, ErrComplianceViolation) {
		t.Fatalf("expected ErrComplianceViolation at 21 days, got %v", err)
	}
}

func TestApply_RacedInsertMapsToDuplicate(t *testing.T) {
	j := openJob(uuid.New())
	u := newTestWorkflow(
		&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
		&stubApplicationRepo{insertErr: repository.ErrDuplicateKey},
		&stubLedger{}, nil,
	)

	_, err := u.Apply(context.Background(), uuid.New(), j.ID)
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("unique violation must map to ErrDuplicateApplication, got %v", err)
	}
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	cases := []struct {
		name    string
		from    application.Status
		to      application.Status
		wantErr error
	}{
		{"pending to accepted", application.StatusPending, application.StatusAccepted, nil},
		{"pending to interview", application.StatusPending, application.StatusInterview, nil},
		{"accepted to ongoing", application.StatusAccepted, application.StatusOngoing, nil},
		{"ongoing to cancelled", application.StatusOngoing, application.StatusCancelled, nil},
		{"pending to ongoing skips accept", application.StatusPending, application.StatusOngoing, ErrInvalidState},
		{"rejected is terminal", application.StatusRejected, application.StatusAccepted, ErrInvalidState},
		{"completion has its own flow", application.StatusOngoing, application.StatusCompleted, ErrInvalidState},
		{"unknown status", application.StatusPending, application.Status("archived"), ErrInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := openJob(uuid.New())
			a := application.Application{ID: uuid.New(), JobID: j.ID, WorkerID: uuid.New(), BusinessID: j.BusinessID, Status: tc.from}
			apps := &stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}}

			u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, apps, &stubLedger{}, nil)

			got, err := u.UpdateStatus(context.Background(), a.ID, tc.to)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Status != tc.to {
				t.Fatalf("status %s, expected %s", got.Status, tc.to)
			}
			if len(apps.updates) != 1 || apps.updates[0].status != tc.to {
				t.Fatalf("expected one persisted update to %s", tc.to)
			}
		})
	}
}

func TestUpdateStatus_StartingStampsShiftStart(t *testing.T) {
	j := openJob(uuid.New())
	a := application.Application{ID: uuid.New(), JobID: j.ID, WorkerID: uuid.New(), BusinessID: j.BusinessID, Status: application.StatusAccepted}
	apps := &stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}}

	u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, apps, &stubLedger{}, nil)

	got, err := u.UpdateStatus(context.Background(), a.ID, application.StatusOngoing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.StartedAt == nil || !got.StartedAt.Equal(testAsOf) {
		t.Fatalf("starting the shift must stamp started_at with the current time")
	}
	if apps.updates[0].startedAt == nil {
		t.Fatalf("started_at must be persisted")
	}
}

func startedApplication(j job.Job, startedAt time.Time) application.Application {
	return application.Application{
		ID:         uuid.New(),
		JobID:      j.ID,
		WorkerID:   uuid.New(),
		BusinessID: j.BusinessID,
		Status:     application.StatusOngoing,
		StartedAt:  &startedAt,
	}
}

func TestComplete_CommissionSplit(t *testing.T) {
	cases := []struct {
		name           string
		wage           *float64
		wantGross      int64
		wantCommission int64
		wantNet        int64
	}{
		{"standard wage", floatPtr(150000), 150000, 9000, 141000},
		{"small wage", floatPtr(50000), 50000, 3000, 47000},
		{"nil wage", nil, 0, 0, 0},
		{"zero wage", floatPtr(0), 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := openJob(uuid.New())
			j.Wage = tc.wage

			a := startedApplication(j, testAsOf.Add(-8*time.Hour))
			apps := &stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}}
			ledger := &stubLedger{}

			u := newTestWorkflow(&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}, apps, ledger, nil)

			split, err := u.Complete(context.Background(), a.ID, testAsOf)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if split.GrossAmount != tc.wantGross || split.PlatformCommission != tc.wantCommission || split.NetWorkerAmount != tc.wantNet {
				t.Fatalf("split %d/%d/%d, expected %d/%d/%d",
					split.GrossAmount, split.PlatformCommission, split.NetWorkerAmount,
					tc.wantGross, tc.wantCommission, tc.wantNet)
			}
			if split.HoursWorked != 8 {
				t.Fatalf("expected 8 hours, got %f", split.HoursWorked)
			}
			if len(ledger.entries) != 1 {
				t.Fatalf("expected one ledger entry, got %d", len(ledger.entries))
			}
			if len(apps.updates) != 1 || apps.updates[0].status != application.StatusCompleted {
				t.Fatalf("expected status update to completed")
			}
		})
	}
}

func TestComplete_NotStarted(t *testing.T) {
	j := openJob(uuid.New())
	a := startedApplication(j, testAsOf)
	a.StartedAt = nil

	u := newTestWorkflow(
		&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
		&stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}},
		&stubLedger{}, nil,
	)

	_, err := u.Complete(context.Background(), a.ID, testAsOf)
	if !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestComplete_InvalidDuration(t *testing.T) {
	j := openJob(uuid.New())

	for _, delta := range []time.Duration{0, -time.Hour} {
		a := startedApplication(j, testAsOf)
		u := newTestWorkflow(
			&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
			&stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}},
			&stubLedger{}, nil,
		)

		_, err := u.Complete(context.Background(), a.ID, testAsOf.Add(delta))
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("completed_at offset %v: expected ErrInvalidDuration, got %v", delta, err)
		}
	}
}

func TestComplete_WrongState(t *testing.T) {
	j := openJob(uuid.New())
	a := startedApplication(j, testAsOf.Add(-4*time.Hour))
	a.Status = application.StatusPending

	u := newTestWorkflow(
		&stubJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
		&stubApplicationRepo{apps: map[uuid.UUID]application.Application{a.ID: a}},
		&stubLedger{}, nil,
	)

	_, err := u.Complete(context.Background(), a.ID, testAsOf)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}
