package usecase

import (
	"context"
	"time"

	"balikerja/internal/domain/application"
	"balikerja/internal/domain/job"
	"balikerja/internal/domain/worker"
	"balikerja/internal/repository"

	"github.com/google/uuid"
)

type stubJobRepo struct {
	jobs     map[uuid.UUID]job.Job
	open     []job.Job
	err      error
	inserted []job.Job
}

func (s *stubJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if s.err != nil {
		return job.Job{}, s.err
	}
	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (s *stubJobRepo) ListOpen(context.Context) ([]job.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.open, nil
}

func (s *stubJobRepo) Insert(_ context.Context, j job.Job) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, j)
	return nil
}

func (s *stubJobRepo) UpdateStatus(context.Context, uuid.UUID, job.Status) error {
	return s.err
}

type stubWorkerRepo struct {
	profiles []worker.Profile
	err      error
}

func (s *stubWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (worker.Profile, error) {
	if s.err != nil {
		return worker.Profile{}, s.err
	}
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return worker.Profile{}, repository.ErrWorkerNotFound
}

func (s *stubWorkerRepo) ListAll(context.Context) ([]worker.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profiles, nil
}

type statusUpdate struct {
	id          uuid.UUID
	status      application.Status
	startedAt   *time.Time
	completedAt *time.Time
}

type stubApplicationRepo struct {
	apps      map[uuid.UUID]application.Application
	history   []application.Application
	err       error
	insertErr error
	inserted  []application.Application
	updates   []statusUpdate
}

func (s *stubApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	if s.err != nil {
		return application.Application{}, s.err
	}
	a, ok := s.apps[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (s *stubApplicationRepo) History(_ context.Context, f repository.HistoryFilter) ([]application.Application, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]application.Application, 0, len(s.history))
	for _, a := range s.history {
		if f.WorkerID != nil && a.WorkerID != *f.WorkerID {
			continue
		}
		if f.BusinessID != nil && a.BusinessID != *f.BusinessID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *stubApplicationRepo) Insert(_ context.Context, a application.Application) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, a)
	return nil
}

func (s *stubApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status, startedAt, completedAt *time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.updates = append(s.updates, statusUpdate{id: id, status: status, startedAt: startedAt, completedAt: completedAt})
	return nil
}

type stubLedger struct {
	entries []repository.PayoutEntry
	err     error
}

func (s *stubLedger) RecordPayout(_ context.Context, e repository.PayoutEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

type stubNotifier struct {
	events []application.Status
}

func (s *stubNotifier) ApplicationUpdated(_, _ uuid.UUID, status application.Status) {
	s.events = append(s.events, status)
}
