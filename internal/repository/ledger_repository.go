package repository

import (
	"context"
	"time"

	"balikerja/internal/database"

	"github.com/google/uuid"
)

// PayoutEntry is what the engine hands to the wallet/ledger side after a
// completed shift. Amounts are integer currency minor units; the split is
// computed once by the workflow and recorded verbatim.
type PayoutEntry struct {
	ApplicationID      uuid.UUID
	WorkerID           uuid.UUID
	BusinessID         uuid.UUID
	CompletedAt        time.Time
	HoursWorked        float64
	GrossAmount        int64
	PlatformCommission int64
	NetWorkerAmount    int64
}

type LedgerRepository interface {
	RecordPayout(ctx context.Context, e PayoutEntry) error
}

type PostgresLedgerRepository struct {
	db database.DB
}

func NewPostgresLedgerRepository(db database.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

func (r *PostgresLedgerRepository) RecordPayout(ctx context.Context, e PayoutEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payout_ledger
		   (id, application_id, worker_id, business_id, completed_at, hours_worked, gross_amount, platform_commission, net_worker_amount, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		uuid.New(), e.ApplicationID, e.WorkerID, e.BusinessID,
		e.CompletedAt, e.HoursWorked, e.GrossAmount, e.PlatformCommission, e.NetWorkerAmount,
		time.Now().UTC(),
	)
	return err
}
