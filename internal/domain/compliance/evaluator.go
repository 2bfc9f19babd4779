package compliance

import (
	"time"

	"balikerja/internal/domain/application"

	"github.com/google/uuid"
)

// MaxDaysPer30 is the PP 35/2021 cap on casual-worker engagement with a
// single business inside a rolling 30-day window. 20 days is compliant,
// the 21st is not.
const MaxDaysPer30 = 20

// WindowDays is the trailing lookback applied to application history.
const WindowDays = 30

// DaysWorkedForBusiness counts qualifying work days for one worker/business
// pair inside the trailing 30-day window ending at asOf. One qualifying
// application counts as one day; same-day applications are not deduplicated.
// Applications without a started-at timestamp never qualify, so a record
// with missing data can never push a worker over the cap.
func DaysWorkedForBusiness(history []application.Application, businessID uuid.UUID, asOf time.Time) int {
	cutoff := asOf.AddDate(0, 0, -WindowDays)

	days := 0
	for _, app := range history {
		if app.BusinessID != businessID {
			continue
		}
		if !app.Status.WorkPerformed() {
			continue
		}
		if app.StartedAt == nil {
			continue
		}
		if !app.StartedAt.After(cutoff) {
			continue
		}
		days++
	}
	return days
}

// IsCompliant reports whether the worker may take on another engagement with
// the business as of the given time.
func IsCompliant(history []application.Application, businessID uuid.UUID, asOf time.Time) bool {
	return DaysWorkedForBusiness(history, businessID, asOf) <= MaxDaysPer30
}
