package matching

import (
	"testing"

	"balikerja/internal/domain/worker"

	"github.com/google/uuid"
)

func TestEligibleWorker_RejectsMissingSkill(t *testing.T) {
	w := worker.Profile{ID: uuid.New(), Skills: []string{"cook"}, Rating: 4.5}
	if EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("worker without the job category must be rejected")
	}
}

func TestEligibleWorker_RatingThreshold(t *testing.T) {
	w := worker.Profile{ID: uuid.New(), Skills: []string{"barista"}, Rating: 2.99}
	if EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("rating below 3.0 must be rejected")
	}

	w.Rating = 3.0
	if !EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("rating exactly 3.0 must pass")
	}
}

func TestEligibleWorker_UnratedWorkerRejected(t *testing.T) {
	// A fresh profile defaults to rating 0 and fails the rating rule.
	w := worker.Profile{ID: uuid.New(), Skills: []string{"barista"}}
	if EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("default rating 0 must be rejected")
	}
}

func TestEligibleWorker_DistanceRule(t *testing.T) {
	far := coordAtKm(testBase, 25)
	w := worker.Profile{ID: uuid.New(), Skills: []string{"barista"}, Rating: 4.0, Location: &far}
	if EligibleWorker(w, baristaJob(), &testBase) {
		t.Fatalf("worker beyond 20km must be rejected")
	}

	// Unknown coordinates skip the rule entirely.
	w.Location = nil
	if !EligibleWorker(w, baristaJob(), &testBase) {
		t.Fatalf("missing worker coordinate must pass the distance rule")
	}

	w.Location = &far
	if !EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("missing business coordinate must pass the distance rule")
	}
}

func TestEligibleWorker_ExplicitUnavailableRejected(t *testing.T) {
	w := worker.Profile{ID: uuid.New(), Skills: []string{"barista"}, Rating: 4.0, Available: boolPtr(false)}
	if EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("explicitly unavailable worker must be rejected")
	}

	w.Available = nil
	if !EligibleWorker(w, baristaJob(), nil) {
		t.Fatalf("unset availability must pass")
	}
}
