package matching

import (
	"math"
	"testing"

	"balikerja/internal/domain/job"
	"balikerja/internal/domain/worker"

	"github.com/google/uuid"
)

func openJobAtKm(km float64, category string) job.Job {
	loc := coordAtKm(testBase, km)
	return job.Job{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Category:   category,
		Status:     job.StatusOpen,
		Location:   &loc,
	}
}

func TestScoreJob_DistanceBuckets(t *testing.T) {
	cases := []struct {
		km   float64
		want float64
	}{
		{1.0, 30},
		{2.0, 25},
		{5.0, 25},
		{7.5, 15},
		{10.0, 15},
		{15.0, 5},
		{20.0, 5},
		{25.0, 2},
		{30.0, 2},
		{31.0, 0},
	}

	w := worker.Profile{ID: uuid.New(), Skills: []string{"waiter"}}
	for _, tc := range cases {
		j := openJobAtKm(tc.km, "waiter")
		b := ScoreJob(j, w, &testBase)
		if math.Abs(b.Distance-tc.want) > 1e-9 {
			t.Fatalf("distance %fkm: expected %f points, got %f", tc.km, tc.want, b.Distance)
		}
	}
}

func TestScoreJob_UrgencyComponent(t *testing.T) {
	w := worker.Profile{ID: uuid.New(), Skills: []string{"waiter"}}

	j := openJobAtKm(1, "waiter")
	if b := ScoreJob(j, w, nil); b.Extra != 0 {
		t.Fatalf("non-urgent job should score 0 urgency, got %f", b.Extra)
	}

	j.Urgent = true
	if b := ScoreJob(j, w, nil); b.Extra != 10 {
		t.Fatalf("urgent job should score 10, got %f", b.Extra)
	}
}

func TestScoreJob_PerfectMatch(t *testing.T) {
	w := worker.Profile{ID: uuid.New(), Skills: []string{"waiter"}, Rating: 5.0}
	j := openJobAtKm(0.5, "waiter")
	j.Urgent = true

	b := ScoreJob(j, w, &testBase)
	if b.Total != 100 {
		t.Fatalf("expected total 100, got %f (%+v)", b.Total, b)
	}
}

func TestScoreJob_WeightTablesAreDistinct(t *testing.T) {
	// Same inputs, both directions: the distance and skill components must
	// differ because the weight tables differ.
	loc := coordAtKm(testBase, 1)
	w := worker.Profile{ID: uuid.New(), Skills: []string{"waiter"}, Location: &loc}
	j := openJobAtKm(1, "waiter")

	fromBusiness := ScoreWorker(w, j, &testBase)
	fromWorker := ScoreJob(j, w, &testBase)

	if fromBusiness.Distance != 25 || fromWorker.Distance != 30 {
		t.Fatalf("expected distance 25 vs 30, got %f vs %f", fromBusiness.Distance, fromWorker.Distance)
	}
	if fromBusiness.Skill != 30 || fromWorker.Skill != 25 {
		t.Fatalf("expected skill 30 vs 25, got %f vs %f", fromBusiness.Skill, fromWorker.Skill)
	}
}
