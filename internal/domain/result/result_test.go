package result

import (
	"testing"
	"time"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestNew_ClampsScore(t *testing.T) {
	r := New("user-1", "task-1", nil, 1.8, nil, now)
	if r.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", r.Score)
	}

	r = New("user-1", "task-1", nil, -0.3, nil, now)
	if r.Score != 0.0 {
		t.Errorf("score = %v, want 0.0", r.Score)
	}
}

func TestNew_ComputesRevisitDate(t *testing.T) {
	r := New("user-1", "task-1", nil, 1.0, nil, now)
	if r.RevisitDate == nil {
		t.Fatal("expected a revisit date")
	}
	want := now.Add(30 * 24 * time.Hour)
	if !r.RevisitDate.Equal(want) {
		t.Errorf("revisit date = %v, want %v", r.RevisitDate, want)
	}
	if r.IsManual {
		t.Error("a freshly computed result must not be marked manual")
	}
}

func TestRescore_Submission(t *testing.T) {
	r := New("user-1", "task-1", nil, 1.0, nil, now)

	later := now.Add(2 * time.Hour)
	r.Rescore(0.1, nil, later, false)

	if r.Score != 0.1 {
		t.Errorf("score = %v, want 0.1", r.Score)
	}
	want := later.Add(24 * time.Hour)
	if !r.RevisitDate.Equal(want) {
		t.Errorf("revisit date = %v, want %v", r.RevisitDate, want)
	}
	if r.IsManual {
		t.Error("a resubmission must not set the manual flag")
	}
}

func TestRescore_ManualOverride(t *testing.T) {
	r := New("user-1", "task-1", nil, 0.3, nil, now)
	r.Rescore(2.5, nil, now, true)

	if r.Score != 1.0 {
		t.Errorf("manual score must still be clamped, got %v", r.Score)
	}
	if !r.IsManual {
		t.Error("operator override must set the manual flag")
	}
}

func TestRescore_KeepsTimeUsedWhenAbsent(t *testing.T) {
	used := 12.5
	r := New("user-1", "task-1", nil, 0.3, &used, now)
	r.Rescore(0.6, nil, now, false)
	if r.TimeUsed == nil || *r.TimeUsed != 12.5 {
		t.Errorf("time used = %v, want 12.5 kept", r.TimeUsed)
	}

	newUsed := 7.0
	r.Rescore(0.6, &newUsed, now, false)
	if r.TimeUsed == nil || *r.TimeUsed != 7.0 {
		t.Errorf("time used = %v, want 7.0", r.TimeUsed)
	}
}

func TestDaysUntilRevisit(t *testing.T) {
	r := New("user-1", "task-1", nil, 0.5, nil, now)
	days := r.DaysUntilRevisit(now)
	if days == nil || *days != 8 {
		t.Errorf("days until revisit = %v, want 8 (7 whole days + the started one)", days)
	}

	r.RevisitDate = nil
	if r.DaysUntilRevisit(now) != nil {
		t.Error("expected nil when no revisit date is set")
	}
}
