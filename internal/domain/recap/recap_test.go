package recap

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  Window
		limit   int
		wantErr bool
	}{
		{"valid window", Window{-3, 10}, 5, false},
		{"point window", Window{2, 2}, 1, false},
		{"inverted window", Window{10, -3}, 5, true},
		{"zero limit", Window{-3, 10}, 0, true},
		{"negative limit", Window{-3, 10}, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate(tt.limit)
			if tt.wantErr && !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWindowBounds(t *testing.T) {
	from, to := Window{-3, 10}.Bounds(now)
	if !from.Equal(now.Add(-3 * 24 * time.Hour)) {
		t.Errorf("from = %v", from)
	}
	if !to.Equal(now.Add(10 * 24 * time.Hour)) {
		t.Errorf("to = %v", to)
	}
}

func revisit(topicID string, s float64, due time.Time) TaskRevisit {
	return TaskRevisit{
		TopicID:     topicID,
		TopicName:   "topic " + topicID,
		SubjectID:   "subj",
		SubjectName: "Subject",
		Score:       s,
		RevisitDate: due,
	}
}

func TestRank_AggregatesPerTopic(t *testing.T) {
	revisits := []TaskRevisit{
		revisit("t1", 0.5, now.Add(48*time.Hour)),
		revisit("t1", 0.7, now.Add(24*time.Hour)),
		revisit("t2", 1.0, now.Add(12*time.Hour)),
	}
	counts := map[string]int{"t1": 4, "t2": 2}

	recaps := Rank(revisits, counts, 10)
	if len(recaps) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(recaps))
	}

	// t2 is due sooner and ranks first.
	if recaps[0].TopicID != "t2" || recaps[1].TopicID != "t1" {
		t.Fatalf("order = %s, %s; want t2, t1", recaps[0].TopicID, recaps[1].TopicID)
	}
	if recaps[0].ResultScore != 0.5 {
		t.Errorf("t2 score = %v, want 1.0/2 = 0.5", recaps[0].ResultScore)
	}
	if recaps[1].ResultScore != 0.3 {
		t.Errorf("t1 score = %v, want (0.5+0.7)/4 = 0.3", recaps[1].ResultScore)
	}
	// Earliest revisit within the window represents the topic.
	if !recaps[1].RevisitAt.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("t1 revisitAt = %v, want the earliest of its tasks", recaps[1].RevisitAt)
	}
}

func TestRank_ClampsScoresBeforeSumming(t *testing.T) {
	revisits := []TaskRevisit{
		revisit("t1", 1.9, now),
		revisit("t1", -0.5, now),
	}
	recaps := Rank(revisits, map[string]int{"t1": 2}, 10)
	if len(recaps) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(recaps))
	}
	if recaps[0].ResultScore != 0.5 {
		t.Errorf("score = %v, want (1.0+0.0)/2 = 0.5", recaps[0].ResultScore)
	}
}

func TestRank_CapsToLimit(t *testing.T) {
	revisits := []TaskRevisit{
		revisit("t1", 0.5, now.Add(time.Hour)),
		revisit("t2", 0.5, now.Add(2*time.Hour)),
		revisit("t3", 0.5, now.Add(3*time.Hour)),
	}
	counts := map[string]int{"t1": 1, "t2": 1, "t3": 1}

	recaps := Rank(revisits, counts, 2)
	if len(recaps) != 2 {
		t.Fatalf("expected the limit to cap results, got %d", len(recaps))
	}
	if recaps[0].TopicID != "t1" || recaps[1].TopicID != "t2" {
		t.Errorf("capping must keep the soonest topics, got %s, %s", recaps[0].TopicID, recaps[1].TopicID)
	}
}

func TestRank_Empty(t *testing.T) {
	if recaps := Rank(nil, nil, 5); len(recaps) != 0 {
		t.Errorf("expected no recaps, got %d", len(recaps))
	}
}
