package mastery

import "testing"

func TestNewSubjectLevel_NoResults(t *testing.T) {
	level := NewSubjectLevel("subj", nil, 12)
	if level.CorrectScore != 0 || level.MaxScore != 1 {
		t.Errorf("empty subject level = {%v, %v}, want {0, 1}", level.CorrectScore, level.MaxScore)
	}
	if level.Percentage() != 0 {
		t.Errorf("percentage = %v, want 0", level.Percentage())
	}
}

func TestNewSubjectLevel_SumsClamped(t *testing.T) {
	level := NewSubjectLevel("subj", []float64{0.5, 1.7, -0.2}, 5)
	// 0.5 + 1.0 + 0.0, each term clamped before summing.
	if level.CorrectScore != 1.5 {
		t.Errorf("correct score = %v, want 1.5", level.CorrectScore)
	}
	if level.MaxScore != 5 {
		t.Errorf("max score = %v, want 5", level.MaxScore)
	}
}

func TestNewTopicLevel(t *testing.T) {
	level := NewTopicLevel("top", []float64{0.9, 0.9, 0.9}, 3)
	if level.CorrectScore != 2.7 {
		t.Errorf("correct score = %v, want 2.7", level.CorrectScore)
	}
	// The aggregate is the raw sum, never re-clamped to [0,1].
	if level.CorrectScore <= 1 {
		t.Error("aggregate must not be clamped to the unit interval")
	}
	if level.MaxScore != 3 {
		t.Errorf("max score = %v, want 3", level.MaxScore)
	}
}

func TestNewTopicLevel_NoResultsKeepsTaskCount(t *testing.T) {
	// Topics differ from subjects here: the max stays at the task count so
	// an untouched topic reads as 0 out of N.
	level := NewTopicLevel("top", nil, 4)
	if level.CorrectScore != 0 || level.MaxScore != 4 {
		t.Errorf("level = {%v, %v}, want {0, 4}", level.CorrectScore, level.MaxScore)
	}
}

func TestPercentage(t *testing.T) {
	level := TopicLevel{TopicID: "top", CorrectScore: 1, MaxScore: 3}
	if got := level.Percentage(); got != 33.3 {
		t.Errorf("percentage = %v, want 33.3", got)
	}
}
