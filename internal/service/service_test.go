package service

import (
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
	"github.com/studyloop/backend/internal/domain/recap"
	"github.com/studyloop/backend/internal/domain/result"
	"github.com/studyloop/backend/internal/domain/teststats"
	"github.com/studyloop/backend/internal/store"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testTime }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// seedContent builds subj/top/sub with two tasks: t1 has choices x (correct)
// and y, t2 has choices p, q (both correct) and r.
func seedContent(t *testing.T, s *store.Store) {
	t.Helper()
	require.NoError(t, s.SaveSubject(&store.Subject{ID: "subj", Name: "Maths"}))
	require.NoError(t, s.SaveTopic(&store.Topic{ID: "top", SubjectID: "subj", Name: "Algebra"}))
	require.NoError(t, s.SaveSubtopic(&store.Subtopic{ID: "sub", TopicID: "top", Name: "Linear equations"}))
	require.NoError(t, s.SaveTask(&store.Task{ID: "t1", SubtopicID: "sub", Question: "2x = 4, x = ?"}))
	require.NoError(t, s.SaveTask(&store.Task{ID: "t2", SubtopicID: "sub", Question: "pick the primes"}))

	choices := []multiplechoice.Choice{
		{ID: "x", TaskID: "t1", Text: "2", IsCorrect: true},
		{ID: "y", TaskID: "t1", Text: "4"},
		{ID: "p", TaskID: "t2", Text: "2", IsCorrect: true},
		{ID: "q", TaskID: "t2", Text: "3", IsCorrect: true},
		{ID: "r", TaskID: "t2", Text: "4"},
	}
	for i := range choices {
		require.NoError(t, s.SaveChoice(&choices[i]))
	}

	require.NoError(t, s.SaveUser(&store.User{ID: "u1", Email: "u1@example.com"}))
}

func seedSession(t *testing.T, s *store.Store, id string, testID *string, createdAt time.Time) {
	t.Helper()
	sess := &store.Session{ID: id, UserID: "u1", TestID: testID, CreatedAt: createdAt}
	require.NoError(t, s.SaveSession(sess, []string{"sub"}))
}

func TestSubmitMultipleChoice_FullFlow(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	seedSession(t, s, "sess1", nil, testTime)

	svc := NewResultsService(s, discardLogger(), fixedNow)

	// Correct single answer: full score, revisit in 30 days.
	sub, err := svc.SubmitMultipleChoice("u1", "sess1", "t1", []string{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sub.Result.Score)
	require.NotNil(t, sub.Result.RevisitDate)
	assert.True(t, sub.Result.RevisitDate.Equal(testTime.Add(30*24*time.Hour)))
	assert.Equal(t, 1.0, sub.Evaluation.Score)
	originalID := sub.Result.ID

	// Same task, later session, wrong answer: a new row scored 0 with a
	// revisit tomorrow. The earlier row stays untouched.
	later := testTime.Add(48 * time.Hour)
	laterSvc := NewResultsService(s, discardLogger(), func() time.Time { return later })
	seedSession(t, s, "sess2", nil, later)

	sub2, err := laterSvc.SubmitMultipleChoice("u1", "sess2", "t1", []string{"y"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sub2.Result.Score)
	require.NotNil(t, sub2.Result.RevisitDate)
	assert.True(t, sub2.Result.RevisitDate.Equal(later.Add(24*time.Hour)))
	assert.NotEqual(t, originalID, sub2.Result.ID)

	original, err := s.GetResult(originalID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, original.Score)
	assert.True(t, original.RevisitDate.Equal(testTime.Add(30*24*time.Hour)))

	overview, err := svc.Overview("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, overview.ResultCount)
	assert.Equal(t, 1.0, overview.TotalScore)
}

func TestSubmitMultipleChoice_ResubmissionOverwrites(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	seedSession(t, s, "sess1", nil, testTime)

	svc := NewResultsService(s, discardLogger(), fixedNow)

	first, err := svc.SubmitMultipleChoice("u1", "sess1", "t2", []string{"p"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, first.Result.Score)

	second, err := svc.SubmitMultipleChoice("u1", "sess1", "t2", []string{"p", "q"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, second.Result.Score)
	assert.Equal(t, first.Result.ID, second.Result.ID, "same session and task reuse the row")

	overview, err := svc.Overview("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, overview.ResultCount)
}

func TestSubmitMultipleChoice_UnknownTask(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	seedSession(t, s, "sess1", nil, testTime)

	svc := NewResultsService(s, discardLogger(), fixedNow)
	_, err := svc.SubmitMultipleChoice("u1", "sess1", "missing", []string{"x"}, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOverrideScore(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	seedSession(t, s, "sess1", nil, testTime)

	svc := NewResultsService(s, discardLogger(), fixedNow)
	sub, err := svc.SubmitMultipleChoice("u1", "sess1", "t1", []string{"y"}, nil)
	require.NoError(t, err)
	assert.False(t, sub.Result.IsManual)

	overridden, err := svc.OverrideScore(sub.Result.ID, 0.7)
	require.NoError(t, err)
	assert.Equal(t, 0.7, overridden.Score)
	assert.True(t, overridden.IsManual)
	assert.True(t, overridden.RevisitDate.Equal(testTime.Add(16*24*time.Hour)))

	_, err = svc.OverrideScore("missing", 0.5)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNextReviewTask(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	oldSession := "old"
	seedSession(t, s, oldSession, nil, testTime.Add(-96*time.Hour))
	seedSession(t, s, "current", nil, testTime)

	// t1 is four days overdue, t2 only one day: t1 must win.
	past := testTime.Add(-120 * time.Hour)
	r1 := result.New("u1", "t1", &oldSession, 0.0, nil, past)
	revisit1 := testTime.Add(-96 * time.Hour)
	r1.RevisitDate = &revisit1
	require.NoError(t, s.SaveResult(r1))

	r2 := result.New("u1", "t2", &oldSession, 0.0, nil, past)
	revisit2 := testTime.Add(-24 * time.Hour)
	r2.RevisitDate = &revisit2
	require.NoError(t, s.SaveResult(r2))

	rng := rand.New(rand.NewSource(1))
	svc := NewReviewService(s, discardLogger(), fixedNow, rng)

	task, err := svc.NextReviewTask("u1", "current")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "t1", task.ID)
}

func TestNextReviewTask_NothingDue(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	seedSession(t, s, "current", nil, testTime)

	svc := NewReviewService(s, discardLogger(), fixedNow, rand.New(rand.NewSource(1)))
	task, err := svc.NextReviewTask("u1", "current")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestRecommendedRecaps(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	sess := "sess1"
	seedSession(t, s, sess, nil, testTime)

	// Score 0.4 schedules t1 seven days out, inside a 10-day window.
	require.NoError(t, s.SaveResult(result.New("u1", "t1", &sess, 0.4, nil, testTime)))

	svc := NewRecapService(s, discardLogger(), fixedNow)
	recaps, err := svc.RecommendedRecaps("u1", recap.Window{LowerBoundDays: 0, UpperBoundDays: 10}, 5)
	require.NoError(t, err)
	require.Len(t, recaps, 1)
	assert.Equal(t, "top", recaps[0].TopicID)
	assert.Equal(t, "Algebra", recaps[0].TopicName)
	// 0.4 over the topic's two tasks.
	assert.InDelta(t, 0.2, recaps[0].ResultScore, 1e-9)
	assert.True(t, recaps[0].RevisitAt.Equal(testTime.Add(7*24*time.Hour)))
}

func TestRecommendedRecaps_InvalidQuery(t *testing.T) {
	s := newTestStore(t)
	svc := NewRecapService(s, discardLogger(), fixedNow)

	_, err := svc.RecommendedRecaps("u1", recap.Window{LowerBoundDays: 5, UpperBoundDays: 1}, 5)
	assert.ErrorIs(t, err, recap.ErrInvalidQuery)

	_, err = svc.RecommendedRecaps("u1", recap.Window{LowerBoundDays: 0, UpperBoundDays: 10}, 0)
	assert.ErrorIs(t, err, recap.ErrInvalidQuery)
}

func TestSubjectMastery(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	sess := "sess1"
	seedSession(t, s, sess, nil, testTime)
	require.NoError(t, s.SaveResult(result.New("u1", "t1", &sess, 1.0, nil, testTime)))

	svc := NewMasteryService(s, discardLogger())
	got, err := svc.SubjectMastery("u1", "subj")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Subject.CorrectScore)
	assert.Equal(t, 2.0, got.Subject.MaxScore)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, 1.0, got.Topics[0].CorrectScore)
	assert.Equal(t, 2.0, got.Topics[0].MaxScore)
	assert.Equal(t, 50.0, got.Topics[0].Percentage())
}

func TestSubjectMastery_NoResults(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)

	svc := NewMasteryService(s, discardLogger())
	got, err := svc.SubjectMastery("u1", "subj")
	require.NoError(t, err)
	// A defined zero level instead of a division by zero.
	assert.Equal(t, 0.0, got.Subject.CorrectScore)
	assert.Equal(t, 1.0, got.Subject.MaxScore)
	assert.Equal(t, 0.0, got.Subject.Percentage())
}

func TestTestStatistics(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	require.NoError(t, s.SaveUser(&store.User{ID: "u2", Email: "u2@example.com"}))
	require.NoError(t, s.SaveSubjectTest(&store.SubjectTest{ID: "test", SubjectID: "subj", Title: "Midterm"}))
	require.NoError(t, s.AddTestTask("test", "t1"))
	require.NoError(t, s.AddTestTask("test", "t2"))

	testID := "test"
	seedSession(t, s, "ts1", &testID, testTime)
	sess2 := &store.Session{ID: "ts2", UserID: "u2", TestID: &testID, CreatedAt: testTime}
	require.NoError(t, s.SaveSession(sess2, nil))

	svc := NewStatisticsService(s, discardLogger())
	_, err := svc.TestStatistics("test")
	assert.ErrorIs(t, err, teststats.ErrTestNotYetHeld)

	results := NewResultsService(s, discardLogger(), fixedNow)
	// u1 aces both tasks, u2 gets half of t2 and nothing else.
	_, err = results.SubmitMultipleChoice("u1", "ts1", "t1", []string{"x"}, nil)
	require.NoError(t, err)
	_, err = results.SubmitMultipleChoice("u1", "ts1", "t2", []string{"p", "q"}, nil)
	require.NoError(t, err)
	_, err = results.SubmitMultipleChoice("u2", "ts2", "t2", []string{"p"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.EndTest("test", testTime.Add(time.Hour)))

	stats, err := svc.TestStatistics("test")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NumberOfSessions)
	assert.Equal(t, 2, stats.NumberOfTasks)
	// Weighted correct = 1 (x) + 0.5 + 0.5 (u1 on t2) + 0.5 (u2 on t2)
	// = 2.5, over 2 tasks and 2 sessions.
	assert.InDelta(t, 0.625, stats.AverageScore, 1e-9)

	require.Len(t, stats.TaskResults, 2)
	assert.Equal(t, "t1", stats.TaskResults[0].TaskID)
	assert.Equal(t, "t2", stats.TaskResults[1].TaskID)

	// u1 totals 2, u2 rounds 0.5 up to 1.
	require.Len(t, stats.ScoreHistogram, 3)
	assert.Equal(t, 0, stats.ScoreHistogram[0].Amount)
	assert.Equal(t, 1, stats.ScoreHistogram[1].Amount)
	assert.Equal(t, 1, stats.ScoreHistogram[2].Amount)

	users, err := svc.DetailedUserResults("test")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1@example.com", users[0].Email)
	assert.Equal(t, 2.0, users[0].Score)
	assert.Equal(t, 100.0, users[0].Percentage)
	assert.Equal(t, "u2@example.com", users[1].Email)
	assert.Equal(t, 25.0, users[1].Percentage)
}

func TestSessionTopicResults(t *testing.T) {
	s := newTestStore(t)
	seedContent(t, s)
	sess := "sess1"
	seedSession(t, s, sess, nil, testTime)
	require.NoError(t, s.SaveResult(result.New("u1", "t1", &sess, 1.0, nil, testTime)))
	require.NoError(t, s.SaveResult(result.New("u1", "t2", &sess, 0.5, nil, testTime)))

	svc := NewStatisticsService(s, discardLogger())
	topics, err := svc.SessionTopicResults("sess1")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Algebra", topics[0].Name)
	assert.Equal(t, 1.5, topics[0].Score)
	assert.Equal(t, 2.0, topics[0].MaximumScore)
	assert.InDelta(t, 0.75, topics[0].ScorePercentage(), 1e-9)
}
