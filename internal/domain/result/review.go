package result

import (
	"math"
	"math/rand"
	"time"
)

// MaxStalenessDays is the cutoff for prioritized review. A task more than
// this many whole days overdue is treated as ordinary backlog and left to
// the regular (non-spaced) selection path.
const MaxStalenessDays = 10

// ReviewCandidate is a task eligible for spaced review: the latest result
// the user has for a task in scope, carrying just enough to rank it.
type ReviewCandidate struct {
	TaskID      string    `json:"task_id" db:"task_id"`
	RevisitDate time.Time `json:"revisit_date" db:"revisit_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	SessionID   *string   `json:"session_id,omitempty" db:"session_id"`
}

// StalenessBucket is the number of whole days the candidate's revisit date
// is overdue at now, rounded toward minus infinity. Not-yet-due candidates
// land in negative buckets, so a candidate due in 3 days still loses to one
// that is due tomorrow.
func (c ReviewCandidate) StalenessBucket(now time.Time) int {
	return int(math.Floor(now.Sub(c.RevisitDate).Hours() / 24))
}

// PickReviewTask groups candidates into staleness buckets, drops the ones
// that are too stale to prioritize, and picks uniformly at random inside the
// most-stale bucket that remains. It returns nil when nothing is due, which
// is a normal outcome and not an error.
//
// Grouping by bucket instead of keeping a real priority queue is enough
// here: the bucket with the highest index is the most overdue work, and the
// random pick inside it keeps the same stale task from always surfacing first.
func PickReviewTask(candidates []ReviewCandidate, now time.Time, rng *rand.Rand) *ReviewCandidate {
	buckets := make(map[int][]ReviewCandidate)
	maxBucket := 0
	found := false

	for _, c := range candidates {
		bucket := c.StalenessBucket(now)
		if bucket >= MaxStalenessDays {
			continue
		}
		buckets[bucket] = append(buckets[bucket], c)
		if !found || bucket > maxBucket {
			maxBucket = bucket
			found = true
		}
	}
	if !found {
		return nil
	}

	stalest := buckets[maxBucket]
	picked := stalest[rng.Intn(len(stalest))]
	return &picked
}
