package worker

import (
	"strconv"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool[int](3, 10)

	for i := 0; i < 10; i++ {
		n := i
		pool.Submit(strconv.Itoa(n), func() int { return n * n })
	}
	pool.Close()

	got := make(map[string]int)
	for res := range pool.Results() {
		got[res.JobID] = res.Output
	}

	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	for i := 0; i < 10; i++ {
		id := strconv.Itoa(i)
		if got[id] != i*i {
			t.Errorf("job %s = %d, want %d", id, got[id], i*i)
		}
	}
}

func TestPoolCloseWithoutJobs(t *testing.T) {
	pool := NewPool[struct{}](2, 1)
	pool.Close()
	for range pool.Results() {
		t.Fatal("no results expected")
	}
}
