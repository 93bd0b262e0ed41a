package quiz

import (
	"math/rand"
	"testing"
)

func TestPickCandidatePrefersErrorHeavyWords(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	ids := make([]int64, 15)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	errorCounts := map[int64]int{1: 3, 2: 3, 3: 2, 4: 2, 5: 1}

	// The five error-heavy words always occupy the top of the hot pool, so
	// they should account for roughly half of all draws; the ten zero-error
	// words share the remaining five pool slots.
	hits := 0
	for i := 0; i < 300; i++ {
		id, ok := pickCandidate(ids, errorCounts, 0, nil, rnd)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if errorCounts[id] > 0 {
			hits++
		}
	}
	if hits < 100 {
		t.Errorf("error-heavy words picked %d/300 times, expected about half of all draws", hits)
	}
}

func TestPickCandidateExcludesCurrent(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	ids := []int64{1, 2, 3}

	for i := 0; i < 50; i++ {
		id, ok := pickCandidate(ids, nil, 2, nil, rnd)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if id == 2 {
			t.Fatal("current question must never be re-selected")
		}
	}
}

func TestPickCandidateOnlyCurrentLeft(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	if _, ok := pickCandidate([]int64{5}, nil, 5, nil, rnd); ok {
		t.Error("no candidate should remain when only the current word qualifies")
	}
	if _, ok := pickCandidate(nil, nil, 0, nil, rnd); ok {
		t.Error("empty pool must yield no candidate")
	}
}

func TestPickCandidateRecencyFilter(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	recent := []int64{1, 2, 3, 4, 5, 6, 7}

	for i := 0; i < 50; i++ {
		id, ok := pickCandidate(ids, nil, 0, recent, rnd)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if id != 8 {
			t.Fatalf("recently asked word %d selected while an unasked one existed", id)
		}
	}
}

func TestPickCandidateRecencySoftFallback(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	ids := []int64{1, 2, 3}
	recent := []int64{1, 2, 3}

	// Every candidate is recent: the filter must yield rather than starve
	// the session.
	id, ok := pickCandidate(ids, nil, 0, recent, rnd)
	if !ok {
		t.Fatal("recency must be a soft preference, not a hard block")
	}
	if id < 1 || id > 3 {
		t.Fatalf("unexpected candidate %d", id)
	}
}

func TestPickCandidateHotPoolBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))

	// Twenty candidates, the top ten by error count form the hot pool; a
	// zero-error word can only be drawn if errors don't fill the pool.
	ids := make([]int64, 20)
	errorCounts := make(map[int64]int)
	for i := range ids {
		ids[i] = int64(i + 1)
		if i < 10 {
			errorCounts[ids[i]] = 100 - i
		}
	}

	for i := 0; i < 100; i++ {
		id, ok := pickCandidate(ids, errorCounts, 0, nil, rnd)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if errorCounts[id] == 0 {
			t.Fatalf("word %d outside the top-10 error ranking was selected", id)
		}
	}
}
