package models

import (
	"reflect"
	"testing"
)

func TestLastAskedWordsRoundTrip(t *testing.T) {
	var s QuizSession

	if got := s.LastAskedWords(); len(got) != 0 {
		t.Fatalf("empty session should have no asked words, got %v", got)
	}

	for id := int64(1); id <= 5; id++ {
		s.PushAskedWord(id)
	}
	want := []int64{1, 2, 3, 4, 5}
	if got := s.LastAskedWords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("LastAskedWords = %v, want %v", got, want)
	}
}

func TestPushAskedWordEvictsOldest(t *testing.T) {
	var s QuizSession
	for id := int64(1); id <= 10; id++ {
		s.PushAskedWord(id)
	}

	got := s.LastAskedWords()
	want := []int64{4, 5, 6, 7, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after 10 pushes LastAskedWords = %v, want %v", got, want)
	}
	if len(got) != MaxLastAskedWords {
		t.Fatalf("FIFO length = %d, want %d", len(got), MaxLastAskedWords)
	}
}

func TestDirectionToggle(t *testing.T) {
	if DirectionNormal.Toggle() != DirectionReverse {
		t.Error("normal should toggle to reverse")
	}
	if DirectionReverse.Toggle() != DirectionNormal {
		t.Error("reverse should toggle to normal")
	}
}

func TestStatusBounds(t *testing.T) {
	if Level3.Next() != Level3 {
		t.Error("Level3 must not promote further")
	}
	if Level0.Prev() != Level0 {
		t.Error("Level0 must not degrade further")
	}
	if Level1.Next() != Level2 || Level2.Prev() != Level1 {
		t.Error("adjacent level transitions broken")
	}
}
