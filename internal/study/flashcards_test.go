package study

import (
	"fmt"
	"testing"
)

func deck(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:      fmt.Sprint(i),
			Text:    fmt.Sprintf("Q%d?", i),
			Answer:  fmt.Sprintf("A%d", i),
			Options: []string{fmt.Sprintf("A%d", i), "x", "y", "z"},
		}
	}
	return qs
}

func TestFlashcards_TwoActionsMoveToNextCard(t *testing.T) {
	f := NewFlashcards(deck(3))
	if f.Index() != 0 || f.Revealed() {
		t.Fatalf("initial state = {%d,%v}, want {0,false}", f.Index(), f.Revealed())
	}

	f.Advance()
	if !f.Revealed() || f.Index() != 0 {
		t.Fatalf("after one action = {%d,%v}, want {0,true}", f.Index(), f.Revealed())
	}
	f.Advance()
	if f.Index() != 1 || f.Revealed() {
		t.Fatalf("after two actions = {%d,%v}, want {1,false}", f.Index(), f.Revealed())
	}
}

func TestFlashcards_CompletesOnceAfterTwoNActions(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		f := NewFlashcards(deck(n))
		completions := 0
		for i := 0; i < 2*n; i++ {
			c := f.Advance()
			if c.Done {
				completions++
				if i != 2*n-1 {
					t.Errorf("n=%d: completed at action %d, want %d", n, i+1, 2*n)
				}
				if c.Graded {
					t.Errorf("flashcard completion should be ungraded")
				}
				if c.Total != n {
					t.Errorf("total = %d, want %d", c.Total, n)
				}
			}
		}
		for i := 0; i < 3; i++ {
			if f.Advance().Done {
				completions++
			}
		}
		if completions != 1 {
			t.Errorf("n=%d: %d completions, want 1", n, completions)
		}
	}
}

func TestFlashcards_RevealIsIdempotent(t *testing.T) {
	f := NewFlashcards(deck(2))
	f.Reveal()
	f.Reveal()
	if !f.Revealed() || f.Index() != 0 {
		t.Fatalf("state = {%d,%v}", f.Index(), f.Revealed())
	}
	f.Advance()
	if f.Index() != 1 {
		t.Fatalf("advance after reveal should move on, index = %d", f.Index())
	}
}

func TestFlashcards_Retreat(t *testing.T) {
	f := NewFlashcards(deck(3))
	f.Retreat()
	if f.Index() != 0 {
		t.Fatal("retreat at first card should be a no-op")
	}

	f.Advance()
	f.Advance()
	f.Advance()
	f.Retreat()
	if f.Index() != 0 || f.Revealed() {
		t.Fatalf("state = {%d,%v}, want {0,false}", f.Index(), f.Revealed())
	}
}

func TestFlashcards_Empty(t *testing.T) {
	f := NewFlashcards(nil)
	if !f.Empty() {
		t.Fatal("expected empty deck")
	}
	if _, ok := f.Current(); ok {
		t.Fatal("empty deck has no current card")
	}
	c := f.Advance()
	if !c.Done || c.Total != 0 {
		t.Fatalf("completion = %+v", c)
	}
	if f.Advance().Done {
		t.Fatal("second completion reported")
	}
}
