package study

import (
	"reflect"
	"testing"
)

func threeQuestions() []Question {
	return []Question{
		{ID: "1", Text: "2+2?", Answer: "4", Options: []string{"3", "4", "5"}},
		{ID: "2", Text: "Capital of France?", Answer: "Paris", Options: []string{"Paris", "Rome"}},
		{ID: "3", Text: "Largest planet?", Answer: "Jupiter", Options: []string{"Mars", "Jupiter"}},
	}
}

func TestTest_ScoresTwoOfThree(t *testing.T) {
	tt := NewTest(threeQuestions())

	var final Completion
	for _, pick := range []string{"4", "Rome", "Jupiter"} {
		if !tt.Select(pick) {
			t.Fatalf("select %q refused", pick)
		}
		if !tt.Submit() {
			t.Fatalf("submit %q refused", pick)
		}
		final = tt.Next()
	}

	if !final.Done || !final.Graded {
		t.Fatalf("completion = %+v", final)
	}
	if final.Score != 2 || final.Total != 3 {
		t.Errorf("score = %d/%d, want 2/3", final.Score, final.Total)
	}
	if got, want := tt.Given(), []string{"4", "Rome", "Jupiter"}; !reflect.DeepEqual(got, want) {
		t.Errorf("given = %v, want %v", got, want)
	}
}

func TestTest_SubmitRequiresSelection(t *testing.T) {
	tt := NewTest(threeQuestions())
	if tt.Submit() {
		t.Fatal("submit without selection should be refused")
	}
	if c := tt.Next(); c.Done || tt.Index() != 0 {
		t.Fatal("next before submit should be a no-op")
	}
}

func TestTest_SelectionLockedAfterSubmit(t *testing.T) {
	tt := NewTest(threeQuestions())
	tt.Select("3")
	tt.Submit()

	if tt.Select("4") {
		t.Fatal("select after submit should be refused")
	}
	if tt.Submit() {
		t.Fatal("second submit should be refused")
	}
	if tt.Score() != 0 {
		t.Errorf("score = %d, want 0", tt.Score())
	}
	if len(tt.Given()) != 1 {
		t.Errorf("given = %v", tt.Given())
	}
}

func TestTest_ChangeSelectionBeforeSubmit(t *testing.T) {
	tt := NewTest(threeQuestions())
	tt.Select("3")
	tt.Select("4")
	tt.Submit()
	if tt.Score() != 1 {
		t.Errorf("score = %d, want 1", tt.Score())
	}
}

func TestTest_Classify(t *testing.T) {
	tt := NewTest(threeQuestions())
	tt.Select("5")

	if tt.Classify("5") != Selected || tt.Classify("4") != Unselected {
		t.Fatal("unexpected classes before submit")
	}

	tt.Submit()
	want := map[string]OptionClass{"3": Neutral, "4": Correct, "5": WrongPick}
	for opt, class := range want {
		if got := tt.Classify(opt); got != class {
			t.Errorf("Classify(%q) = %v, want %v", opt, got, class)
		}
	}
}

func TestTest_NextClearsSelection(t *testing.T) {
	tt := NewTest(threeQuestions())
	tt.Select("4")
	tt.Submit()
	tt.Next()

	if tt.Index() != 1 || tt.Selected() != "" || tt.Submitted() {
		t.Fatalf("state after next = index %d selected %q submitted %v", tt.Index(), tt.Selected(), tt.Submitted())
	}
}

func TestTest_EmptyCompletesZeroOfZero(t *testing.T) {
	tt := NewTest(nil)
	c := tt.Next()
	if !c.Done || c.Score != 0 || c.Total != 0 {
		t.Fatalf("completion = %+v, want 0/0", c)
	}
	if tt.Next().Done {
		t.Fatal("completion reported twice")
	}
}

func TestTest_CompletionOnlyOnce(t *testing.T) {
	tt := NewTest(threeQuestions()[:1])
	tt.Select("4")
	tt.Submit()
	if !tt.Next().Done {
		t.Fatal("expected completion")
	}
	if tt.Next().Done {
		t.Fatal("completion reported twice")
	}
}

func TestTest_SkipQuestionWithoutOptions(t *testing.T) {
	qs := []Question{
		{ID: "1", Text: "Define osmosis.", Answer: "Diffusion of water", Options: []string{}},
		threeQuestions()[0],
	}
	tt := NewTest(qs)

	if tt.Submit() {
		t.Fatal("submit without selection accepted")
	}
	if !tt.Skip() {
		t.Fatal("skip refused for a question without options")
	}
	if tt.Skip() {
		t.Fatal("skip accepted twice")
	}
	tt.Next()

	if tt.Skip() {
		t.Fatal("skip accepted for a question with options")
	}
	tt.Select("4")
	tt.Submit()
	c := tt.Next()
	if !c.Done || c.Score != 1 || c.Total != 2 {
		t.Fatalf("completion = %+v, want 1/2", c)
	}
	if got := tt.Given(); !reflect.DeepEqual(got, []string{"", "4"}) {
		t.Fatalf("given = %q", got)
	}
}
