package study

// OptionClass is how an option should be shown.
type OptionClass int

const (
	Unselected OptionClass = iota
	Selected
	// Correct is the right answer, after submission.
	Correct
	// WrongPick is the user's wrong choice, after submission.
	WrongPick
	// Neutral is any other option after submission.
	Neutral
)

// Test is a graded multiple-choice run.
type Test struct {
	questions []Question
	index     int
	selected  string
	submitted bool
	score     int
	given     []string
	done      bool
}

func NewTest(questions []Question) *Test {
	return &Test{questions: questions}
}

func (t *Test) Empty() bool      { return len(t.questions) == 0 }
func (t *Test) Len() int         { return len(t.questions) }
func (t *Test) Index() int       { return t.index }
func (t *Test) Selected() string { return t.selected }
func (t *Test) Submitted() bool  { return t.submitted }
func (t *Test) Score() int       { return t.score }
func (t *Test) Done() bool       { return t.done }

// Given returns the submitted answers in order.
func (t *Test) Given() []string {
	return append([]string(nil), t.given...)
}

func (t *Test) Current() (Question, bool) {
	if t.Empty() {
		return Question{}, false
	}
	return t.questions[t.index], true
}

func (t *Test) IsLast() bool {
	return t.index == len(t.questions)-1
}

// Select picks opt. Selection is locked once the answer is submitted.
func (t *Test) Select(opt string) bool {
	if t.submitted || t.done || t.Empty() {
		return false
	}
	t.selected = opt
	return true
}

// Submit grades the current selection. It does nothing without a
// selection or after the answer was already submitted.
func (t *Test) Submit() bool {
	if t.submitted || t.selected == "" || t.done || t.Empty() {
		return false
	}
	t.submitted = true
	t.given = append(t.given, t.selected)
	if t.selected == t.questions[t.index].Answer {
		t.score++
	}
	return true
}

// Skip submits an empty answer for a question that has no options, so
// the run can go on. It counts as wrong and reveals the answer.
func (t *Test) Skip() bool {
	q, ok := t.Current()
	if !ok || t.submitted || t.done || len(q.Options) > 0 {
		return false
	}
	t.submitted = true
	t.selected = ""
	t.given = append(t.given, "")
	return true
}

// Next moves past a submitted question. After the last one the run
// completes with the final score.
func (t *Test) Next() Completion {
	if t.done {
		return Completion{}
	}
	if t.Empty() {
		t.done = true
		return Completion{Done: true, Graded: true}
	}
	if !t.submitted {
		return Completion{}
	}
	if t.IsLast() {
		t.done = true
		return Completion{Done: true, Graded: true, Score: t.score, Total: len(t.questions)}
	}
	t.index++
	t.selected = ""
	t.submitted = false
	return Completion{}
}

// Classify reports how opt should be shown for the current question.
func (t *Test) Classify(opt string) OptionClass {
	if !t.submitted {
		if opt == t.selected {
			return Selected
		}
		return Unselected
	}
	q, _ := t.Current()
	switch {
	case opt == q.Answer:
		return Correct
	case opt == t.selected:
		return WrongPick
	default:
		return Neutral
	}
}
