package study

// Flashcards steps through questions one card at a time, showing the
// answer before moving on.
type Flashcards struct {
	questions []Question
	index     int
	revealed  bool
	done      bool
}

func NewFlashcards(questions []Question) *Flashcards {
	return &Flashcards{questions: questions}
}

func (f *Flashcards) Empty() bool    { return len(f.questions) == 0 }
func (f *Flashcards) Len() int       { return len(f.questions) }
func (f *Flashcards) Index() int     { return f.index }
func (f *Flashcards) Revealed() bool { return f.revealed }
func (f *Flashcards) Done() bool     { return f.done }

// Current returns the card being shown.
func (f *Flashcards) Current() (Question, bool) {
	if f.Empty() {
		return Question{}, false
	}
	return f.questions[f.index], true
}

// IsLast reports whether the current card is the final one.
func (f *Flashcards) IsLast() bool {
	return f.index == len(f.questions)-1
}

// Reveal shows the answer of the current card.
func (f *Flashcards) Reveal() {
	if f.Empty() {
		return
	}
	f.revealed = true
}

// Advance is the primary action: it reveals a hidden answer, otherwise
// moves to the next card. Advancing past the last revealed card completes
// the run. The completion is reported only once.
func (f *Flashcards) Advance() Completion {
	if f.done {
		return Completion{}
	}
	if f.Empty() {
		return f.complete()
	}
	if !f.revealed {
		f.revealed = true
		return Completion{}
	}
	if f.IsLast() {
		return f.complete()
	}
	f.index++
	f.revealed = false
	return Completion{}
}

// Retreat moves to the previous card with its answer hidden.
func (f *Flashcards) Retreat() {
	if f.done || f.index == 0 {
		return
	}
	f.index--
	f.revealed = false
}

func (f *Flashcards) complete() Completion {
	f.done = true
	return Completion{Done: true, Total: len(f.questions)}
}
