// Package orchestrator is the top-level view state machine:
//
//	Entry -> Generating -> ModeSelection -> Studying -> Entry
//
// plus Entry -> Studying for a stored upload. It owns the cancellation of
// the in-flight generation and drops results that arrive after the user
// has moved on.
package orchestrator

import (
	"context"
	"errors"
	"strings"

	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/study"
)

// ErrBusy is returned when Begin is called outside the entry view.
var ErrBusy = errors.New("a generation is already in progress")

// View is the screen currently shown.
type View int

const (
	ViewEntry View = iota
	ViewGenerating
	ViewModeSelection
	ViewStudying
)

func (v View) String() string {
	switch v {
	case ViewEntry:
		return "entry"
	case ViewGenerating:
		return "generating"
	case ViewModeSelection:
		return "mode-selection"
	case ViewStudying:
		return "studying"
	}
	return "unknown"
}

// Source is what a generation starts from: a file path or pasted text.
type Source struct {
	Path  string
	Text  string
	Count int
}

// IsFile reports whether the source is a file.
func (s Source) IsFile() bool { return s.Path != "" }

// Ticket identifies one generation run. Results must be reported with
// its Seq; Ctx is cancelled when the run is abandoned.
type Ticket struct {
	Seq uint64
	Ctx context.Context
}

// Machine holds the view state. It is not safe for concurrent use; the UI
// event loop owns it.
type Machine struct {
	view      View
	seq       uint64
	cancel    context.CancelFunc
	source    Source
	questions []questiongen.Question
	mode      study.Mode
	uploadID  *int
	notice    string
	last      *study.Completion
}

func New() *Machine {
	return &Machine{}
}

func (m *Machine) View() View                        { return m.view }
func (m *Machine) Questions() []questiongen.Question { return m.questions }
func (m *Machine) Mode() study.Mode                  { return m.mode }
func (m *Machine) Source() Source                    { return m.source }
func (m *Machine) Notice() string                    { return m.notice }
func (m *Machine) Last() *study.Completion           { return m.last }
func (m *Machine) UploadID() *int                    { return m.uploadID }
func (m *Machine) SetNotice(msg string)              { m.notice = msg }

// Begin starts a generation from the entry view. The returned ticket's
// context derives from parent.
func (m *Machine) Begin(parent context.Context, src Source) (Ticket, error) {
	if m.view != ViewEntry {
		return Ticket{}, ErrBusy
	}
	if !src.IsFile() && strings.TrimSpace(src.Text) == "" {
		return Ticket{}, pipeline.ErrEmptyText
	}

	ctx, cancel := context.WithCancel(parent)
	m.seq++
	m.cancel = cancel
	m.source = src
	m.view = ViewGenerating
	m.notice = ""
	m.questions = nil
	m.uploadID = nil
	return Ticket{Seq: m.seq, Ctx: ctx}, nil
}

// Succeed delivers the questions of run seq. It reports false when the
// run is stale and the result was dropped.
func (m *Machine) Succeed(seq uint64, questions []questiongen.Question, uploadID int) bool {
	if !m.current(seq) {
		return false
	}
	m.release()
	m.questions = questions
	if uploadID > 0 {
		m.uploadID = &uploadID
	}
	m.view = ViewModeSelection
	return true
}

// Fail returns to the entry view with err as the notice.
func (m *Machine) Fail(seq uint64, err error) bool {
	if !m.current(seq) {
		return false
	}
	m.release()
	m.questions = nil
	m.notice = err.Error()
	m.view = ViewEntry
	return true
}

// Cancel abandons the in-flight generation.
func (m *Machine) Cancel() bool {
	if m.view != ViewGenerating {
		return false
	}
	m.release()
	m.view = ViewEntry
	return true
}

// Choose starts studying the generated questions in mode.
func (m *Machine) Choose(mode study.Mode) bool {
	if m.view != ViewModeSelection {
		return false
	}
	m.mode = mode
	m.view = ViewStudying
	return true
}

// StudyDirect studies stored questions without generating.
func (m *Machine) StudyDirect(questions []questiongen.Question, mode study.Mode, uploadID *int) bool {
	if m.view != ViewEntry {
		return false
	}
	m.questions = questions
	m.mode = mode
	m.uploadID = uploadID
	m.notice = ""
	m.view = ViewStudying
	return true
}

// Complete ends a study run. The questions are discarded and the result
// kept for the entry view.
func (m *Machine) Complete(c study.Completion) bool {
	if m.view != ViewStudying {
		return false
	}
	m.last = &c
	m.reset()
	return true
}

// Return goes back to the entry view from mode selection or a study run
// without recording a result.
func (m *Machine) Return() bool {
	switch m.view {
	case ViewModeSelection, ViewStudying:
		m.reset()
		return true
	case ViewGenerating:
		return m.Cancel()
	}
	return false
}

func (m *Machine) current(seq uint64) bool {
	return m.view == ViewGenerating && seq == m.seq
}

func (m *Machine) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Machine) reset() {
	m.questions = nil
	m.mode = ""
	m.uploadID = nil
	m.view = ViewEntry
}
