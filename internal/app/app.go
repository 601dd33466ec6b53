package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/screens/entry"
	"github.com/dayne-app/dayne/internal/screens/flashcards"
	"github.com/dayne-app/dayne/internal/screens/generating"
	"github.com/dayne-app/dayne/internal/screens/history"
	"github.com/dayne-app/dayne/internal/screens/modeselect"
	"github.com/dayne-app/dayne/internal/screens/testmode"
	"github.com/dayne-app/dayne/internal/screens/uploads"
	"github.com/dayne-app/dayne/internal/screens/welcome"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/layout"
)

// Deps are the collaborators the TUI drives.
type Deps struct {
	Pipeline *pipeline.Pipeline
	// Gateway may be nil when persistence is disabled.
	Gateway  *persist.Gateway
	Language i18n.Language
	Logger   zerolog.Logger

	// StartUpload, when set, opens that stored upload in StartMode
	// instead of the entry screen.
	StartUpload int
	StartMode   study.Mode

	// Splash shows the welcome screen before the entry screen.
	Splash bool
}

type generatedMsg struct {
	seq     uint64
	outcome pipeline.Outcome
	err     error
}

type storedQuestionsMsg struct {
	uploadID  int
	mode      study.Mode
	questions []study.Question
	err       error
}

type recordedMsg struct {
	result persist.Result
}

// AppModel is the root Bubble Tea model. It owns the orchestrator and
// swaps screens whenever the view changes.
type AppModel struct {
	deps    Deps
	ctx     context.Context
	machine *orchestrator.Machine
	router  *router.Router
	entry   *entry.EntryScreen
	lang    i18n.Language
	user    string
	logger  zerolog.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel on the entry screen, or on the
// splash when deps.Splash is set.
func newAppModel(ctx context.Context, deps Deps) AppModel {
	lang := deps.Language
	if !lang.Valid() {
		lang = i18n.Default
	}

	var user string
	if sess := deps.Gateway.Session(ctx); sess != nil {
		user = sess.Email
		if user == "" {
			user = sess.UserID
		}
	}

	home := entry.New(lang, user)
	var first screen.Screen = home
	if deps.Splash && deps.StartUpload == 0 {
		first = welcome.New(lang, func() screen.Screen { return home })
	}
	return AppModel{
		deps:    deps,
		ctx:     ctx,
		machine: orchestrator.New(),
		router:  router.New(first),
		entry:   home,
		lang:    lang,
		user:    user,
		logger:  deps.Logger.With().Str("component", "tui").Logger(),
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.deps.StartUpload > 0 {
		return tea.Batch(cmd, m.loadUpload(m.deps.StartUpload, m.deps.StartMode))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.machine.Cancel()
			return m, tea.Quit
		case "ctrl+l":
			m.lang = m.lang.Toggle()
			return m, m.router.Broadcast(screen.LanguageMsg{Language: m.lang})
		}

	case screen.GenerateMsg:
		return m.begin(msg.Source)

	case generatedMsg:
		return m.finishGeneration(msg)

	case screen.CancelMsg:
		if m.machine.Cancel() {
			m.logger.Info().Msg("generation cancelled")
		}
		return m, m.showEntry()

	case screen.ChooseModeMsg:
		if !m.machine.Choose(msg.Mode) {
			return m, nil
		}
		return m, m.showStudy()

	case screen.ShowUploadsMsg:
		return m, m.router.Push(uploads.New(m.deps.Gateway.Uploads, m.lang))

	case screen.ShowHistoryMsg:
		return m, m.router.Push(history.New(m.deps.Gateway.History, m.lang))

	case screen.StudyUploadMsg:
		return m, m.loadUpload(msg.UploadID, msg.Mode)

	case storedQuestionsMsg:
		if msg.err != nil {
			m.machine.SetNotice(msg.err.Error())
			return m, m.showEntry()
		}
		id := msg.uploadID
		if !m.machine.StudyDirect(msg.questions, msg.mode, &id) {
			return m, nil
		}
		return m, m.showStudy()

	case screen.CompletedMsg:
		return m.complete(msg)

	case screen.ReturnMsg:
		m.machine.Return()
		return m, m.showEntry()

	case recordedMsg:
		if msg.result.Err != nil {
			m.logger.Warn().Err(msg.result.Err).Msg("study session not recorded")
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) begin(src orchestrator.Source) (tea.Model, tea.Cmd) {
	ticket, err := m.machine.Begin(m.ctx, src)
	if err != nil {
		m.machine.SetNotice(err.Error())
		return m, m.showEntry()
	}
	m.logger.Info().
		Uint64("seq", ticket.Seq).
		Bool("file", src.IsFile()).
		Int("count", src.Count).
		Msg("generation started")

	return m, tea.Batch(
		m.router.Reset(generating.New(src, m.lang)),
		m.generate(ticket, src),
	)
}

// generate runs the pipeline for one ticket off the event loop.
func (m AppModel) generate(t orchestrator.Ticket, src orchestrator.Source) tea.Cmd {
	p, lang := m.deps.Pipeline, m.lang
	return func() tea.Msg {
		if !src.IsFile() {
			out, err := p.ProcessText(t.Ctx, src.Text, lang, src.Count)
			return generatedMsg{seq: t.Seq, outcome: out, err: err}
		}
		f, err := pipeline.LoadFile(src.Path)
		if err != nil {
			return generatedMsg{seq: t.Seq, err: err}
		}
		out, err := p.ProcessFile(t.Ctx, f, lang, src.Count)
		return generatedMsg{seq: t.Seq, outcome: out, err: err}
	}
}

func (m AppModel) finishGeneration(msg generatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !m.machine.Fail(msg.seq, msg.err) {
			m.logger.Debug().Uint64("seq", msg.seq).Msg("stale generation result dropped")
			return m, nil
		}
		m.logger.Warn().Err(msg.err).Uint64("seq", msg.seq).Msg("generation failed")
		return m, m.showEntry()
	}

	if p := msg.outcome.Persisted; p.Err != nil {
		m.logger.Warn().Err(p.Err).Msg("upload not saved")
	}
	qs := msg.outcome.Questions
	if !m.machine.Succeed(msg.seq, qs, msg.outcome.Persisted.UploadID) {
		m.logger.Debug().Uint64("seq", msg.seq).Msg("stale generation result dropped")
		return m, nil
	}
	return m, m.router.Reset(modeselect.New(len(qs), m.lang))
}

func (m AppModel) loadUpload(id int, mode study.Mode) tea.Cmd {
	gw, ctx := m.deps.Gateway, m.ctx
	return func() tea.Msg {
		qs, err := gw.Questions(ctx, id)
		return storedQuestionsMsg{uploadID: id, mode: mode, questions: qs, err: err}
	}
}

func (m AppModel) complete(msg screen.CompletedMsg) (tea.Model, tea.Cmd) {
	rec := persist.StudyRecord{
		UploadID: m.machine.UploadID(),
		Mode:     string(m.machine.Mode()),
		Total:    msg.Completion.Total,
		Elapsed:  msg.Elapsed,
	}
	if msg.Completion.Graded {
		score := msg.Completion.Score
		rec.Score = &score
	}
	if !m.machine.Complete(msg.Completion) {
		return m, nil
	}

	gw, ctx := m.deps.Gateway, m.ctx
	record := func() tea.Msg {
		return recordedMsg{result: gw.RecordStudy(ctx, rec)}
	}
	return m, tea.Batch(m.showEntry(), record)
}

func (m AppModel) showEntry() tea.Cmd {
	m.entry.Update(screen.LanguageMsg{Language: m.lang})
	m.entry.SetStatus(m.machine.Notice(), m.machine.Last())
	return m.router.Reset(m.entry)
}

func (m AppModel) showStudy() tea.Cmd {
	qs := m.machine.Questions()
	if m.machine.Mode() == study.ModeTest {
		return m.router.Reset(testmode.New(qs, m.lang))
	}
	return m.router.Reset(flashcards.New(qs, m.lang))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	t := i18n.For(m.lang)
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(t.TooSmall, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := fmt.Sprintf("%s: %s", t.Language, m.lang)
	if m.user != "" {
		status = m.user + " · " + status
	}
	header := layout.RenderHeader(t.Logo, title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: t.Back},
		{Key: "Ctrl+C", Description: t.Quit},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, deps Deps) error {
	start := time.Now()
	p := tea.NewProgram(newAppModel(ctx, deps), tea.WithContext(ctx))
	_, err := p.Run()
	deps.Logger.Info().Dur("uptime", time.Since(start)).Msg("tui exited")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
