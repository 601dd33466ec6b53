// Package pipeline runs one generation: extract, gate, generate, persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/questiongen"
)

var (
	ErrEmptyText     = errors.New("please enter some text to generate questions from")
	ErrTooLittleText = errors.New("file contains too little text to generate questions")
)

const (
	// DefaultFileCount is the number of questions requested for a file.
	DefaultFileCount = 5

	// DefaultPasteCount is the preselected count for pasted text.
	DefaultPasteCount = 10

	// MinFileTextLength is the fewest characters a file must yield.
	MinFileTextLength = 50
)

// PasteCounts are the counts offered for pasted text.
var PasteCounts = []int{10, 20, 40, 50}

// Extractor reads the text of a file.
type Extractor interface {
	Extract(ctx context.Context, f extract.File) (string, error)
}

// Outcome is a successful run.
type Outcome struct {
	Questions []questiongen.Question
	// Persisted is the best-effort save of the upload. Its error is never
	// returned by the pipeline.
	Persisted persist.Result
}

// Pipeline wires the collaborators of a generation run.
type Pipeline struct {
	extractor Extractor
	generator questiongen.Generator
	gateway   *persist.Gateway
	logger    zerolog.Logger
}

// New creates a Pipeline. gateway may be nil.
func New(ext Extractor, gen questiongen.Generator, gateway *persist.Gateway, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor: ext,
		generator: gen,
		gateway:   gateway,
		logger:    logger.With().Str("component", "pipeline").Logger(),
	}
}

// ProcessFile extracts f, generates count questions (DefaultFileCount when
// count is not positive) and saves the upload for the signed-in user.
func (p *Pipeline) ProcessFile(ctx context.Context, f extract.File, lang i18n.Language, count int) (Outcome, error) {
	if err := extract.Validate(f.Name, f.Size()); err != nil {
		return Outcome{}, err
	}
	if count <= 0 {
		count = DefaultFileCount
	}

	start := time.Now()
	text, err := p.extractor.Extract(ctx, f)
	if err != nil {
		return Outcome{}, err
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinFileTextLength {
		return Outcome{}, ErrTooLittleText
	}

	questions, err := p.generator.Generate(ctx, questiongen.Input{Text: text, Language: lang, Count: count})
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Questions: questions}
	if ctx.Err() == nil {
		out.Persisted = p.gateway.SaveUpload(ctx, f, questions)
	}

	p.logger.Info().
		Str("file", f.Name).
		Int("questions", len(questions)).
		Bool("persisted", out.Persisted.Saved()).
		Dur("elapsed", time.Since(start)).
		Msg("file processed")
	return out, nil
}

// ProcessText generates count questions (DefaultPasteCount when count is
// not positive) from pasted text. Pasted text is not persisted.
func (p *Pipeline) ProcessText(ctx context.Context, text string, lang i18n.Language, count int) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		return Outcome{}, ErrEmptyText
	}
	if count <= 0 {
		count = DefaultPasteCount
	}

	questions, err := p.generator.Generate(ctx, questiongen.Input{Text: text, Language: lang, Count: count})
	if err != nil {
		return Outcome{}, err
	}
	p.logger.Info().Int("questions", len(questions)).Msg("text processed")
	return Outcome{Questions: questions}, nil
}

// LoadFile reads a file from disk for ProcessFile. The size and suffix are
// checked before the contents are read.
func LoadFile(path string) (extract.File, error) {
	path = cleanPath(path)
	info, err := os.Stat(path)
	if err != nil {
		return extract.File{}, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return extract.File{}, fmt.Errorf("%s is a directory", path)
	}
	name := filepath.Base(path)
	if err := extract.Validate(name, info.Size()); err != nil {
		return extract.File{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return extract.File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return extract.File{Name: name, MIMEType: mimeFor(name), Data: data}, nil
}

// cleanPath undoes the quoting and escaping terminals apply to dropped
// file paths.
func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') && p[len(p)-1] == p[0] {
		p = p[1 : len(p)-1]
	}
	p = strings.ReplaceAll(p, `\ `, " ")
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

func mimeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return extract.MIMEText
	case ".pdf":
		return extract.MIMEPDF
	case ".docx":
		return extract.MIMEDOCX
	}
	return ""
}
