// Package extract turns uploaded documents into plain text.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrExtractionFailed = errors.New("failed to extract text")
	ErrPDFUnsupported   = errors.New("PDF text extraction is not available")
	ErrFileTooLarge     = errors.New("file is too large")
)

// MIME types recognised when a file has no usable suffix.
const (
	MIMEText = "text/plain"
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// File is an uploaded document.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Size returns the length of the file contents in bytes.
func (f File) Size() int64 { return int64(len(f.Data)) }

type kind int

const (
	kindUnknown kind = iota
	kindText
	kindPDF
	kindDOCX
)

func kindOf(f File) kind {
	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".txt":
		return kindText
	case ".pdf":
		return kindPDF
	case ".docx":
		return kindDOCX
	}
	mt := strings.ToLower(f.MIMEType)
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case MIMEText:
		return kindText
	case MIMEPDF:
		return kindPDF
	case MIMEDOCX:
		return kindDOCX
	}
	return kindUnknown
}

// Extractor dispatches a file to the parser for its type.
type Extractor struct {
	pdf    PDFReader
	logger zerolog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPDFReader replaces the default pdftotext-backed reader.
func WithPDFReader(r PDFReader) Option {
	return func(e *Extractor) { e.pdf = r }
}

// WithLogger sets the logger used for parser failures.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		pdf:    NewPopplerReader(""),
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract returns the plain text of f. It applies no size limit.
func (e *Extractor) Extract(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch kindOf(f) {
	case kindText:
		return string(bytes.TrimPrefix(f.Data, []byte("\xef\xbb\xbf"))), nil

	case kindDOCX:
		text, err := docxText(f.Data)
		if err != nil {
			return "", e.failed(f, err)
		}
		return text, nil

	case kindPDF:
		if e.pdf == nil || !e.pdf.Available() {
			return "", fmt.Errorf("%w: %s cannot be read here, paste its text instead", ErrPDFUnsupported, f.Name)
		}
		pages, err := e.pdf.Pages(ctx, f.Data)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", e.failed(f, err)
		}
		return joinPages(pages), nil
	}

	return "", fmt.Errorf("%w: %s. Please use %s files",
		ErrUnsupportedType, displayType(f), strings.Join(SupportedSuffixes, ", "))
}

func (e *Extractor) failed(f File, cause error) error {
	e.logger.Warn().Err(cause).Str("file", f.Name).Msg("text extraction failed")
	return fmt.Errorf("%w from %s", ErrExtractionFailed, f.Name)
}

func displayType(f File) string {
	if ext := filepath.Ext(f.Name); ext != "" {
		return ext
	}
	if f.MIMEType != "" {
		return f.MIMEType
	}
	return "unknown"
}

func joinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p)
	}
	return b.String()
}
