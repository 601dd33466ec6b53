package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePDF struct {
	available bool
	pages     []string
	err       error
	calls     int
}

func (f *fakePDF) Available() bool { return f.available }

func (f *fakePDF) Pages(_ context.Context, _ []byte) ([]string, error) {
	f.calls++
	return f.pages, f.err
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtract_PlainText(t *testing.T) {
	e := New()
	text, err := e.Extract(context.Background(), File{Name: "notes.TXT", Data: []byte("\xef\xbb\xbfhello world")})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtract_TextByMIME(t *testing.T) {
	e := New()
	text, err := e.Extract(context.Background(), File{Name: "clipboard", MIMEType: "text/plain; charset=utf-8", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
}

func TestExtract_DOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Photosynthesis</w:t></w:r><w:r><w:t xml:space="preserve"> converts light.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Step</w:t><w:tab/><w:t>one</w:t><w:br/><w:t>two</w:t></w:r></w:p>`)

	text, err := New().Extract(context.Background(), File{Name: "bio.docx", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light.\nStep\tone\ntwo", text)
}

func TestExtract_DOCXTable(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Elements</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>H</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Hydrogen</w:t></w:r></w:p></w:tc></w:tr>`+
			`<w:tr><w:tc><w:p><w:r><w:t>O</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Oxygen</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)

	text, err := New().Extract(context.Background(), File{Name: "chem.docx", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Elements\nH\tHydrogen\nO\tOxygen", text)
}

func TestExtract_DOCXWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("not a word document"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = New().Extract(context.Background(), File{Name: "fake.docx", Data: buf.Bytes()})
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_DOCXCorrupt(t *testing.T) {
	_, err := New().Extract(context.Background(), File{Name: "broken.docx", Data: []byte("not a zip")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))
	assert.Contains(t, err.Error(), "broken.docx")
	assert.NotContains(t, err.Error(), "zip")
}

func TestExtract_PDFPages(t *testing.T) {
	pdf := &fakePDF{available: true, pages: []string{" page one ", "", "page two\n"}}
	e := New(WithPDFReader(pdf))

	text, err := e.Extract(context.Background(), File{Name: "deck.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "page one\npage two", text)
	assert.Equal(t, 1, pdf.calls)
}

func TestExtract_PDFUnavailable(t *testing.T) {
	pdf := &fakePDF{available: false}
	_, err := New(WithPDFReader(pdf)).Extract(context.Background(), File{Name: "deck.pdf", Data: []byte("%PDF")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPDFUnsupported))
	assert.Contains(t, err.Error(), "deck.pdf")
	assert.Equal(t, 0, pdf.calls)
}

func TestExtract_PDFReaderError(t *testing.T) {
	pdf := &fakePDF{available: true, err: errors.New("syntax error")}
	_, err := New(WithPDFReader(pdf)).Extract(context.Background(), File{Name: "deck.pdf", MIMEType: MIMEPDF})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := New().Extract(context.Background(), File{Name: "slides.pptx", Data: []byte("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	for _, s := range []string{".txt", ".pdf", ".docx"} {
		assert.Contains(t, err.Error(), s)
	}
}

func TestExtract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Extract(ctx, File{Name: "a.txt", Data: []byte("x")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("a.txt", 10))
	assert.NoError(t, Validate("a.PDF", MaxFileSize))

	err := Validate("big.pdf", MaxFileSize+1)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	err = Validate("legacy.doc", 100)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), ".txt, .pdf, .docx")

	assert.ErrorIs(t, Validate("noext", 1), ErrUnsupportedType)
}

func TestAccepts(t *testing.T) {
	assert.True(t, Accepts("old.doc"))
	assert.True(t, Accepts("notes.TXT"))
	assert.False(t, Accepts("photo.png"))
}
