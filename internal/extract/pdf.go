package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PDFReader returns the text layer of a PDF, one entry per page.
type PDFReader interface {
	Available() bool
	Pages(ctx context.Context, data []byte) ([]string, error)
}

// PopplerReader shells out to pdftotext from poppler-utils.
type PopplerReader struct {
	bin string
}

// NewPopplerReader returns a reader using bin, or "pdftotext" from PATH
// when bin is empty.
func NewPopplerReader(bin string) *PopplerReader {
	if bin == "" {
		bin = "pdftotext"
	}
	return &PopplerReader{bin: bin}
}

func (p *PopplerReader) Available() bool {
	_, err := exec.LookPath(p.bin)
	return err == nil
}

func (p *PopplerReader) Pages(ctx context.Context, data []byte) ([]string, error) {
	// pdftotext reads stdin when given "-" and separates pages with form feeds.
	cmd := exec.CommandContext(ctx, p.bin, "-enc", "UTF-8", "-", "-")
	cmd.Stdin = bytes.NewReader(data)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftotext: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.Split(stdout.String(), "\f"), nil
}
