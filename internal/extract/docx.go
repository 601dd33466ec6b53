package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// docxText reads the body text of a .docx document. Each paragraph is one
// line; table rows become lines with tab-separated cells.
func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx container: %w", err)
	}
	if len(doc.Document.Body.Items) == 0 {
		return "", errors.New("document body not found")
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			lines = append(lines, it.String())
		case *docx.Table:
			lines = append(lines, tableLines(it)...)
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

func tableLines(t *docx.Table) []string {
	var rows []string
	for _, row := range t.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			var paras []string
			for _, p := range cell.Paragraphs {
				if s := strings.TrimSpace(p.String()); s != "" {
					paras = append(paras, s)
				}
			}
			cells = append(cells, strings.Join(paras, " "))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	return rows
}
