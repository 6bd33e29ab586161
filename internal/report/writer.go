// Package report writes the summary of a chat session as markdown and PDF.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/at-ishikawa/langtalk/internal/conversation"
	"github.com/at-ishikawa/langtalk/internal/dictionary/rapidapi"
)

var ErrNoTurns = errors.New("the session has no turns to report")

// Data is passed to the report template
type Data struct {
	Summary     conversation.Summary
	Turns       []conversation.Turn
	Definitions map[string]rapidapi.Response
}

type Files struct {
	Markdown string
	// PDF is empty unless PDF output is enabled
	PDF string
}

type Writer struct {
	template        *template.Template
	outputDirectory string
	pdf             bool
}

func NewWriter(tmpl *template.Template, outputDirectory string, pdf bool) *Writer {
	return &Writer{
		template:        tmpl,
		outputDirectory: outputDirectory,
		pdf:             pdf,
	}
}

func (w *Writer) Write(
	summary conversation.Summary,
	turns []conversation.Turn,
	definitions map[string]rapidapi.Response,
) (Files, error) {
	if len(turns) == 0 {
		return Files{}, ErrNoTurns
	}
	if err := os.MkdirAll(w.outputDirectory, 0755); err != nil {
		return Files{}, fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDirectory, err)
	}

	markdownPath := filepath.Join(w.outputDirectory, fileName(summary)+".md")
	if err := w.writeMarkdown(markdownPath, Data{
		Summary:     summary,
		Turns:       turns,
		Definitions: definitions,
	}); err != nil {
		return Files{}, err
	}

	files := Files{Markdown: markdownPath}
	if !w.pdf {
		return files, nil
	}
	pdfPath, err := convertMarkdownToPDF(markdownPath)
	if err != nil {
		return files, fmt.Errorf("convertMarkdownToPDF > %w", err)
	}
	files.PDF = pdfPath
	return files, nil
}

func (w *Writer) writeMarkdown(path string, data Data) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := w.template.Execute(file, data); err != nil {
		return fmt.Errorf("template.Execute > %w", err)
	}
	return nil
}

// fileName is "<start time>-<topic>", e.g. 20250301-100000-hospital
func fileName(summary conversation.Summary) string {
	topic := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, strings.TrimSpace(summary.Scenario.Topic))
	topic = strings.Trim(topic, "-")
	if topic == "" {
		topic = "session"
	}
	return summary.StartedAt.Format("20060102-150405") + "-" + topic
}
