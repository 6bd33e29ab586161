package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/at-ishikawa/langtalk/internal/conversation"
	"github.com/at-ishikawa/langtalk/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/langtalk/internal/feedback"
	"github.com/at-ishikawa/langtalk/internal/report"
	"github.com/fatih/color"
)

//go:generate mockgen -source=chat.go -destination=../mocks/cli/mock_chat.go -package=mock_cli

type Definer interface {
	Define(ctx context.Context, entries []feedback.VocabEntry) (map[string]rapidapi.Response, error)
}

type ReportWriter interface {
	Write(summary conversation.Summary, turns []conversation.Turn, definitions map[string]rapidapi.Response) (report.Files, error)
}

// ChatCLI manages the interactive role-play session
type ChatCLI struct {
	*InteractiveCLI
	session *conversation.Session

	// optional
	definer      Definer
	reportWriter ReportWriter

	definitions map[string]rapidapi.Response
}

func NewChatCLI(
	stdin io.Reader,
	stdout io.Writer,
	session *conversation.Session,
	definer Definer,
	reportWriter ReportWriter,
) *ChatCLI {
	return &ChatCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		session:        session,
		definer:        definer,
		reportWriter:   reportWriter,
		definitions:    make(map[string]rapidapi.Response),
	}
}

// Chat prints the opening line, runs turns until the user quits and prints the summary.
func (c *ChatCLI) Chat(ctx context.Context) error {
	scenario := c.session.Scenario()
	_, _ = c.bold.Fprintf(c.stdoutWriter, "Role-play: %s (you are a %s, talking with a %s)\n", scenario.Topic, scenario.UserRole, scenario.AIRole)
	_, _ = fmt.Fprintln(c.stdoutWriter, "Type quit or exit to finish.")

	opening, err := c.session.Start(ctx)
	if err != nil {
		return fmt.Errorf("session.Start > %w", err)
	}
	c.printAIReply(opening)

	if err := c.Run(ctx, c); err != nil {
		return err
	}
	return c.finish()
}

func (c *ChatCLI) Session(ctx context.Context) error {
	_, _ = c.bold.Fprint(c.stdoutWriter, "You: ")
	line, err := c.readLine()
	if err != nil {
		return err
	}
	message := strings.TrimSpace(line)
	if message == "quit" || message == "exit" {
		return errEnd
	}

	turn, err := c.session.Send(ctx, message)
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyMessage) {
			return nil
		}
		return fmt.Errorf("session.Send > %w", err)
	}

	c.printAIReply(turn.Result.AIReply)
	c.printResult(turn.Result)
	c.printVocabulary(ctx, turn.Result.Voca)
	return nil
}

func (c *ChatCLI) printAIReply(reply string) {
	if reply == "" {
		return
	}
	_, _ = c.bold.Fprintf(c.stdoutWriter, "%s: ", c.session.Scenario().AIRole)
	_, _ = fmt.Fprintln(c.stdoutWriter, reply)
}

func (c *ChatCLI) printResult(result feedback.Result) {
	_, _ = levelColor(result.Level).Fprintf(c.stdoutWriter, "Score: %d (%s)\n", result.Score, result.Level)
	for _, section := range []struct {
		label   string
		content string
	}{
		{label: "Grammar", content: result.Grammar},
		{label: "Vocabulary", content: result.Vocabulary},
		{label: "Suggestion", content: result.Suggestion},
	} {
		if section.content == "" {
			continue
		}
		_, _ = c.italic.Fprintf(c.stdoutWriter, "%s: ", section.label)
		_, _ = fmt.Fprintln(c.stdoutWriter, section.content)
	}
}

func (c *ChatCLI) printVocabulary(ctx context.Context, entries []feedback.VocabEntry) {
	if len(entries) == 0 {
		return
	}
	c.lookup(ctx, entries)

	_, _ = c.italic.Fprintln(c.stdoutWriter, "Words to review:")
	for _, entry := range entries {
		line := "  - " + entry.Word
		if entry.Meaning != "" {
			line += ": " + entry.Meaning
		}
		_, _ = fmt.Fprintln(c.stdoutWriter, line)
		for _, definition := range c.definitions[entry.Word].Definitions(2) {
			_, _ = fmt.Fprintf(c.stdoutWriter, "      %s\n", definition)
		}
	}
}

func (c *ChatCLI) lookup(ctx context.Context, entries []feedback.VocabEntry) {
	if c.definer == nil {
		return
	}
	missing := make([]feedback.VocabEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := c.definitions[entry.Word]; !ok {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return
	}

	definitions, err := c.definer.Define(ctx, missing)
	if err != nil {
		slog.Default().Warn("failed to look up words", slog.Any("error", err))
	}
	for word, definition := range definitions {
		c.definitions[word] = definition
	}
}

func (c *ChatCLI) finish() error {
	summary := c.session.Summary()
	if summary.TurnCount == 0 {
		_, _ = fmt.Fprintln(c.stdoutWriter, "No messages were sent.")
		return nil
	}
	c.printSummary(summary)

	if c.reportWriter == nil {
		return nil
	}
	files, err := c.reportWriter.Write(summary, c.session.Turns(), c.definitions)
	if err != nil {
		return fmt.Errorf("reportWriter.Write > %w", err)
	}
	_, _ = fmt.Fprintf(c.stdoutWriter, "Report: %s\n", files.Markdown)
	if files.PDF != "" {
		_, _ = fmt.Fprintf(c.stdoutWriter, "PDF: %s\n", files.PDF)
	}
	return nil
}

func (c *ChatCLI) printSummary(summary conversation.Summary) {
	_, _ = c.bold.Fprintln(c.stdoutWriter, "Session summary")
	_, _ = fmt.Fprintf(c.stdoutWriter, "Turns: %d\n", summary.TurnCount)
	_, _ = fmt.Fprintf(c.stdoutWriter, "Average score: %d\n", summary.AverageScore)
	if summary.GrammarAverage != nil {
		_, _ = fmt.Fprintf(c.stdoutWriter, "Grammar average: %.1f\n", *summary.GrammarAverage)
	}
	if summary.VocabularyAverage != nil {
		_, _ = fmt.Fprintf(c.stdoutWriter, "Vocabulary average: %.1f\n", *summary.VocabularyAverage)
	}

	levels := make([]string, 0, len(summary.LevelCounts))
	for level, count := range summary.LevelCounts {
		levels = append(levels, fmt.Sprintf("%s=%d", level, count))
	}
	sort.Strings(levels)
	_, _ = fmt.Fprintf(c.stdoutWriter, "Levels: %s\n", strings.Join(levels, ", "))

	if len(summary.Vocabulary) > 0 {
		words := make([]string, 0, len(summary.Vocabulary))
		for _, entry := range summary.Vocabulary {
			words = append(words, entry.Word)
		}
		_, _ = fmt.Fprintf(c.stdoutWriter, "Words: %s\n", strings.Join(words, ", "))
	}
}

func levelColor(level feedback.Level) *color.Color {
	switch level {
	case feedback.LevelPerfect:
		return color.New(color.FgGreen)
	case feedback.LevelNeeds:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
