package report

import (
	"os"
	"path/filepath"
	"testing"
	"text/template"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/langtalk/internal/assets"
	"github.com/at-ishikawa/langtalk/internal/conversation"
	"github.com/at-ishikawa/langtalk/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/langtalk/internal/feedback"
)

var startedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func testTurns() []conversation.Turn {
	return []conversation.Turn{
		{
			UserMessage: "I go to school yesterday",
			CreatedAt:   startedAt.Add(time.Minute),
			Result: feedback.Result{
				AIReply:    "Why did you go there?",
				Score:      60,
				Level:      feedback.LevelNeeds,
				Categories: []feedback.Category{feedback.CategoryGrammar},
				Grammar:    "Use went",
				Suggestion: "I went to school yesterday",
				Voca:       []feedback.VocabEntry{{Word: "school"}},
			},
		},
	}
}

func TestWriter_Write(t *testing.T) {
	tmpl, err := assets.ParseReportTemplate("")
	require.NoError(t, err)

	tests := []struct {
		name        string
		turns       []conversation.Turn
		definitions map[string]rapidapi.Response

		wantErr      error
		wantFile     string
		wantContains []string
	}{
		{
			name:     "writes a markdown report",
			turns:    testTurns(),
			wantFile: "20250301-100000-hospital.md",
			wantContains: []string{
				"# hospital role-play",
				"### 1. I go to school yesterday",
				"- Score: 60 (needs)",
				"> Use went",
				"- **school**",
			},
		},
		{
			name:  "includes dictionary definitions",
			turns: testTurns(),
			definitions: map[string]rapidapi.Response{
				"school": {
					Word: "school",
					Results: []rapidapi.Result{
						{Definition: "an educational institution", PartOfSpeech: "noun"},
					},
				},
			},
			wantFile: "20250301-100000-hospital.md",
			wantContains: []string{
				"- **school**",
				"  - [noun] an educational institution",
			},
		},
		{
			name:    "no turns",
			turns:   nil,
			wantErr: ErrNoTurns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "sessions")
			writer := NewWriter(tmpl, dir, false)
			summary := conversation.Summarize(conversation.DefaultScenario(), startedAt, tt.turns)

			got, err := writer.Write(summary, tt.turns, tt.definitions)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), got.Markdown)
			assert.Empty(t, got.PDF)

			content, err := os.ReadFile(got.Markdown)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(content), want)
			}
		})
	}
}

func TestWriter_Write_PDF(t *testing.T) {
	tmpl := template.Must(template.New("plain").Parse("# {{ .Summary.Scenario.Topic }}\n\nTurns: {{ .Summary.TurnCount }}\n"))
	dir := t.TempDir()
	writer := NewWriter(tmpl, dir, true)
	summary := conversation.Summarize(conversation.DefaultScenario(), startedAt, testTurns())

	got, err := writer.Write(summary, testTurns(), nil)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(got.PDF))
	assert.FileExists(t, got.PDF)
	assert.FileExists(t, got.Markdown)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  string
	}{
		{name: "plain topic", topic: "hospital", want: "20250301-100000-hospital"},
		{name: "spaces and case", topic: " Job Interview ", want: "20250301-100000-job-interview"},
		{name: "path characters", topic: "../cafe", want: "20250301-100000-cafe"},
		{name: "empty topic", topic: "", want: "20250301-100000-session"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := conversation.Summary{
				Scenario:  conversation.Scenario{Topic: tt.topic},
				StartedAt: startedAt,
			}
			assert.Equal(t, tt.want, fileName(summary))
		})
	}
}
