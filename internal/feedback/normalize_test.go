package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "header variants",
			input: "Grammar : 좋아요\nVocabulary- 완벽\nSuggestion -\nI go.",
			want:  "grammar: 좋아요\nvocabulary: 완벽\n\nsuggestion:\nI go.",
		},
		{
			name:  "suggestion glued to previous sentence",
			input: "good.suggestion: I go.",
			want:  "good.\n\nsuggestion: I go.",
		},
		{
			name:  "blank line already present",
			input: "grammar: 좋아요\n\nsuggestion: I go.",
			want:  "grammar: 좋아요\n\nsuggestion: I go.",
		},
		{
			name:  "many blank lines are kept",
			input: "grammar: 좋아요\n\n\n\nSUGGESTION: I go.",
			want:  "grammar: 좋아요\n\n\n\nsuggestion: I go.",
		},
		{
			name:  "header inside a longer word",
			input: "mygrammar: x",
			want:  "mygrammar: x",
		},
		{
			name:  "header followed by hangul without colon",
			input: "grammar: Grammar쪽은 완벽합니다!",
			want:  "grammar: Grammar쪽은 완벽합니다!",
		},
		{
			name:  "text without headers",
			input: "Nice to meet you.",
			want:  "Nice to meet you.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Grammar- 어색한 표현입니다 수정 필요\nvocabulary: 문제 없음\nsuggestion:\nI go to school.",
		"grammar: Grammar쪽은 완벽합니다!\nvocabulary: Vocabulary쪽은 완벽합니다\n\n\nsuggestion:\nI go to school.",
		"x\nSuggestion-y\nSUGGESTION : z",
		"[AI Reply]: Sure.\n[Feedback]:\nGRAMMAR- 좋아요 VOCABULARY:완벽 suggestion: fine",
		"suggestion:suggestion:suggestion:",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input: %q", input)
	}
}
