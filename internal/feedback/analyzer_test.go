package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze(t *testing.T) {
	scenarioA := "grammar: Grammar쪽은 완벽합니다!\nvocabulary: Vocabulary쪽은 완벽합니다\n\n\nsuggestion:\nI go to school."

	tests := []struct {
		name        string
		analyzer    *Analyzer
		userMessage string
		raw         string
		want        Result
	}{
		{
			name:        "clean feedback",
			analyzer:    NewAnalyzer(),
			userMessage: "I go school",
			raw:         scenarioA,
			want: Result{
				Reply:      scenarioA,
				AIReply:    scenarioA,
				Score:      90,
				Level:      LevelNeutral,
				Categories: []Category{},
				Grammar:    "Grammar쪽은 완벽합니다!",
				Vocabulary: "Vocabulary쪽은 완벽합니다",
				Suggestion: "I go to school.",
				Voca:       []VocabEntry{},
			},
		},
		{
			name:        "grammar problem",
			analyzer:    NewAnalyzer(),
			userMessage: "I go school",
			raw:         "Grammar- 어색한 표현입니다 수정 필요\nvocabulary: 문제 없음\nsuggestion:\nI go to school.",
			want: Result{
				Reply:      "grammar: 어색한 표현입니다 수정 필요\nvocabulary: 문제 없음\n\nsuggestion:\nI go to school.",
				AIReply:    "grammar: 어색한 표현입니다 수정 필요\nvocabulary: 문제 없음\n\nsuggestion:\nI go to school.",
				Score:      60,
				Level:      LevelNeeds,
				Categories: []Category{CategoryGrammar},
				Grammar:    "어색한 표현입니다 수정 필요",
				Vocabulary: "문제 없음",
				Suggestion: "I go to school.",
				Voca:       []VocabEntry{},
			},
		},
		{
			name:        "vocabulary problem mines entries",
			analyzer:    NewAnalyzer(),
			userMessage: "My leg is pain",
			raw:         "[AI Reply]: Sure, I can help.\n[Feedback]:\ngrammar: 완벽합니다\nvocabulary: hurt (아프다) 표현으로 수정하세요\nsuggestion: My leg hurts a lot.",
			want: Result{
				Reply:      "[AI Reply]: Sure, I can help.\n[Feedback]:\ngrammar: 완벽합니다\nvocabulary: hurt (아프다) 표현으로 수정하세요\n\nsuggestion: My leg hurts a lot.",
				AIReply:    "Sure, I can help.",
				Feedback:   "grammar: 완벽합니다\nvocabulary: hurt (아프다) 표현으로 수정하세요\n\nsuggestion: My leg hurts a lot.",
				Score:      29,
				Level:      LevelNeeds,
				Categories: []Category{CategoryVocabulary},
				Grammar:    "완벽합니다",
				Vocabulary: "hurt (아프다) 표현으로 수정하세요",
				Suggestion: "My leg hurts a lot.",
				Voca: []VocabEntry{
					{Word: "hurt", Meaning: "아프다"},
				},
			},
		},
		{
			name:        "always mining falls back to the suggestion",
			analyzer:    NewAnalyzer(WithMiningMode(MiningAlways)),
			userMessage: "I walk",
			raw:         scenarioA,
			want: Result{
				Reply:      scenarioA,
				AIReply:    scenarioA,
				Score:      90,
				Level:      LevelNeutral,
				Categories: []Category{},
				Grammar:    "Grammar쪽은 완벽합니다!",
				Vocabulary: "Vocabulary쪽은 완벽합니다",
				Suggestion: "I go to school.",
				Voca: []VocabEntry{
					{Word: "go", Example: "I go to school."},
					{Word: "school", Example: "I go to school."},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.analyzer.Analyze(tt.userMessage, tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Score, tt.analyzer.Score(tt.userMessage, tt.raw))
		})
	}
}

func TestAnalyzer_Analyze_CustomKeywords(t *testing.T) {
	analyzer := NewAnalyzer(WithKeywords(NewKeywords([]string{"great"}, []string{"wrong"})))
	got := analyzer.Analyze("I goes", "grammar: wrong verb\nvocabulary: great\nsuggestion: I go.")

	assert.Equal(t, []Category{CategoryGrammar}, got.Categories)
	assert.LessOrEqual(t, got.Score, 60)
}

func TestParseMiningMode(t *testing.T) {
	mode, err := ParseMiningMode("")
	require.NoError(t, err)
	assert.Equal(t, MiningFlagged, mode)

	mode, err = ParseMiningMode("always")
	require.NoError(t, err)
	assert.Equal(t, MiningAlways, mode)

	_, err = ParseMiningMode("sometimes")
	assert.Error(t, err)
}
