package conversation

import (
	"math"
	"time"

	"github.com/at-ishikawa/langtalk/internal/feedback"
)

// Summary aggregates the turns of one session into a report
type Summary struct {
	Scenario     Scenario  `json:"scenario" yaml:"scenario"`
	StartedAt    time.Time `json:"started_at" yaml:"started_at"`
	TurnCount    int       `json:"turn_count" yaml:"turn_count"`
	AverageScore int       `json:"average_score" yaml:"average_score"`

	// Averages over the turns flagged with the category; nil when no turn was flagged
	GrammarAverage    *float64               `json:"grammar_average,omitempty" yaml:"grammar_average,omitempty"`
	VocabularyAverage *float64               `json:"vocabulary_average,omitempty" yaml:"vocabulary_average,omitempty"`
	Categories        []feedback.Category    `json:"categories" yaml:"categories"`
	LevelCounts       map[feedback.Level]int `json:"level_counts" yaml:"level_counts"`
	Vocabulary        []feedback.VocabEntry  `json:"vocabulary" yaml:"vocabulary"`
}

func Summarize(scenario Scenario, startedAt time.Time, turns []Turn) Summary {
	summary := Summary{
		Scenario:    scenario,
		StartedAt:   startedAt,
		TurnCount:   len(turns),
		Categories:  make([]feedback.Category, 0, 2),
		LevelCounts: make(map[feedback.Level]int),
		Vocabulary:  make([]feedback.VocabEntry, 0),
	}
	if len(turns) == 0 {
		return summary
	}

	total := 0
	seenWords := make(map[string]struct{})
	for _, turn := range turns {
		total += turn.Result.Score
		summary.LevelCounts[turn.Result.Level]++
		for _, entry := range turn.Result.Voca {
			if _, ok := seenWords[entry.Word]; ok {
				continue
			}
			seenWords[entry.Word] = struct{}{}
			summary.Vocabulary = append(summary.Vocabulary, entry)
		}
	}
	summary.AverageScore = roundHalfUp(float64(total) / float64(len(turns)))

	summary.GrammarAverage = categoryAverage(turns, feedback.CategoryGrammar)
	summary.VocabularyAverage = categoryAverage(turns, feedback.CategoryVocabulary)
	for _, category := range []feedback.Category{feedback.CategoryGrammar, feedback.CategoryVocabulary} {
		for _, turn := range turns {
			if turn.Result.HasCategory(category) {
				summary.Categories = append(summary.Categories, category)
				break
			}
		}
	}
	return summary
}

func categoryAverage(turns []Turn, category feedback.Category) *float64 {
	total, count := 0, 0
	for _, turn := range turns {
		if !turn.Result.HasCategory(category) {
			continue
		}
		total += turn.Result.Score
		count++
	}
	if count == 0 {
		return nil
	}
	average := float64(total) / float64(count)
	return &average
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
