package feedback

import (
	"math"
	"regexp"
	"strings"
)

const (
	MinScore = 15
	MaxScore = 100

	cleanScoreFloor       = 90
	noChangeScoreFloor    = 95
	problemScoreCap       = 60
	neutralScoreWithWords = 75
	neutralScoreNoWords   = 50
)

var noChangePattern = regexp.MustCompile(`(?i)no\s+change|looks\s+good|fine|perfect`)

// Score rates the user's message against the suggestion in text.
// The result is always within [MinScore, MaxScore].
func (a *Analyzer) Score(userMessage, text string) int {
	sections := ExtractSections(Normalize(text))
	return a.score(userMessage, sections,
		a.keywords.Classify(sections.Grammar),
		a.keywords.Classify(sections.Vocabulary),
	)
}

func (a *Analyzer) score(userMessage string, sections Sections, grammar, vocabulary Polarity) int {
	var candidates []string
	if sections.Suggestion != "" {
		candidates = Candidates(sections.Suggestion)
	}
	userTokens := tokenSet(Tokenize(userMessage))

	best := 0.0
	if len(userTokens) > 0 {
		for _, candidate := range candidates {
			candidateTokens := tokenSet(Tokenize(candidate))
			if len(candidateTokens) == 0 {
				continue
			}
			if j := Jaccard(userTokens, candidateTokens); j > best {
				best = j
			}
		}
	}
	score := int(math.RoundToEven(best * 100))

	switch {
	case grammar == PolarityPositive && vocabulary == PolarityPositive:
		score = max(score, cleanScoreFloor)
		if len(candidates) == 0 || noChangePattern.MatchString(sections.Suggestion) {
			score = max(score, noChangeScoreFloor)
		}
	case grammar == PolarityNegative || vocabulary == PolarityNegative:
		score = min(score, problemScoreCap)
	case len(candidates) == 0:
		if len(userTokens) > 0 {
			score = max(score, neutralScoreWithWords)
		} else {
			score = max(score, neutralScoreNoWords)
		}
	}

	return min(MaxScore, max(MinScore, score))
}

// Tokenize lower-cases s and returns its purely alphabetic words.
// Words mixing letters with digits or non-Latin letters are dropped.
func Tokenize(s string) []string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if isLowerAlpha(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func isLowerAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return w != ""
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
