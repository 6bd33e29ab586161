package feedback

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Polarity tells whether a feedback section reports a problem.
type Polarity int

const (
	PolarityNegative Polarity = -1
	PolarityNeutral  Polarity = 0
	PolarityPositive Polarity = 1
)

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Keywords holds the affect words used to classify a section.
// A Keywords value must not be modified after it is handed to an Analyzer.
type Keywords struct {
	Positive []string
	Negative []string
}

var defaultKeywords = Keywords{
	Positive: []string{"완벽", "자연", "좋", "적절", "문제 없음", "괜찮", "정확", "올바르"},
	Negative: []string{"어색", "부자연", "수정", "개선", "문제", "애매", "불분명", "오류", "틀림"},
}

// DefaultKeywords returns the built-in Korean keyword table.
func DefaultKeywords() *Keywords {
	return &defaultKeywords
}

// NewKeywords builds a table from the given lists. An empty list falls back
// to the corresponding default list.
func NewKeywords(positive, negative []string) *Keywords {
	k := Keywords{
		Positive: prepareKeywords(positive),
		Negative: prepareKeywords(negative),
	}
	if len(k.Positive) == 0 {
		k.Positive = defaultKeywords.Positive
	}
	if len(k.Negative) == 0 {
		k.Negative = defaultKeywords.Negative
	}
	return &k
}

func prepareKeywords(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(norm.NFC.String(strings.TrimSpace(w)))
		if w == "" {
			continue
		}
		result = append(result, w)
	}
	return result
}

// Classify labels a section. Mixed signals resolve to neutral, never negative.
func (k *Keywords) Classify(text string) Polarity {
	if text == "" {
		return PolarityNeutral
	}
	t := strings.ToLower(norm.NFC.String(text))
	pos := containsAny(t, k.Positive)
	neg := containsAny(t, k.Negative)
	switch {
	case pos && !neg:
		return PolarityPositive
	case neg && !pos:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
