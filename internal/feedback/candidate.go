package feedback

import (
	"regexp"
	"sort"
	"strings"
)

// Sentences close to this many words are the most representative corrections.
const targetCandidateWords = 9

var (
	enumerationPattern = regexp.MustCompile(`^\d+\.\s*`)
	greetingPattern    = regexp.MustCompile(`(?i)^(?:hi|hello|hey)(?:[!,.]\s*|\s+|$)`)
)

// Candidates turns a suggestion span into cleaned candidate sentences,
// ordered by closeness to a nine-word sentence. Ties keep their order.
func Candidates(suggestion string) []string {
	lines := strings.FieldsFunc(suggestion, isLineBreak)
	candidates := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = enumerationPattern.ReplaceAllString(line, "")
		line = greetingPattern.ReplaceAllString(line, "")
		candidates = append(candidates, line)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return distanceFromTarget(candidates[i]) < distanceFromTarget(candidates[j])
	})
	return candidates
}

func distanceFromTarget(sentence string) int {
	d := len(strings.Fields(sentence)) - targetCandidateWords
	if d < 0 {
		return -d
	}
	return d
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
