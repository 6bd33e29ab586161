package feedback

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// VocabEntry is a word worth studying, keyed by its lemma.
type VocabEntry struct {
	Word    string `json:"word" yaml:"word"`
	Meaning string `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

var (
	vocabularyWordPattern = regexp.MustCompile(`[A-Za-z-]+`)
	// "abandon (버리다)", "efficient - 효율적인", "dull: 지루한"
	meaningPattern = regexp.MustCompile(`^\s*[(:\-]\s*([가-힣 ,/]+)\)?`)

	suggestionTokenPattern = regexp.MustCompile(`[A-Za-z\-']+`)
	capitalizedWordPattern = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

const sentenceOpeners = "'\"‘“(*-•"

// MineVocabulary extracts vocabulary entries from the vocabulary section.
// When that yields nothing, it falls back to the words the suggestion
// introduced compared to the user's message.
func MineVocabulary(vocabulary, suggestion, userMessage string) []VocabEntry {
	entries := mineVocabularySection(vocabulary, suggestion)
	if len(entries) == 0 && suggestion != "" {
		entries = mineSuggestionDiff(suggestion, userMessage)
	}
	return entries
}

func mineVocabularySection(text, suggestion string) []VocabEntry {
	entries := make([]VocabEntry, 0)
	seen := make(map[string]int)
	example := strings.TrimSpace(suggestion)

	for _, loc := range vocabularyWordPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		for start < end && text[start] == '-' {
			start++
		}
		for end > start && text[end-1] == '-' {
			end--
		}
		if start == end || !isWordStart(text, start) || !isWordEnd(text, end) {
			continue
		}

		raw := text[start:end]
		if isStopword(raw) || isProperNoun(raw, isSentenceStart(text, start)) {
			continue
		}
		lemma := Lemmatize(raw)
		if lemma == "" || isStopword(lemma) {
			continue
		}

		var meaning string
		if m := meaningPattern.FindStringSubmatch(text[end:]); m != nil {
			meaning = strings.TrimSpace(m[1])
		}
		var ex string
		if suggestion != "" && containsWord(suggestion, lemma) {
			ex = example
		}

		if i, ok := seen[lemma]; ok {
			if entries[i].Example == "" && ex != "" {
				entries[i].Example = ex
			}
			continue
		}
		seen[lemma] = len(entries)
		entries = append(entries, VocabEntry{
			Word:    lemma,
			Meaning: meaning,
			Example: ex,
		})
	}
	return entries
}

func mineSuggestionDiff(suggestion, userMessage string) []VocabEntry {
	introduced := make(map[string]struct{})
	for _, token := range suggestionTokenPattern.FindAllString(suggestion, -1) {
		if isStopword(token) || capitalizedWordPattern.MatchString(token) {
			continue
		}
		lemma := Lemmatize(token)
		if !hasLetter(lemma) {
			continue
		}
		introduced[lemma] = struct{}{}
	}
	for _, token := range suggestionTokenPattern.FindAllString(userMessage, -1) {
		if isStopword(token) {
			continue
		}
		delete(introduced, Lemmatize(token))
	}

	lemmas := make([]string, 0, len(introduced))
	for lemma := range introduced {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	example := strings.TrimSpace(suggestion)
	entries := make([]VocabEntry, 0, len(lemmas))
	for _, lemma := range lemmas {
		entries = append(entries, VocabEntry{
			Word:    lemma,
			Example: example,
		})
	}
	return entries
}

// isProperNoun treats a capitalized word as a name unless it opens a sentence.
func isProperNoun(token string, atSentenceStart bool) bool {
	if atSentenceStart {
		return false
	}
	return capitalizedWordPattern.MatchString(token)
}

func isSentenceStart(text string, i int) bool {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		switch {
		case r == '\n' || r == '.' || r == '!' || r == '?':
			return true
		case unicode.IsSpace(r) || strings.ContainsRune(sentenceOpeners, r):
			i -= size
		default:
			return false
		}
	}
	return true
}

// containsWord reports whether word occurs in text as a whole word,
// ignoring case.
func containsWord(text, word string) bool {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
	if err != nil {
		return false
	}
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if isWordStart(text, loc[0]) && isWordEnd(text, loc[1]) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
