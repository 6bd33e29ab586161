package feedback

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	suggestionHeaderPattern = regexp.MustCompile(`(?i)suggestion\s*[:\-]`)
	grammarHeaderPattern    = regexp.MustCompile(`(?i)grammar\s*[:\-]`)
	vocabularyHeaderPattern = regexp.MustCompile(`(?i)vocabulary\s*[:\-]`)
)

const (
	grammarHeader    = "grammar:"
	vocabularyHeader = "vocabulary:"
	suggestionHeader = "suggestion:"
)

// Normalize repairs the casing and spacing drift of the section headers so
// that ExtractSections matches reliably. It is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = replaceHeader(text, suggestionHeaderPattern, suggestionHeader)
	text = replaceHeader(text, grammarHeaderPattern, grammarHeader)
	text = replaceHeader(text, vocabularyHeaderPattern, vocabularyHeader)
	return separateSuggestion(text)
}

// separateSuggestion puts a blank line in front of every suggestion header
// that follows a non-space character with at most one newline in between.
func separateSuggestion(text string) string {
	var b strings.Builder
	last := 0
	for i := 0; ; {
		j := strings.Index(text[i:], suggestionHeader)
		if j < 0 {
			break
		}
		j += i
		i = j + len(suggestionHeader)

		k := j
		if k > 0 && text[k-1] == '\n' {
			k--
		}
		if k == 0 {
			continue
		}
		if r, _ := utf8.DecodeLastRuneInString(text[:k]); isSpace(r) {
			continue
		}
		b.WriteString(text[last:k])
		b.WriteString("\n\n")
		last = j
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

// replaceHeader rewrites every match that starts on a word boundary.
func replaceHeader(text string, pattern *regexp.Regexp, header string) string {
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		if !isWordStart(text, m[0]) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(header)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// isWordRune reports whether r counts as part of a word. Non-ASCII letters
// are word characters too, so "Grammar쪽은" is a single word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func isWordEnd(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}
