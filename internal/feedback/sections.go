package feedback

import (
	"regexp"
	"strings"
)

// Sections holds the three labeled spans of a feedback block.
type Sections struct {
	Grammar    string
	Vocabulary string
	Suggestion string
}

var (
	grammarStartPattern    = regexp.MustCompile(`(?i)grammar\s*[:\-]\s*`)
	vocabularyStartPattern = regexp.MustCompile(`(?i)vocabulary\s*[:\-]\s*`)
	suggestionStartPattern = regexp.MustCompile(`(?i)suggestion\s*[:\-]\s*`)

	// grammar ends at vocabulary or suggestion; vocabulary ends at suggestion.
	grammarEndPattern    = regexp.MustCompile(`(?i)\n\s*(?:vocabulary|suggestion)\s*[:\-]`)
	vocabularyEndPattern = regexp.MustCompile(`(?i)\n\s*suggestion\s*[:\-]`)
)

// ExtractSections splits normalized text into its grammar, vocabulary and
// suggestion spans. A missing header yields an empty span.
func ExtractSections(normalized string) Sections {
	return Sections{
		Grammar:    extractSection(normalized, grammarStartPattern, grammarEndPattern),
		Vocabulary: extractSection(normalized, vocabularyStartPattern, vocabularyEndPattern),
		Suggestion: extractSection(normalized, suggestionStartPattern, nil),
	}
}

func extractSection(text string, start, end *regexp.Regexp) string {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if end != nil {
		if e := end.FindStringIndex(body); e != nil {
			body = body[:e[0]]
		}
	}
	return strings.TrimSpace(body)
}
