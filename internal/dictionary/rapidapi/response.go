// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation can be either a struct or a simple string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.All = s
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	Derivation   []string `json:"derivation,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	SimilarTo    []string `json:"similarTo,omitempty"`
	TypeOf       []string `json:"typeOf,omitempty"`
	Examples     []string `json:"examples"`
}

// Definitions formats up to limit results as "[part of speech] definition" lines.
// A non-positive limit keeps every result.
func (r Response) Definitions(limit int) []string {
	results := r.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	lines := make([]string, 0, len(results))
	for _, result := range results {
		line := result.Definition
		if result.PartOfSpeech != "" {
			line = fmt.Sprintf("[%s] %s", result.PartOfSpeech, result.Definition)
		}
		if len(result.Examples) > 0 {
			line += fmt.Sprintf(" (e.g. %s)", strings.Join(result.Examples, "; "))
		}
		lines = append(lines, line)
	}
	return lines
}

// Headword returns the word with its pronunciation when the API has one
func (r Response) Headword() string {
	if r.Pronunciation.All != "" {
		return fmt.Sprintf("%s /%s/", r.Word, r.Pronunciation.All)
	}
	return r.Word
}
