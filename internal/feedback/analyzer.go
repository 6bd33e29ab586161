package feedback

import (
	"fmt"
	"log/slog"
)

// MiningMode decides when vocabulary entries are mined.
type MiningMode string

const (
	// MiningFlagged mines only when the vocabulary section reports a problem.
	MiningFlagged MiningMode = "flagged"
	// MiningAlways mines on every turn.
	MiningAlways MiningMode = "always"
)

func ParseMiningMode(s string) (MiningMode, error) {
	switch MiningMode(s) {
	case "", MiningFlagged:
		return MiningFlagged, nil
	case MiningAlways:
		return MiningAlways, nil
	}
	return "", fmt.Errorf("unknown vocabulary mining mode: %s", s)
}

// Result is everything derived from one model output.
type Result struct {
	Reply      string       `json:"reply" yaml:"reply"`
	AIReply    string       `json:"ai_reply" yaml:"ai_reply"`
	Feedback   string       `json:"feedback" yaml:"feedback"`
	Score      int          `json:"score" yaml:"score"`
	Level      Level        `json:"level" yaml:"level"`
	Categories []Category   `json:"categories" yaml:"categories"`
	Grammar    string       `json:"grammar" yaml:"grammar"`
	Vocabulary string       `json:"vocabulary" yaml:"vocabulary"`
	Suggestion string       `json:"suggestion" yaml:"suggestion"`
	Voca       []VocabEntry `json:"voca" yaml:"voca"`
}

// HasCategory reports whether the result flags c.
func (r Result) HasCategory(c Category) bool {
	return hasCategory(r.Categories, c)
}

// Analyzer runs the whole feedback pipeline. It is immutable and safe for
// concurrent use.
type Analyzer struct {
	keywords   *Keywords
	miningMode MiningMode
}

type Option func(*Analyzer)

func WithKeywords(keywords *Keywords) Option {
	return func(a *Analyzer) {
		if keywords != nil {
			a.keywords = keywords
		}
	}
}

func WithMiningMode(mode MiningMode) Option {
	return func(a *Analyzer) {
		a.miningMode = mode
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		keywords:   DefaultKeywords(),
		miningMode: MiningFlagged,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze normalizes the raw model output and derives the score,
// the flagged categories and the vocabulary to study.
func (a *Analyzer) Analyze(userMessage, raw string) Result {
	normalized := Normalize(raw)
	sections := ExtractSections(normalized)
	grammar := a.keywords.Classify(sections.Grammar)
	vocabulary := a.keywords.Classify(sections.Vocabulary)
	categories := Categories(grammar, vocabulary)
	score := a.score(userMessage, sections, grammar, vocabulary)

	voca := make([]VocabEntry, 0)
	if a.miningMode == MiningAlways || hasCategory(categories, CategoryVocabulary) {
		voca = MineVocabulary(sections.Vocabulary, sections.Suggestion, userMessage)
	}

	reply, block := ParseReply(normalized)
	slog.Default().Debug("analyzed feedback",
		slog.Int("score", score),
		slog.String("grammar", grammar.String()),
		slog.String("vocabulary", vocabulary.String()),
		slog.Int("voca", len(voca)),
	)
	return Result{
		Reply:      normalized,
		AIReply:    reply,
		Feedback:   block,
		Score:      score,
		Level:      LevelForScore(score),
		Categories: categories,
		Grammar:    sections.Grammar,
		Vocabulary: sections.Vocabulary,
		Suggestion: sections.Suggestion,
		Voca:       voca,
	}
}
