package feedback

import (
	"regexp"
	"strings"
)

var (
	aiReplyMarkerPattern  = regexp.MustCompile(`(?i)\[\s*ai\s+reply\s*\]\s*:?`)
	feedbackMarkerPattern = regexp.MustCompile(`(?i)\[\s*feedback\s*\]\s*:?`)
)

// ParseReply splits a model output into the in-character reply and the
// feedback block that follows the [Feedback] marker.
func ParseReply(text string) (reply, block string) {
	body := text
	if loc := feedbackMarkerPattern.FindStringIndex(text); loc != nil {
		body = text[:loc[0]]
		block = strings.TrimSpace(text[loc[1]:])
	}
	if loc := aiReplyMarkerPattern.FindStringIndex(body); loc != nil {
		body = body[loc[1]:]
	}
	return strings.TrimSpace(body), block
}

// Level is a coarse label for a score.
type Level string

const (
	LevelPerfect Level = "perfect"
	LevelNeutral Level = "neutral"
	LevelNeeds   Level = "needs"
)

const (
	perfectLevelMinScore = 92
	needsLevelMaxScore   = 74
)

func LevelForScore(score int) Level {
	switch {
	case score >= perfectLevelMinScore:
		return LevelPerfect
	case score <= needsLevelMaxScore:
		return LevelNeeds
	default:
		return LevelNeutral
	}
}
