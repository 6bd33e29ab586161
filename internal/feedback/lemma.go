package feedback

import (
	"regexp"
	"strings"
)

var sibilantPluralPattern = regexp.MustCompile(`^.+(?:[sxz]|[cs]h)es$`)

// Lemmatize reduces an English word to a conservative base form with a
// handful of suffix rules. The rules are lossy ("leaves" becomes "leaf" but
// so does "gives" become "gif"); vocabulary dedup relies on these exact
// outputs, so keep them as they are.
func Lemmatize(word string) string {
	w := strings.ToLower(word)
	switch {
	case hasProperSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case hasProperSuffix(w, "ves"):
		return w[:len(w)-3] + "f"
	case sibilantPluralPattern.MatchString(w):
		return w[:len(w)-2]
	}

	if hasProperSuffix(w, "s") && !hasProperSuffix(w, "ss") {
		w = w[:len(w)-1]
	}
	if hasProperSuffix(w, "ied") {
		return w[:len(w)-3] + "y"
	}
	if hasProperSuffix(w, "ed") {
		w = w[:len(w)-2]
	}
	if hasProperSuffix(w, "ing") {
		base := w[:len(w)-3]
		// running -> runn -> run
		if n := len(base); n >= 2 && base[n-1] == base[n-2] {
			base = base[:n-1]
		}
		return base
	}
	return w
}

// hasProperSuffix reports whether w ends with suffix and has at least one
// character in front of it.
func hasProperSuffix(w, suffix string) bool {
	return len(w) > len(suffix) && strings.HasSuffix(w, suffix)
}

var stopwords = map[string]struct{}{
	"is": {}, "are": {}, "am": {}, "the": {}, "a": {}, "an": {}, "to": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "and": {}, "or": {}, "but": {}, "be": {}, "been": {}, "being": {}, "was": {}, "were": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {}, "i": {}, "you": {}, "he": {},
	"she": {}, "it": {}, "we": {}, "they": {}, "me": {}, "him": {}, "her": {}, "them": {}, "my": {},
	"your": {}, "his": {}, "its": {}, "our": {}, "their": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "for": {}, "with": {}, "as": {}, "by": {}, "from": {}, "about": {}, "into": {},
	"over": {}, "after": {}, "before": {}, "between": {}, "up": {}, "down": {},
}

func isStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
