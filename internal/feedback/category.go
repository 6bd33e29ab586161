package feedback

// Category names a kind of problem found in the user's message.
type Category string

const (
	CategoryGrammar    Category = "GRAMMAR"
	CategoryVocabulary Category = "VOCABULARY"
)

// Categories lists the problem categories backed by negative evidence.
// Neutral and positive sections never produce a category.
func Categories(grammar, vocabulary Polarity) []Category {
	categories := make([]Category, 0, 2)
	if grammar == PolarityNegative {
		categories = append(categories, CategoryGrammar)
	}
	if vocabulary == PolarityNegative {
		categories = append(categories, CategoryVocabulary)
	}
	return categories
}

func hasCategory(categories []Category, category Category) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
