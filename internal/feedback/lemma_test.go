package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "studies", want: "study"},
		{word: "leaves", want: "leaf"},
		{word: "boxes", want: "box"},
		{word: "watches", want: "watch"},
		{word: "buses", want: "bus"},
		{word: "Books", want: "book"},
		{word: "class", want: "class"},
		{word: "studied", want: "study"},
		{word: "walked", want: "walk"},
		{word: "running", want: "run"},
		{word: "meetings", want: "meet"},
		{word: "going", want: "go"},
		{word: "ing", want: "ing"},
		{word: "s", want: "s"},
		{word: "hospital", want: "hospital"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Lemmatize(tt.word))
		})
	}
}
