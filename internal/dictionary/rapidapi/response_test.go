package rapidapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Response
	}{
		{
			name: "pronunciation object",
			data: `{"word": "hurt", "pronunciation": {"all": "hɜrt"}, "results": [{"definition": "feel pain", "partOfSpeech": "verb", "synonyms": ["ache"]}]}`,
			want: Response{
				Word:          "hurt",
				Pronunciation: Pronunciation{All: "hɜrt"},
				Results: []Result{
					{Definition: "feel pain", PartOfSpeech: "verb", Synonyms: []string{"ache"}},
				},
			},
		},
		{
			name: "pronunciation string",
			data: `{"word": "clinic", "pronunciation": "ˈklɪnɪk"}`,
			want: Response{
				Word:          "clinic",
				Pronunciation: Pronunciation{All: "ˈklɪnɪk"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Response
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponse_Definitions(t *testing.T) {
	response := Response{
		Word: "hurt",
		Results: []Result{
			{Definition: "feel pain", PartOfSpeech: "verb", Examples: []string{"My leg hurts"}},
			{Definition: "an injury"},
			{Definition: "be the source of pain", PartOfSpeech: "verb"},
		},
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{
			name:  "limited",
			limit: 2,
			want: []string{
				"[verb] feel pain (e.g. My leg hurts)",
				"an injury",
			},
		},
		{
			name:  "all",
			limit: 0,
			want: []string{
				"[verb] feel pain (e.g. My leg hurts)",
				"an injury",
				"[verb] be the source of pain",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, response.Definitions(tt.limit))
		})
	}
}

func TestResponse_Headword(t *testing.T) {
	assert.Equal(t, "hurt /hɜrt/", Response{Word: "hurt", Pronunciation: Pronunciation{All: "hɜrt"}}.Headword())
	assert.Equal(t, "hurt", Response{Word: "hurt"}.Headword())
}
