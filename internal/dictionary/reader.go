package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/at-ishikawa/langtalk/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/langtalk/internal/feedback"
	"github.com/go-resty/resty/v2"
)

var ErrNotConfigured = errors.New("RAPID_API_HOST and RAPID_API_KEY are required to look up words")

type Reader struct {
	config     Config
	fileCache  *FileCache
	httpClient *resty.Client
}

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
}

func NewReader(cacheDirectory string, config Config) *Reader {
	client := resty.New()
	client.SetBaseURL("https://" + config.RapidAPIHost)
	client.SetHeader("x-rapidapi-host", config.RapidAPIHost)
	client.SetHeader("x-rapidapi-key", config.RapidAPIKey)

	return &Reader{
		config:     config,
		fileCache:  NewFileCache(cacheDirectory),
		httpClient: client,
	}
}

func (r *Reader) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	if r.config.RapidAPIHost == "" || r.config.RapidAPIKey == "" {
		return nil, ErrNotConfigured
	}

	res, err := r.httpClient.R().
		SetContext(ctx).
		Get("/words/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the WordsAPI entry of the word, from the cache when it was looked up before
func (r *Reader) Lookup(ctx context.Context, word string) (rapidapi.Response, error) {
	var resp rapidapi.Response
	contents, err := r.fileCache.cache(word, func() ([]byte, error) {
		body, err := r.lookupAPI(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("r.lookupAPI > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return resp, fmt.Errorf("r.fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

// Define looks up every mined entry. Words that fail are logged and left out.
func (r *Reader) Define(ctx context.Context, entries []feedback.VocabEntry) (map[string]rapidapi.Response, error) {
	definitions := make(map[string]rapidapi.Response, len(entries))
	for _, entry := range entries {
		if _, ok := definitions[entry.Word]; ok {
			continue
		}
		response, err := r.Lookup(ctx, entry.Word)
		if err != nil {
			if errors.Is(err, ErrNotConfigured) || ctx.Err() != nil {
				return definitions, err
			}
			slog.Default().Warn("failed to look up a word",
				slog.String("word", entry.Word),
				slog.Any("error", err),
			)
			continue
		}
		definitions[entry.Word] = response
	}
	return definitions, nil
}

func (r *Reader) Show(w io.Writer, response rapidapi.Response) error {
	for i, result := range response.Results {
		synonyms := strings.Join(result.Synonyms, ", ")
		if _, err := fmt.Fprintf(w, "%d: /%s/\t%s\t%s\n", i+1, result.PartOfSpeech, result.Definition, synonyms); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}
