// go build +integration
package openai_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/at-ishikawa/langtalk/internal/feedback"
	"github.com/at-ishikawa/langtalk/internal/inference"
	"github.com/at-ishikawa/langtalk/internal/inference/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_ReplyRoleplay_Evaluate checks that a real model follows the feedback format.
// Run with: OPENAI_API_KEY=your-key go test -v ./internal/inference/openai -run TestClient_ReplyRoleplay_Evaluate
func TestClient_ReplyRoleplay_Evaluate(t *testing.T) {
	t.Parallel()

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY is not set")
	}

	client := openai.NewClient(apiKey, "gpt-4o-mini", inference.DefaultMaxRetryAttempts)
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	response, err := client.ReplyRoleplay(ctx, inference.ReplyRoleplayRequest{
		Scenario: inference.Scenario{
			Topic:    "hospital",
			AIRole:   "doctor",
			UserRole: "patient",
		},
		UserMessage: "I have headache since yesterday and it very hurt",
	})
	require.NoError(t, err)

	result := feedback.NewAnalyzer().Analyze("I have headache since yesterday and it very hurt", response.Content)
	assert.NotEmpty(t, result.AIReply)
	assert.NotEmpty(t, result.Suggestion)
	assert.Contains(t, result.Categories, feedback.CategoryGrammar)
}
