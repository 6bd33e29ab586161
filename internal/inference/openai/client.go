package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/langtalk/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const roleplayTemperature = 0.7

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	// The model sometimes finishes without any text
	if strings.Contains(errStr, "empty response content") {
		return true
	}

	return false
}

// StartRoleplay implements the inference.Client interface
func (client *Client) StartRoleplay(
	ctx context.Context,
	params inference.StartRoleplayRequest,
) (inference.RoleplayResponse, error) {
	requestBody, err := client.getStartRequestBody(params)
	if err != nil {
		return inference.RoleplayResponse{}, fmt.Errorf("getStartRequestBody > %w", err)
	}
	return client.completeWithRetry(ctx, requestBody)
}

// ReplyRoleplay implements the inference.Client interface
func (client *Client) ReplyRoleplay(
	ctx context.Context,
	params inference.ReplyRoleplayRequest,
) (inference.RoleplayResponse, error) {
	requestBody, err := client.getReplyRequestBody(params)
	if err != nil {
		return inference.RoleplayResponse{}, fmt.Errorf("getReplyRequestBody > %w", err)
	}
	return client.completeWithRetry(ctx, requestBody)
}

func (client *Client) getStartRequestBody(args inference.StartRoleplayRequest) (ChatCompletionRequest, error) {
	if err := validateScenario(args.Scenario); err != nil {
		return ChatCompletionRequest{}, err
	}
	prompt, err := renderPrompt(openingPromptTemplate, args.Scenario)
	if err != nil {
		return ChatCompletionRequest{}, err
	}

	return ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
		Temperature: roleplayTemperature,
	}, nil
}

func (client *Client) getReplyRequestBody(args inference.ReplyRoleplayRequest) (ChatCompletionRequest, error) {
	if err := validateScenario(args.Scenario); err != nil {
		return ChatCompletionRequest{}, err
	}
	if strings.TrimSpace(args.UserMessage) == "" {
		return ChatCompletionRequest{}, fmt.Errorf("empty user message")
	}
	systemPrompt, err := renderPrompt(roleplayPromptTemplate, args.Scenario)
	if err != nil {
		return ChatCompletionRequest{}, err
	}

	messages := make([]Message, 0, 2*len(args.History)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	if args.Opening != "" {
		messages = append(messages, Message{Role: RoleAssistant, Content: args.Opening})
	}
	for _, exchange := range args.History {
		messages = append(messages,
			Message{Role: RoleUser, Content: exchange.UserMessage},
			Message{Role: RoleAssistant, Content: exchange.Reply},
		)
	}
	messages = append(messages, Message{Role: RoleUser, Content: args.UserMessage})

	return ChatCompletionRequest{
		Model:       client.model,
		Messages:    messages,
		Temperature: roleplayTemperature,
	}, nil
}

func (client *Client) completeWithRetry(
	ctx context.Context,
	requestBody ChatCompletionRequest,
) (inference.RoleplayResponse, error) {
	var result inference.RoleplayResponse
	if err := retry.Do(
		func() error {
			content, err := client.complete(ctx, requestBody)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Info("Retrying OpenAI API call",
					"error", err,
				)
				return err
			}
			result = inference.RoleplayResponse{Content: content}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.RoleplayResponse{}, err
	}
	return result, nil
}

func (client *Client) complete(
	ctx context.Context,
	requestBody ChatCompletionRequest,
) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)
	return content, nil
}
