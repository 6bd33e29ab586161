package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for role-play conversations with a language model
type Client interface {
	StartRoleplay(ctx context.Context, params StartRoleplayRequest) (RoleplayResponse, error)
	ReplyRoleplay(ctx context.Context, params ReplyRoleplayRequest) (RoleplayResponse, error)
}

// Scenario is the situation both sides act out
type Scenario struct {
	Topic    string `json:"topic" yaml:"topic"`
	AIRole   string `json:"ai_role" yaml:"ai_role"`
	UserRole string `json:"user_role" yaml:"user_role"`
}

// Exchange is one earlier user message and the model's raw answer to it
type Exchange struct {
	UserMessage string
	Reply       string
}

type StartRoleplayRequest struct {
	Scenario Scenario
}

type ReplyRoleplayRequest struct {
	Scenario Scenario
	// Opening is the model's first line, said before any user message
	Opening     string
	History     []Exchange
	UserMessage string
}

// RoleplayResponse holds the raw model output.
// A reply carries the [AI Reply] line followed by a [Feedback] block.
type RoleplayResponse struct {
	Content string
}

const (
	DefaultMaxRetryAttempts = 3
)
