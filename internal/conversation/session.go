// Package conversation runs a role-play session and grades every user message.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/langtalk/internal/feedback"
	"github.com/at-ishikawa/langtalk/internal/inference"
)

var ErrEmptyMessage = errors.New("message is empty")

type Scenario = inference.Scenario

func DefaultScenario() Scenario {
	return Scenario{
		Topic:    "hospital",
		AIRole:   "doctor",
		UserRole: "patient",
	}
}

// Turn is one graded user message
type Turn struct {
	UserMessage string          `json:"user_message" yaml:"user_message"`
	Result      feedback.Result `json:"result" yaml:"result"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
}

type Session struct {
	client   inference.Client
	analyzer *feedback.Analyzer
	scenario Scenario
	now      func() time.Time

	mu        sync.Mutex
	startedAt time.Time
	opening   string
	turns     []Turn
}

func NewSession(client inference.Client, analyzer *feedback.Analyzer, scenario Scenario) *Session {
	return &Session{
		client:    client,
		analyzer:  analyzer,
		scenario:  scenario,
		now:       time.Now,
		startedAt: time.Now(),
	}
}

func (s *Session) Scenario() Scenario {
	return s.scenario
}

func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Start asks the model for its opening line.
func (s *Session) Start(ctx context.Context) (string, error) {
	response, err := s.client.StartRoleplay(ctx, inference.StartRoleplayRequest{
		Scenario: s.scenario,
	})
	if err != nil {
		return "", fmt.Errorf("client.StartRoleplay > %w", err)
	}
	reply, _ := feedback.ParseReply(feedback.Normalize(response.Content))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.opening = reply
	s.startedAt = s.now()
	return reply, nil
}

// Send passes the message to the model with the conversation so far and
// grades the message with the model's feedback.
func (s *Session) Send(ctx context.Context, message string) (Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	opening := s.opening
	history := make([]inference.Exchange, 0, len(s.turns))
	for _, turn := range s.turns {
		history = append(history, inference.Exchange{
			UserMessage: turn.UserMessage,
			Reply:       turn.Result.Reply,
		})
	}
	s.mu.Unlock()

	response, err := s.client.ReplyRoleplay(ctx, inference.ReplyRoleplayRequest{
		Scenario:    s.scenario,
		Opening:     opening,
		History:     history,
		UserMessage: message,
	})
	if err != nil {
		return Turn{}, fmt.Errorf("client.ReplyRoleplay > %w", err)
	}

	turn := Turn{
		UserMessage: message,
		Result:      s.analyzer.Analyze(message, response.Content),
		CreatedAt:   s.now(),
	}
	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()
	return turn, nil
}

// Turns returns a copy of the graded turns
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

func (s *Session) Summary() Summary {
	s.mu.Lock()
	startedAt := s.startedAt
	s.mu.Unlock()
	return Summarize(s.scenario, startedAt, s.Turns())
}
