package application

import (
	"context"
	"fmt"
	"strings"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ChatService struct - Application service implementing text-only
// conversational turns. Shares the prompt builder and saver with the
// audio pipeline so both surfaces produce the same persona behavior.
type ChatService struct {
	generator output.ReplyGenerator
	store     output.ConversationStore
	builder   *domain.PromptBuilder
	saver     *TurnSaver
}

// NewChatService func - Creates new chat service
func NewChatService(
	generator output.ReplyGenerator,
	store output.ConversationStore,
	builder *domain.PromptBuilder,
	saver *TurnSaver,
) *ChatService {
	return &ChatService{
		generator: generator,
		store:     store,
		builder:   builder,
		saver:     saver,
	}
}

// Chat func - Use case: Process one text-only turn
func (s *ChatService) Chat(ctx context.Context, request domain.ChatTurnRequest) (*domain.ChatTurnResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}
	userID := request.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	history, err := s.store.FetchTurns(ctx, sessionID)
	if err != nil {
		logrus.Errorf("Failed to fetch history for session %s, continuing without: %v", sessionID, err)
		history = nil
	}

	completion, err := s.generator.ChatCompletion(ctx, domain.ChatCompletionRequest{
		Messages:    s.builder.Build(history, message),
		MaxTokens:   s.builder.MaxTokens(),
		Temperature: s.builder.Temperature(),
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	reply := strings.TrimSpace(completion.Content)
	if reply == "" {
		reply = s.builder.FallbackReply()
	}

	turn := domain.NewTurn(sessionID, userID, message, reply)
	s.saver.Enqueue(turn)

	return &domain.ChatTurnResponse{
		ID:         uuid.NewString(),
		Message:    reply,
		SessionID:  sessionID,
		UserID:     userID,
		Timestamp:  turn.Timestamp,
		TokensUsed: completion.TotalTokens,
	}, nil
}

// History func - Use case: Retrieve a session's conversation history
func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}
	turns, err := s.store.FetchTurns(ctx, sessionID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return turns, nil
}
