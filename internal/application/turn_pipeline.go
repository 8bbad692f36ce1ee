package application

import (
	"context"
	"fmt"
	"strings"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// TurnService struct - Application service implementing the conversational
// turn use case: audio in, persona reply audio out.
//
// The turn runs as a fixed pipeline. Transcription and history fetch start
// together; prompt build, generation and synthesis follow sequentially;
// persistence is handed to the background saver and never blocks the reply.
type TurnService struct {
	transcriber output.SpeechTranscriber
	generator   output.ReplyGenerator
	synthesizer output.SpeechSynthesizer
	store       output.ConversationStore
	builder     *domain.PromptBuilder
	saver       *TurnSaver
	voice       string
}

// NewTurnService func - Creates new turn service
func NewTurnService(
	transcriber output.SpeechTranscriber,
	generator output.ReplyGenerator,
	synthesizer output.SpeechSynthesizer,
	store output.ConversationStore,
	builder *domain.PromptBuilder,
	saver *TurnSaver,
	voice string,
) *TurnService {
	return &TurnService{
		transcriber: transcriber,
		generator:   generator,
		synthesizer: synthesizer,
		store:       store,
		builder:     builder,
		saver:       saver,
		voice:       voice,
	}
}

type historyResult struct {
	turns []domain.Turn
	err   error
}

// ProcessTurn func - Use case: Process one conversational turn
func (s *TurnService) ProcessTurn(ctx context.Context, request domain.TurnRequest) (*domain.TurnResult, error) {
	if len(request.Audio) == 0 {
		return nil, fmt.Errorf("%w: audio payload is empty", domain.ErrInvalidInput)
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}
	userID := request.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	historyCh := make(chan historyResult, 1)
	go func() {
		turns, err := s.store.FetchTurns(ctx, sessionID)
		historyCh <- historyResult{turns: turns, err: err}
	}()

	transcript, err := s.transcriber.Transcribe(ctx, domain.TranscriptionRequest{
		Audio:    request.Audio,
		MimeType: request.MimeType,
		Filename: request.Filename,
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	history := <-historyCh
	if history.err != nil {
		// History is context, not a precondition. The turn proceeds
		// as if the conversation just started.
		logrus.Errorf("Failed to fetch history for session %s, continuing without: %v", sessionID, history.err)
		history.turns = nil
	}

	reply, tokensUsed, err := s.generate(ctx, history.turns, transcript)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	audio, err := s.synthesizer.Synthesize(ctx, domain.SpeechRequest{Text: reply, Voice: s.voice})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	turn := domain.NewTurn(sessionID, userID, transcript, reply)
	s.saver.Enqueue(turn)

	logrus.Infof("Processed turn for session %s: %d history turns, %d tokens", sessionID, len(history.turns), tokensUsed)

	return &domain.TurnResult{
		Audio:      audio,
		Transcript: transcript,
		Reply:      reply,
		Timestamp:  turn.Timestamp,
		TokensUsed: tokensUsed,
	}, nil
}

func (s *TurnService) generate(ctx context.Context, history []domain.Turn, message string) (string, int, error) {
	completion, err := s.generator.ChatCompletion(ctx, domain.ChatCompletionRequest{
		Messages:    s.builder.Build(history, message),
		MaxTokens:   s.builder.MaxTokens(),
		Temperature: s.builder.Temperature(),
	})
	if err != nil {
		return "", 0, err
	}

	reply := strings.TrimSpace(completion.Content)
	if reply == "" {
		reply = s.builder.FallbackReply()
	}
	return reply, completion.TotalTokens, nil
}
