package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestNewPromptBuilderUnknownMode(t *testing.T) {
	_, err := NewPromptBuilder("aggressive", 3)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for unknown mode, got %v", err)
	}
}

func TestNewPromptBuilderDefaultMaxTurns(t *testing.T) {
	builder, err := NewPromptBuilder(PersonaModeTraining, 0)
	if err != nil {
		t.Fatalf("NewPromptBuilder returned error: %v", err)
	}
	if builder.MaxTurns() != 3 {
		t.Errorf("Expected default of 3 turns, got %d", builder.MaxTurns())
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	builder, _ := NewPromptBuilder(PersonaModeTraining, 3)

	messages := builder.Build(nil, "Hello, I sell solar panels")
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages for empty history, got %d", len(messages))
	}
	if messages[0].Role != ChatRoleSystem {
		t.Errorf("First message must be the system persona, got role %q", messages[0].Role)
	}
	if messages[1].Role != ChatRoleUser {
		t.Errorf("Last message must be the user message, got role %q", messages[1].Role)
	}
	if !strings.Contains(messages[1].Content, "Hello, I sell solar panels") {
		t.Errorf("Framed message lost the utterance: %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "salesperson said") {
		t.Errorf("Training mode must frame the message: %q", messages[1].Content)
	}
}

func TestBuildTruncatesHistory(t *testing.T) {
	builder, _ := NewPromptBuilder(PersonaModeTraining, 3)

	history := make([]Turn, 5)
	for i := range history {
		history[i] = Turn{
			Message:  fmt.Sprintf("message %d", i),
			Response: fmt.Sprintf("response %d", i),
		}
	}

	messages := builder.Build(history, "new message")
	// system + 3 retained turns * 2 + new message
	if len(messages) != 8 {
		t.Fatalf("Expected 8 messages, got %d", len(messages))
	}

	// The oldest two turns are dropped; history keeps chronological order.
	if messages[1].Content != "message 2" {
		t.Errorf("Expected oldest retained turn first, got %q", messages[1].Content)
	}
	if messages[6].Content != "response 4" {
		t.Errorf("Expected newest turn last before the user message, got %q", messages[6].Content)
	}
	for i := 1; i < 7; i += 2 {
		if messages[i].Role != ChatRoleUser {
			t.Errorf("Message %d should be a user message, got %q", i, messages[i].Role)
		}
		if messages[i+1].Role != ChatRoleAssistant {
			t.Errorf("Message %d should be an assistant message, got %q", i+1, messages[i+1].Role)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	builder, _ := NewPromptBuilder(PersonaModeTraining, 3)
	history := []Turn{{Message: "hi", Response: "hello"}}

	first := builder.Build(history, "same input")
	second := builder.Build(history, "same input")
	if !reflect.DeepEqual(first, second) {
		t.Error("Build must be deterministic for identical inputs")
	}
}

func TestFastModeParameters(t *testing.T) {
	builder, _ := NewPromptBuilder(PersonaModeFast, 3)

	if builder.MaxTurns() != 2 {
		t.Errorf("Fast mode keeps 2 turns of history, got %d", builder.MaxTurns())
	}
	if builder.MaxTokens() != 50 {
		t.Errorf("Fast mode caps replies at 50 tokens, got %d", builder.MaxTokens())
	}
	if builder.Temperature() != 0.7 {
		t.Errorf("Fast mode uses temperature 0.7, got %v", builder.Temperature())
	}
	if builder.FallbackReply() != "Sorry, what?" {
		t.Errorf("Unexpected fast fallback: %q", builder.FallbackReply())
	}

	// Fast mode sends the raw message without context framing.
	messages := builder.Build(nil, "plain message")
	if messages[len(messages)-1].Content != "plain message" {
		t.Errorf("Fast mode must not frame the message: %q", messages[len(messages)-1].Content)
	}
}

func TestTrainingModeParameters(t *testing.T) {
	builder, _ := NewPromptBuilder(PersonaModeTraining, 3)

	if builder.MaxTokens() != 150 {
		t.Errorf("Training mode caps replies at 150 tokens, got %d", builder.MaxTokens())
	}
	if builder.Temperature() != 0.8 {
		t.Errorf("Training mode uses temperature 0.8, got %v", builder.Temperature())
	}
	if !strings.Contains(builder.FallbackReply(), "repeat") {
		t.Errorf("Unexpected training fallback: %q", builder.FallbackReply())
	}
}

func TestLastTurns(t *testing.T) {
	history := []Turn{
		{Message: "a"}, {Message: "b"}, {Message: "c"},
	}

	kept := LastTurns(history, 2)
	if len(kept) != 2 || kept[0].Message != "b" || kept[1].Message != "c" {
		t.Errorf("LastTurns kept the wrong turns: %+v", kept)
	}

	all := LastTurns(history, 10)
	if len(all) != 3 {
		t.Errorf("Expected full history when n exceeds length, got %d turns", len(all))
	}

	none := LastTurns(history, 0)
	if len(none) != 0 {
		t.Errorf("Expected no turns for n=0, got %d", len(none))
	}
}
