package application

import (
	"context"
	"errors"
	"testing"

	"vr-training-backend/internal/domain"
)

func TestChatSuccess(t *testing.T) {
	generator := &MockReplyGenerator{}
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 8)

	srv := NewChatService(generator, store, newTestBuilder(t), saver)

	response, err := srv.Chat(context.Background(), domain.ChatTurnRequest{
		Message:   "Hello, do you have a minute?",
		SessionID: "session-1",
		UserID:    "user-1",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if response.Message != "Oh, hi. What is this about?" {
		t.Errorf("Unexpected reply: %q", response.Message)
	}
	if response.ID == "" {
		t.Error("Expected a generated response id")
	}
	if response.SessionID != "session-1" || response.UserID != "user-1" {
		t.Errorf("Response lost identifiers: %+v", response)
	}

	saver.Close()
	saved := store.savedTurns()
	if len(saved) != 1 {
		t.Fatalf("Expected 1 saved turn, got %d", len(saved))
	}
	if saved[0].Message != "Hello, do you have a minute?" {
		t.Errorf("Saved turn has wrong message: %q", saved[0].Message)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	generator := &MockReplyGenerator{}
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 8)

	srv := NewChatService(generator, store, newTestBuilder(t), saver)

	_, err := srv.Chat(context.Background(), domain.ChatTurnRequest{Message: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
	if generator.CallCount != 0 {
		t.Error("Generator should not be called for an empty message")
	}
}

func TestChatDefaultsIdentifiers(t *testing.T) {
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 8)

	srv := NewChatService(&MockReplyGenerator{}, store, newTestBuilder(t), saver)

	response, err := srv.Chat(context.Background(), domain.ChatTurnRequest{Message: "Hi"})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if response.SessionID != domain.DefaultSessionID || response.UserID != domain.DefaultUserID {
		t.Errorf("Expected default identifiers, got %+v", response)
	}
}

func TestHistoryDefaultsSession(t *testing.T) {
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 8)

	srv := NewChatService(&MockReplyGenerator{}, store, newTestBuilder(t), saver)

	if _, err := srv.History(context.Background(), ""); err != nil {
		t.Fatalf("History returned error: %v", err)
	}

	store.mu.Lock()
	fetched := store.LastFetchSessionID
	store.mu.Unlock()
	if fetched != domain.DefaultSessionID {
		t.Errorf("History fetched for %q, expected the default session", fetched)
	}
}
