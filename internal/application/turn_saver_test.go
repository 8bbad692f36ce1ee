package application

import (
	"testing"
	"time"

	"vr-training-backend/internal/domain"
)

func TestTurnSaverPersistsQueuedTurns(t *testing.T) {
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 4)

	saver.Enqueue(domain.NewTurn("s1", "u1", "hello", "hi there"))
	saver.Enqueue(domain.NewTurn("s1", "u1", "how much", "too much"))
	saver.Close()

	saved := store.savedTurns()
	if len(saved) != 2 {
		t.Fatalf("Expected 2 saved turns, got %d", len(saved))
	}
	if saved[0].Message != "hello" || saved[1].Message != "how much" {
		t.Errorf("Turns saved out of order: %q, %q", saved[0].Message, saved[1].Message)
	}
}

func TestTurnSaverEnqueueAfterCloseDropsTurn(t *testing.T) {
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 4)
	saver.Close()

	// A request finishing during shutdown may still hand over its turn.
	// It must be dropped, never panic.
	saver.Enqueue(domain.NewTurn("s1", "u1", "late", "too late"))

	if got := len(store.savedTurns()); got != 0 {
		t.Errorf("Expected no saved turns after close, got %d", got)
	}
}

func TestTurnSaverCloseIsIdempotent(t *testing.T) {
	store := &MockConversationStore{}
	saver := NewTurnSaver(store, 4)

	saver.Close()
	done := make(chan struct{})
	go func() {
		saver.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Second Close did not return")
	}
}
