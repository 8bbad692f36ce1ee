package application

import (
	"context"
	"sync"
	"time"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const saveTimeout = 10 * time.Second

// TurnSaver persists finished turns from a background worker so that
// storage latency or failure never delays a response. Saves are
// best-effort: a failed or dropped save is logged and forgotten.
type TurnSaver struct {
	store  output.ConversationStore
	queue  chan domain.Turn
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewTurnSaver creates the saver and starts its worker goroutine.
func NewTurnSaver(store output.ConversationStore, queueSize int) *TurnSaver {
	if queueSize <= 0 {
		queueSize = 64
	}
	saver := &TurnSaver{
		store: store,
		queue: make(chan domain.Turn, queueSize),
		done:  make(chan struct{}),
	}
	go saver.run()
	return saver
}

// Enqueue hands a turn to the worker without blocking. When the queue is
// full the turn is dropped and logged; conversation history is advisory
// context, not a system of record. Turns arriving after Close are dropped
// the same way, so a request finishing during shutdown cannot panic.
func (s *TurnSaver) Enqueue(turn domain.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		logrus.Errorf("Turn saver closed, dropping turn for session %s", turn.SessionID)
		return
	}
	select {
	case s.queue <- turn:
	default:
		logrus.Errorf("Turn save queue full, dropping turn for session %s", turn.SessionID)
	}
}

// Close stops accepting turns and waits for queued saves to finish.
// Safe to call more than once.
func (s *TurnSaver) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	<-s.done
}

func (s *TurnSaver) run() {
	defer close(s.done)
	for turn := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := s.store.SaveTurn(ctx, turn); err != nil {
			logrus.Errorf("Failed to save conversation turn for session %s: %v", turn.SessionID, err)
		}
		cancel()
	}
}
