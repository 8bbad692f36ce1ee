package application

import (
	"errors"
	"testing"

	"vr-training-backend/internal/domain"

	"github.com/google/uuid"
)

// MockSessionRepository implements output.SessionRepository for testing
type MockSessionRepository struct {
	CreateSessionFunc       func(request domain.SessionRequest) (*domain.TrainingSession, error)
	ListSessionsFunc        func(userID string, limit int) ([]domain.TrainingSession, error)
	GetSessionDetailFunc    func(id uuid.UUID) (*domain.SessionDetail, error)
	UpsertScoresFunc        func(sessionID uuid.UUID, items []domain.ScoreItem) error
	InsertObservationsFunc  func(sessionID uuid.UUID, items []domain.ObservationItem) error
	UpsertReportFunc        func(sessionID uuid.UUID, request domain.ReportRequest) error

	// Captured values for assertions
	UpsertScoresCallCount int
	LastScoreItems        []domain.ScoreItem
}

func (m *MockSessionRepository) CreateSession(request domain.SessionRequest) (*domain.TrainingSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(request)
	}
	return &domain.TrainingSession{}, nil
}

func (m *MockSessionRepository) ListSessions(userID string, limit int) ([]domain.TrainingSession, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(userID, limit)
	}
	return []domain.TrainingSession{}, nil
}

func (m *MockSessionRepository) GetSessionDetail(id uuid.UUID) (*domain.SessionDetail, error) {
	if m.GetSessionDetailFunc != nil {
		return m.GetSessionDetailFunc(id)
	}
	return &domain.SessionDetail{}, nil
}

func (m *MockSessionRepository) UpsertScores(sessionID uuid.UUID, items []domain.ScoreItem) error {
	m.UpsertScoresCallCount++
	m.LastScoreItems = items
	if m.UpsertScoresFunc != nil {
		return m.UpsertScoresFunc(sessionID, items)
	}
	return nil
}

func (m *MockSessionRepository) InsertObservations(sessionID uuid.UUID, items []domain.ObservationItem) error {
	if m.InsertObservationsFunc != nil {
		return m.InsertObservationsFunc(sessionID, items)
	}
	return nil
}

func (m *MockSessionRepository) UpsertReport(sessionID uuid.UUID, request domain.ReportRequest) error {
	if m.UpsertReportFunc != nil {
		return m.UpsertReportFunc(sessionID, request)
	}
	return nil
}

func TestUpsertScoresRejectsValueAboveOne(t *testing.T) {
	repo := &MockSessionRepository{}
	srv := NewSessionService(repo)

	err := srv.UpsertScores(uuid.New(), []domain.ScoreItem{
		{RubricKey: "rapport", Value: 5.0},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for value above 1, got %v", err)
	}
	if repo.UpsertScoresCallCount != 0 {
		t.Error("Repository must not be called for an out-of-range score")
	}
}

func TestUpsertScoresRejectsNegativeValue(t *testing.T) {
	repo := &MockSessionRepository{}
	srv := NewSessionService(repo)

	err := srv.UpsertScores(uuid.New(), []domain.ScoreItem{
		{RubricKey: "objection_handling", Value: -0.1},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for negative value, got %v", err)
	}
	if repo.UpsertScoresCallCount != 0 {
		t.Error("Repository must not be called for an out-of-range score")
	}
}

func TestUpsertScoresAcceptsNormalizedValues(t *testing.T) {
	repo := &MockSessionRepository{}
	srv := NewSessionService(repo)

	items := []domain.ScoreItem{
		{RubricKey: "rapport", Value: 0},
		{RubricKey: "closing", Value: 1},
		{RubricKey: "discovery", Value: 0.65},
	}
	if err := srv.UpsertScores(uuid.New(), items); err != nil {
		t.Fatalf("Expected no error for normalized scores, got %v", err)
	}
	if repo.UpsertScoresCallCount != 1 {
		t.Fatalf("Expected one repository call, got %d", repo.UpsertScoresCallCount)
	}
	if len(repo.LastScoreItems) != 3 {
		t.Errorf("Expected 3 score items forwarded, got %d", len(repo.LastScoreItems))
	}
}

func TestUpsertScoresRejectsEmptyPayload(t *testing.T) {
	repo := &MockSessionRepository{}
	srv := NewSessionService(repo)

	if err := srv.UpsertScores(uuid.New(), nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for empty payload, got %v", err)
	}
}
