package application

import (
	"errors"
	"fmt"
	"testing"

	"vr-training-backend/internal/domain"
)

// MockProgressRepository implements output.ProgressRepository for testing
type MockProgressRepository struct {
	GetProgressFunc   func(userID string) (*domain.UserProgress, error)
	RecordSessionFunc func(request domain.ProgressUpdateRequest) (*domain.UserProgress, error)

	// Captured values for assertions
	LastUserID string
}

func (m *MockProgressRepository) GetProgress(userID string) (*domain.UserProgress, error) {
	m.LastUserID = userID
	if m.GetProgressFunc != nil {
		return m.GetProgressFunc(userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProgressRepository) RecordSession(request domain.ProgressUpdateRequest) (*domain.UserProgress, error) {
	if m.RecordSessionFunc != nil {
		return m.RecordSessionFunc(request)
	}
	return &domain.UserProgress{UserID: &request.UserID}, nil
}

func TestGetProgressDefaultsForNewUser(t *testing.T) {
	repo := &MockProgressRepository{
		GetProgressFunc: func(userID string) (*domain.UserProgress, error) {
			return nil, fmt.Errorf("%w: no progress for user", domain.ErrNotFound)
		},
	}
	srv := NewProgressService(repo)

	progress, err := srv.GetProgress("vr-user-7")
	if err != nil {
		t.Fatalf("Expected defaults for a new user, got error %v", err)
	}
	if progress.UserID == nil || *progress.UserID != "vr-user-7" {
		t.Errorf("Expected user id vr-user-7, got %v", progress.UserID)
	}
	if progress.TotalSessions == nil || *progress.TotalSessions != 0 {
		t.Errorf("Expected 0 total sessions, got %v", progress.TotalSessions)
	}
	if progress.CompletedScenarios == nil || *progress.CompletedScenarios != 0 {
		t.Errorf("Expected 0 completed scenarios, got %v", progress.CompletedScenarios)
	}
	if progress.AverageScore == nil || *progress.AverageScore != 0 {
		t.Errorf("Expected average score 0, got %v", progress.AverageScore)
	}
	if progress.CurrentLevel == nil || *progress.CurrentLevel != 1 {
		t.Errorf("Expected level 1, got %v", progress.CurrentLevel)
	}
	if progress.TotalTimeSpent == nil || *progress.TotalTimeSpent != 0 {
		t.Errorf("Expected 0 time spent, got %v", progress.TotalTimeSpent)
	}
	if progress.Achievements == nil || *progress.Achievements != "[]" {
		t.Errorf("Expected empty achievements list, got %v", progress.Achievements)
	}
}

func TestGetProgressReturnsStoredProgress(t *testing.T) {
	userID := "vr-user-7"
	sessions := 12
	repo := &MockProgressRepository{
		GetProgressFunc: func(id string) (*domain.UserProgress, error) {
			return &domain.UserProgress{UserID: &userID, TotalSessions: &sessions}, nil
		},
	}
	srv := NewProgressService(repo)

	progress, err := srv.GetProgress(userID)
	if err != nil {
		t.Fatalf("Expected stored progress, got error %v", err)
	}
	if *progress.TotalSessions != 12 {
		t.Errorf("Expected 12 total sessions, got %d", *progress.TotalSessions)
	}
}

func TestGetProgressPropagatesRepositoryFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &MockProgressRepository{
		GetProgressFunc: func(id string) (*domain.UserProgress, error) {
			return nil, dbErr
		},
	}
	srv := NewProgressService(repo)

	if _, err := srv.GetProgress("vr-user-7"); !errors.Is(err, dbErr) {
		t.Fatalf("Expected repository error to propagate, got %v", err)
	}
}

func TestGetProgressRequiresUserID(t *testing.T) {
	srv := NewProgressService(&MockProgressRepository{})

	if _, err := srv.GetProgress(""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for empty user id, got %v", err)
	}
}
