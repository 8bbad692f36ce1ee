package application

import (
	"fmt"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionService struct - Application service implementing use cases
type SessionService struct {
	repo output.SessionRepository
}

// NewSessionService func - Creates new session service
func NewSessionService(repo output.SessionRepository) *SessionService {
	return &SessionService{
		repo: repo,
	}
}

// CreateSession func - Use case: Start a training session
func (s *SessionService) CreateSession(request domain.SessionRequest) (*domain.TrainingSession, error) {
	if request.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	result, err := s.repo.CreateSession(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// ListSessions func - Use case: List a user's sessions, newest first
func (s *SessionService) ListSessions(userID string, limit int) ([]domain.TrainingSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListSessions(userID, limit)
}

// GetSessionDetail func - Use case: Load a session with its artifacts
func (s *SessionService) GetSessionDetail(id uuid.UUID) (*domain.SessionDetail, error) {
	return s.repo.GetSessionDetail(id)
}

// UpsertScores func - Use case: Record rubric scores for a session.
// Scores are normalized; values outside [0,1] are rejected.
func (s *SessionService) UpsertScores(sessionID uuid.UUID, items []domain.ScoreItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: scores payload is empty", domain.ErrInvalidInput)
	}
	for _, item := range items {
		if item.Value < 0 || item.Value > 1 {
			return fmt.Errorf("%w: score %q must be between 0 and 1", domain.ErrInvalidInput, item.RubricKey)
		}
	}
	return s.repo.UpsertScores(sessionID, items)
}

// InsertObservations func - Use case: Record timed utterances
func (s *SessionService) InsertObservations(sessionID uuid.UUID, items []domain.ObservationItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: observations payload is empty", domain.ErrInvalidInput)
	}
	for _, item := range items {
		switch item.Speaker {
		case domain.ObservationSpeakerUser, domain.ObservationSpeakerAvatar, domain.ObservationSpeakerSystem:
		default:
			return fmt.Errorf("%w: unknown speaker %q", domain.ErrInvalidInput, item.Speaker)
		}
	}
	return s.repo.InsertObservations(sessionID, items)
}

// UpsertReport func - Use case: Write the coaching report for a session
func (s *SessionService) UpsertReport(sessionID uuid.UUID, request domain.ReportRequest) error {
	return s.repo.UpsertReport(sessionID, request)
}
