package application

import (
	"errors"
	"fmt"
	"time"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ProgressService struct - Application service implementing use cases
type ProgressService struct {
	repo output.ProgressRepository
}

// NewProgressService func - Creates new progress service
func NewProgressService(repo output.ProgressRepository) *ProgressService {
	return &ProgressService{
		repo: repo,
	}
}

// GetProgress func - Use case: Fetch a user's cumulative progress.
// A user who has never completed a session gets zero-valued counters,
// not a not-found error.
func (s *ProgressService) GetProgress(userID string) (*domain.UserProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	progress, err := s.repo.GetProgress(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return newZeroProgress(userID), nil
		}
		return nil, err
	}
	return progress, nil
}

func newZeroProgress(userID string) *domain.UserProgress {
	sessions := 0
	completed := 0
	score := 0.0
	level := 1
	var timeSpent int64
	achievements := "[]"
	return &domain.UserProgress{
		UserID:             &userID,
		TotalSessions:      &sessions,
		CompletedScenarios: &completed,
		AverageScore:       &score,
		CurrentLevel:       &level,
		TotalTimeSpent:     &timeSpent,
		Achievements:       &achievements,
	}
}

// RecordSession func - Use case: Fold one finished session into the
// user's counters
func (s *ProgressService) RecordSession(request domain.ProgressUpdateRequest) (*domain.UserProgress, error) {
	if request.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if request.TimeSpent < 0 {
		return nil, fmt.Errorf("%w: time spent must not be negative", domain.ErrInvalidInput)
	}
	if request.Timestamp == "" {
		request.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	result, err := s.repo.RecordSession(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}
