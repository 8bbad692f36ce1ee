package postgres

import (
	"errors"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check
var _ output.ProgressRepository = (*ProgressRepository)(nil)

// ProgressRepository struct - Secondary/Driven adapter for PostgreSQL
type ProgressRepository struct {
	dbGorm *gorm.DB
}

// NewProgressRepository func - Creates new PostgreSQL repository
func NewProgressRepository(dbGorm *gorm.DB) *ProgressRepository {
	return &ProgressRepository{
		dbGorm: dbGorm,
	}
}

// GetProgress returns the user's progress row, or domain.ErrNotFound when
// the user has never completed a session.
func (p *ProgressRepository) GetProgress(userID string) (*domain.UserProgress, error) {
	var progress domain.UserProgress
	err := p.dbGorm.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}
	return &progress, nil
}

// RecordSession increments the user's counters atomically. Counters are
// added to in the database, never set to a fixed value, so concurrent
// session completions cannot clobber each other.
func (p *ProgressRepository) RecordSession(request domain.ProgressUpdateRequest) (*domain.UserProgress, error) {
	one := 1
	level := 1
	zeroScore := 0.0
	completed := 0
	if request.ScenarioCompleted {
		completed = 1
	}
	emptyAchievements := "[]"

	progress := domain.UserProgress{
		UserID:             &request.UserID,
		TotalSessions:      &one,
		CompletedScenarios: &completed,
		AverageScore:       &zeroScore,
		CurrentLevel:       &level,
		TotalTimeSpent:     &request.TimeSpent,
		Achievements:       &emptyAchievements,
		LastSessionDate:    &request.Timestamp,
	}

	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_sessions":      gorm.Expr("user_progress.total_sessions + 1"),
			"completed_scenarios": gorm.Expr("user_progress.completed_scenarios + ?", completed),
			"total_time_spent":    gorm.Expr("user_progress.total_time_spent + ?", request.TimeSpent),
			"last_session_date":   request.Timestamp,
		}),
	}).Create(&progress).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	return p.GetProgress(request.UserID)
}
