package postgres

import (
	"errors"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check
var _ output.SessionRepository = (*SessionRepository)(nil)

// SessionRepository struct - Secondary/Driven adapter for PostgreSQL
type SessionRepository struct {
	dbGorm *gorm.DB
}

// NewSessionRepository func - Creates new PostgreSQL repository
func NewSessionRepository(dbGorm *gorm.DB) *SessionRepository {
	return &SessionRepository{
		dbGorm: dbGorm,
	}
}

// CreateSession func
func (p *SessionRepository) CreateSession(request domain.SessionRequest) (*domain.TrainingSession, error) {
	session := domain.TrainingSession{
		UserID:      &request.UserID,
		OrgID:       request.OrgID,
		AIPersonaID: request.AIPersonaID,
		ScenarioID:  request.ScenarioID,
		Meta:        request.Meta,
	}
	if err := p.dbGorm.Create(&session).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &session, nil
}

// ListSessions returns one user's sessions, newest first.
func (p *SessionRepository) ListSessions(userID string, limit int) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	err := p.dbGorm.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return sessions, nil
}

// GetSessionDetail loads the session with its observations (ascending by
// utterance start), scores and report.
func (p *SessionRepository) GetSessionDetail(id uuid.UUID) (*domain.SessionDetail, error) {
	var session domain.TrainingSession
	err := p.dbGorm.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}

	detail := domain.SessionDetail{Session: session}

	err = p.dbGorm.
		Where("session_id = ?", id).
		Order("started_at_ms ASC").
		Find(&detail.Observations).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	if err = p.dbGorm.Where("session_id = ?", id).Find(&detail.Scores).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	var report domain.Report
	err = p.dbGorm.Where("session_id = ?", id).First(&report).Error
	switch {
	case err == nil:
		detail.Report = &report
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no report yet
	default:
		logrus.Errorln(err)
		return nil, err
	}

	return &detail, nil
}

// UpsertScores writes rubric scores, unique per (session, rubric key).
func (p *SessionRepository) UpsertScores(sessionID uuid.UUID, items []domain.ScoreItem) error {
	scores := make([]domain.Score, 0, len(items))
	for i := range items {
		item := items[i]
		scores = append(scores, domain.Score{
			SessionID: &sessionID,
			RubricKey: &item.RubricKey,
			Value:     &item.Value,
			Rationale: item.Rationale,
		})
	}
	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "rubric_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "rationale"}),
	}).Create(&scores).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}

// InsertObservations bulk-inserts timed utterances.
func (p *SessionRepository) InsertObservations(sessionID uuid.UUID, items []domain.ObservationItem) error {
	observations := make([]domain.Observation, 0, len(items))
	for i := range items {
		item := items[i]
		observations = append(observations, domain.Observation{
			SessionID:   &sessionID,
			Speaker:     &item.Speaker,
			Text:        &item.Text,
			StartedAtMs: &item.StartedAtMs,
			EndedAtMs:   &item.EndedAtMs,
			Confidence:  item.Confidence,
			Extra:       item.Extra,
		})
	}
	err := p.dbGorm.Create(&observations).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}

// UpsertReport writes the single coaching report for a session.
func (p *SessionRepository) UpsertReport(sessionID uuid.UUID, request domain.ReportRequest) error {
	report := domain.Report{
		SessionID:      &sessionID,
		Summary:        &request.Summary,
		Strengths:      &request.Strengths,
		AreasToImprove: &request.AreasToImprove,
		Drills:         &request.Drills,
	}
	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"summary", "strengths", "areas_to_improve", "drills"}),
	}).Create(&report).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}
