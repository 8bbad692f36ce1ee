package postgres

import (
	"context"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure ConversationStore implements the output port
var _ output.ConversationStore = (*ConversationStore)(nil)

// ConversationStore struct - Secondary/Driven adapter persisting turns in
// the conversations table, append-only.
type ConversationStore struct {
	dbGorm *gorm.DB
}

// NewConversationStore func - Creates new PostgreSQL conversation store
func NewConversationStore(dbGorm *gorm.DB) *ConversationStore {
	return &ConversationStore{
		dbGorm: dbGorm,
	}
}

// FetchTurns retrieves the session's turns ordered by timestamp ascending.
func (p *ConversationStore) FetchTurns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	var records []domain.ConversationRecord
	err := p.dbGorm.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&records).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	turns := make([]domain.Turn, 0, len(records))
	for _, record := range records {
		turns = append(turns, domain.Turn{
			SessionID: derefString(record.SessionID),
			UserID:    derefString(record.UserID),
			Message:   derefString(record.Message),
			Response:  derefString(record.Response),
			Timestamp: derefString(record.Timestamp),
		})
	}
	return turns, nil
}

// SaveTurn appends one immutable turn record.
func (p *ConversationStore) SaveTurn(ctx context.Context, turn domain.Turn) error {
	record := domain.ConversationRecord{
		SessionID: &turn.SessionID,
		UserID:    &turn.UserID,
		Message:   &turn.Message,
		Response:  &turn.Response,
		Timestamp: &turn.Timestamp,
	}
	if err := p.dbGorm.WithContext(ctx).Create(&record).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
