package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Core persistence entities. JSON-valued columns (config, meta, report
// sections) are stored as raw jsonb text; handlers marshal them.

// Organization struct
type Organization struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Name      *string    `gorm:"type:varchar(120);not null;"`
	CreatedBy *string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (o *Organization) TableName() string {
	return "organizations"
}

// BeforeCreate hook - generates UUID before creating
func (o *Organization) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// MembershipRole type
type MembershipRole string

const (
	// MembershipRoleMember const
	MembershipRoleMember MembershipRole = "member"
	// MembershipRoleManager const
	MembershipRoleManager MembershipRole = "manager"
	// MembershipRoleOwner const
	MembershipRoleOwner MembershipRole = "owner"
)

// Membership struct - One user's role inside an organization
type Membership struct {
	OrgID     *uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    *string         `gorm:"type:varchar(64);primaryKey"`
	Role      *MembershipRole `gorm:"type:varchar(10);not null;"`
	CreatedAt *time.Time      `gorm:"type:timestamp"`
	UpdatedAt *time.Time      `gorm:"type:timestamp"`
}

// TableName func
func (m *Membership) TableName() string {
	return "memberships"
}

// Scenario struct - A training scenario (e.g. roof repair pitch)
type Scenario struct {
	ID          *uuid.UUID `gorm:"type:uuid;primary_key;"`
	OwnerID     *string    `gorm:"type:varchar(64);not null;index"`
	OrgID       *uuid.UUID `gorm:"type:uuid;index"`
	Name        *string    `gorm:"type:varchar(120);not null;"`
	Description *string    `gorm:"type:TEXT"`
	Config      *string    `gorm:"type:jsonb"`
	CreatedAt   *time.Time `gorm:"type:timestamp"`
	UpdatedAt   *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *Scenario) TableName() string {
	return "scenarios"
}

// BeforeCreate hook
func (s *Scenario) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	s.ID = &id
	return nil
}

// AIPersona struct - A configurable simulated customer definition
type AIPersona struct {
	ID         *uuid.UUID `gorm:"type:uuid;primary_key;"`
	OwnerID    *string    `gorm:"type:varchar(64);not null;index"`
	OrgID      *uuid.UUID `gorm:"type:uuid;index"`
	Name       *string    `gorm:"type:varchar(120);not null;"`
	Difficulty *int       `gorm:"type:int;not null;default:1"`
	Config     *string    `gorm:"type:jsonb"`
	CreatedAt  *time.Time `gorm:"type:timestamp"`
	UpdatedAt  *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (p *AIPersona) TableName() string {
	return "ai_personas"
}

// BeforeCreate hook
func (p *AIPersona) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	p.ID = &id
	return nil
}

// TrainingSession struct - One VR training run. Sessions are created before
// any turn is processed; the turn pipeline only references them by ID.
type TrainingSession struct {
	ID          *uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID      *string    `gorm:"type:varchar(64);not null;index"`
	OrgID       *uuid.UUID `gorm:"type:uuid;index"`
	AIPersonaID *uuid.UUID `gorm:"type:uuid;index"`
	ScenarioID  *uuid.UUID `gorm:"type:uuid;index"`
	Meta        *string    `gorm:"type:jsonb"`
	CreatedAt   *time.Time `gorm:"type:timestamp"`
	UpdatedAt   *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *TrainingSession) TableName() string {
	return "sessions"
}

// BeforeCreate hook
func (s *TrainingSession) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	s.ID = &id
	return nil
}

// ConversationRecord struct - Durable form of a Turn, append-only
type ConversationRecord struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	SessionID *string    `gorm:"type:varchar(64);not null;index"`
	UserID    *string    `gorm:"type:varchar(64);not null;"`
	Message   *string    `gorm:"type:TEXT;not null;"`
	Response  *string    `gorm:"type:TEXT;not null;"`
	Timestamp *string    `gorm:"type:varchar(40);not null;"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (c *ConversationRecord) TableName() string {
	return "conversations"
}

// BeforeCreate hook
func (c *ConversationRecord) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	c.ID = &id
	return nil
}

// ObservationSpeaker type
type ObservationSpeaker string

const (
	// ObservationSpeakerUser const
	ObservationSpeakerUser ObservationSpeaker = "user"
	// ObservationSpeakerAvatar const
	ObservationSpeakerAvatar ObservationSpeaker = "avatar"
	// ObservationSpeakerSystem const
	ObservationSpeakerSystem ObservationSpeaker = "system"
)

// Observation struct - One timed utterance captured in the headset
type Observation struct {
	ID          *uuid.UUID          `gorm:"type:uuid;primary_key;"`
	SessionID   *uuid.UUID          `gorm:"type:uuid;not null;index"`
	Speaker     *ObservationSpeaker `gorm:"type:varchar(10);not null;"`
	Text        *string             `gorm:"type:TEXT;not null;"`
	StartedAtMs *int64              `gorm:"type:bigint;not null;default:0"`
	EndedAtMs   *int64              `gorm:"type:bigint;not null;default:0"`
	Confidence  *float64            `gorm:"type:numeric"`
	Extra       *string             `gorm:"type:jsonb"`
	CreatedAt   *time.Time          `gorm:"type:timestamp"`
}

// TableName func
func (o *Observation) TableName() string {
	return "user_observations"
}

// BeforeCreate hook
func (o *Observation) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// Score struct - One rubric score, unique per (session, rubric key)
type Score struct {
	SessionID *uuid.UUID `gorm:"type:uuid;primaryKey"`
	RubricKey *string    `gorm:"type:varchar(64);primaryKey"`
	Value     *float64   `gorm:"type:numeric;not null;"`
	Rationale *string    `gorm:"type:TEXT"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *Score) TableName() string {
	return "scores"
}

// Report struct - One coaching report per session
type Report struct {
	SessionID      *uuid.UUID `gorm:"type:uuid;primaryKey"`
	Summary        *string    `gorm:"type:TEXT;not null;"`
	Strengths      *string    `gorm:"type:jsonb"`
	AreasToImprove *string    `gorm:"type:jsonb"`
	Drills         *string    `gorm:"type:jsonb"`
	CreatedAt      *time.Time `gorm:"type:timestamp"`
	UpdatedAt      *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *Report) TableName() string {
	return "reports"
}

// UserProgress struct - Aggregated progress counters per user
type UserProgress struct {
	UserID             *string    `gorm:"type:varchar(64);primaryKey"`
	TotalSessions      *int       `gorm:"type:int;not null;default:0"`
	CompletedScenarios *int       `gorm:"type:int;not null;default:0"`
	AverageScore       *float64   `gorm:"type:numeric;not null;default:0"`
	CurrentLevel       *int       `gorm:"type:int;not null;default:1"`
	TotalTimeSpent     *int64     `gorm:"type:bigint;not null;default:0"`
	Achievements       *string    `gorm:"type:jsonb"`
	LastSessionDate    *string    `gorm:"type:varchar(40)"`
	CreatedAt          *time.Time `gorm:"type:timestamp"`
	UpdatedAt          *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (u *UserProgress) TableName() string {
	return "user_progress"
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(
		&Organization{},
		&Membership{},
		&Scenario{},
		&AIPersona{},
		&TrainingSession{},
		&ConversationRecord{},
		&Observation{},
		&Score{},
		&Report{},
		&UserProgress{},
	)
	if err != nil {
		panic(err)
	}
}
