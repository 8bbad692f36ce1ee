package output

import (
	"github.com/google/uuid"

	"vr-training-backend/internal/domain"
)

// OrganizationRepository interface - Output port
type OrganizationRepository interface {
	CreateOrganization(request domain.OrganizationRequest) (*domain.Organization, error)
	ListOrganizations() ([]domain.Organization, error)
	UpsertMembership(request domain.MembershipRequest) error
	DeleteMembership(orgID uuid.UUID, userID string) error
}

// ScenarioRepository interface - Output port
type ScenarioRepository interface {
	CreateScenario(request domain.ScenarioRequest) (*domain.Scenario, error)
	ListScenarios() ([]domain.Scenario, error)
}

// PersonaRepository interface - Output port
type PersonaRepository interface {
	CreatePersona(request domain.PersonaRequest) (*domain.AIPersona, error)
	ListPersonas() ([]domain.AIPersona, error)
	GetPersona(id uuid.UUID) (*domain.AIPersona, error)
	UpdatePersona(id uuid.UUID, request domain.PersonaRequest) (*domain.AIPersona, error)
	DeletePersona(id uuid.UUID) error
}

// SessionRepository interface - Output port
type SessionRepository interface {
	CreateSession(request domain.SessionRequest) (*domain.TrainingSession, error)
	ListSessions(userID string, limit int) ([]domain.TrainingSession, error)
	GetSessionDetail(id uuid.UUID) (*domain.SessionDetail, error)
	UpsertScores(sessionID uuid.UUID, items []domain.ScoreItem) error
	InsertObservations(sessionID uuid.UUID, items []domain.ObservationItem) error
	UpsertReport(sessionID uuid.UUID, request domain.ReportRequest) error
}

// ProgressRepository interface - Output port
// RecordSession must increment counters, never overwrite them.
type ProgressRepository interface {
	GetProgress(userID string) (*domain.UserProgress, error)
	RecordSession(request domain.ProgressUpdateRequest) (*domain.UserProgress, error)
}
