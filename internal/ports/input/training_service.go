package input

import (
	"github.com/google/uuid"

	"vr-training-backend/internal/domain"
)

// OrganizationService interface - Input port (use case)
type OrganizationService interface {
	CreateOrganization(request domain.OrganizationRequest) (*domain.Organization, error)
	ListOrganizations() ([]domain.Organization, error)
	UpsertMembership(request domain.MembershipRequest) error
	DeleteMembership(orgID uuid.UUID, userID string) error
}

// ScenarioService interface - Input port (use case)
type ScenarioService interface {
	CreateScenario(request domain.ScenarioRequest) (*domain.Scenario, error)
	ListScenarios() ([]domain.Scenario, error)
}

// PersonaService interface - Input port (use case)
type PersonaService interface {
	CreatePersona(request domain.PersonaRequest) (*domain.AIPersona, error)
	ListPersonas() ([]domain.AIPersona, error)
	GetPersona(id uuid.UUID) (*domain.AIPersona, error)
	UpdatePersona(id uuid.UUID, request domain.PersonaRequest) (*domain.AIPersona, error)
	DeletePersona(id uuid.UUID) error
}

// SessionService interface - Input port (use case)
type SessionService interface {
	CreateSession(request domain.SessionRequest) (*domain.TrainingSession, error)
	ListSessions(userID string, limit int) ([]domain.TrainingSession, error)
	GetSessionDetail(id uuid.UUID) (*domain.SessionDetail, error)
	UpsertScores(sessionID uuid.UUID, items []domain.ScoreItem) error
	InsertObservations(sessionID uuid.UUID, items []domain.ObservationItem) error
	UpsertReport(sessionID uuid.UUID, request domain.ReportRequest) error
}

// ProgressService interface - Input port (use case)
type ProgressService interface {
	GetProgress(userID string) (*domain.UserProgress, error)
	RecordSession(request domain.ProgressUpdateRequest) (*domain.UserProgress, error)
}
