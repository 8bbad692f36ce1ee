package application

import (
	"fmt"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PersonaService struct - Application service implementing use cases
type PersonaService struct {
	repo output.PersonaRepository
}

// NewPersonaService func - Creates new persona service
func NewPersonaService(repo output.PersonaRepository) *PersonaService {
	return &PersonaService{
		repo: repo,
	}
}

// CreatePersona func - Use case: Create an AI persona
func (s *PersonaService) CreatePersona(request domain.PersonaRequest) (*domain.AIPersona, error) {
	if request.Name == nil || *request.Name == "" {
		return nil, fmt.Errorf("%w: persona name is required", domain.ErrInvalidInput)
	}
	result, err := s.repo.CreatePersona(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// ListPersonas func - Use case: List personas
func (s *PersonaService) ListPersonas() ([]domain.AIPersona, error) {
	return s.repo.ListPersonas()
}

// GetPersona func - Use case: Get one persona by id
func (s *PersonaService) GetPersona(id uuid.UUID) (*domain.AIPersona, error) {
	return s.repo.GetPersona(id)
}

// UpdatePersona func - Use case: Update a persona's mutable fields
func (s *PersonaService) UpdatePersona(id uuid.UUID, request domain.PersonaRequest) (*domain.AIPersona, error) {
	return s.repo.UpdatePersona(id, request)
}

// DeletePersona func - Use case: Delete a persona
func (s *PersonaService) DeletePersona(id uuid.UUID) error {
	return s.repo.DeletePersona(id)
}
