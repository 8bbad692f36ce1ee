package application

import (
	"fmt"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ScenarioService struct - Application service implementing use cases
type ScenarioService struct {
	repo output.ScenarioRepository
}

// NewScenarioService func - Creates new scenario service
func NewScenarioService(repo output.ScenarioRepository) *ScenarioService {
	return &ScenarioService{
		repo: repo,
	}
}

// CreateScenario func - Use case: Create a training scenario
func (s *ScenarioService) CreateScenario(request domain.ScenarioRequest) (*domain.Scenario, error) {
	if request.Name == "" {
		return nil, fmt.Errorf("%w: scenario name is required", domain.ErrInvalidInput)
	}
	result, err := s.repo.CreateScenario(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// ListScenarios func - Use case: List scenarios, newest first
func (s *ScenarioService) ListScenarios() ([]domain.Scenario, error) {
	return s.repo.ListScenarios()
}
