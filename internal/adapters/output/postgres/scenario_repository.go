package postgres

import (
	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check
var _ output.ScenarioRepository = (*ScenarioRepository)(nil)

// ScenarioRepository struct - Secondary/Driven adapter for PostgreSQL
type ScenarioRepository struct {
	dbGorm *gorm.DB
}

// NewScenarioRepository func - Creates new PostgreSQL repository
func NewScenarioRepository(dbGorm *gorm.DB) *ScenarioRepository {
	return &ScenarioRepository{
		dbGorm: dbGorm,
	}
}

// CreateScenario func
func (p *ScenarioRepository) CreateScenario(request domain.ScenarioRequest) (*domain.Scenario, error) {
	scenario := domain.Scenario{
		OwnerID:     &request.OwnerID,
		OrgID:       request.OrgID,
		Name:        &request.Name,
		Description: request.Description,
		Config:      request.Config,
	}
	if err := p.dbGorm.Create(&scenario).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &scenario, nil
}

// ListScenarios returns all scenarios, newest first.
func (p *ScenarioRepository) ListScenarios() ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	if err := p.dbGorm.Order("created_at DESC").Find(&scenarios).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return scenarios, nil
}
