package postgres

import (
	"errors"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check
var _ output.PersonaRepository = (*PersonaRepository)(nil)

// PersonaRepository struct - Secondary/Driven adapter for PostgreSQL
type PersonaRepository struct {
	dbGorm *gorm.DB
}

// NewPersonaRepository func - Creates new PostgreSQL repository
func NewPersonaRepository(dbGorm *gorm.DB) *PersonaRepository {
	return &PersonaRepository{
		dbGorm: dbGorm,
	}
}

// CreatePersona func
func (p *PersonaRepository) CreatePersona(request domain.PersonaRequest) (*domain.AIPersona, error) {
	difficulty := 1
	if request.Difficulty != nil {
		difficulty = *request.Difficulty
	}
	persona := domain.AIPersona{
		OwnerID:    &request.OwnerID,
		OrgID:      request.OrgID,
		Name:       request.Name,
		Difficulty: &difficulty,
		Config:     request.Config,
	}
	if err := p.dbGorm.Create(&persona).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &persona, nil
}

// ListPersonas returns all personas, newest first.
func (p *PersonaRepository) ListPersonas() ([]domain.AIPersona, error) {
	var personas []domain.AIPersona
	if err := p.dbGorm.Order("created_at DESC").Find(&personas).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return personas, nil
}

// GetPersona func
func (p *PersonaRepository) GetPersona(id uuid.UUID) (*domain.AIPersona, error) {
	var persona domain.AIPersona
	err := p.dbGorm.Where("id = ?", id).First(&persona).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}
	return &persona, nil
}

// UpdatePersona applies only the fields present in the request.
func (p *PersonaRepository) UpdatePersona(id uuid.UUID, request domain.PersonaRequest) (*domain.AIPersona, error) {
	columns := make(map[string]interface{})
	if request.Name != nil {
		columns["name"] = *request.Name
	}
	if request.Difficulty != nil {
		columns["difficulty"] = *request.Difficulty
	}
	if request.Config != nil {
		columns["config"] = *request.Config
	}
	if request.OrgID != nil {
		columns["org_id"] = *request.OrgID
	}
	if len(columns) == 0 {
		return nil, errors.New("fields are not able to update")
	}

	var persona domain.AIPersona
	tx := p.dbGorm.Begin()
	defer func() {
		tx.Rollback()
	}()
	if err := tx.Table(persona.TableName()).Where("id = ?", id).Updates(columns).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if err := tx.Where("id = ?", id).First(&persona).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		logrus.Errorln(err)
		return nil, err
	}
	tx.Commit()
	return &persona, nil
}

// DeletePersona func
func (p *PersonaRepository) DeletePersona(id uuid.UUID) error {
	err := p.dbGorm.Where("id = ?", id).Delete(&domain.AIPersona{}).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}
