package postgres

import (
	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check
var _ output.OrganizationRepository = (*OrganizationRepository)(nil)

// OrganizationRepository struct - Secondary/Driven adapter for PostgreSQL
type OrganizationRepository struct {
	dbGorm *gorm.DB
}

// NewOrganizationRepository func - Creates new PostgreSQL repository
func NewOrganizationRepository(dbGorm *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		dbGorm: dbGorm,
	}
}

// CreateOrganization creates the organization and seeds the creator as its
// owner in one transaction.
func (p *OrganizationRepository) CreateOrganization(request domain.OrganizationRequest) (*domain.Organization, error) {
	org := domain.Organization{
		Name:      &request.Name,
		CreatedBy: &request.CreatedBy,
	}

	ownerRole := domain.MembershipRoleOwner
	err := p.dbGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		membership := domain.Membership{
			OrgID:  org.ID,
			UserID: &request.CreatedBy,
			Role:   &ownerRole,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).Create(&membership).Error
	})
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &org, nil
}

// ListOrganizations returns all organizations, newest first.
func (p *OrganizationRepository) ListOrganizations() ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := p.dbGorm.Order("created_at DESC").Find(&orgs).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return orgs, nil
}

// UpsertMembership adds or updates one member's role.
func (p *OrganizationRepository) UpsertMembership(request domain.MembershipRequest) error {
	membership := domain.Membership{
		OrgID:  &request.OrgID,
		UserID: &request.UserID,
		Role:   &request.Role,
	}
	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&membership).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}

// DeleteMembership removes one member. Idempotent.
func (p *OrganizationRepository) DeleteMembership(orgID uuid.UUID, userID string) error {
	err := p.dbGorm.
		Where("org_id = ? AND user_id = ?", orgID, userID).
		Delete(&domain.Membership{}).Error
	if err != nil {
		logrus.Errorln(err)
	}
	return err
}
