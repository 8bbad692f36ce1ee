package application

import (
	"fmt"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrganizationService struct - Application service implementing use cases
type OrganizationService struct {
	repo output.OrganizationRepository
}

// NewOrganizationService func - Creates new organization service
func NewOrganizationService(repo output.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		repo: repo,
	}
}

// CreateOrganization func - Use case: Create an organization with the
// creator seeded as owner
func (s *OrganizationService) CreateOrganization(request domain.OrganizationRequest) (*domain.Organization, error) {
	if request.Name == "" {
		return nil, fmt.Errorf("%w: organization name is required", domain.ErrInvalidInput)
	}
	result, err := s.repo.CreateOrganization(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// ListOrganizations func - Use case: List organizations, newest first
func (s *OrganizationService) ListOrganizations() ([]domain.Organization, error) {
	return s.repo.ListOrganizations()
}

// UpsertMembership func - Use case: Add or re-role a member
func (s *OrganizationService) UpsertMembership(request domain.MembershipRequest) error {
	switch request.Role {
	case domain.MembershipRoleMember, domain.MembershipRoleManager, domain.MembershipRoleOwner:
	default:
		return fmt.Errorf("%w: unknown membership role %q", domain.ErrInvalidInput, request.Role)
	}
	return s.repo.UpsertMembership(request)
}

// DeleteMembership func - Use case: Remove a member from an organization
func (s *OrganizationService) DeleteMembership(orgID uuid.UUID, userID string) error {
	return s.repo.DeleteMembership(orgID, userID)
}
