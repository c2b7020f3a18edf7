package services

import (
	"strings"

	"fixnow_backend/internal/auth"
	"fixnow_backend/internal/models"
	"fixnow_backend/internal/repositories"
	"fixnow_backend/internal/services/dto"
	"fixnow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CatalogService interface {
	// ListAvailable returns the public catalog: available services,
	// newest first, with the provider annotated.
	ListAvailable(db *gorm.DB) ([]dto.ServiceDTO, error)
	// GetService gates the detail view the same way as the listing:
	// unavailable services read as not found.
	GetService(db *gorm.DB, id string) (*dto.ServiceDTO, error)
	CreateService(db *gorm.DB, identity *auth.Claims, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error)
	SetAvailability(db *gorm.DB, identity *auth.Claims, id string, available bool) (*dto.ServiceDTO, error)
	DeleteService(db *gorm.DB, identity *auth.Claims, id string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *CatalogServiceImpl) ListAvailable(db *gorm.DB) ([]dto.ServiceDTO, error) {
	services, err := s.serviceRepo.FindAvailable(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceDTOs(services), nil
}

func (s *CatalogServiceImpl) GetService(db *gorm.DB, id string) (*dto.ServiceDTO, error) {
	service, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceUnavailable
		}
		return nil, apperrors.InternalError(err)
	}
	if !service.Available {
		return nil, apperrors.ErrServiceUnavailable
	}

	out := dto.NewServiceDTO(service)
	return &out, nil
}

func (s *CatalogServiceImpl) CreateService(db *gorm.DB, identity *auth.Claims, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error) {
	if !auth.RoleAllowed(auth.OpServiceCreate, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyProviders
	}

	// Whitespace-only text must not pass the required rule.
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		fields := make(map[string]string)
		if title == "" {
			fields["title"] = "This field is required"
		}
		if description == "" {
			fields["description"] = "This field is required"
		}
		return nil, apperrors.ValidationError(fields)
	}

	service := &models.Service{
		Title:       title,
		Description: description,
		PriceCents:  req.PriceCents,
		ProviderID:  identity.UserID,
		Available:   true,
	}

	if err := s.serviceRepo.Create(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewServiceDTO(service)
	return &out, nil
}

// SetAvailability collapses "not yours" into not-found, so providers cannot
// probe each other's catalog entries.
func (s *CatalogServiceImpl) SetAvailability(db *gorm.DB, identity *auth.Claims, id string, available bool) (*dto.ServiceDTO, error) {
	if !auth.RoleAllowed(auth.OpServiceSetAvailability, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyProviders
	}

	if _, err := s.serviceRepo.FindOwned(db, id, identity.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	service, err := s.serviceRepo.SetAvailability(db, id, available)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewServiceDTO(service)
	return &out, nil
}

func (s *CatalogServiceImpl) DeleteService(db *gorm.DB, identity *auth.Claims, id string) error {
	if !auth.RoleAllowed(auth.OpServiceDelete, models.UserRole(identity.Role)) {
		return apperrors.ErrOnlyProviders
	}

	if _, err := s.serviceRepo.FindOwned(db, id, identity.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.serviceRepo.DeleteWithJobs(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
