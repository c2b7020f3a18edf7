package dto

import (
	"time"

	"fixnow_backend/internal/models"
)

type CreateServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	PriceCents  int64  `json:"priceCents" validate:"required,gt=0"`
}

type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

type ServiceDTO struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	PriceCents  int64                  `json:"priceCents"`
	ProviderID  string                 `json:"providerId"`
	Available   bool                   `json:"available"`
	CreatedAt   time.Time              `json:"createdAt"`
	Provider    *models.PublicProvider `json:"provider,omitempty"`
}

func NewServiceDTO(s *models.Service) ServiceDTO {
	out := ServiceDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		ProviderID:  s.ProviderID,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
	}
	if s.Provider != nil {
		p := s.Provider.Public()
		out.Provider = &p
	}
	return out
}

func NewServiceDTOs(services []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(services))
	for i := range services {
		out = append(out, NewServiceDTO(&services[i]))
	}
	return out
}
