package dto

import (
	"time"

	"fixnow_backend/internal/models"
)

type CreateJobRequest struct {
	Notes string `json:"notes"`
}

type JobDTO struct {
	ID         string                 `json:"id"`
	ClientID   string                 `json:"clientId"`
	ProviderID string                 `json:"providerId"`
	ServiceID  string                 `json:"serviceId"`
	Notes      string                 `json:"notes"`
	Status     models.JobStatus       `json:"status"`
	CreatedAt  time.Time              `json:"createdAt"`
	Service    *ServiceDTO            `json:"service,omitempty"`
	Client     *models.PublicProvider `json:"client,omitempty"`
}

func NewJobDTO(j *models.Job) JobDTO {
	out := JobDTO{
		ID:         j.ID,
		ClientID:   j.ClientID,
		ProviderID: j.ProviderID,
		ServiceID:  j.ServiceID,
		Notes:      j.Notes,
		Status:     j.Status,
		CreatedAt:  j.CreatedAt,
	}
	if j.Service != nil {
		s := NewServiceDTO(j.Service)
		out.Service = &s
	}
	if j.Client != nil {
		c := j.Client.Public()
		out.Client = &c
	}
	return out
}

func NewJobDTOs(jobs []models.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}

// ProviderDashboard bundles the provider's incoming jobs with their own
// catalog.
type ProviderDashboard struct {
	Jobs       []JobDTO     `json:"jobs"`
	MyServices []ServiceDTO `json:"myServices"`
}
