package services

import (
	"fixnow_backend/internal/auth"
	"fixnow_backend/internal/models"
	"fixnow_backend/internal/repositories"
	"fixnow_backend/internal/services/dto"
	"fixnow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	// CreateJob opens a job against an available service; the provider
	// is copied from the service.
	CreateJob(db *gorm.DB, identity *auth.Claims, serviceID string, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	ClientDashboard(db *gorm.DB, identity *auth.Claims) ([]dto.JobDTO, error)
	ProviderDashboard(db *gorm.DB, identity *auth.Claims) (*dto.ProviderDashboard, error)
	AcceptJob(db *gorm.DB, identity *auth.Claims, jobID string) (*dto.JobDTO, error)
	CompleteJob(db *gorm.DB, identity *auth.Claims, jobID string) (*dto.JobDTO, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	serviceRepo repositories.ServiceRepository
}

func NewJobService(jobRepo repositories.JobRepository, serviceRepo repositories.ServiceRepository) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		serviceRepo: serviceRepo,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, identity *auth.Claims, serviceID string, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	if !auth.RoleAllowed(auth.OpJobCreate, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyClients
	}

	service, err := s.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceUnavailable
		}
		return nil, apperrors.InternalError(err)
	}
	if !service.Available {
		return nil, apperrors.ErrServiceUnavailable
	}

	job := &models.Job{
		ClientID:   identity.UserID,
		ProviderID: service.ProviderID,
		ServiceID:  service.ID,
		Notes:      req.Notes,
		Status:     models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Service = service
	out := dto.NewJobDTO(job)
	return &out, nil
}

func (s *JobServiceImpl) ClientDashboard(db *gorm.DB, identity *auth.Claims) ([]dto.JobDTO, error) {
	if !auth.RoleAllowed(auth.OpDashboardClient, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyClients
	}

	jobs, err := s.jobRepo.FindByClient(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobDTOs(jobs), nil
}

func (s *JobServiceImpl) ProviderDashboard(db *gorm.DB, identity *auth.Claims) (*dto.ProviderDashboard, error) {
	if !auth.RoleAllowed(auth.OpDashboardProvider, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyProviders
	}

	jobs, err := s.jobRepo.FindByProviderServices(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	myServices, err := s.serviceRepo.FindByProvider(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProviderDashboard{
		Jobs:       dto.NewJobDTOs(jobs),
		MyServices: dto.NewServiceDTOs(myServices),
	}, nil
}

func (s *JobServiceImpl) AcceptJob(db *gorm.DB, identity *auth.Claims, jobID string) (*dto.JobDTO, error) {
	if !auth.RoleAllowed(auth.OpJobAccept, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyProviders
	}

	job, err := s.loadOwnedJob(db, identity, jobID)
	if err != nil {
		return nil, err
	}

	// Conditional transition: only an OPEN job can be accepted, and only
	// one of two racing providers can win the update.
	won, err := s.jobRepo.TransitionStatus(db, job.ID, models.JobStatusAssigned, models.JobStatusOpen)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !won {
		return nil, apperrors.ErrJobNotOpen
	}

	return s.reloadJob(db, job.ID)
}

// CompleteJob requires the same provider-ownership as AcceptJob.
func (s *JobServiceImpl) CompleteJob(db *gorm.DB, identity *auth.Claims, jobID string) (*dto.JobDTO, error) {
	if !auth.RoleAllowed(auth.OpJobComplete, models.UserRole(identity.Role)) {
		return nil, apperrors.ErrOnlyProviders
	}

	job, err := s.loadOwnedJob(db, identity, jobID)
	if err != nil {
		return nil, err
	}

	won, err := s.jobRepo.TransitionStatus(db, job.ID, models.JobStatusDone,
		models.JobStatusOpen, models.JobStatusAssigned)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !won {
		return nil, apperrors.ErrJobAlreadyFinished
	}

	return s.reloadJob(db, job.ID)
}

// loadOwnedJob fetches the job and enforces that its service belongs to the
// calling provider.
func (s *JobServiceImpl) loadOwnedJob(db *gorm.DB, identity *auth.Claims, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Service == nil || job.Service.ProviderID != identity.UserID {
		return nil, apperrors.ErrJobNotOwned
	}
	return job, nil
}

func (s *JobServiceImpl) reloadJob(db *gorm.DB, jobID string) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewJobDTO(job)
	return &out, nil
}
