package repositories

import (
	"errors"

	"fixnow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByClient(db *gorm.DB, clientID string) ([]models.Job, error)
	// FindByProviderServices returns jobs whose service belongs to the
	// provider, newest first, with the client and service preloaded.
	FindByProviderServices(db *gorm.DB, providerID string) ([]models.Job, error)
	// TransitionStatus flips the job status only while it still is in one
	// of the from states. Reports whether the update won.
	TransitionStatus(db *gorm.DB, id string, to models.JobStatus, from ...models.JobStatus) (bool, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Service").Preload("Client").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByClient(db *gorm.DB, clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Service").Preload("Service.Provider").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByProviderServices(db *gorm.DB, providerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Client").Preload("Service").
		Joins("JOIN services ON services.id = jobs.service_id").
		Where("services.provider_id = ?", providerID).
		Order("jobs.created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// TransitionStatus relies on a single conditional UPDATE so concurrent
// callers racing on the same job cannot both win the transition.
func (r *JobRepositoryImpl) TransitionStatus(db *gorm.DB, id string, to models.JobStatus, from ...models.JobStatus) (bool, error) {
	result := db.Model(&models.Job{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
