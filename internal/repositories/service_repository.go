package repositories

import (
	"errors"

	"fixnow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(db *gorm.DB, service *models.Service) error
	// FindAvailable returns available services, newest first, with the
	// provider preloaded.
	FindAvailable(db *gorm.DB) ([]models.Service, error)
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	// FindOwned looks up a service only when it belongs to the provider.
	FindOwned(db *gorm.DB, id, providerID string) (*models.Service, error)
	FindByProvider(db *gorm.DB, providerID string) ([]models.Service, error)
	SetAvailability(db *gorm.DB, id string, available bool) (*models.Service, error)
	// DeleteWithJobs removes the service and every job referencing it as
	// one transaction.
	DeleteWithJobs(db *gorm.DB, id string) error
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindAvailable(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Preload("Provider").
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.Preload("Provider").First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindOwned(db *gorm.DB, id, providerID string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ? AND provider_id = ?", id, providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindByProvider(db *gorm.DB, providerID string) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) SetAvailability(db *gorm.DB, id string, available bool) (*models.Service, error) {
	result := db.Model(&models.Service{}).Where("id = ?", id).Update("available", available)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrServiceNotFound
	}

	var service models.Service
	if err := db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) DeleteWithJobs(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Service{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrServiceNotFound
		}
		return nil
	})
}
