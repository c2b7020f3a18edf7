package repositories

import (
	"errors"

	"fixnow_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("verification token not found")

type VerificationTokenRepository interface {
	Create(db *gorm.DB, token *models.VerificationToken) error
	// FindByToken is an exact-match lookup, never prefix or fuzzy.
	FindByToken(db *gorm.DB, token string) (*models.VerificationToken, error)
	MarkUsed(db *gorm.DB, token string) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type VerificationTokenRepositoryImpl struct{}

func NewVerificationTokenRepository() VerificationTokenRepository {
	return &VerificationTokenRepositoryImpl{}
}

func (r *VerificationTokenRepositoryImpl) Create(db *gorm.DB, token *models.VerificationToken) error {
	return db.Create(token).Error
}

func (r *VerificationTokenRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.VerificationToken, error) {
	var record models.VerificationToken
	err := db.First(&record, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *VerificationTokenRepositoryImpl) MarkUsed(db *gorm.DB, token string) error {
	result := db.Model(&models.VerificationToken{}).Where("token = ?", token).Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *VerificationTokenRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.VerificationToken{}).Error
}
