package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"fixnow_backend/internal/repositories"
	"fixnow_backend/internal/storage"
	"fixnow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UploadConfig caps the avatar payload.
type UploadConfig struct {
	MaxAvatarSize int64
}

type UploadService interface {
	// SetAvatar validates, stores the image and updates the user's avatar
	// URL. Returns the public URL.
	SetAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (string, error)
}

type UploadServiceImpl struct {
	userRepo repositories.UserRepository
	storage  storage.Storage
	config   UploadConfig
}

func NewUploadService(userRepo repositories.UserRepository, store storage.Storage, config UploadConfig) UploadService {
	return &UploadServiceImpl{
		userRepo: userRepo,
		storage:  store,
		config:   config,
	}
}

func (s *UploadServiceImpl) SetAvatar(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (string, error) {
	if file.Size > s.config.MaxAvatarSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".png"
	}

	// Path keyed by user id and upload timestamp so a re-upload never
	// clobbers an URL already handed out.
	path := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().UnixMilli(), ext)

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, path, src); err != nil {
		return "", apperrors.InternalError(err)
	}

	avatarURL := s.storage.GetURL(path)

	if err := s.userRepo.UpdateAvatarURL(db, userID, avatarURL); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}

	return avatarURL, nil
}
