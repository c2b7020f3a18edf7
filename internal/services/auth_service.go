package services

import (
	"fmt"
	"time"

	"fixnow_backend/internal/auth"
	"fixnow_backend/internal/email"
	"fixnow_backend/internal/logger"
	"fixnow_backend/internal/models"
	"fixnow_backend/internal/repositories"
	"fixnow_backend/internal/services/dto"
	"fixnow_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	// Register creates an unverified account and returns the verification
	// link; baseURL is the externally visible API address.
	Register(db *gorm.DB, req *dto.RegisterRequest, baseURL string) (*dto.RegisterResponse, error)
	ResendVerification(db *gorm.DB, emailAddr, baseURL string) (*dto.ResendVerificationResponse, error)
	// Verify consumes a verification token and reports the redirect status.
	Verify(db *gorm.DB, token string) (dto.VerifyStatus, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.VerificationTokenRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest, baseURL string) (*dto.RegisterResponse, error) {
	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		Role:          req.Role,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	verifyLink, err := s.issueVerification(db, user.ID, user.Email, baseURL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := "Conta criada. Use o link para verificar."
	if s.emailProvider.Enabled() {
		message = "Enviamos um e-mail de verificação."
	}

	return &dto.RegisterResponse{
		OK:                true,
		NeedsVerification: true,
		Message:           message,
		VerifyLink:        verifyLink,
	}, nil
}

func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, emailAddr, baseURL string) (*dto.ResendVerificationResponse, error) {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.EmailVerified {
		return &dto.ResendVerificationResponse{
			OK:      true,
			Message: "E-mail já verificado.",
		}, nil
	}

	verifyLink, err := s.issueVerification(db, user.ID, user.Email, baseURL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := "Link de verificação gerado."
	if s.emailProvider.Enabled() {
		message = "Novo e-mail enviado."
	}

	return &dto.ResendVerificationResponse{
		OK:         true,
		Message:    message,
		VerifyLink: verifyLink,
	}, nil
}

func (s *AuthServiceImpl) Verify(db *gorm.DB, token string) (dto.VerifyStatus, error) {
	record, err := s.tokenRepo.FindByToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return "", apperrors.ErrInvalidToken
		}
		return "", apperrors.InternalError(err)
	}

	// A consumed token is success-idempotent: report "already" without
	// touching any state.
	if record.Used {
		return dto.VerifyStatusAlready, nil
	}

	if record.ExpiresAt.Before(time.Now()) {
		return dto.VerifyStatusExpired, nil
	}

	if err := s.userRepo.MarkVerified(db, record.UserID); err != nil {
		return "", apperrors.InternalError(err)
	}
	if err := s.tokenRepo.MarkUsed(db, token); err != nil {
		return "", apperrors.InternalError(err)
	}

	return dto.VerifyStatusOK, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Uniform message, no user-existence leak.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		OK:    true,
		Token: token,
		User:  dto.NewUserDTO(user),
	}, nil
}

// issueVerification creates a fresh 24h token and kicks off best-effort
// mail delivery.
func (s *AuthServiceImpl) issueVerification(db *gorm.DB, userID, emailAddr, baseURL string) (string, error) {
	token, err := auth.GenerateVerificationToken()
	if err != nil {
		return "", err
	}

	record := &models.VerificationToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return "", err
	}

	verifyLink := fmt.Sprintf("%s/auth/verify?token=%s", baseURL, token)
	s.sendVerificationEmail(emailAddr, verifyLink)

	return verifyLink, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, link string) {
	if !s.emailProvider.Enabled() {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, link); err != nil {
			logger.Error("failed to send verification email", "error", err, "to", to)
		}
	}()
}
