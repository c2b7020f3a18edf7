package services

import (
	"fixnow_backend/internal/email"
)

// ServiceContainer bundles every service of the application for wiring.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	CatalogService CatalogService
	JobService     JobService
	UploadService  UploadService
	EmailProvider  email.Provider
}
