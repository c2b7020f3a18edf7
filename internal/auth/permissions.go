package auth

import (
	"errors"

	"fixnow_backend/internal/models"
)

// Operation names every role-gated action in the system. The role policy
// lives in one table so accept and complete cannot drift apart.
type Operation string

const (
	OpServiceCreate          Operation = "service:create"
	OpServiceSetAvailability Operation = "service:set_availability"
	OpServiceDelete          Operation = "service:delete"
	OpJobCreate              Operation = "job:create"
	OpJobAccept              Operation = "job:accept"
	OpJobComplete            Operation = "job:complete"
	OpDashboardClient        Operation = "dashboard:client"
	OpDashboardProvider      Operation = "dashboard:provider"
)

var policy = map[Operation][]models.UserRole{
	OpServiceCreate:          {models.UserRoleProvider},
	OpServiceSetAvailability: {models.UserRoleProvider},
	OpServiceDelete:          {models.UserRoleProvider},
	OpJobCreate:              {models.UserRoleClient},
	OpJobAccept:              {models.UserRoleProvider},
	OpJobComplete:            {models.UserRoleProvider},
	OpDashboardClient:        {models.UserRoleClient},
	OpDashboardProvider:      {models.UserRoleProvider},
}

// RoleAllowed reports whether the role may perform the operation. Ownership
// checks (does this provider own this service/job) stay in the services,
// closer to the data.
func RoleAllowed(op Operation, role models.UserRole) bool {
	allowed, exists := policy[op]
	if !exists {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ValidateRole rejects anything outside the two marketplace roles.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleClient, models.UserRoleProvider:
		return nil
	default:
		return errors.New("invalid role")
	}
}
