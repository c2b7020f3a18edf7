package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"fixnow_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UniqueEmail returns an address that no other test can collide with.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser inserts a user directly. A raw password in PasswordHash is
// hashed on the way in, and the user is verified unless the test says
// otherwise.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a verified user and logs in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:          name,
		Email:         email,
		PasswordHash:  password,
		Role:          role,
		EmailVerified: true,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err, "creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginClient creates a client with a unique email.
func CreateAndLoginClient(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, "Test Client", UniqueEmail("client"), "password123", models.UserRoleClient)
}

// CreateAndLoginProvider creates a provider with a unique email.
func CreateAndLoginProvider(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, "Test Provider", UniqueEmail("provider"), "password123", models.UserRoleProvider)
}

// CreateTestService inserts a service owned by the given provider.
func CreateTestService(t *testing.T, db *gorm.DB, providerID, title string, priceCents int64) models.Service {
	service := models.Service{
		Title:       title,
		Description: "Test description",
		PriceCents:  priceCents,
		ProviderID:  providerID,
		Available:   true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return service
}

// CreateTestJob inserts a job in the given status.
func CreateTestJob(t *testing.T, db *gorm.DB, clientID, providerID, serviceID string, status models.JobStatus) models.Job {
	job := models.Job{
		ClientID:   clientID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Notes:      "test notes",
		Status:     status,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}
