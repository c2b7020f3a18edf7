package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fixnow_backend/internal/models"
	"fixnow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginClient(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)
	// The password hash never leaves the server.
	assert.NotContains(t, bodyStr, "password")
	assert.NotContains(t, bodyStr, "$2")

	// No token, no profile.
	res2, bodyStr2 := ts.SendRequest(t, "GET", "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Sem token")

	res3, _ := ts.SendRequest(t, "GET", "/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res3.StatusCode)
}

func TestUpdateMe_PartialFields(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginClient(t, ts)

	// Only the name changes; email and avatar stay put.
	res, bodyStr := ts.SendRequest(t, "PUT", "/me", token, map[string]interface{}{"name": "Novo Nome"})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated struct {
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "Novo Nome", updated.User.Name)
	assert.Equal(t, user.Email, updated.User.Email)

	// Password change takes effect on the next login.
	res2, _ := ts.SendRequest(t, "PUT", "/me", token, map[string]interface{}{"password": "nova_senha"})
	assert.Equal(t, http.StatusOK, res2.StatusCode)

	oldLogin, _ := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{"email": user.Email, "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, oldLogin.StatusCode)

	newLogin, _ := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{"email": user.Email, "password": "nova_senha"})
	assert.Equal(t, http.StatusOK, newLogin.StatusCode)

	// A short password is rejected before touching the account.
	res3, _ := ts.SendRequest(t, "PUT", "/me", token, map[string]interface{}{"password": "123"})
	assert.Equal(t, http.StatusBadRequest, res3.StatusCode)
}

func TestDeleteMe_CascadesEverything(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, provider := helpers.CreateAndLoginProvider(t, ts)
	_, client := helpers.CreateAndLoginClient(t, ts)

	service := helpers.CreateTestService(t, ts.DB, provider.ID, "Serviço a remover", 5000)
	job := helpers.CreateTestJob(t, ts.DB, client.ID, provider.ID, service.ID, models.JobStatusOpen)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/me", providerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var userCount, serviceCount, jobCount int64
	ts.DB.Table("users").Where("id = ?", provider.ID).Count(&userCount)
	ts.DB.Table("services").Where("id = ?", service.ID).Count(&serviceCount)
	ts.DB.Table("jobs").Where("id = ?", job.ID).Count(&jobCount)
	assert.Zero(t, userCount)
	assert.Zero(t, serviceCount, "the provider's services go with the account")
	assert.Zero(t, jobCount, "jobs against those services go too")

	// The token no longer resolves to an account.
	res2, _ := ts.SendRequest(t, "GET", "/me", providerToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}
