package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fixnow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService_ProviderOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, provider := helpers.CreateAndLoginProvider(t, ts)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts)

	body := map[string]interface{}{
		"title":       "Instalação de chuveiro",
		"description": "Instalação com teste de funcionamento",
		"priceCents":  12000,
	}

	// A client must not publish services.
	res, bodyStr := ts.SendRequest(t, "POST", "/services", clientToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Apenas prestadores")

	// The provider can.
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/services", providerToken, body)
	assert.Equal(t, http.StatusCreated, res2.StatusCode, bodyStr2)

	var created struct {
		OK      bool `json:"ok"`
		Service struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			PriceCents int64  `json:"priceCents"`
			ProviderID string `json:"providerId"`
			Available  bool   `json:"available"`
		} `json:"service"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr2), &created))
	assert.True(t, created.OK)
	assert.NotEmpty(t, created.Service.ID)
	assert.Equal(t, int64(12000), created.Service.PriceCents)
	assert.Equal(t, provider.ID, created.Service.ProviderID)
	assert.True(t, created.Service.Available)

	// Anonymous creation is rejected outright.
	res3, _ := ts.SendRequest(t, "POST", "/services", "", body)
	assert.Equal(t, http.StatusUnauthorized, res3.StatusCode)
}

func TestCreateService_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, _ := helpers.CreateAndLoginProvider(t, ts)

	// Zero price fails the gt=0 rule.
	body := map[string]interface{}{
		"title":       "Serviço grátis",
		"description": "teste",
		"priceCents":  0,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/services", providerToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"ok":false`)

	// Whitespace-only text is as empty as no text.
	blank := map[string]interface{}{
		"title":       "   ",
		"description": "\t\n",
		"priceCents":  1000,
	}
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/services", providerToken, blank)
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)
	assert.Contains(t, bodyStr2, "title")
	assert.Contains(t, bodyStr2, "description")

	var count int64
	ts.DB.Table("services").Where("title = ?", "   ").Count(&count)
	assert.Zero(t, count)
}

func TestListServices_OnlyAvailable(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, provider := helpers.CreateAndLoginProvider(t, ts)

	visible := helpers.CreateTestService(t, ts.DB, provider.ID, "Pintura de parede", 25000)
	hidden := helpers.CreateTestService(t, ts.DB, provider.ID, "Serviço pausado", 10000)
	require.NoError(t, ts.DB.Model(&hidden).Update("available", false).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/services", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, visible.ID)
	assert.NotContains(t, bodyStr, hidden.ID)
	// Listing embeds the provider's public card, name only.
	assert.Contains(t, bodyStr, provider.Name)
	assert.NotContains(t, bodyStr, provider.Email)

	// The listing stays public with a token and even with a stale one.
	authedRes, _ := ts.SendRequest(t, "GET", "/services", providerToken, nil)
	assert.Equal(t, http.StatusOK, authedRes.StatusCode)
	staleRes, _ := ts.SendRequest(t, "GET", "/services", "expired-or-garbage", nil)
	assert.Equal(t, http.StatusOK, staleRes.StatusCode)
}

func TestGetService_HiddenWhenUnavailable(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, provider := helpers.CreateAndLoginProvider(t, ts)

	service := helpers.CreateTestService(t, ts.DB, provider.ID, "Montagem de móveis", 18000)

	res, bodyStr := ts.SendRequest(t, "GET", "/services/"+service.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Montagem de móveis")

	// Pausing the service hides the detail page too.
	pauseRes, _ := ts.SendRequest(t, "PATCH", "/services/"+service.ID+"/availability", providerToken, map[string]interface{}{"available": false})
	assert.Equal(t, http.StatusOK, pauseRes.StatusCode)

	res2, bodyStr2 := ts.SendRequest(t, "GET", "/services/"+service.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Serviço não encontrado ou indisponível")
}

func TestSetAvailability_OwnershipHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginProvider(t, ts)
	otherToken, _ := helpers.CreateAndLoginProvider(t, ts)

	service := helpers.CreateTestService(t, ts.DB, owner.ID, "Jardinagem", 9000)

	// Another provider probing the service sees a 404, not a 403.
	res, bodyStr := ts.SendRequest(t, "PATCH", "/services/"+service.ID+"/availability", otherToken, map[string]interface{}{"available": false})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Serviço não encontrado")
}

func TestDeleteService_CascadesJobs(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	providerToken, provider := helpers.CreateAndLoginProvider(t, ts)
	_, client := helpers.CreateAndLoginClient(t, ts)

	service := helpers.CreateTestService(t, ts.DB, provider.ID, "Limpeza pós-obra", 30000)
	job := helpers.CreateTestJob(t, ts.DB, client.ID, provider.ID, service.ID, "OPEN")

	res, bodyStr := ts.SendRequest(t, "DELETE", "/services/"+service.ID, providerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var serviceCount, jobCount int64
	ts.DB.Table("services").Where("id = ?", service.ID).Count(&serviceCount)
	ts.DB.Table("jobs").Where("id = ?", job.ID).Count(&jobCount)
	assert.Zero(t, serviceCount)
	assert.Zero(t, jobCount, "deleting a service removes its jobs")

	// Deleting again reports not found.
	res2, _ := ts.SendRequest(t, "DELETE", "/services/"+service.ID, providerToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}
