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

// getNoRedirect performs a GET without following redirects so the
// verification redirect itself can be inspected.
func getNoRedirect(t *testing.T, url string) *http.Response {
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	res, err := client.Get(url)
	require.NoError(t, err)
	res.Body.Close()
	return res
}

func TestRegisterAndVerifyFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("verify_flow")

	registerBody := map[string]interface{}{
		"name":     "Ana Souza",
		"email":    email,
		"password": "senha123",
		"role":     "CLIENT",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)

	var reg struct {
		OK                bool   `json:"ok"`
		NeedsVerification bool   `json:"needsVerification"`
		VerifyLink        string `json:"verifyLink"`
	}
	require.NoError(t, json.Unmarshal([]byte(regBodyStr), &reg))
	assert.True(t, reg.OK)
	assert.True(t, reg.NeedsVerification)
	require.NotEmpty(t, reg.VerifyLink, "without SMTP configured the link comes back in the response")

	// Login before verification is rejected.
	loginBody := map[string]interface{}{"email": email, "password": "senha123"}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "E-mail não verificado")
	assert.Contains(t, logBodyStr, "needsVerification")

	// The emailed link redirects to the frontend with status=ok.
	verifyRes := getNoRedirect(t, reg.VerifyLink)
	assert.Equal(t, http.StatusFound, verifyRes.StatusCode)
	assert.Contains(t, verifyRes.Header.Get("Location"), "/verified?status=ok")

	// A second click is idempotent.
	againRes := getNoRedirect(t, reg.VerifyLink)
	assert.Equal(t, http.StatusFound, againRes.StatusCode)
	assert.Contains(t, againRes.Header.Get("Location"), "/verified?status=already")

	// Login now succeeds and carries the token plus the public user.
	logRes2, logBodyStr2 := ts.SendRequest(t, "POST", "/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes2.StatusCode, logBodyStr2)

	var login struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr2), &login))
	assert.True(t, login.OK)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, email, login.User.Email)
	assert.Equal(t, "CLIENT", login.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("duplicate")

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:          "User One",
		Email:         email,
		PasswordHash:  "pass123",
		Role:          models.UserRoleClient,
		EmailVerified: true,
	})
	require.NoError(t, err)

	registerBody := map[string]interface{}{
		"name":     "User Two",
		"email":    email,
		"password": "pass456",
		"role":     "CLIENT",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/auth/register", "", registerBody)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "E-mail já cadastrado")
	assert.Contains(t, bodyStr, `"ok":false`)
}

func TestRegister_InvalidPayload(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	// Password below the minimum and a role outside the enum.
	registerBody := map[string]interface{}{
		"name":     "Bad",
		"email":    "not-an-email",
		"password": "123",
		"role":     "ADMIN",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"ok":false`)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("wrongpass")
	helpers.CreateAndLoginUser(t, ts, "Login User", email, "password123", models.UserRoleClient)

	loginBody := map[string]interface{}{"email": email, "password": "nope"}
	res, bodyStr := ts.SendRequest(t, "POST", "/auth/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Credenciais inválidas")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	loginBody := map[string]interface{}{
		"email":    helpers.UniqueEmail("ghost"),
		"password": "whatever1",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/auth/login", "", loginBody)

	// Same message as a wrong password so account existence never leaks.
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Credenciais inválidas")
}

func TestVerify_InvalidToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/auth/verify?token=deadbeef", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Token inválido")

	res2, bodyStr2 := ts.SendRequest(t, "GET", "/auth/verify", "", nil)
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Token ausente")
}

func TestResendVerification(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("resend")

	registerBody := map[string]interface{}{
		"name":     "Resend User",
		"email":    email,
		"password": "senha123",
		"role":     "PROVIDER",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)

	res, bodyStr := ts.SendRequest(t, "POST", "/auth/resend-verification", "", map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resend struct {
		OK         bool   `json:"ok"`
		VerifyLink string `json:"verifyLink"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resend))
	assert.True(t, resend.OK)
	require.NotEmpty(t, resend.VerifyLink)

	// The reissued link still verifies the account.
	verifyRes := getNoRedirect(t, resend.VerifyLink)
	assert.Equal(t, http.StatusFound, verifyRes.StatusCode)
	assert.Contains(t, verifyRes.Header.Get("Location"), "/verified?status=ok")

	// Once verified, resending is a friendly no-op.
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/auth/resend-verification", "", map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, bodyStr2, "E-mail já verificado")

	// Unknown accounts are reported as missing.
	res3, _ := ts.SendRequest(t, "POST", "/auth/resend-verification", "", map[string]interface{}{"email": helpers.UniqueEmail("ghost")})
	assert.Equal(t, http.StatusNotFound, res3.StatusCode)
}
