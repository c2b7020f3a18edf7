package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"fixnow_backend/internal/models"
	"fixnow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendAvatar uploads a multipart body with the given content type and size.
func sendAvatar(t *testing.T, ts *helpers.TestServer, token, filename, contentType string, payload []byte) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", ts.Server.URL+"/upload/avatar", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	return res, string(body)
}

func TestUploadAvatar(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginClient(t, ts)

	// Tiny but valid payload; the server trusts the declared content type.
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	res, bodyStr := sendAvatar(t, ts, token, "face.png", "image/png", png)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The SPA reads data.avatarUrl from this response.
	var uploaded struct {
		OK        bool   `json:"ok"`
		AvatarURL string `json:"avatarUrl"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &uploaded))
	assert.True(t, uploaded.OK)
	assert.Contains(t, uploaded.AvatarURL, "/uploads/avatars/")

	// The URL is persisted on the account.
	var fresh models.User
	require.NoError(t, ts.DB.First(&fresh, "id = ?", user.ID).Error)
	assert.Contains(t, fresh.AvatarURL, "avatars/")

	// The stored file is reachable through the static mount.
	fileRes, err := ts.Server.Client().Get(ts.Server.URL + fresh.AvatarURL)
	require.NoError(t, err)
	fileRes.Body.Close()
	assert.Equal(t, http.StatusOK, fileRes.StatusCode)
}

func TestUploadAvatar_Rejections(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginClient(t, ts)

	// Not an image.
	res, bodyStr := sendAvatar(t, ts, token, "notes.txt", "text/plain", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "precisa ser uma imagem")

	// Over the size cap.
	big := bytes.Repeat([]byte{0xff}, 3*1024*1024+1)
	res2, bodyStr2 := sendAvatar(t, ts, token, "huge.jpg", "image/jpeg", big)
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)
	assert.Contains(t, bodyStr2, "tamanho máximo")

	// No file at all.
	emptyRes, emptyBodyStr := ts.SendRequest(t, "POST", "/upload/avatar", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, emptyRes.StatusCode)
	assert.Contains(t, emptyBodyStr, "Nenhum arquivo enviado")

	// Anonymous upload.
	res3, _ := sendAvatar(t, ts, "", "face.png", "image/png", []byte{0x89})
	assert.Equal(t, http.StatusUnauthorized, res3.StatusCode)
}
