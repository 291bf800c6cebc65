package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/config"
	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/auth"
	"github.com/vivasaude/vivasaude/pkg/cache"
	"github.com/vivasaude/vivasaude/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

// setupAuthTest creates a test database, blacklist and auth handler
func setupAuthTest(t *testing.T) (*ent.Client, *AuthHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	cfg := &config.Config{
		JWTSecret:          "test-secret-key-minimum-32-characters-long",
		JWTExpirationHours: 24,
	}

	handler := NewAuthHandler(client, cfg, auth.NewTokenBlacklist(cacheClient), audit.NewService(client), nil)
	return client, handler
}

func doAuthRequest(handler func(echo.Context) error, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestRegister_Success(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	body := `{"email":"maria@example.com","password":"senha-forte","name":"Maria","role":"professional"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria@example.com", resp.User.Email)
	assert.Equal(t, "professional", resp.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	body := `{"email":"maria@example.com","password":"senha-forte","name":"Maria","role":"patient"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doAuthRequest(handler.Register, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	body := `{"email":"maria@example.com","password":"123","name":"Maria","role":"patient"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	// Admins are provisioned out of band, never via self-registration
	body := `{"email":"eve@example.com","password":"senha-forte","name":"Eve","role":"admin"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	register := `{"email":"joao@example.com","password":"senha-forte","name":"João","role":"patient"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	login := `{"email":"joao@example.com","password":"senha-forte"}`
	rec = doAuthRequest(handler.Login, "/api/v1/auth/login", login)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	register := `{"email":"joao@example.com","password":"senha-forte","name":"João","role":"patient"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	login := `{"email":"joao@example.com","password":"senha-errada"}`
	rec = doAuthRequest(handler.Login, "/api/v1/auth/login", login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	login := `{"email":"ghost@example.com","password":"whatever1"}`
	rec := doAuthRequest(handler.Login, "/api/v1/auth/login", login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	client, handler := setupAuthTest(t)
	defer client.Close()

	register := `{"email":"ana@example.com","password":"senha-forte","name":"Ana","role":"patient"}`
	rec := doAuthRequest(handler.Register, "/api/v1/auth/register", register)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	out := httptest.NewRecorder()
	c := e.NewContext(req, out)
	c.Set("token", resp.Token)
	c.Set("user_id", resp.User.ID)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, out.Code)

	revoked, err := handler.blacklist.IsBlacklisted(req.Context(), resp.Token)
	require.NoError(t, err)
	assert.True(t, revoked)
}
