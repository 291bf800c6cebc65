package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/ent/user"

	_ "github.com/mattn/go-sqlite3"
)

func setupAdminTest(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
}

func createUserWithRole(t *testing.T, client *ent.Client, email string, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Test User").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func runAdminMiddleware(client *ent.Client, userID interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/coupons", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}

	handler := RequireAdmin(client)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)
	return rec
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	client := setupAdminTest(t)
	defer client.Close()

	u := createUserWithRole(t, client, "admin@example.com", user.RoleAdmin)

	rec := runAdminMiddleware(client, u.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_ProfessionalForbidden(t *testing.T) {
	client := setupAdminTest(t)
	defer client.Close()

	u := createUserWithRole(t, client, "pro@example.com", user.RoleProfessional)

	rec := runAdminMiddleware(client, u.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_PatientForbidden(t *testing.T) {
	client := setupAdminTest(t)
	defer client.Close()

	u := createUserWithRole(t, client, "patient@example.com", user.RolePatient)

	rec := runAdminMiddleware(client, u.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_MissingUserID(t *testing.T) {
	client := setupAdminTest(t)
	defer client.Close()

	rec := runAdminMiddleware(client, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_UnknownUser(t *testing.T) {
	client := setupAdminTest(t)
	defer client.Close()

	rec := runAdminMiddleware(client, 9999)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
