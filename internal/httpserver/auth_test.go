package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("Alice", "alice", "secret_password", models.RoleAdmin)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/get-token", map[string]string{
		"login":    "alice",
		"password": "secret_password",
	})
	require.NoError(t, env.A.GetToken(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)

	userID, err := env.Tokens.Verify(resp.Token, time.Now())
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestGetTokenWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("Alice", "alice", "secret_password", models.RoleAdmin)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/get-token", map[string]string{
		"login":    "alice",
		"password": "wrong",
	})
	require.NoError(t, env.A.GetToken(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid login or password"}`, rec.Body.String())
}

func TestGetTokenUnknownLogin(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/get-token", map[string]string{
		"login":    "nobody",
		"password": "whatever",
	})
	require.NoError(t, env.A.GetToken(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/register", map[string]string{
		"name":     "Bob",
		"login":    "bob",
		"password": "bob_password",
		"role":     models.RoleClient,
	})
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Login       string `json:"login"`
		Role        string `json:"role"`
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, rec, &resp)
	require.NotZero(t, resp.ID)
	require.Equal(t, "Bob", resp.Name)
	require.Equal(t, "bob", resp.Login)
	require.Equal(t, models.RoleClient, resp.Role)
	require.NotEmpty(t, resp.AccessToken)

	userID, err := env.Tokens.Verify(resp.AccessToken, time.Now())
	require.NoError(t, err)
	require.Equal(t, resp.ID, userID)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, resp.ID).Error)
	require.NotEqual(t, "bob_password", stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/register", map[string]string{
		"login": "carol",
	})
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "Validation failed.", resp.Error)
	require.Contains(t, resp.Errors, "name")
	require.Contains(t, resp.Errors, "password")
	require.Contains(t, resp.Errors, "role")
}

func TestRegisterDuplicateLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("Alice", "alice", "secret_password", models.RoleAdmin)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/register", map[string]string{
		"name":     "Other Alice",
		"login":    "alice",
		"password": "another_password",
		"role":     models.RoleClient,
	})
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Contains(t, resp.Errors, "login")
}

func TestRegisterInvalidRole(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/register", map[string]string{
		"name":     "Dana",
		"password": "dana_password",
		"role":     "superuser",
	})
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Contains(t, resp.Errors, "role")
}
