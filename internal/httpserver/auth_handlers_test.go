package httpserver

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"email": "buyer@example.com", "password": "password", "role": "buyer"}
	rec := env.doJSON(http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	require.Equal(t, "User registered successfully", resp["message"])

	// Same email again is a client error.
	rec = env.doJSON(http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown role is rejected.
	rec = env.doJSON(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "x@example.com", "password": "password", "role": "ADMIN",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "buyer@example.com", "BUYER")

	rec := env.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "buyer@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutHandler(t *testing.T) {
	env := newTestEnv(t)
	_, refresh := env.login(t, "buyer@example.com", "BUYER")

	rec := env.doJSON(http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/auth/logout?refreshToken="+url.QueryEscape(refresh), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	require.Equal(t, "Logged out successfully", resp["message"])

	// The revoked token no longer refreshes.
	rec = env.doJSON(http.MethodPost, "/api/auth/refresh?refreshToken="+url.QueryEscape(refresh), "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshHandler(t *testing.T) {
	env := newTestEnv(t)
	_, refresh := env.login(t, "buyer@example.com", "BUYER")

	rec := env.doJSON(http.MethodPost, "/api/auth/refresh?refreshToken="+url.QueryEscape(refresh), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEqual(t, refresh, resp.RefreshToken)

	// The superseded token string is dead after rotation.
	rec = env.doJSON(http.MethodPost, "/api/auth/refresh?refreshToken="+url.QueryEscape(refresh), "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/auth/refresh?refreshToken=never-issued", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
