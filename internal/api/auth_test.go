package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas/internal/logging"
	"finanzas/internal/models"
)

func TestAuthClient_Login(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody loginRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, logging.NewNop())
	token, err := c.Login(context.Background(), "ana@example.org", "secreto")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "/auth/login", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, loginRequest{Email: "ana@example.org", Password: "secreto"}, gotBody)
}

func TestAuthClient_Login_ServerMessageShownVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Credenciales inválidas"})
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, logging.NewNop())
	_, err := c.Login(context.Background(), "ana@example.org", "mala")

	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestAuthClient_Login_GenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, logging.NewNop())
	_, err := c.Login(context.Background(), "ana@example.org", "secreto")

	require.Error(t, err)
	assert.Equal(t, "Error en el login", err.Error())
}

func TestAuthClient_Me_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "nombre": "Ana", "email": "ana@example.org", "rol": "user",
		})
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, logging.NewNop())
	u, err := c.Me(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "Ana", u.Nombre)
	assert.Equal(t, "user", u.Rol)
}

func TestAuthClient_Register(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, logging.NewNop())
	err := c.Register(context.Background(), models.NuevoUsuario{
		Nombre: "Ana", Email: "ana@example.org", Password: "secreto", Rol: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", got["nombre"])
	assert.Equal(t, "admin", got["rol"])
}

func TestAuthClient_NetworkError_UsesGenericMessage(t *testing.T) {
	c := NewAuthClient("http://127.0.0.1:0", logging.NewNop())
	_, err := c.Login(context.Background(), "ana@example.org", "secreto")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error en el login")
}
