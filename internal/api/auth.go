package api

import (
	"context"
	"net/http"
	"strings"

	"finanzas/internal/logging"
	"finanzas/internal/models"
)

// AuthClient talks to the authentication service under its /auth base path.
type AuthClient struct {
	c httpClient
}

func NewAuthClient(baseURL string, logger logging.Logger) *AuthClient {
	return &AuthClient{c: httpClient{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth",
		hc:      &http.Client{},
		logger:  logger.With("service", "auth"),
	}}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token.
func (a *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := a.c.doJSON(ctx, http.MethodPost, "/login", nil, "",
		loginRequest{Email: email, Password: password}, &out, "Error en el login")
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me fetches the identity behind a token.
func (a *AuthClient) Me(ctx context.Context, token string) (*models.Usuario, error) {
	var u models.Usuario
	err := a.c.doJSON(ctx, http.MethodGet, "/me", nil, token, nil, &u,
		"Error al obtener información del usuario")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates a new account. It does not log in; the caller chains that.
func (a *AuthClient) Register(ctx context.Context, alta models.NuevoUsuario) error {
	return a.c.doJSON(ctx, http.MethodPost, "/register", nil, "", alta, nil,
		"Error en el registro")
}
