// Package session owns the current credential and identity. The pair is
// stored atomically: the user is never considered authenticated unless both
// token and identity are simultaneously present. State survives restarts
// through a Storage, read once at construction; the persisted token is not
// validated against the server at that point. An invalid one is only
// discovered on the next protected call.
package session

import (
	"context"
	"encoding/json"

	"finanzas/internal/logging"
	"finanzas/internal/models"
)

// AuthAPI is the slice of the auth service the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*models.Usuario, error)
	Register(ctx context.Context, alta models.NuevoUsuario) error
}

type Store struct {
	api     AuthAPI
	storage Storage
	logger  logging.Logger

	token   string
	usuario *models.Usuario
}

// NewStore builds the store and restores any persisted session.
func NewStore(api AuthAPI, storage Storage, logger logging.Logger) *Store {
	s := &Store{api: api, storage: storage, logger: logger}
	s.restore()
	return s
}

func (s *Store) restore() {
	token, rawUser, err := s.storage.Load()
	if err != nil {
		s.logger.Warn(context.Background(), "no se pudo leer la sesión persistida", "error", err)
		return
	}
	if token == "" || rawUser == "" {
		return
	}
	var u models.Usuario
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		s.logger.Warn(context.Background(), "sesión persistida corrupta", "error", err)
		return
	}
	s.token = token
	s.usuario = &u
}

// Login exchanges credentials for a token, fetches the identity behind it,
// and stores both atomically. On any failure the prior state is untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	u, err := s.api.Me(ctx, token)
	if err != nil {
		return err
	}

	s.token = token
	s.usuario = u

	raw, err := json.Marshal(u)
	if err == nil {
		err = s.storage.Save(token, string(raw))
	}
	if err != nil {
		// The in-memory session still works for this process.
		s.logger.Warn(ctx, "no se pudo persistir la sesión", "error", err)
	}
	return nil
}

// Register creates the account and then logs in with the same credentials.
// A failure at creation aborts before any login attempt.
func (s *Store) Register(ctx context.Context, alta models.NuevoUsuario) error {
	if err := s.api.Register(ctx, alta); err != nil {
		return err
	}
	return s.Login(ctx, alta.Email, alta.Password)
}

// Logout clears the in-memory and persisted state unconditionally.
func (s *Store) Logout() {
	s.token = ""
	s.usuario = nil
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn(context.Background(), "no se pudo borrar la sesión persistida", "error", err)
	}
}

func (s *Store) Token() string {
	return s.token
}

func (s *Store) Usuario() *models.Usuario {
	return s.usuario
}

// IsAuthenticated is true iff both credential and identity are present.
func (s *Store) IsAuthenticated() bool {
	return s.token != "" && s.usuario != nil
}
