package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage persists the two session entries across process restarts: the
// bearer token and the serialized identity. Implementations must treat an
// absent state as empty strings, not an error.
type Storage interface {
	Load() (token, usuario string, err error)
	Save(token, usuario string) error
	Clear() error
}

// persistedState is the on-disk shape: two string entries, read once at
// startup, written on login success, erased on logout.
type persistedState struct {
	AuthToken string `json:"auth_token"`
	AuthUser  string `json:"auth_user"`
}

// FileStorage keeps the session state in a JSON file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (string, string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", nil
		}
		return "", "", err
	}
	var st persistedState
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt state file is just an absent session.
		return "", "", nil
	}
	return st.AuthToken, st.AuthUser, nil
}

func (f *FileStorage) Save(token, usuario string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(persistedState{AuthToken: token, AuthUser: usuario})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
