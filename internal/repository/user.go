package repository

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/naturalsuds/soapshop/internal/model"
)

const usersFile = "users.json"

// UserRepository persists registered users as a single JSON array file.
// Users are append-only: never mutated or deleted.
type UserRepository interface {
	// Load returns every registered user, or an empty slice on any read or
	// parse error.
	Load() []model.User
	Append(user model.User) error
}

type fileUserRepo struct {
	path string
	log  *slog.Logger
}

func NewUserRepository(dataDir string, log *slog.Logger) UserRepository {
	return &fileUserRepo{path: filepath.Join(dataDir, usersFile), log: log}
}

func (r *fileUserRepo) Load() []model.User {
	return readJSONArray[model.User](r.log, r.path)
}

func (r *fileUserRepo) Append(user model.User) error {
	users := append(r.Load(), user)
	if err := writeJSONArray(r.path, users); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}
