package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

// DefaultAuthLatency is the simulated round trip of every auth call.
const DefaultAuthLatency = 500 * time.Millisecond

const minPasswordLength = 4

// AuthService is a simulated credential service backed by the profile store.
// Passwords are kept in plain text; it provides no security at all.
type AuthService struct {
	repo    kv.Repository
	latency time.Duration
	log     logging.Logger
}

// NewAuthService constructs an AuthService. A negative latency is treated as
// zero.
func NewAuthService(repo kv.Repository, latency time.Duration, log logging.Logger) *AuthService {
	if latency < 0 {
		latency = 0
	}
	return &AuthService{repo: repo, latency: latency, log: log}
}

func (a *AuthService) wait(ctx context.Context) error {
	if a.latency == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// decodeDirectory parses the stored directory. Unreadable data yields an
// empty directory.
func (a *AuthService) decodeDirectory(ctx context.Context, raw []byte) models.Directory {
	dir := models.Directory{}
	if raw == nil {
		return dir
	}
	if err := json.Unmarshal(raw, &dir); err != nil || dir == nil {
		a.log.Warn(ctx, "failed to parse user directory", "error", err)
		return models.Directory{}
	}
	return dir
}

func (a *AuthService) directory(ctx context.Context) models.Directory {
	raw, err := a.repo.Get(ctx, UsersKey)
	if err != nil {
		a.log.Warn(ctx, "failed to read user directory", "error", err)
		return models.Directory{}
	}
	return a.decodeDirectory(ctx, raw)
}

// Signup registers username with password.
func (a *AuthService) Signup(ctx context.Context, username string, password []byte) error {
	if err := a.wait(ctx); err != nil {
		return err
	}

	if username == "" || len(password) == 0 {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	err := a.repo.Update(ctx, UsersKey, func(current []byte) ([]byte, error) {
		dir := a.decodeDirectory(ctx, current)
		if _, ok := dir[username]; ok {
			return nil, ErrUsernameTaken
		}
		if utf8.RuneCount(password) < minPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
		}
		dir[username] = string(password)
		return json.Marshal(dir)
	})

	switch {
	case err == nil:
		a.log.Info(ctx, "user registered", "user", username)
		return nil
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrInvalidInput):
		return err
	default:
		a.log.Warn(ctx, "failed to save user directory", "user", username, "error", err)
		return nil
	}
}

// Login verifies username and password. Any mismatch yields
// ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, username string, password []byte) error {
	if err := a.wait(ctx); err != nil {
		return err
	}

	stored, ok := a.directory(ctx)[username]
	if !ok || stored == "" || subtle.ConstantTimeCompare([]byte(stored), password) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
