package services

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

// SessionService tracks the active identity and its prompt history.
//
// The identity lives in the session repository; histories live in the
// profile repository and survive logout.
type SessionService struct {
	session kv.Repository
	profile kv.Repository
	log     logging.Logger

	mu      sync.RWMutex
	user    *models.Identity
	history []models.HistoryEntry
}

// NewSessionService restores the session slot. A malformed slot is deleted
// and the service starts anonymous.
func NewSessionService(ctx context.Context, session, profile kv.Repository, log logging.Logger) *SessionService {
	s := &SessionService{session: session, profile: profile, log: log}

	raw, err := session.Get(ctx, SessionKey)
	if err != nil {
		log.Warn(ctx, "failed to read session", "error", err)
		return s
	}
	if raw == nil {
		return s
	}

	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil || !id.Valid() {
		log.Warn(ctx, "discarding malformed session", "error", err)
		if err := session.Delete(ctx, SessionKey); err != nil {
			log.Warn(ctx, "failed to delete session", "error", err)
		}
		return s
	}

	s.user = &id
	s.history = s.loadHistory(ctx, id.Username)
	return s
}

// loadHistory reads username's history. Entries that do not decode are
// skipped; a payload that is not a JSON array is deleted.
func (s *SessionService) loadHistory(ctx context.Context, username string) []models.HistoryEntry {
	key := HistoryKey(username)
	raw, err := s.profile.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to read history", "user", username, "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn(ctx, "discarding malformed history", "user", username, "error", err)
		if err := s.profile.Delete(ctx, key); err != nil {
			s.log.Warn(ctx, "failed to delete history", "user", username, "error", err)
		}
		return nil
	}

	history := make([]models.HistoryEntry, 0, len(items))
	for _, item := range items {
		var e models.HistoryEntry
		if err := json.Unmarshal(item, &e); err != nil || e.Prompt == "" {
			s.log.Debug(ctx, "skipping malformed history entry", "user", username, "error", err)
			continue
		}
		if slices.ContainsFunc(history, e.Same) {
			continue
		}
		history = append(history, e)
	}
	return history
}

// Login makes username the active identity and loads its history.
func (s *SessionService) Login(ctx context.Context, username string) {
	id := models.Identity{Username: username}
	if !id.Valid() {
		return
	}

	raw, _ := json.Marshal(id)
	if err := s.session.Set(ctx, SessionKey, raw); err != nil {
		s.log.Warn(ctx, "failed to save session", "user", id.Username, "error", err)
	}

	history := s.loadHistory(ctx, id.Username)

	s.mu.Lock()
	s.user = &id
	s.history = history
	s.mu.Unlock()

	s.log.Info(ctx, "user logged in", "user", id.Username, "history", len(history))
}

// Logout returns to the anonymous state. Durable history is kept.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.session.Delete(ctx, SessionKey); err != nil {
		s.log.Warn(ctx, "failed to delete session", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.history = nil
	s.mu.Unlock()
}

// CurrentUser returns the active identity, if any.
func (s *SessionService) CurrentUser() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.Identity{}, false
	}
	return *s.user, true
}

// History returns a copy of the active identity's history, most recent first.
func (s *SessionService) History() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

// AddHistoryItem prepends e unless the session is anonymous or the pair is
// already present. The full list is written back to the profile store.
func (s *SessionService) AddHistoryItem(ctx context.Context, e models.HistoryEntry) {
	s.mu.Lock()
	if s.user == nil || slices.ContainsFunc(s.history, e.Same) {
		s.mu.Unlock()
		return
	}
	s.history = append([]models.HistoryEntry{e}, s.history...)
	username := s.user.Username
	raw, err := json.Marshal(s.history)
	s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "failed to encode history", "user", username, "error", err)
		return
	}
	if err := s.profile.Set(ctx, HistoryKey(username), raw); err != nil {
		s.log.Warn(ctx, "failed to save history", "user", username, "error", err)
	}
}
