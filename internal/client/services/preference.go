package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aiwallpaper/internal/logging"
)

// PreferenceService holds the theme and language of the local profile.
type PreferenceService struct {
	repo kv.Repository
	log  logging.Logger

	mu        sync.RWMutex
	pref      models.Preference
	observers []func(models.Theme)
}

// NewPreferenceService loads stored preferences. Missing or unrecognized
// values resolve to models.DefaultTheme and fallbackLang.
func NewPreferenceService(ctx context.Context, repo kv.Repository, fallbackLang models.Language, log logging.Logger) *PreferenceService {
	if !fallbackLang.Valid() {
		fallbackLang = models.DefaultLanguage
	}
	s := &PreferenceService{
		repo: repo,
		log:  log,
		pref: models.Preference{Theme: models.DefaultTheme, Language: fallbackLang},
	}

	if v := s.read(ctx, ThemeKey); v != "" {
		if t, err := models.ParseTheme(v); err == nil {
			s.pref.Theme = t
		} else {
			log.Warn(ctx, "ignoring stored theme", "value", v)
		}
	}
	if v := s.read(ctx, LanguageKey); v != "" {
		if l, err := models.ParseLanguage(v); err == nil {
			s.pref.Language = l
		} else {
			log.Warn(ctx, "ignoring stored language", "value", v)
		}
	}
	return s
}

func (s *PreferenceService) read(ctx context.Context, key string) string {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to read preference", "key", key, "error", err)
		return ""
	}
	return string(b)
}

func (s *PreferenceService) write(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		s.log.Warn(ctx, "failed to save preference", "key", key, "error", err)
	}
}

// Get returns the current preference.
func (s *PreferenceService) Get() models.Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref
}

// SetTheme switches the theme and notifies observers.
func (s *PreferenceService) SetTheme(ctx context.Context, t models.Theme) error {
	if !t.Valid() {
		return models.ErrUnknownTheme
	}

	s.mu.Lock()
	s.pref.Theme = t
	observers := append([]func(models.Theme){}, s.observers...)
	s.mu.Unlock()

	s.write(ctx, ThemeKey, string(t))
	for _, fn := range observers {
		fn(t)
	}
	return nil
}

// SetLanguage switches the UI language.
func (s *PreferenceService) SetLanguage(ctx context.Context, l models.Language) error {
	if !l.Valid() {
		return models.ErrUnknownLanguage
	}

	s.mu.Lock()
	s.pref.Language = l
	s.mu.Unlock()

	s.write(ctx, LanguageKey, string(l))
	return nil
}

// OnThemeChange registers fn to be called after every SetTheme.
func (s *PreferenceService) OnThemeChange(fn func(models.Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}
