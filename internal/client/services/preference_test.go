package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_Defaults(t *testing.T) {
	s := NewPreferenceService(context.Background(), kv.NewMemoryRepository(), models.LanguageArabic, discard())
	assert.Equal(t, models.Preference{Theme: models.ThemeDark, Language: models.LanguageArabic}, s.Get())
}

func TestPreferenceService_InvalidFallbackLanguage(t *testing.T) {
	s := NewPreferenceService(context.Background(), kv.NewMemoryRepository(), "xx", discard())
	assert.Equal(t, models.LanguageEnglish, s.Get().Language)
}

func TestPreferenceService_CorruptedThemeFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, ThemeKey, []byte("not-a-theme")))
	require.NoError(t, repo.Set(ctx, LanguageKey, []byte("klingon")))

	s := NewPreferenceService(ctx, repo, models.LanguageEnglish, discard())
	assert.Equal(t, models.ThemeDark, s.Get().Theme)
	assert.Equal(t, models.LanguageEnglish, s.Get().Language)
}

func TestPreferenceService_LoadsStoredValues(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, ThemeKey, []byte("forest")))
	require.NoError(t, repo.Set(ctx, LanguageKey, []byte("ku")))

	s := NewPreferenceService(ctx, repo, models.LanguageEnglish, discard())
	assert.Equal(t, models.Preference{Theme: models.ThemeForest, Language: models.LanguageKurdish}, s.Get())
}

func TestPreferenceService_SetPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	s := NewPreferenceService(ctx, repo, models.LanguageEnglish, discard())

	var seen []models.Theme
	s.OnThemeChange(func(t models.Theme) { seen = append(seen, t) })

	require.NoError(t, s.SetTheme(ctx, models.ThemeNeon))
	require.NoError(t, s.SetLanguage(ctx, models.LanguageArabic))

	assert.Equal(t, []models.Theme{models.ThemeNeon}, seen)
	assert.Equal(t, models.Preference{Theme: models.ThemeNeon, Language: models.LanguageArabic}, s.Get())

	v, _ := repo.Get(ctx, ThemeKey)
	assert.Equal(t, "neon", string(v))
	v, _ = repo.Get(ctx, LanguageKey)
	assert.Equal(t, "ar", string(v))

	reloaded := NewPreferenceService(ctx, repo, models.LanguageEnglish, discard())
	assert.Equal(t, s.Get(), reloaded.Get())
}

func TestPreferenceService_RejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceService(ctx, kv.NewMemoryRepository(), models.LanguageEnglish, discard())

	require.ErrorIs(t, s.SetTheme(ctx, "solarized"), models.ErrUnknownTheme)
	require.ErrorIs(t, s.SetLanguage(ctx, "fr"), models.ErrUnknownLanguage)
	assert.Equal(t, models.ThemeDark, s.Get().Theme)
}

func TestPreferenceService_StorageFailureIsAbsorbed(t *testing.T) {
	ctx := context.Background()
	repo := newBrokenRepo()
	repo.FailReads = true

	s := NewPreferenceService(ctx, repo, models.LanguageEnglish, discard())
	assert.Equal(t, models.ThemeDark, s.Get().Theme)

	require.NoError(t, s.SetTheme(ctx, models.ThemeSand))
	assert.Equal(t, models.ThemeSand, s.Get().Theme)
	assert.Equal(t, 1, repo.SetCalls)
}
