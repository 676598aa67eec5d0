package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	for _, th := range Themes {
		got, err := ParseTheme(string(th))
		require.NoError(t, err)
		assert.Equal(t, th, got)
	}

	_, err := ParseTheme("solarized")
	require.ErrorIs(t, err, ErrUnknownTheme)
	assert.True(t, DefaultTheme.Valid())
	assert.Equal(t, "theme_neon", ThemeNeon.NameKey())
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("ku")
	require.NoError(t, err)
	assert.Equal(t, LanguageKurdish, l)

	_, err = ParseLanguage("fr")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguage_Direction(t *testing.T) {
	assert.Equal(t, "ltr", LanguageEnglish.Direction())
	assert.Equal(t, "rtl", LanguageArabic.Direction())
	assert.Equal(t, "rtl", LanguageKurdish.Direction())
	assert.False(t, LanguageEnglish.RTL())
}

func TestHistoryEntry_Same(t *testing.T) {
	a := HistoryEntry{Prompt: "a", NegativePrompt: "x"}
	assert.True(t, a.Same(HistoryEntry{Prompt: "a", NegativePrompt: "x"}))
	assert.False(t, a.Same(HistoryEntry{Prompt: "a"}))
}

func TestIdentity_Valid(t *testing.T) {
	assert.True(t, Identity{Username: "bob"}.Valid())
	assert.False(t, Identity{Username: "  "}.Valid())
}

func TestDefaultGenerationRequest(t *testing.T) {
	r := DefaultGenerationRequest()
	assert.Equal(t, DefaultPrompt, r.Prompt)
	assert.Empty(t, r.NegativePrompt)
	require.NoError(t, ValidateAspectRatio(r.AspectRatio))
	require.NoError(t, ValidateStyle(r.Style))
	require.ErrorIs(t, ValidateAspectRatio("21:9"), ErrUnknownAspectRatio)
	require.ErrorIs(t, ValidateStyle("Oil"), ErrUnknownStyle)
}
