package models

import "errors"

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Theme is one of the supported colour schemes.
type Theme string

const (
	ThemeLight     Theme = "light"
	ThemeDark      Theme = "dark"
	ThemeAmoled    Theme = "amoled"
	ThemeNeon      Theme = "neon"
	ThemeGlass     Theme = "glass"
	ThemeAurora    Theme = "aurora"
	ThemeRose      Theme = "rose"
	ThemeCyberpunk Theme = "cyberpunk"
	ThemeForest    Theme = "forest"
	ThemeSand      Theme = "sand"
)

// DefaultTheme is used when nothing valid is stored.
const DefaultTheme = ThemeDark

// Themes lists every theme in display order.
var Themes = []Theme{
	ThemeLight, ThemeDark, ThemeAmoled, ThemeNeon, ThemeGlass,
	ThemeAurora, ThemeRose, ThemeCyberpunk, ThemeForest, ThemeSand,
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// NameKey is the translation key of the theme's display name.
func (t Theme) NameKey() string {
	return "theme_" + string(t)
}

// ParseTheme validates s as a theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", ErrUnknownTheme
	}
	return t, nil
}

// Language is a UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageKurdish Language = "ku"
)

// DefaultLanguage is used when neither storage nor the environment decide.
const DefaultLanguage = LanguageEnglish

// Languages lists every supported language.
var Languages = []Language{LanguageEnglish, LanguageArabic, LanguageKurdish}

func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// RTL reports whether the language is written right-to-left.
func (l Language) RTL() bool {
	return l == LanguageArabic || l == LanguageKurdish
}

// Direction returns "rtl" or "ltr".
func (l Language) Direction() string {
	if l.RTL() {
		return "rtl"
	}
	return "ltr"
}

// ParseLanguage validates s as a language code.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", ErrUnknownLanguage
	}
	return l, nil
}

// Preference is the persisted presentation choice of the local profile.
type Preference struct {
	Theme    Theme
	Language Language
}
