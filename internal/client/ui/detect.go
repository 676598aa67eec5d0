package ui

import (
	"strings"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{language.English, language.Arabic, language.Make("ku")}
	matcher       = language.NewMatcher(supportedTags)
	sorani        = language.MustParseBase("ckb")
)

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DetectLanguage picks the UI language from the locale environment, e.g.
// LANG=ar_IQ.UTF-8. Unsupported or unset locales yield English.
func DetectLanguage(getenv func(string) string) models.Language {
	for _, name := range localeVars {
		v := getenv(name)
		if v == "" {
			continue
		}
		tag, ok := parseLocale(v)
		if !ok {
			continue
		}
		return matchLanguage(tag)
	}
	return models.DefaultLanguage
}

func parseLocale(v string) (language.Tag, bool) {
	v, _, _ = strings.Cut(v, ".")
	v, _, _ = strings.Cut(v, "@")
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

func matchLanguage(tag language.Tag) models.Language {
	if base, _ := tag.Base(); base == sorani {
		return models.LanguageKurdish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return models.DefaultLanguage
	}
	return models.Languages[idx]
}
