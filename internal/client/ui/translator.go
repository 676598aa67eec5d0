package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/models"
)

// Translator looks up UI strings in the active language.
type Translator struct {
	mu   sync.RWMutex
	lang models.Language
}

func NewTranslator(lang models.Language) *Translator {
	if !lang.Valid() {
		lang = models.DefaultLanguage
	}
	return &Translator{lang: lang}
}

// SetLanguage switches the active table. Unknown codes are ignored.
func (t *Translator) SetLanguage(lang models.Language) {
	if !lang.Valid() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
}

func (t *Translator) Language() models.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T returns the translation of key, falling back to English and then to the
// key itself. Every {name} placeholder is replaced by replacements[name].
func (t *Translator) T(key string, replacements map[string]any) string {
	lang := t.Language()

	s, ok := translations[lang][key]
	if !ok {
		s, ok = translations[models.LanguageEnglish][key]
	}
	if !ok {
		s = key
	}

	if len(replacements) == 0 {
		return s
	}

	names := make([]string, 0, len(replacements))
	for name := range replacements {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(replacements[name]))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
