// Package i18n provides the translation service injected into the workflow
// core and the terminal UI. The core treats every user-facing string as an
// opaque key; resolution happens only here.
package i18n

import "strings"

type Language string

const (
	LangDE Language = "de"
	LangEN Language = "en"
)

// Translator resolves message keys for one language. Unknown keys resolve
// to the key itself so a missing entry is visible instead of blank.
type Translator struct {
	lang Language
}

func New(lang string) *Translator {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return &Translator{lang: LangEN}
	default:
		return &Translator{lang: LangDE}
	}
}

func (t *Translator) Language() Language {
	if t == nil {
		return LangDE
	}
	return t.lang
}

// T resolves key in the active language.
func (t *Translator) T(key string) string {
	table := translations[t.Language()]
	if msg, ok := table[key]; ok {
		return msg
	}
	// Fall back to German, the authoring language.
	if msg, ok := translations[LangDE][key]; ok {
		return msg
	}
	return key
}

// Tf resolves key and substitutes {param} placeholders.
func (t *Translator) Tf(key string, params map[string]string) string {
	msg := t.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}
