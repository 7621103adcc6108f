package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when options
// carry a locale but no translator.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler chooses the text used when key cannot be
// translated. fallback is the untranslated text.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Message keys looked up for a form of type typ:
//
//	<typ>.title          form heading
//	<typ>.fields.<Tag>   field label
//	<typ>.submit         submit button text
func titleKey(typ string) string      { return typ + ".title" }
func fieldKey(typ, tag string) string { return typ + ".fields." + tag }

// SubmitKey returns the message key of the submit label for typ.
func SubmitKey(typ string) string { return typ + ".submit" }

// Translate resolves key through options.Translator. Without a translator or
// locale the fallback is returned untouched.
func Translate(options RenderOptions, key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" || (options.Translator == nil && options.Locale == "") {
		return fallback
	}

	onMissing := options.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if options.Translator == nil {
		return onMissing(options.Locale, key, fallback, ErrMissingTranslator)
	}

	result, err := options.Translator.Translate(options.Locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(options.Locale, key, fallback, err)
}
