package core

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
)

const DefaultLocale = "en"

// SupportedLocales lists the locales labels and validation messages are available in.
var SupportedLocales = []string{"en", "id"}

// Translations maps translation keys to their text, per locale.
type Translations map[string]map[string]string

// NewTranslator returns the translator for `locale`, falling back to DefaultLocale.
func NewTranslator(locale string) ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en, id.New())
	translator, found := uni.GetTranslator(CleanString(locale, true /* lower */))
	if !found {
		translator, _ = uni.GetTranslator(DefaultLocale)
	}
	return translator
}

// RegisterTranslations adds every key of `trs` to `translator`, using the DefaultLocale text when the translator's
// locale has none. Existing keys are overridden, so registering twice is harmless.
func RegisterTranslations(translator ut.Translator, trs Translations) error {
	for key, texts := range trs {
		text, ok := texts[translator.Locale()]
		if !ok {
			text = texts[DefaultLocale]
		}
		if err := translator.Add(key, text, true /* override */); err != nil {
			return errors.Wrapf(err, "adding translation %q", key)
		}
	}
	return nil
}

// T translates `key`, returning `key` itself if it is unknown to the translator.
func T(translator ut.Translator, key string, params ...string) string {
	if translator == nil {
		return key
	}
	s, err := translator.T(key, params...)
	if err != nil {
		return key
	}
	return s
}
