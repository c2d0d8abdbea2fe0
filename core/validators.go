package core

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	id_translations "github.com/go-playground/validator/v10/translations/id"
)

const (
	MinScore = 0
	MaxScore = 100
)

var (
	// custom validation tags & texts
	scoreTag   = "score"
	scoreTexts = map[string]string{
		"en": "{0} must be between 0 and 100",
		"id": "{0} harus di antara 0 dan 100",
	}

	requiredTag   = "required"
	requiredTexts = map[string]string{
		"en": "this field is required",
		"id": "kolom ini wajib diisi",
	}
)

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	if translator.Locale() == "id" {
		_ = id_translations.RegisterDefaultTranslations(validate, translator)
	} else {
		_ = en_translations.RegisterDefaultTranslations(validate, translator)
	}

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(scoreTag, scoreValidation)
	RegisterCustomTranslation(validate, translator, scoreTag, localized(scoreTexts, translator))

	RegisterCustomTranslation(validate, translator, requiredTag, localized(requiredTexts, translator), true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

func localized(texts map[string]string, translator ut.Translator) string {
	if text, ok := texts[translator.Locale()]; ok {
		return text
	}
	return texts[DefaultLocale]
}

// Custom Global Validators

// scoreValidation only allows integers within [MinScore, MaxScore].
func scoreValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := fl.Field().Int()
		return v >= MinScore && v <= MaxScore
	}
	return false
}
