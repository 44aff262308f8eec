package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/tinycards/internal/assets"
)

const deckTemplateTag = "deck_template"

// newValidator reports fields by their mapstructure keys, such as templates.deck_markdown_template.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})
	if err := validate.RegisterValidation(deckTemplateTag, isDeckTemplate); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", deckTemplateTag, err)
	}
	if err := validate.RegisterTranslation(deckTemplateTag, trans, func(ut ut.Translator) error {
		return ut.Add(deckTemplateTag, "{0} must be a readable file of a valid deck template", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(deckTemplateTag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", deckTemplateTag, err)
	}

	return validate, trans, nil
}

func isDeckTemplate(fl validator.FieldLevel) bool {
	return assets.CheckDeckTemplate(fl.Field().String()) == nil
}
