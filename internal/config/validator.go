package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("extension", isFileExtension); err != nil {
		return nil, nil, fmt.Errorf("failed to register extension validation: %w", err)
	}
	if err := validate.RegisterTranslation("extension", trans, func(ut ut.Translator) error {
		return ut.Add("extension", "{0} must be a file extension such as .dsl", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("extension", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register extension translation: %w", err)
	}

	return validate, trans, nil
}

// isFileExtension accepts a suffix like ".dsl" that cannot be confused with a path.
func isFileExtension(fl validator.FieldLevel) bool {
	extension := fl.Field().String()
	if len(extension) < 2 || extension[0] != '.' {
		return false
	}
	return !strings.ContainsAny(extension, `/\`)
}
