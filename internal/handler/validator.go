package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"school_hub_server/internal/model"
)

// Trans is the global translator used by HandleParamError.
var Trans ut.Translator

// InitTrans wires the validator up: json tag field names, English
// translations and the custom rolename rule.
func InitTrans(locale string) (err error) {
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// Report field names the way the client sent them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// rolename restricts a string to the known role set.
	if err := v.RegisterValidation("rolename", func(fl validator.FieldLevel) bool {
		return model.IsKnownRole(fl.Field().String())
	}); err != nil {
		return err
	}

	enT := en.New()
	uni := ut.New(enT, enT)
	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}
	if err = en_translations.RegisterDefaultTranslations(v, Trans); err != nil {
		return err
	}
	return v.RegisterTranslation("rolename", Trans,
		func(ut ut.Translator) error {
			return ut.Add("rolename", "{0} must be one of admin, teacher, student, parent", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("rolename", fe.Field())
			return t
		},
	)
}

// RemoveTopStruct strips the struct name prefix from translated field keys.
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

// defaultValidator backs binding.Validator when gin has not set one up yet.
type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
