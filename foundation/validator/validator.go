package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-iban/iban"
)

var v *validator.Validate

func init() {
	v = validator.New()
	if err := RegisterIBAN(v); err != nil {
		panic(err)
	}
}

func Instance() *validator.Validate {
	return v
}

// RegisterIBAN adds the "iban" tag to target. The tag accepts string fields
// that pass iban.Validate against the default country table.
func RegisterIBAN(target *validator.Validate) error {
	return RegisterIBANWith(target, iban.New(iban.Options{}))
}

// RegisterIBANWith adds the "iban" tag backed by a configured Validator.
func RegisterIBANWith(target *validator.Validate, iv *iban.Validator) error {
	return target.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return iv.Validate(f.String())
	})
}

// Validate returns field -> reason code for every failed rule, or nil.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}
