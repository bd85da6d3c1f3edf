package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation limits.
const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxPasswordLength = 128
)

// Field-level messages (French, like the rest of the user-facing surface).
const (
	MsgFieldRequired = "Ce champ est obligatoire."
	MsgEmailInvalid  = "Adresse email invalide."
	MsgFieldTooLong  = "Cette valeur est trop longue."
	MsgFieldInvalid  = "Valeur invalide."
)

// newValidator builds a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrorsFromValidator maps validator tag failures to per-field message
// lists, keyed by the JSON field name.
func fieldErrorsFromValidator(err error) map[string][]string {
	fields := make(map[string][]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["detail"] = []string{MsgFieldInvalid}
		return fields
	}
	for _, fe := range verrs {
		name := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = MsgFieldRequired
		case "email":
			msg = MsgEmailInvalid
		case "max":
			msg = MsgFieldTooLong
		default:
			msg = MsgFieldInvalid
		}
		fields[name] = append(fields[name], msg)
	}
	return fields
}
