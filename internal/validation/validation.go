// Package validation wraps go-playground/validator with the custom rules used
// by request payloads and turns failures into localized field messages.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
)

const minPasswordLength = 8

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock uses now for the notfuture rule.
func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v.validate, "passwordlength", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	mustRegister(v.validate, "strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	mustRegister(v.validate, "paymenttype", func(fl validator.FieldLevel) bool {
		return model.PaymentType(fl.Field().String()).Valid()
	})
	mustRegister(v.validate, "notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && !t.After(v.now())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

// StrongPassword requires at least eight characters including an upper case
// letter, a lower case letter, a digit and a symbol, in no more than
// MaxPasswordBytes bytes.
func StrongPassword(password string) bool {
	if len([]rune(password)) < minPasswordLength || len(password) > MaxPasswordBytes {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// Struct validates s and returns the failures rendered in tag. A nil slice
// means s is valid.
func (v *Validator) Struct(tag language.Tag, s any) []model.FieldFailure {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []model.FieldFailure{{Field: "", Message: i18n.Translate(tag, i18n.KeyValidationFailed, "")}}
	}

	failures := make([]model.FieldFailure, 0, len(validationErrors))
	for _, fe := range validationErrors {
		failures = append(failures, model.FieldFailure{
			Field:   fe.Field(),
			Message: fieldMessage(tag, fe),
		})
	}
	return failures
}

func fieldMessage(tag language.Tag, fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		if fe.Field() == "amount" {
			return i18n.Translate(tag, i18n.KeyAmountPositive, "")
		}
		return i18n.Translate(tag, i18n.KeyFieldRequired, "", label)
	case "max":
		return i18n.Translate(tag, i18n.KeyFieldTooLong, "", label, fe.Param())
	case "email":
		return i18n.Translate(tag, i18n.KeyEmailInvalid, "")
	case "passwordlength":
		return i18n.Translate(tag, i18n.KeyPasswordTooLong, "", MaxPasswordBytes)
	case "strongpassword":
		return i18n.Translate(tag, i18n.KeyPasswordWeak, "")
	case "gt":
		return i18n.Translate(tag, i18n.KeyAmountPositive, "")
	case "gte", "lt":
		return i18n.Translate(tag, i18n.KeyAmountOutOfRange, "")
	case "notfuture":
		return i18n.Translate(tag, i18n.KeyDateInFuture, "")
	case "paymenttype":
		return i18n.Translate(tag, i18n.KeyPaymentTypeValid, "")
	default:
		return i18n.Translate(tag, i18n.KeyFieldInvalid, "", label)
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
