// Package i18n selects the caller's locale and renders user-facing messages
// from a catalog built with golang.org/x/text.
package i18n

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"cashflow-api/internal/model"
)

var (
	English             = language.English
	BrazilianPortuguese = language.BrazilianPortuguese

	supported = []language.Tag{English, BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
	messages  = mustBuildCatalog()
)

// Message keys. Error keys match the API error codes.
const (
	KeyInvalidCredentials = "INVALID_CREDENTIALS"
	KeyUnauthorized       = "UNAUTHORIZED"
	KeyForbidden          = "FORBIDDEN"
	KeyExpenseNotFound    = "EXPENSE_NOT_FOUND"
	KeyUserNotFound       = "USER_NOT_FOUND"
	KeyEmailRegistered    = "EMAIL_ALREADY_REGISTERED"
	KeyValidationFailed   = "VALIDATION_FAILED"
	KeyBadRequest         = "BAD_REQUEST"
	KeyRateLimited        = "RATE_LIMITED"
	KeyTimeout            = "TIMEOUT"
	KeyInternalError      = "INTERNAL_ERROR"
	KeyRouteNotFound      = "NOT_FOUND"
	KeyMethodNotAllowed   = "METHOD_NOT_ALLOWED"

	KeyFieldRequired    = "FIELD_REQUIRED"
	KeyFieldTooLong     = "FIELD_TOO_LONG"
	KeyEmailInvalid     = "EMAIL_INVALID"
	KeyPasswordWeak     = "PASSWORD_WEAK"
	KeyPasswordTooLong  = "PASSWORD_TOO_LONG"
	KeyAmountPositive   = "AMOUNT_MUST_BE_GREATER_THAN_ZERO"
	KeyAmountOutOfRange = "AMOUNT_OUT_OF_RANGE"
	KeyDateInFuture     = "EXPENSES_CANNOT_BE_FOR_THE_FUTURE"
	KeyPaymentTypeValid = "PAYMENT_TYPE_INVALID"
	KeyFieldInvalid     = "FIELD_INVALID"
)

type entry struct {
	en string
	pt string
}

var entries = map[string]entry{
	KeyInvalidCredentials: {"Email or password invalid.", "E-mail e/ou senha inválidos."},
	KeyUnauthorized:       {"Authentication required.", "Autenticação necessária."},
	KeyForbidden:          {"You do not have access to this resource.", "Você não tem acesso a este recurso."},
	KeyExpenseNotFound:    {"Expense not found.", "Despesa não encontrada."},
	KeyUserNotFound:       {"User not found.", "Usuário não encontrado."},
	KeyEmailRegistered:    {"The email is already registered.", "O e-mail já está cadastrado."},
	KeyValidationFailed:   {"The request is invalid.", "A requisição é inválida."},
	KeyBadRequest:         {"The request body could not be read.", "Não foi possível ler o corpo da requisição."},
	KeyRateLimited:        {"Too many requests.", "Muitas requisições."},
	KeyTimeout:            {"The request took too long.", "A requisição demorou demais."},
	KeyInternalError:      {"Unexpected server error.", "Erro inesperado no servidor."},
	KeyRouteNotFound:      {"Route not found.", "Rota não encontrada."},
	KeyMethodNotAllowed:   {"Method not allowed.", "Método não permitido."},

	KeyFieldRequired:    {"%s is required.", "%s é obrigatório."},
	KeyFieldTooLong:     {"%s must have at most %s characters.", "%s deve ter no máximo %s caracteres."},
	KeyEmailInvalid:     {"The email is not valid.", "O e-mail não é válido."},
	KeyPasswordWeak:     {"The password must have at least 8 characters with upper case, lower case, digit and symbol.", "A senha deve ter ao menos 8 caracteres com maiúscula, minúscula, número e símbolo."},
	KeyPasswordTooLong:  {"The password must have at most %d bytes.", "A senha deve ter no máximo %d bytes."},
	KeyAmountPositive:   {"The amount must be greater than zero.", "O valor deve ser maior que zero."},
	KeyAmountOutOfRange: {"The amount must be between 0.01 and 9999999999999999.99.", "O valor deve estar entre 0,01 e 9999999999999999,99."},
	KeyDateInFuture:     {"Expenses cannot be for the future.", "Despesas não podem ser para o futuro."},
	KeyPaymentTypeValid: {"Payment type is not valid.", "Tipo de pagamento inválido."},
	KeyFieldInvalid:     {"%s is not valid.", "%s não é válido."},

	paymentKey(model.PaymentCash):               {"Cash", "Dinheiro"},
	paymentKey(model.PaymentCreditCard):         {"Credit card", "Cartão de crédito"},
	paymentKey(model.PaymentDebitCard):          {"Debit card", "Cartão de débito"},
	paymentKey(model.PaymentElectronicTransfer): {"Electronic transfer", "Transferência eletrônica"},
}

func paymentKey(p model.PaymentType) string {
	return "PAYMENT_" + string(p)
}

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(English))
	for key, e := range entries {
		if err := b.SetString(English, key, e.en); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", key, err))
		}
		if err := b.SetString(BrazilianPortuguese, key, e.pt); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", key, err))
		}
	}
	return b
}

// Match picks the best supported locale for an Accept-Language value,
// returning fallback when nothing matches.
func Match(acceptLanguage string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// ParseDefault resolves a configured locale name to a supported tag.
func ParseDefault(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		return English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return supported[index]
}

// Translate renders key in tag. Unknown keys render as fallback.
func Translate(tag language.Tag, key string, fallback string, args ...any) string {
	if _, known := entries[key]; !known {
		if fallback == "" {
			return key
		}
		return fallback
	}
	return message.NewPrinter(tag, message.Catalog(messages)).Sprintf(key, args...)
}

func PaymentLabel(tag language.Tag, p model.PaymentType) string {
	return Translate(tag, paymentKey(p), string(p))
}

type localeKey struct{}

func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// FromContext returns the request locale, English when none was set.
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey{}).(language.Tag); ok {
		return tag
	}
	return English
}
