package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"cashflow-api/internal/model"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   language.Tag
	}{
		{header: "", want: English},
		{header: "pt-BR", want: BrazilianPortuguese},
		{header: "pt", want: BrazilianPortuguese},
		{header: "en-US,en;q=0.9", want: English},
		{header: "fr-FR,pt-BR;q=0.8", want: BrazilianPortuguese},
		{header: "ja", want: English},
		{header: ";;;garbage", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Match(tt.header, English))
		})
	}
}

func TestParseDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BrazilianPortuguese, ParseDefault("pt-BR"))
	assert.Equal(t, English, ParseDefault("en"))
	assert.Equal(t, English, ParseDefault("not a tag"))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Email or password invalid.", Translate(English, KeyInvalidCredentials, ""))
	assert.Equal(t, "E-mail e/ou senha inválidos.", Translate(BrazilianPortuguese, KeyInvalidCredentials, ""))
	assert.Equal(t, "Title is required.", Translate(English, KeyFieldRequired, "", "Title"))
	assert.Equal(t, "fallback", Translate(English, "UNKNOWN_KEY", "fallback"))
	assert.Equal(t, "UNKNOWN_KEY", Translate(English, "UNKNOWN_KEY", ""))
}

func TestPaymentLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Credit card", PaymentLabel(English, model.PaymentCreditCard))
	assert.Equal(t, "Dinheiro", PaymentLabel(BrazilianPortuguese, model.PaymentCash))
	assert.Equal(t, "Barter", PaymentLabel(English, model.PaymentType("Barter")))
}

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, English, FromContext(context.Background()))

	ctx := WithLocale(context.Background(), BrazilianPortuguese)
	assert.Equal(t, BrazilianPortuguese, FromContext(ctx))
}
