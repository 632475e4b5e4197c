package discovering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.AdCandidate
		expected  int
	}{
		{
			name: "Anúncio típico de dropshipping pontua alto",
			candidate: domain.AdCandidate{
				AdText:     "Envío gratis a todo el país. Últimas unidades con descuento",
				CTAText:    "Comprar ahora",
				LandingURL: "https://tienda-max.shop/producto",
				Domain:     "tienda-max.shop",
			},
			// 3 palavras-chave + CTA de compra (3) + domínio próprio (2) + hint de loja (1)
			expected: 9,
		},
		{
			name: "Anúncio institucional pontua só pelo domínio próprio",
			candidate: domain.AdCandidate{
				AdText:     "Conoce nuestra historia",
				LandingURL: "https://empresa.com/sobre",
				Domain:     "empresa.com",
			},
			expected: 2,
		},
		{
			name: "Domínio excluído não recebe os pontos de domínio",
			candidate: domain.AdCandidate{
				AdText:     "Gran oferta",
				CTAText:    "Comprar",
				LandingURL: "https://facebook.com/pagina",
				Domain:     "facebook.com",
			},
			// 1 palavra-chave + CTA de compra (3)
			expected: 4,
		},
		{
			name: "CTA de pedido pesa menos que compra direta",
			candidate: domain.AdCandidate{
				CTAText:    "Order now",
				LandingURL: "https://minhaloja.com/item",
				Domain:     "minhaloja.com",
			},
			// CTA de pedido (2) + domínio próprio (2) + hint de loja (1)
			expected: 5,
		},
		{
			name:      "Candidato vazio pontua zero",
			candidate: domain.AdCandidate{},
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreCandidate(tt.candidate))
		})
	}
}

func TestScoreCandidate_Deterministico(t *testing.T) {
	candidate := domain.AdCandidate{
		AdText:     "Frete grátis e pagamento na entrega, aproveite",
		CTAText:    "Compre já",
		LandingURL: "https://superloja.store/oferta",
		Domain:     "superloja.store",
	}

	first := ScoreCandidate(candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreCandidate(candidate))
	}
}
