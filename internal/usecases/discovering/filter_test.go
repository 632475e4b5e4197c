package discovering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

func TestIsExcludedDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected bool
	}{
		{
			name:     "Rede social deve ser excluída",
			domain:   "facebook.com",
			expected: true,
		},
		{
			name:     "Encurtador deve ser excluído",
			domain:   "bit.ly",
			expected: true,
		},
		{
			name:     "Loja de aplicativos deve ser excluída",
			domain:   "play.google.com",
			expected: true,
		},
		{
			name:     "Domínio vazio conta como excluído",
			domain:   "",
			expected: true,
		},
		{
			name:     "Comparação ignora maiúsculas",
			domain:   "Instagram.com",
			expected: true,
		},
		{
			name:     "Loja própria não é excluída",
			domain:   "ofertasmax.shop",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExcludedDomain(tt.domain))
		})
	}
}

func TestIsEcommerceAd(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.AdCandidate
		expected  bool
	}{
		{
			name: "Anúncio com CTA de compra passa",
			candidate: domain.AdCandidate{
				Domain:  "tienda-gadgets.com",
				CTAText: "Comprar ahora",
			},
			expected: true,
		},
		{
			name: "Anúncio sem CTA passa e fica por conta do score",
			candidate: domain.AdCandidate{
				Domain: "tienda-gadgets.com",
			},
			expected: true,
		},
		{
			name: "CTA de download é descartado",
			candidate: domain.AdCandidate{
				Domain:  "tienda-gadgets.com",
				CTAText: "Descargar la app",
			},
			expected: false,
		},
		{
			name: "CTA de reserva é descartado",
			candidate: domain.AdCandidate{
				Domain:  "hotelplaya.com",
				CTAText: "Reservar",
			},
			expected: false,
		},
		{
			name: "Intenção mista com comércio é resgatada",
			candidate: domain.AdCandidate{
				Domain:  "tienda-gadgets.com",
				CTAText: "Baixar o catálogo e comprar",
			},
			expected: true,
		},
		{
			name: "Domínio excluído descarta mesmo com CTA de compra",
			candidate: domain.AdCandidate{
				Domain:  "instagram.com",
				CTAText: "Comprar",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEcommerceAd(tt.candidate))
		})
	}
}
