package discovering

import (
	"strings"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

// Palavras-chave típicas de operações de dropshipping direto ao consumidor:
// frete grátis, pagamento na entrega, urgência/escassez e desconto.
var dropshipKeywords = []string{
	"frete grátis", "frete gratis", "envío gratis", "envio gratis", "free shipping",
	"pago contra entrega", "pagamento na entrega", "contraentrega", "contra entrega",
	"cash on delivery", "contrareembolso",
	"últimas unidades", "ultimas unidades", "estoque limitado", "stock limitado",
	"limited stock", "por tempo limitado", "solo hoy", "só hoje", "somente hoje",
	"desconto", "descuento", "discount", "% off", "off",
	"promoção", "promoción", "oferta", "aproveite", "aprovecha",
}

// Substrings que sugerem um domínio dedicado de loja.
var shopDomainHints = []string{"shop", "store", "loja", "tienda"}

// ScoreCandidate calcula o score de relevância de dropshipping. Função pura
// e determinística dos campos do candidato.
func ScoreCandidate(c domain.AdCandidate) int {
	score := 0

	blob := strings.ToLower(c.AdText + " " + c.CTAText + " " + c.LandingURL)
	for _, kw := range dropshipKeywords {
		if strings.Contains(blob, kw) {
			score++
		}
	}

	// Linguagem do CTA: compra direta pesa mais que oferta/pedido.
	cta := strings.ToLower(c.CTAText)
	switch {
	case containsAny(cta, []string{"comprar", "compre", "compra", "buy", "shop"}):
		score += 3
	case containsAny(cta, []string{"pedir", "peça", "pide", "order", "encomendar", "oferta"}):
		score += 2
	}

	// Domínio próprio fora do conjunto de exclusão indica operação dedicada.
	if !IsExcludedDomain(c.Domain) {
		score += 2

		if containsAny(strings.ToLower(c.Domain), shopDomainHints) {
			score++
		}
	}

	return score
}
