package discovering

import (
	"strings"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

// Domínios que nunca apontam para uma loja própria: redes sociais,
// encurtadores e lojas de aplicativo. Anúncios que levam para cá não
// interessam à análise de concorrência.
var excludedDomains = map[string]struct{}{
	"facebook.com":    {},
	"instagram.com":   {},
	"whatsapp.com":    {},
	"wa.me":           {},
	"m.me":            {},
	"t.me":            {},
	"tiktok.com":      {},
	"youtube.com":     {},
	"youtu.be":        {},
	"twitter.com":     {},
	"x.com":           {},
	"linkedin.com":    {},
	"pinterest.com":   {},
	"linktr.ee":       {},
	"bit.ly":          {},
	"tinyurl.com":     {},
	"goo.gl":          {},
	"play.google.com": {},
	"apps.apple.com":  {},
}

// CTAs que indicam intenção diferente de venda direta: download, reserva,
// ligação, inscrição ou consumo de mídia.
var excludedIntents = []string{
	"baixar", "descargar", "download", "instalar", "install",
	"reservar", "agendar", "book now", "reserva",
	"ligar", "llamar", "call now", "ligue",
	"inscrever", "inscreva", "candidatar", "aplicar", "postular", "apply",
	"assistir", "ver video", "ver vídeo", "watch", "escuchar", "ouvir", "listen",
}

// CTAs de comércio que resgatam um anúncio mesmo quando o texto também bate
// em uma das intenções excluídas ("baixe o catálogo e compre já").
var commerceIntents = []string{
	"comprar", "compre", "compra", "buy", "shop",
	"pedir", "peça", "pide", "order", "encomendar",
	"oferta", "oferta especial", "get offer", "quero",
}

// IsEcommerceAd decide se um candidato parece um anúncio de venda direta.
// Anúncios sem CTA passam sem filtro; o score cuida do resto.
func IsEcommerceAd(c domain.AdCandidate) bool {
	if IsExcludedDomain(c.Domain) {
		return false
	}

	cta := strings.ToLower(strings.TrimSpace(c.CTAText))
	if cta == "" {
		return true
	}

	if containsAny(cta, excludedIntents) && !containsAny(cta, commerceIntents) {
		return false
	}

	return true
}

// IsExcludedDomain verifica o domínio contra o conjunto de exclusão.
func IsExcludedDomain(d string) bool {
	if d == "" {
		return true
	}
	_, found := excludedDomains[strings.ToLower(d)]
	return found
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
