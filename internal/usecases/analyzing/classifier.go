package analyzing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Classification é o resultado da extração heurística de sinais de conteúdo.
type Classification struct {
	GiftDescription  string
	HasCombo         bool
	ComboDescription string
	CallToAction     string
	SalesAngle       string
	Headline         string
}

// Famílias de regex independentes e ordenadas. Cada família devolve só a
// primeira ocorrência, exceto brindes, que concatena até duas.

var giftPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:env[íi]o|frete|entrega)\s+gr[áa]tis(?:\s+a\s+todo\s+el\s+pa[íi]s)?|free\s+shipping`),
	regexp.MustCompile(`(?i)(?:de\s+)?(?:regalo|brinde|obsequio)(?:\s+(?:sorpresa|incluido|inclu[íi]do|gratis|gr[áa]tis))?`),
	regexp.MustCompile(`(?i)(?:garant[íi]a|garantia)\s+de\s+\d+\s+(?:meses|a[ñn]os|anos|d[íi]as|dias)|\d+\s+(?:meses|a[ñn]os|anos)\s+de\s+(?:garant[íi]a|garantia)`),
	regexp.MustCompile(`(?i)devoluci[óo]n(?:es)?\s+gratis|devolu[çc][ãa]o\s+gr[áa]tis|free\s+returns`),
}

var comboPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+\s*x\s*\d+\b`),
	regexp.MustCompile(`(?i)\b(?:kit|pack|combo)\s+(?:de\s+|por\s+)?\d+\b`),
	regexp.MustCompile(`(?i)\b\d+\s+unidades?\b`),
	regexp.MustCompile(`(?i)\b(?:lleva|leve)\s+\d+\b`),
}

var ctaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)compra(?:r)?\s+(?:ya|ahora)|compre\s+(?:j[áa]|agora)|buy\s+now`),
	regexp.MustCompile(`(?i)(?:a[ñn]adir|agregar)\s+al\s+carrito|adicionar\s+ao\s+carrinho|add\s+to\s+cart`),
	regexp.MustCompile(`(?i)p[íi]de(?:lo)?\s+(?:ya|ahora)|pe[çc]a\s+(?:j[áa]|agora)|order\s+now|haz\s+tu\s+pedido|fa[çc]a\s+seu\s+pedido`),
}

// Ângulos de venda testados em ordem de prioridade; a primeira categoria
// cujo padrão casar vence.
var salesAngles = []struct {
	Label   string
	Pattern *regexp.Regexp
}{
	{"Autenticidade", regexp.MustCompile(`(?i)100\s*%\s*original(?:es)?|aut[ée]ntic[oa]s?|\boriginal(?:es)?\b`)},
	{"Garantia", regexp.MustCompile(`(?i)garant[íi]a|garantia|warranty`)},
	{"Frete grátis", regexp.MustCompile(`(?i)(?:env[íi]o|frete|entrega)\s+gr[áa]tis|free\s+shipping`)},
	{"Preço/Oferta", regexp.MustCompile(`(?i)descuento|desconto|oferta|promo[çc][ãa]o|promoci[óo]n|\d+\s*%\s*off|liquida[çc][ãa]o`)},
	{"Qualidade", regexp.MustCompile(`(?i)premium|alta\s+(?:calidad|qualidade)|\b(?:calidad|qualidade)\b`)},
	{"Rapidez", regexp.MustCompile(`(?i)entrega\s+(?:r[áa]pida|inmediata|imediata)|env[íi]o\s+(?:r[áa]pido|inmediato)|\b24\s*h(?:oras)?\b`)},
	{"Resultados", regexp.MustCompile(`(?i)resultados?\s+(?:garantizados?|garantidos?|en\s+\d+|em\s+\d+)|antes\s+(?:y|e)\s+despu[ée]s`)},
}

// Classify roda as famílias de heurísticas sobre o texto da página.
// Determinística: o mesmo texto produz sempre a mesma classificação.
func Classify(text string) Classification {
	c := Classification{}
	if text == "" {
		return c
	}

	// Brindes: concatena até duas ocorrências distintas
	gifts := make([]string, 0, 2)
	for _, re := range giftPatterns {
		if m := re.FindString(text); m != "" {
			gifts = append(gifts, normalizeMatch(m))
			if len(gifts) == 2 {
				break
			}
		}
	}
	c.GiftDescription = strings.Join(gifts, " + ")

	for _, re := range comboPatterns {
		if m := re.FindString(text); m != "" {
			c.HasCombo = true
			c.ComboDescription = normalizeMatch(m)
			break
		}
	}

	for _, re := range ctaPatterns {
		if m := re.FindString(text); m != "" {
			c.CallToAction = normalizeMatch(m)
			break
		}
	}

	for _, angle := range salesAngles {
		if angle.Pattern.MatchString(text) {
			c.SalesAngle = angle.Label
			break
		}
	}

	c.Headline = extractHeadline(text)

	return c
}

// extractHeadline devolve a primeira linha com tamanho entre 10 e 150
// caracteres, a melhor aposta de título em texto simplificado.
func extractHeadline(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n >= 10 && n <= 150 {
			return line
		}
	}
	return ""
}

func normalizeMatch(m string) string {
	return strings.Join(strings.Fields(m), " ")
}
