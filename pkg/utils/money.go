package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Padrões de número formatado como moeda: prefixado pelo símbolo, com
// separador de milhar ("$ 89.900", "$1,299,000") ou inteiro simples de 4 a 7
// dígitos ("$89900"). Compilados por símbolo sob demanda.
var (
	currencyPatterns   = map[string]*regexp.Regexp{}
	currencyPatternsMu sync.Mutex

	reThousands      = regexp.MustCompile(`^\d{1,3}(?:[.,]\d{3})+$`)
	reThousandsCents = regexp.MustCompile(`^(\d{1,3}(?:[.,]\d{3})+)[.,](\d{2})$`)
	rePlain          = regexp.MustCompile(`^\d+$`)
)

func currencyPattern(symbol string) *regexp.Regexp {
	currencyPatternsMu.Lock()
	defer currencyPatternsMu.Unlock()

	if re, ok := currencyPatterns[symbol]; ok {
		return re
	}

	re := regexp.MustCompile(regexp.QuoteMeta(symbol) + `\s?\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{2})?|` +
		regexp.QuoteMeta(symbol) + `\s?\d{4,7}`)
	currencyPatterns[symbol] = re
	return re
}

// ParseCurrencyAmounts varre o texto e devolve, na ordem de ocorrência, os
// valores numéricos encontrados em formato de moeda.
func ParseCurrencyAmounts(text, symbol string) []float64 {
	matches := currencyPattern(symbol).FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	amounts := make([]float64, 0, len(matches))
	for _, m := range matches {
		raw := strings.TrimSpace(strings.TrimPrefix(m, symbol))
		if v, ok := ParseCurrencyValue(raw); ok {
			amounts = append(amounts, v)
		}
	}

	return amounts
}

// ParseCurrencyValue interpreta um número no formato regional: pontos ou
// vírgulas como separador de milhar, com centavos opcionais ("89.900",
// "1,299,000", "89.900,00", "89900").
func ParseCurrencyValue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)

	if m := reThousandsCents.FindStringSubmatch(s); m != nil {
		// Centavos são descartados: a janela de validação opera em unidades
		// inteiras da moeda.
		s = m[1]
	}

	switch {
	case reThousands.MatchString(s):
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	case rePlain.MatchString(s):
		// já está limpo
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// FormatCurrency devolve o valor no formato de exibição regional, com
// separador de milhar ("$ 89.900").
func FormatCurrency(symbol string, value float64) string {
	n := int64(value)
	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s %s", symbol, b.String())
	if neg {
		out = fmt.Sprintf("%s -%s", symbol, b.String())
	}
	return out
}
