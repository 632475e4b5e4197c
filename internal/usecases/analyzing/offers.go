package analyzing

import (
	"regexp"
	"sort"

	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

// Frases de desconto/economia que carregam um valor monetário que NÃO é o
// preço do produto ("ahorra $20.000", "antes $199.900", "30% off"). São
// removidas do texto antes da varredura de preços.
var discountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:ahorra|ahorre|economize|poupe|save)\s*[$]?\s*[\d.,]+`),
	regexp.MustCompile(`(?i)(?:antes|before)[:\s]*[$]?\s*[\d.,]+`),
	regexp.MustCompile(`(?i)[\d.,]+\s*%\s*(?:off|dcto\.?|desc\.?|de\s+desconto|de\s+descuento)`),
	regexp.MustCompile(`(?i)(?:descuento|desconto|discount)\s*(?:de\s*)?[$]?\s*[\d.,]+`),
}

// OfferExtractor aplica a heurística de preço sobre texto não estruturado.
// Usada somente no caminho de extração passiva; ofertas estruturadas do
// renderizador dispensam a heurística.
type OfferExtractor struct {
	market config.Market
}

func NewOfferExtractor(market config.Market) *OfferExtractor {
	return &OfferExtractor{market: market}
}

// ExtractPrice devolve o preço representativo do texto, ou nil quando nenhum
// candidato válido sobrevive.
//
// Depois de remover frases de desconto, os valores em formato de moeda são
// validados contra a janela de preço plausível do mercado. Com dois ou mais
// candidatos, um menor valor muito abaixo do segundo menor (razão abaixo do
// limiar configurado) é tratado como resíduo de desconto e suprimido.
func (e *OfferExtractor) ExtractPrice(text string) *float64 {
	if text == "" {
		return nil
	}

	cleaned := text
	for _, re := range discountPatterns {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}

	amounts := utils.ParseCurrencyAmounts(cleaned, e.market.CurrencySymbol)

	valid := make([]float64, 0, len(amounts))
	for _, v := range amounts {
		if v >= e.market.MinValidPrice && v <= e.market.MaxValidPrice {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return nil
	}

	sort.Float64s(valid)

	price := valid[0]
	if len(valid) >= 2 && valid[0] < e.market.OutlierRatio*valid[1] {
		price = valid[1]
	}

	return &price
}

// FormatPrice formata o valor para exibição no padrão do mercado.
func (e *OfferExtractor) FormatPrice(value float64) string {
	return utils.FormatCurrency(e.market.CurrencySymbol, value)
}
