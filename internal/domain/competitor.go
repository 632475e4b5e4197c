package domain

// ContentSourceTag identifica qual fonte de conteúdo produziu os dados de um
// concorrente analisado.
type ContentSourceTag string

const (
	SourceRenderer      ContentSourceTag = "renderer"
	SourceTextExtractor ContentSourceTag = "text-extractor"
)

// Offer é uma oferta rotulada extraída da página do concorrente
// (ex.: "2 unidades" por 149.900, antes 199.900).
type Offer struct {
	Label         string   `json:"label"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
}

// PageContent é o conteúdo bruto devolvido por uma ContentSource. Quando a
// fonte consegue extrair ofertas estruturadas (caso do renderizador), a
// heurística de preço sobre texto livre não é aplicada.
type PageContent struct {
	Text     string
	Offers   []Offer
	Headline string
	CTAText  string
	GiftText string
}

// HasOffers indica se a fonte retornou ofertas estruturadas utilizáveis.
func (p *PageContent) HasOffers() bool {
	return p != nil && len(p.Offers) > 0
}

// AnalyzedCompetitor é o resultado da análise profunda de um único anúncio
// selecionado. Criado uma única vez pelo orquestrador e nunca mutado.
// Ou os campos de conteúdo estão preenchidos, ou Error explica a falha.
type AnalyzedCompetitor struct {
	ID               string           `json:"id"`
	AdvertiserName   string           `json:"advertiserName"`
	LandingURL       string           `json:"landingUrl"`
	Price            *float64         `json:"price"`
	FormattedPrice   string           `json:"formattedPrice,omitempty"`
	Offers           []Offer          `json:"offers,omitempty"`
	HasCombo         bool             `json:"hasCombo"`
	ComboDescription string           `json:"comboDescription,omitempty"`
	GiftDescription  string           `json:"giftDescription,omitempty"`
	SalesAngle       string           `json:"salesAngle,omitempty"`
	Headline         string           `json:"headline,omitempty"`
	CallToAction     string           `json:"callToAction,omitempty"`
	Source           ContentSourceTag `json:"source,omitempty"`
	Error            string           `json:"error,omitempty"`
}

type AnalyzeRequest struct {
	Ads []SelectedAd `json:"ads"`
}

type AnalyzeResponse struct {
	Competitors []AnalyzedCompetitor `json:"competitors"`
	Stats       *AnalysisStats       `json:"stats"`
}
