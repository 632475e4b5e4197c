package domain

// Verdict é a classificação final do motor de margem.
type Verdict string

const (
	VerdictGo    Verdict = "go"
	VerdictMaybe Verdict = "maybe"
	VerdictNoGo  Verdict = "nogo"
)

// MarginRequest carrega os custos informados pelo usuário mais os preços de
// referência dos concorrentes. Os custos são ponteiros: o cálculo só roda
// quando os quatro foram informados.
type MarginRequest struct {
	SupplierCost      *float64 `json:"supplierCost"`
	ShippingCost      *float64 `json:"shippingCost"`
	CostPerAcquisiton *float64 `json:"cpa"`
	EffectivenessRate *float64 `json:"effectivenessRate"`
	CompetitorMin     *float64 `json:"competitorMinPrice"`
	CompetitorAvg     *float64 `json:"competitorAvgPrice"`
}

// MarginCalculation é o resultado do motor de decisão de viabilidade.
// Puramente derivado; nenhuma persistência é exigida.
type MarginCalculation struct {
	TotalCost        float64 `json:"totalCost"`
	TotalCostWithCPA float64 `json:"totalCostWithCpa"`

	MarginAtMin        float64 `json:"marginAtMin"`
	MarginPercentAtMin float64 `json:"marginPercentAtMin"`
	MarginAtAvg        float64 `json:"marginAtAvg"`
	MarginPercentAtAvg float64 `json:"marginPercentAtAvg"`

	// Margens "reais": valor esperado ajustado pela taxa de efetividade dos
	// pedidos (mercados de pagamento na entrega).
	RealMarginAtMin float64 `json:"realMarginAtMin"`
	RealMarginAtAvg float64 `json:"realMarginAtAvg"`

	MinViablePrice float64 `json:"minViablePrice"`

	Verdict   Verdict `json:"verdict"`
	Rationale string  `json:"rationale"`
}
