package domain

// AnalysisStats resume o conjunto de concorrentes analisados. Derivado,
// recalculado sempre que o conjunto de resultados muda. Os campos de preço
// ficam nulos quando nenhum item tem preço válido.
type AnalysisStats struct {
	Total        int      `json:"total"`
	Analyzed     int      `json:"analyzed"`
	WithPrice    int      `json:"withPrice"`
	WithGift     int      `json:"withGift"`
	WithCombo    int      `json:"withCombo"`
	MinPrice     *float64 `json:"minPrice"`
	MaxPrice     *float64 `json:"maxPrice"`
	AveragePrice *float64 `json:"averagePrice"`
}
