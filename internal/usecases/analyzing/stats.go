package analyzing

import (
	"math"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

// Aggregate reduz a lista de concorrentes analisados ao resumo estatístico.
// Redução pura; com nenhum item precificado os campos de preço ficam nulos.
func Aggregate(competitors []domain.AnalyzedCompetitor) *domain.AnalysisStats {
	stats := &domain.AnalysisStats{Total: len(competitors)}

	var sum float64
	for _, c := range competitors {
		if c.Error == "" {
			stats.Analyzed++
		}
		if c.GiftDescription != "" {
			stats.WithGift++
		}
		if c.HasCombo {
			stats.WithCombo++
		}

		if c.Price == nil {
			continue
		}
		price := *c.Price

		stats.WithPrice++
		sum += price

		if stats.MinPrice == nil || price < *stats.MinPrice {
			stats.MinPrice = &price
		}
		if stats.MaxPrice == nil || price > *stats.MaxPrice {
			stats.MaxPrice = &price
		}
	}

	if stats.WithPrice > 0 {
		avg := math.Round(sum / float64(stats.WithPrice))
		stats.AveragePrice = &avg
	}

	return stats
}
