package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	competitors := []domain.AnalyzedCompetitor{
		{
			Price:           price(89900),
			GiftDescription: "envío gratis",
			HasCombo:        true,
		},
		{
			Price: price(109900),
		},
		{
			// Analisado sem preço
			Headline: "Producto premium",
		},
		{
			Error: "content unavailable",
		},
	}

	stats := Aggregate(competitors)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Analyzed)
	assert.Equal(t, 2, stats.WithPrice)
	assert.Equal(t, 1, stats.WithGift)
	assert.Equal(t, 1, stats.WithCombo)

	require.NotNil(t, stats.MinPrice)
	require.NotNil(t, stats.MaxPrice)
	require.NotNil(t, stats.AveragePrice)
	assert.Equal(t, 89900.0, *stats.MinPrice)
	assert.Equal(t, 109900.0, *stats.MaxPrice)
	assert.Equal(t, 99900.0, *stats.AveragePrice)
}

func TestAggregate_SemPrecos(t *testing.T) {
	competitors := []domain.AnalyzedCompetitor{
		{Headline: "Sin precio visible"},
		{Error: "content unavailable"},
	}

	stats := Aggregate(competitors)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Analyzed)
	assert.Equal(t, 0, stats.WithPrice)
	assert.Nil(t, stats.MinPrice)
	assert.Nil(t, stats.MaxPrice)
	assert.Nil(t, stats.AveragePrice)
}

func TestAggregate_ListaVazia(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Nil(t, stats.AveragePrice)
}

func TestAggregate_MediaArredondada(t *testing.T) {
	competitors := []domain.AnalyzedCompetitor{
		{Price: price(89900)},
		{Price: price(89901)},
		{Price: price(89901)},
	}

	stats := Aggregate(competitors)

	require.NotNil(t, stats.AveragePrice)
	// 269702 / 3 = 89900.666..., arredonda para cima
	assert.Equal(t, 89901.0, *stats.AveragePrice)
}
