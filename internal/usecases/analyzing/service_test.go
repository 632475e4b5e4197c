package analyzing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestService(sources ...ContentSource) Analyzer {
	log.SetupTestLogger()
	// Delays zerados: o backpressure não interessa aos testes de unidade
	return NewService(sources, config.Analysis{}, testMarket())
}

func sourceMock(ctrl *gomock.Controller, tag domain.ContentSourceTag) *mocks.MockContentSource {
	m := mocks.NewMockContentSource(ctrl)
	m.EXPECT().Tag().Return(tag).AnyTimes()
	return m
}

func TestService_Analyze_OfertasEstruturadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := sourceMock(ctrl, domain.SourceRenderer)
	service := newTestService(renderer)

	original := 199900.0
	renderer.EXPECT().
		Fetch(gomock.Any(), "https://tienda.com/producto").
		Return(&domain.PageContent{
			Text: "Masajeador cervical premium\nCompra ya",
			Offers: []domain.Offer{
				{Label: "1 unidad", Price: 89900, OriginalPrice: &original},
				{Label: "2 unidades", Price: 149900},
			},
		}, nil)

	result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{
		Ads: []domain.SelectedAd{
			{ID: "ad-1", AdvertiserName: "Tienda", LandingURL: "https://tienda.com/producto"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Competitors, 1)

	competitor := result.Competitors[0]
	assert.Equal(t, "ad-1", competitor.ID)
	assert.Equal(t, domain.SourceRenderer, competitor.Source)
	assert.Empty(t, competitor.Error)

	// O preço vem da menor oferta estruturada, sem heurística de texto
	require.NotNil(t, competitor.Price)
	assert.Equal(t, 89900.0, *competitor.Price)
	assert.Equal(t, "$ 89.900", competitor.FormattedPrice)

	// Mais de uma oferta caracteriza combo
	assert.True(t, competitor.HasCombo)
	assert.Equal(t, "1 unidad | 2 unidades", competitor.ComboDescription)
	assert.Len(t, competitor.Offers, 2)
}

func TestService_Analyze_FallbackParaTexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := sourceMock(ctrl, domain.SourceRenderer)
	reader := sourceMock(ctrl, domain.SourceTextExtractor)
	service := newTestService(renderer, reader)

	renderer.EXPECT().
		Fetch(gomock.Any(), "https://tienda.com/item").
		Return(nil, errors.New("timeout del renderizador"))

	reader.EXPECT().
		Fetch(gomock.Any(), "https://tienda.com/item").
		Return(&domain.PageContent{
			Text: "Masajeador con envío gratis\nAntes $199.900, ahora $89.900\nCompra ya",
		}, nil)

	result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{
		Ads: []domain.SelectedAd{
			{ID: "ad-2", LandingURL: "https://tienda.com/item"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Competitors, 1)

	competitor := result.Competitors[0]
	assert.Equal(t, domain.SourceTextExtractor, competitor.Source)
	assert.Empty(t, competitor.Error)

	require.NotNil(t, competitor.Price)
	assert.Equal(t, 89900.0, *competitor.Price)
	assert.NotEmpty(t, competitor.GiftDescription)
}

func TestService_Analyze_TodasAsFontesFalham(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := sourceMock(ctrl, domain.SourceRenderer)
	reader := sourceMock(ctrl, domain.SourceTextExtractor)
	service := newTestService(renderer, reader)

	renderer.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("bloqueado"))
	reader.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("página vacía"))

	result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{
		Ads: []domain.SelectedAd{
			{ID: "ad-3", AdvertiserName: "Tienda", LandingURL: "https://tienda.com/x"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Competitors, 1)

	competitor := result.Competitors[0]
	assert.Equal(t, "content unavailable", competitor.Error)
	assert.Equal(t, "ad-3", competitor.ID)
	assert.Equal(t, "Tienda", competitor.AdvertiserName)
	assert.Nil(t, competitor.Price)
}

func TestService_Analyze_IsolamentoDeFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := sourceMock(ctrl, domain.SourceRenderer)
	service := newTestService(renderer)

	// Três anúncios: sucesso, falha, sucesso. O lote devolve três resultados
	// na mesma ordem, com a falha isolada no item do meio.
	renderer.EXPECT().
		Fetch(gomock.Any(), "https://a.com").
		Return(&domain.PageContent{
			Offers: []domain.Offer{{Label: "1 unidad", Price: 80000}},
		}, nil)
	renderer.EXPECT().
		Fetch(gomock.Any(), "https://b.com").
		Return(nil, errors.New("bloqueado"))
	renderer.EXPECT().
		Fetch(gomock.Any(), "https://c.com").
		Return(&domain.PageContent{
			Offers: []domain.Offer{{Label: "1 unidad", Price: 120000}},
		}, nil)

	result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{
		Ads: []domain.SelectedAd{
			{ID: "a", LandingURL: "https://a.com"},
			{ID: "b", LandingURL: "https://b.com"},
			{ID: "c", LandingURL: "https://c.com"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Competitors, 3)

	assert.Empty(t, result.Competitors[0].Error)
	assert.Equal(t, "content unavailable", result.Competitors[1].Error)
	assert.Empty(t, result.Competitors[2].Error)

	require.NotNil(t, result.Stats)
	assert.Equal(t, 3, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Analyzed)
	assert.Equal(t, 2, result.Stats.WithPrice)
	require.NotNil(t, result.Stats.MinPrice)
	assert.Equal(t, 80000.0, *result.Stats.MinPrice)
	require.NotNil(t, result.Stats.AveragePrice)
	assert.Equal(t, 100000.0, *result.Stats.AveragePrice)
}

func TestService_Analyze_ValidacaoDaSelecao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(sourceMock(ctrl, domain.SourceRenderer))

	t.Run("Seleção vazia", func(t *testing.T) {
		result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("Seleção acima do limite", func(t *testing.T) {
		ads := make([]domain.SelectedAd, domain.MaxSelectedAds+1)
		result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{Ads: ads})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrSelectionTooLarge)
	})
}

func TestService_Analyze_FonteComTextoVazioDegrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := sourceMock(ctrl, domain.SourceRenderer)
	reader := sourceMock(ctrl, domain.SourceTextExtractor)
	service := newTestService(renderer, reader)

	// Fonte que responde sem erro mas sem conteúdo útil degrada igual
	renderer.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(&domain.PageContent{Text: "   "}, nil)
	reader.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(&domain.PageContent{Text: "El mejor masajeador\nPrecio: $89.900"}, nil)

	result, err := service.Analyze(context.Background(), domain.AnalyzeRequest{
		Ads: []domain.SelectedAd{{ID: "ad-4", LandingURL: "https://tienda.com/y"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Competitors, 1)
	assert.Equal(t, domain.SourceTextExtractor, result.Competitors[0].Source)
	require.NotNil(t, result.Competitors[0].Price)
	assert.Equal(t, 89900.0, *result.Competitors[0].Price)
}
