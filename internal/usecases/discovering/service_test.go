package discovering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockAdSearcher(ctrl)
	service := discovering.NewService(searcher)

	raw := []domain.AdCandidate{
		{
			AdvertiserName: "Tienda Max",
			LandingURL:     "https://tienda-max.shop/producto",
			AdText:         "Envío gratis, últimas unidades",
			CTAText:        "Comprar ahora",
			Domain:         "tienda-max.shop",
		},
		{
			AdvertiserName: "Perfil social",
			LandingURL:     "https://instagram.com/perfil",
			CTAText:        "Comprar",
			Domain:         "instagram.com",
		},
		{
			AdvertiserName: "App de jogos",
			LandingURL:     "https://jogosapp.com",
			CTAText:        "Baixar agora",
			Domain:         "jogosapp.com",
		},
		{
			AdvertiserName: "Loja genérica",
			LandingURL:     "https://lojageral.com",
			Domain:         "lojageral.com",
		},
	}

	searcher.EXPECT().
		SearchAds(gomock.Any(), "masajeador", "MX").
		Return(raw, nil)

	result, err := service.Search(context.Background(), domain.DiscoveryRequest{
		Keyword: "masajeador",
		Country: "MX",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "masajeador", result.Keyword)
	assert.Equal(t, "MX", result.Country)

	// O perfil social e o CTA de download caem no filtro; sobram duas lojas,
	// a de maior score primeiro
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "Tienda Max", result.Candidates[0].AdvertiserName)
	assert.Equal(t, "Loja genérica", result.Candidates[1].AdvertiserName)
	assert.Greater(t, result.Candidates[0].Score, result.Candidates[1].Score)
}

func TestService_Search_PalavraChaveVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockAdSearcher(ctrl)
	service := discovering.NewService(searcher)

	tests := []struct {
		name    string
		keyword string
	}{
		{name: "Keyword vazia", keyword: ""},
		{name: "Keyword só com espaços", keyword: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Search(context.Background(), domain.DiscoveryRequest{
				Keyword: tt.keyword,
				Country: "MX",
			})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, discovering.ErrEmptyKeyword)
		})
	}
}

func TestService_Search_FalhaNaBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockAdSearcher(ctrl)
	service := discovering.NewService(searcher)

	searcher.EXPECT().
		SearchAds(gomock.Any(), "masajeador", "MX").
		Return(nil, errors.New("rate limit"))

	result, err := service.Search(context.Background(), domain.DiscoveryRequest{
		Keyword: "masajeador",
		Country: "MX",
	})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestService_Search_SemCandidatos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockAdSearcher(ctrl)
	service := discovering.NewService(searcher)

	searcher.EXPECT().
		SearchAds(gomock.Any(), "produto raríssimo", "CO").
		Return([]domain.AdCandidate{}, nil)

	result, err := service.Search(context.Background(), domain.DiscoveryRequest{
		Keyword: "produto raríssimo",
		Country: "CO",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Candidates)
}
