package adlibraryclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adlibdomain "github.com/vfg2006/competitor-radar-api/infrastructure/integrator/adlibrary/domain"
)

type ResponseSearchAds struct {
	Data   []adlibdomain.AdRecord `json:"data"`
	Paging adlibdomain.Paging     `json:"paging"`
}

// SearchAds busca anúncios ativos para a palavra-chave no país informado.
// Uma página basta: o funil de descoberta corta em poucos candidatos.
func (c *AdLibraryClient) SearchAds(ctx context.Context, keyword, country string) ([]adlibdomain.AdRecord, error) {
	baseURL := fmt.Sprintf("%s/ads/search", c.Cfg.AdLibrary.URL)

	params := url.Values{}
	params.Add("search_terms", keyword)
	params.Add("country", country)
	params.Add("active_status", "ACTIVE")
	params.Add("limit", strconv.Itoa(c.Cfg.AdLibrary.SearchLimit))
	params.Add("access_token", c.Cfg.AdLibrary.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de busca de anúncios")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de busca de anúncios")
		return nil, err
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response ResponseSearchAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da biblioteca de anúncios")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
