package adlibraryclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	adlibdomain "github.com/vfg2006/competitor-radar-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/competitor-radar-api/internal/config"
)

type Client interface {
	SearchAds(ctx context.Context, keyword, country string) ([]adlibdomain.AdRecord, error)
}

type AdLibraryClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.AdLibrary.RequestTimeout,
		},
	}
}

// handleResponse lê o corpo e converte status não-2xx em erro
func (c *AdLibraryClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da biblioteca de anúncios")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("biblioteca de anúncios respondeu %s: %s", resp.Status, string(body))
	}

	return body, nil
}
