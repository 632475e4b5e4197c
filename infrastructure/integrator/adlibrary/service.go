// Package adlibrary integra a API externa de biblioteca de anúncios e
// converte os registros brutos para o domínio da aplicação.
package adlibrary

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-radar-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

type Integrator struct {
	cfg    *config.Config
	client adlibraryclient.Client
}

func New(cfg *config.Config, client adlibraryclient.Client) *Integrator {
	return &Integrator{cfg: cfg, client: client}
}

// SearchAds implementa discovering.AdSearcher. Registros sem URL de destino
// são descartados: sem página não há o que analisar.
func (i *Integrator) SearchAds(ctx context.Context, keyword, country string) ([]domain.AdCandidate, error) {
	records, err := i.client.SearchAds(ctx, keyword, country)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.AdCandidate, 0, len(records))
	for _, record := range records {
		if record.LinkURL == "" {
			continue
		}

		candidates = append(candidates, domain.AdCandidate{
			AdvertiserName: record.PageName,
			LandingURL:     record.LinkURL,
			AdText:         record.CreativeBody,
			CTAText:        record.CTAText,
			AdLibraryURL:   record.AdSnapshotURL,
			ThumbnailURL:   record.ThumbnailURL,
			Domain:         utils.ResolveDomain(record.LinkURL),
		})
	}

	logrus.WithFields(logrus.Fields{
		"keyword":    keyword,
		"country":    country,
		"records":    len(records),
		"candidates": len(candidates),
	}).Debug("Registros da biblioteca de anúncios convertidos em candidatos")

	return candidates, nil
}
