package discovering

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// AdSearcher define a interface do colaborador externo de busca na
// biblioteca de anúncios.
type AdSearcher interface {
	// SearchAds busca anúncios ativos para uma palavra-chave em um país
	SearchAds(ctx context.Context, keyword, country string) ([]domain.AdCandidate, error)
}

// Discoverer é a operação pública de descoberta de concorrentes.
type Discoverer interface {
	Search(ctx context.Context, req domain.DiscoveryRequest) (*domain.DiscoveryResponse, error)
}

type Service struct {
	searcher AdSearcher
}

func NewService(searcher AdSearcher) Discoverer {
	return &Service{searcher: searcher}
}

// Search roda o funil de descoberta: busca bruta, filtro de e-commerce,
// score de relevância e deduplicação por domínio. Falha na busca externa é
// falha da operação inteira; sem candidatos não há o que filtrar.
func (s *Service) Search(ctx context.Context, req domain.DiscoveryRequest) (*domain.DiscoveryResponse, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	raw, err := s.searcher.SearchAds(ctx, keyword, req.Country)
	if err != nil {
		return nil, fmt.Errorf("erro na busca da biblioteca de anúncios: %w", err)
	}

	scored := make([]domain.ScoredAdCandidate, 0, len(raw))
	for _, candidate := range raw {
		if !IsEcommerceAd(candidate) {
			continue
		}

		scored = append(scored, domain.ScoredAdCandidate{
			AdCandidate: candidate,
			Score:       ScoreCandidate(candidate),
		})
	}

	selected := SelectTop(scored)

	logrus.WithFields(logrus.Fields{
		"keyword":  keyword,
		"country":  req.Country,
		"raw":      len(raw),
		"filtered": len(scored),
		"selected": len(selected),
	}).Info("Funil de descoberta de concorrentes concluído")

	return &domain.DiscoveryResponse{
		Keyword:    keyword,
		Country:    req.Country,
		Candidates: selected,
	}, nil
}
