package analyzing

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

// Service é o orquestrador da análise profunda. Processa os anúncios
// selecionados de forma estritamente sequencial, com um delay fixo entre
// itens: é o mecanismo de backpressure contra o rate limit do renderizador
// interativo. Não há estado compartilhado entre itens.
type Service struct {
	sources []ContentSource
	cfg     config.Analysis
	offers  *OfferExtractor
}

func NewService(sources []ContentSource, cfg config.Analysis, market config.Market) Analyzer {
	return &Service{
		sources: sources,
		cfg:     cfg,
		offers:  NewOfferExtractor(market),
	}
}

// Analyze processa até MaxSelectedAds anúncios. Contrato de isolamento de
// falha: N anúncios pedidos produzem exatamente N resultados, cada um
// preenchido ou carregando um erro próprio. Nenhuma falha individual aborta
// o lote.
func (s *Service) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if len(req.Ads) == 0 {
		return nil, ErrEmptySelection
	}
	if len(req.Ads) > domain.MaxSelectedAds {
		return nil, ErrSelectionTooLarge
	}

	logger := log.ForContext(ctx)
	logger.WithField("ads", len(req.Ads)).Info("analysis: starting deep analysis batch")

	competitors := make([]domain.AnalyzedCompetitor, 0, len(req.Ads))

	for i, ad := range req.Ads {
		competitor := s.analyzeOne(ctx, ad)
		competitors = append(competitors, competitor)

		if i < len(req.Ads)-1 {
			delay := s.cfg.ItemDelay
			if competitor.Source == domain.SourceRenderer && competitor.Error == "" {
				delay = s.cfg.RendererDelay
			}
			s.wait(ctx, delay)
		}
	}

	stats := Aggregate(competitors)

	logger.WithFields(log.Fields{
		"total":      stats.Total,
		"analyzed":   stats.Analyzed,
		"with_price": stats.WithPrice,
	}).Info("analysis: deep analysis batch finished")

	return &domain.AnalyzeResponse{
		Competitors: competitors,
		Stats:       stats,
	}, nil
}

// analyzeOne percorre a cadeia de fontes em ordem de prioridade. Erro ou
// conteúdo vazio de uma fonte degrada para a próxima; o fim da cadeia sem
// conteúdo vira um item com erro, nunca uma falha do lote.
func (s *Service) analyzeOne(ctx context.Context, ad domain.SelectedAd) domain.AnalyzedCompetitor {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":       ad.ID,
		"landing_url": ad.LandingURL,
	})

	for _, source := range s.sources {
		content, err := source.Fetch(ctx, ad.LandingURL)
		if err != nil {
			logger.WithError(err).Warnf("analysis: source %s failed, trying next", source.Tag())
			continue
		}

		if content.HasOffers() {
			logger.WithField("offers", len(content.Offers)).Infof("analysis: structured offers from %s", source.Tag())
			return s.buildFromOffers(ad, source.Tag(), content)
		}

		if strings.TrimSpace(content.Text) != "" {
			logger.Infof("analysis: raw text from %s, applying heuristics", source.Tag())
			return s.buildFromText(ad, source.Tag(), content)
		}

		logger.Warnf("analysis: source %s returned nothing useful", source.Tag())
	}

	return domain.AnalyzedCompetitor{
		ID:             s.adID(ad),
		AdvertiserName: ad.AdvertiserName,
		LandingURL:     ad.LandingURL,
		Error:          contentUnavailable,
	}
}

// buildFromOffers monta o resultado a partir de ofertas estruturadas. A
// heurística de preço sobre texto livre é dispensada: o dado estruturado do
// renderizador é usado diretamente.
func (s *Service) buildFromOffers(ad domain.SelectedAd, tag domain.ContentSourceTag, content *domain.PageContent) domain.AnalyzedCompetitor {
	price := content.Offers[0].Price
	labels := make([]string, 0, len(content.Offers))
	for _, offer := range content.Offers {
		if offer.Price < price {
			price = offer.Price
		}
		if offer.Label != "" {
			labels = append(labels, offer.Label)
		}
	}

	// Classificação complementar sobre o texto renderizado, quando houver
	cls := Classify(content.Text)

	competitor := domain.AnalyzedCompetitor{
		ID:             s.adID(ad),
		AdvertiserName: ad.AdvertiserName,
		LandingURL:     ad.LandingURL,
		Price:          &price,
		FormattedPrice: s.offers.FormatPrice(price),
		Offers:         content.Offers,
		HasCombo:       len(content.Offers) > 1,
		Source:         tag,
	}

	if competitor.HasCombo {
		competitor.ComboDescription = strings.Join(labels, " | ")
	} else if cls.HasCombo {
		competitor.HasCombo = true
		competitor.ComboDescription = cls.ComboDescription
	}

	competitor.GiftDescription = firstNonEmpty(content.GiftText, cls.GiftDescription)
	competitor.Headline = firstNonEmpty(content.Headline, cls.Headline)
	competitor.CallToAction = firstNonEmpty(content.CTAText, cls.CallToAction)
	competitor.SalesAngle = cls.SalesAngle

	return competitor
}

// buildFromText monta o resultado pelo caminho de fallback: heurística de
// preço mais classificação regex sobre o texto simplificado da página.
func (s *Service) buildFromText(ad domain.SelectedAd, tag domain.ContentSourceTag, content *domain.PageContent) domain.AnalyzedCompetitor {
	cls := Classify(content.Text)

	competitor := domain.AnalyzedCompetitor{
		ID:               s.adID(ad),
		AdvertiserName:   ad.AdvertiserName,
		LandingURL:       ad.LandingURL,
		HasCombo:         cls.HasCombo,
		ComboDescription: cls.ComboDescription,
		GiftDescription:  cls.GiftDescription,
		SalesAngle:       cls.SalesAngle,
		Headline:         cls.Headline,
		CallToAction:     cls.CallToAction,
		Source:           tag,
	}

	if price := s.offers.ExtractPrice(content.Text); price != nil {
		competitor.Price = price
		competitor.FormattedPrice = s.offers.FormatPrice(*price)
	}

	return competitor
}

func (s *Service) adID(ad domain.SelectedAd) string {
	if ad.ID != "" {
		return ad.ID
	}

	id, err := utils.GenerateID()
	if err != nil {
		return ad.LandingURL
	}
	return id
}

// wait dorme respeitando o cancelamento do contexto
func (s *Service) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
