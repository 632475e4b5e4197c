// Package browser implementa a fonte de conteúdo de renderização interativa
// usando um Chrome headless externo via CDP. É a fonte prioritária da
// análise profunda: simula cliques para revelar ofertas escondidas e extrai
// as regiões de preço/variação/cta/brinde da página renderizada.
package browser

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

// ErrNoOffers indica que a página renderizou mas nenhuma região de oferta
// com preço utilizável foi encontrada. O orquestrador cai para a próxima
// fonte da cadeia.
var ErrNoOffers = errors.New("nenhuma oferta estruturada encontrada na página renderizada")

type Renderer struct {
	cfg    config.Renderer
	market config.Market
}

func New(cfg config.Renderer, market config.Market) *Renderer {
	return &Renderer{cfg: cfg, market: market}
}

func (r *Renderer) Tag() domain.ContentSourceTag {
	return domain.SourceRenderer
}

// pageExtract é o resultado do script de extração avaliado na página.
type pageExtract struct {
	PriceTexts   []string `json:"priceTexts"`
	VariantTexts []string `json:"variantTexts"`
	CTAText      string   `json:"ctaText"`
	GiftText     string   `json:"giftText"`
	Headline     string   `json:"headline"`
}

// clickScript clica nos gatilhos usuais de revelação de oferta (seletores de
// variação, bundles, modais de promoção). Melhor esforço: cliques que falham
// são ignorados.
const clickScript = `
(function() {
	var selectors = [
		'[class*="offer"] button',
		'[class*="bundle"] button',
		'[class*="variant"] label',
		'[class*="variant"] input',
		'[class*="promo"] button',
		'[class*="combo"]'
	];
	var clicked = 0;
	for (var i = 0; i < selectors.length && clicked < 4; i++) {
		var els = document.querySelectorAll(selectors[i]);
		for (var j = 0; j < els.length && clicked < 4; j++) {
			try { els[j].click(); clicked++; } catch (e) {}
		}
	}
	return clicked;
})()`

// extractScript coleta o texto das regiões relevantes por classe CSS.
const extractScript = `
(function() {
	function texts(selector, limit) {
		var out = [];
		var els = document.querySelectorAll(selector);
		for (var i = 0; i < els.length && out.length < limit; i++) {
			var t = (els[i].innerText || '').trim();
			if (t) { out.push(t); }
		}
		return out;
	}

	return {
		priceTexts: texts('[class*="price"], [data-price]', 10),
		variantTexts: texts('[class*="offer"], [class*="bundle"], [class*="variant"], [class*="promo"], [class*="combo"]', 10),
		ctaText: (texts('button[class*="buy"], [class*="add-to-cart"], button[class*="cart"], [class*="checkout"]', 1)[0] || ''),
		giftText: (texts('[class*="gift"], [class*="regalo"], [class*="brinde"], [class*="bonus"]', 1)[0] || ''),
		headline: (texts('h1', 1)[0] || document.title || '')
	};
})()`

// Fetch renderiza a página dentro do orçamento de timeout configurado e
// converte as regiões extraídas em ofertas estruturadas.
func (r *Renderer) Fetch(ctx context.Context, landingURL string) (*domain.PageContent, error) {
	allocCtx, cancelAlloc := r.allocator(ctx)
	defer cancelAlloc()

	// Uma aba nova por item; sem log do chromedp no stdout
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	runCtx, cancelTimeout := context.WithTimeout(tabCtx, r.cfg.Timeout)
	defer cancelTimeout()

	var extracted pageExtract
	err := chromedp.Run(runCtx,
		chromedp.Navigate(landingURL),
		chromedp.Sleep(r.cfg.NavWait),
		chromedp.Evaluate(clickScript, nil),
		chromedp.Sleep(1*time.Second),
		chromedp.Evaluate(extractScript, &extracted),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao renderizar %s", landingURL)
	}

	content := r.toPageContent(extracted)
	if !content.HasOffers() {
		return nil, ErrNoOffers
	}

	return content, nil
}

func (r *Renderer) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.WebsocketURL != "" {
		return chromedp.NewRemoteAllocator(ctx, r.cfg.WebsocketURL)
	}

	// Fallback local para desenvolvimento, com as flags usuais de headless
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	return chromedp.NewExecAllocator(ctx, opts...)
}

// toPageContent monta as ofertas estruturadas a partir dos fragmentos. Cada
// região de variação com valores monetários vira uma oferta rotulada; o
// menor valor é o preço com desconto e o maior, quando existir, o preço
// original. Valores fora da janela de plausibilidade do mercado são ruído.
func (r *Renderer) toPageContent(extracted pageExtract) *domain.PageContent {
	offers := make([]domain.Offer, 0, len(extracted.VariantTexts))
	for _, fragment := range extracted.VariantTexts {
		price, original, ok := r.fragmentPrices(fragment)
		if !ok {
			continue
		}

		offers = append(offers, domain.Offer{
			Label:         fragmentLabel(fragment),
			Price:         price,
			OriginalPrice: original,
		})
	}

	// Sem variações: a própria região de preço vira a oferta única
	if len(offers) == 0 {
		joined := strings.Join(extracted.PriceTexts, "\n")
		if price, original, ok := r.fragmentPrices(joined); ok {
			offers = append(offers, domain.Offer{Price: price, OriginalPrice: original})
		}
	}

	fragments := make([]string, 0, len(extracted.PriceTexts)+len(extracted.VariantTexts)+3)
	fragments = append(fragments, extracted.Headline)
	fragments = append(fragments, extracted.VariantTexts...)
	fragments = append(fragments, extracted.PriceTexts...)
	fragments = append(fragments, extracted.GiftText, extracted.CTAText)

	return &domain.PageContent{
		Text:     strings.TrimSpace(strings.Join(fragments, "\n")),
		Offers:   offers,
		Headline: strings.TrimSpace(extracted.Headline),
		CTAText:  strings.TrimSpace(extracted.CTAText),
		GiftText: strings.TrimSpace(extracted.GiftText),
	}
}

// fragmentPrices devolve (preço, preço original) de um fragmento de texto
func (r *Renderer) fragmentPrices(fragment string) (float64, *float64, bool) {
	amounts := utils.ParseCurrencyAmounts(fragment, r.market.CurrencySymbol)

	valid := amounts[:0]
	for _, v := range amounts {
		if v >= r.market.MinValidPrice && v <= r.market.MaxValidPrice {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return 0, nil, false
	}

	price, max := valid[0], valid[0]
	for _, v := range valid[1:] {
		if v < price {
			price = v
		}
		if v > max {
			max = v
		}
	}

	var original *float64
	if max > price {
		original = &max
	}

	return price, original, true
}

// fragmentLabel usa a primeira linha do fragmento como rótulo da oferta
func fragmentLabel(fragment string) string {
	line := fragment
	if idx := strings.IndexByte(fragment, '\n'); idx >= 0 {
		line = fragment[:idx]
	}

	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:60]
	}
	return line
}
