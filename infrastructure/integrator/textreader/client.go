// Package textreader implementa a fonte de conteúdo de fallback: um serviço
// externo de leitura que devolve a página como texto simples, sem executar
// JavaScript. Usada quando o renderizador interativo não produz ofertas.
package textreader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

// ErrEmptyContent indica que o serviço respondeu mas sem texto utilizável.
var ErrEmptyContent = errors.New("extração de texto devolveu conteúdo vazio")

type Client struct {
	cfg        config.TextReader
	httpClient *http.Client
}

func New(cfg config.TextReader) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Tag() domain.ContentSourceTag {
	return domain.SourceTextExtractor
}

// Fetch pede a versão texto da página de destino. O serviço de leitura
// recebe a URL alvo como sufixo do caminho.
func (c *Client) Fetch(ctx context.Context, landingURL string) (*domain.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	readerURL := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.URL, "/"), landingURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readerURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição de extração de texto")
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro na extração de texto de %s", landingURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("extração de texto respondeu %s para %s", resp.Status, landingURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da extração de texto")
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return nil, ErrEmptyContent
	}

	return &domain.PageContent{Text: text}, nil
}
