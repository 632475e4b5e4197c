package analyzing

import (
	"context"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/content_source.go -package=mocks

// ContentSource é uma fonte de conteúdo de página de destino. O orquestrador
// percorre as fontes em ordem de prioridade e usa a primeira que devolver
// algo utilizável; novas fontes entram na cadeia sem mudar o orquestrador.
//
// Cada implementação aplica internamente seu próprio orçamento de timeout
// sobre o contexto recebido.
type ContentSource interface {
	// Tag identifica a fonte no resultado final
	Tag() domain.ContentSourceTag

	// Fetch extrai o conteúdo da página de destino. Deve retornar erro
	// quando não conseguir produzir nem ofertas estruturadas nem texto.
	Fetch(ctx context.Context, landingURL string) (*domain.PageContent, error)
}

// Analyzer é a operação pública de análise profunda de concorrentes.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
}
