package discovering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

func scored(advertiser, dom string, score int) domain.ScoredAdCandidate {
	return domain.ScoredAdCandidate{
		AdCandidate: domain.AdCandidate{
			AdvertiserName: advertiser,
			Domain:         dom,
		},
		Score: score,
	}
}

func TestSelectTop_DeduplicacaoPorDominio(t *testing.T) {
	// Dois candidatos do mesmo domínio: fica só o de maior score, na
	// posição que o score dele determina
	candidates := []domain.ScoredAdCandidate{
		scored("Loja A variante fraca", "loja-a.com", 5),
		scored("Loja B", "loja-b.com", 7),
		scored("Loja A variante forte", "loja-a.com", 8),
		scored("Loja C", "loja-c.com", 3),
	}

	selected := SelectTop(candidates)

	assert.Len(t, selected, 3)
	assert.Equal(t, "Loja A variante forte", selected[0].AdvertiserName)
	assert.Equal(t, "Loja B", selected[1].AdvertiserName)
	assert.Equal(t, "Loja C", selected[2].AdvertiserName)
}

func TestSelectTop_OrdenacaoEstavelEmEmpates(t *testing.T) {
	// Empates preservam a ordem de chegada da biblioteca de anúncios
	candidates := []domain.ScoredAdCandidate{
		scored("Primeiro", "a.com", 4),
		scored("Segundo", "b.com", 4),
		scored("Terceiro", "c.com", 4),
	}

	selected := SelectTop(candidates)

	assert.Len(t, selected, 3)
	assert.Equal(t, "Primeiro", selected[0].AdvertiserName)
	assert.Equal(t, "Segundo", selected[1].AdvertiserName)
	assert.Equal(t, "Terceiro", selected[2].AdvertiserName)
}

func TestSelectTop_CorteNoLimite(t *testing.T) {
	candidates := make([]domain.ScoredAdCandidate, 0, 20)
	for i := 0; i < 20; i++ {
		candidates = append(candidates, scored(
			fmt.Sprintf("Loja %d", i),
			fmt.Sprintf("loja-%d.com", i),
			20-i,
		))
	}

	selected := SelectTop(candidates)

	assert.Len(t, selected, domain.MaxDiscoveryResults)
	assert.Equal(t, "Loja 0", selected[0].AdvertiserName)
	assert.Equal(t, 20, selected[0].Score)
}

func TestSelectTop_ListaVazia(t *testing.T) {
	selected := SelectTop(nil)
	assert.Empty(t, selected)
}

func TestSelectTop_NaoMutaEntrada(t *testing.T) {
	candidates := []domain.ScoredAdCandidate{
		scored("Baixo", "a.com", 1),
		scored("Alto", "b.com", 9),
	}

	SelectTop(candidates)

	assert.Equal(t, "Baixo", candidates[0].AdvertiserName)
	assert.Equal(t, "Alto", candidates[1].AdvertiserName)
}
