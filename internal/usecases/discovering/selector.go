package discovering

import (
	"sort"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
)

// SelectTop ordena por score decrescente, mantém só o candidato mais bem
// pontuado de cada domínio e corta a lista no limite de descoberta. A
// ordenação é estável: empates preservam a ordem de chegada da biblioteca
// de anúncios.
func SelectTop(candidates []domain.ScoredAdCandidate) []domain.ScoredAdCandidate {
	sorted := make([]domain.ScoredAdCandidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	seen := make(map[string]struct{}, len(sorted))
	selected := make([]domain.ScoredAdCandidate, 0, len(sorted))

	for _, c := range sorted {
		if _, dup := seen[c.Domain]; dup {
			continue
		}
		seen[c.Domain] = struct{}{}

		selected = append(selected, c)
		if len(selected) == domain.MaxDiscoveryResults {
			break
		}
	}

	return selected
}
