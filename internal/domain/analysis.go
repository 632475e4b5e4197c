package domain

import "time"

// AnalysisRun é o registro persistido de uma execução de análise, para que o
// usuário possa revisitar resultados antigos sem repetir as extrações.
type AnalysisRun struct {
	ID          string               `json:"id"`
	Keyword     *string              `json:"keyword,omitempty"`
	Country     *string              `json:"country,omitempty"`
	Competitors []AnalyzedCompetitor `json:"competitors"`
	Stats       *AnalysisStats       `json:"stats"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// TrackedSearch é uma busca de palavra-chave acompanhada pelo agendador, que
// refaz a descoberta periodicamente e grava um snapshot da concorrência.
type TrackedSearch struct {
	ID              string     `json:"id"`
	Keyword         string     `json:"keyword"`
	Country         string     `json:"country"`
	Active          bool       `json:"active"`
	LastCandidates  int        `json:"lastCandidates"`
	LastRefreshedAt *time.Time `json:"lastRefreshedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
