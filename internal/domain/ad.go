package domain

// AdCandidate representa um anúncio bruto retornado pela busca na biblioteca
// de anúncios. Imutável depois de criado.
type AdCandidate struct {
	AdvertiserName string `json:"advertiserName"`
	LandingURL     string `json:"landingUrl"`
	AdText         string `json:"adText,omitempty"`
	CTAText        string `json:"ctaText,omitempty"`
	AdLibraryURL   string `json:"adLibraryUrl,omitempty"`
	ThumbnailURL   string `json:"thumbnailUrl,omitempty"`
	Domain         string `json:"domain"`
}

// ScoredAdCandidate é um AdCandidate com o score de relevância calculado.
// Invariante: Score >= 0.
type ScoredAdCandidate struct {
	AdCandidate
	Score int `json:"score"`
}

// SelectedAd é um anúncio escolhido pelo usuário para análise profunda.
type SelectedAd struct {
	ID             string `json:"id"`
	AdvertiserName string `json:"advertiserName"`
	LandingURL     string `json:"landingUrl"`
	AdText         string `json:"adText,omitempty"`
	CTAText        string `json:"ctaText,omitempty"`
	AdLibraryURL   string `json:"adLibraryUrl,omitempty"`
}

// MaxSelectedAds limita o fan-out da análise profunda. O renderizador
// interativo externo aplica rate limiting agressivo.
const MaxSelectedAds = 10

// MaxDiscoveryResults limita a lista apresentada ao usuário após a
// deduplicação por domínio.
const MaxDiscoveryResults = 15

type DiscoveryRequest struct {
	Keyword string `json:"keyword"`
	Country string `json:"country"`
}

type DiscoveryResponse struct {
	Keyword    string              `json:"keyword"`
	Country    string              `json:"country"`
	Candidates []ScoredAdCandidate `json:"candidates"`
}
