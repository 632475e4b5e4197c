package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
)

type trackSearchRequest struct {
	Keyword string `json:"keyword"`
	Country string `json:"country"`
	Active  *bool  `json:"active,omitempty"`
}

// TrackSearch cadastra (ou reativa) uma busca para atualização periódica
func TrackSearch(searchRepo repository.TrackedSearchRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req trackSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("searches: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		req.Keyword = strings.TrimSpace(req.Keyword)
		if req.Keyword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Palavra-chave não informada", nil)
			return
		}
		if req.Country == "" {
			req.Country = "MX"
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		search := &domain.TrackedSearch{
			Keyword: req.Keyword,
			Country: strings.ToUpper(req.Country),
			Active:  active,
		}

		if err := searchRepo.Save(search); err != nil {
			logger.WithFields(log.Fields{
				"keyword": search.Keyword,
				"country": search.Country,
				"error":   err.Error(),
			}).Error("searches: falha ao salvar busca acompanhada")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao salvar busca acompanhada", nil)
			return
		}

		logger.WithFields(log.Fields{
			"search_id": search.ID,
			"keyword":   search.Keyword,
		}).Info("searches: busca acompanhada salva")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(search); err != nil {
			logger.WithError(err).Error("searches: falha ao serializar resposta")
		}
	})
}

// ListTrackedSearches devolve todas as buscas acompanhadas com o último
// snapshot de concorrência
func ListTrackedSearches(searchRepo repository.TrackedSearchRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		searches, err := searchRepo.List()
		if err != nil {
			logger.WithError(err).Error("searches: falha ao listar buscas acompanhadas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao listar buscas acompanhadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(searches); err != nil {
			logger.WithError(err).Error("searches: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
