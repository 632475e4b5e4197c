package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/discovering"
	"github.com/vfg2006/competitor-radar-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
)

// SearchCompetitors executa o funil de descoberta: busca na biblioteca de
// anúncios, filtro de e-commerce, score e deduplicação por domínio
func SearchCompetitors(service discovering.Discoverer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.DiscoveryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("discovery: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"keyword": req.Keyword,
			"country": req.Country,
		}).Info("discovery: iniciando busca de concorrentes")

		result, err := service.Search(r.Context(), req)
		if err != nil {
			if errors.Is(err, discovering.ErrEmptyKeyword) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Palavra-chave não informada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"keyword": req.Keyword,
				"country": req.Country,
				"error":   err.Error(),
			}).Error("discovery: falha na busca de concorrentes")

			apiErrors.WriteError(w, apiErrors.ErrDiscoveryFailed, "Falha na busca da biblioteca de anúncios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"keyword":    result.Keyword,
			"candidates": len(result.Candidates),
		}).Info("discovery: busca de concorrentes concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("discovery: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
