package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/analyzing"
	"github.com/vfg2006/competitor-radar-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
)

// analyzeRequestBody estende a requisição de análise com o contexto opcional
// da busca que originou a seleção, usado apenas para o histórico
type analyzeRequestBody struct {
	domain.AnalyzeRequest
	Keyword *string `json:"keyword,omitempty"`
	Country *string `json:"country,omitempty"`
}

type analyzeResponseBody struct {
	RunID string `json:"runId,omitempty"`
	domain.AnalyzeResponse
}

// AnalyzeCompetitors roda a análise profunda da seleção e grava o histórico.
// A persistência é melhor esforço: falha no banco não invalida a análise.
func AnalyzeCompetitors(service analyzing.Analyzer, runRepo repository.AnalysisRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req analyzeRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("analyze: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithField("ads", len(req.Ads)).Info("analyze: iniciando análise de concorrentes")

		result, err := service.Analyze(r.Context(), req.AnalyzeRequest)
		if err != nil {
			switch {
			case errors.Is(err, analyzing.ErrEmptySelection):
				apiErrors.WriteError(w, apiErrors.ErrEmptySelection, "Nenhum anúncio selecionado para análise", nil)
			case errors.Is(err, analyzing.ErrSelectionTooLarge):
				apiErrors.WriteError(w, apiErrors.ErrSelectionTooLarge, "Seleção de anúncios acima do limite", map[string]any{
					"limit": domain.MaxSelectedAds,
				})
			default:
				logger.WithError(err).Error("analyze: falha na análise de concorrentes")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha na análise de concorrentes", nil)
			}
			return
		}

		response := analyzeResponseBody{AnalyzeResponse: *result}

		if runRepo != nil {
			run := &domain.AnalysisRun{
				Keyword:     req.Keyword,
				Country:     req.Country,
				Competitors: result.Competitors,
				Stats:       result.Stats,
			}

			if err := runRepo.SaveRun(run); err != nil {
				logger.WithError(err).Warn("analyze: falha ao gravar histórico da análise")
			} else {
				response.RunID = run.ID
			}
		}

		logger.WithFields(log.Fields{
			"competitors": len(result.Competitors),
			"run_id":      response.RunID,
		}).Info("analyze: análise de concorrentes concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("analyze: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
