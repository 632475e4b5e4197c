package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/competitor-radar-api/infrastructure/repository"
	"github.com/vfg2006/competitor-radar-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
)

// ListAnalysisRuns devolve o histórico de análises, mais recentes primeiro
func ListAnalysisRuns(runRepo repository.AnalysisRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := runRepo.ListRuns(limit)
		if err != nil {
			logger.WithError(err).Error("analyses: falha ao listar histórico de análises")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao listar histórico de análises", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logger.WithError(err).Error("analyses: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAnalysisRun devolve uma execução de análise específica
func GetAnalysisRun(runRepo repository.AnalysisRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da análise não informado", nil)
			return
		}

		run, err := runRepo.GetRunByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"run_id": id,
				"error":  err.Error(),
			}).Error("analyses: falha ao buscar análise")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao buscar análise", nil)
			return
		}

		if run == nil {
			http.Error(w, "análise não encontrada", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			logger.WithError(err).Error("analyses: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
