package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/internal/usecases/pricing"
	"github.com/vfg2006/competitor-radar-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-radar-api/pkg/log"
)

type marginResponseBody struct {
	Complete    bool                      `json:"complete"`
	Calculation *domain.MarginCalculation `json:"calculation,omitempty"`
}

// CalculateMargin roda o motor de viabilidade. Entradas incompletas não são
// erro: a resposta volta com complete=false e sem cálculo.
func CalculateMargin(service pricing.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.MarginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("margin: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		calculation := service.Calculate(req)

		response := marginResponseBody{
			Complete:    calculation != nil,
			Calculation: calculation,
		}

		if calculation != nil {
			logger.WithFields(log.Fields{
				"verdict":          calculation.Verdict,
				"min_viable_price": calculation.MinViablePrice,
			}).Info("margin: cálculo de viabilidade concluído")
		} else {
			logger.Info("margin: entradas incompletas, cálculo não executado")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("margin: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
