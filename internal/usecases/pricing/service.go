package pricing

import (
	"fmt"
	"math"

	"github.com/vfg2006/competitor-radar-api/internal/config"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

// Calculator é o motor de decisão de viabilidade de margem.
type Calculator interface {
	// Calculate devolve nil enquanto faltarem custos ou não houver preço de
	// concorrente válido; degradação graciosa em vez de erro.
	Calculate(req domain.MarginRequest) *domain.MarginCalculation
}

type Service struct {
	market config.Market
}

func NewService(market config.Market) Calculator {
	return &Service{market: market}
}

// Calculate aplica o modelo financeiro:
//
//	totalCost          = custo do fornecedor + frete
//	totalCostWithCPA   = totalCost + custo por aquisição
//	margem(preço)      = preço - totalCostWithCPA
//	margem real(preço) = margem × efetividade − totalCost × (1 − efetividade)
//
// A margem real é o valor esperado por pedido em operação contra entrega: a
// parcela de pedidos não confirmados ainda queima fornecedor + frete.
func (s *Service) Calculate(req domain.MarginRequest) *domain.MarginCalculation {
	if req.SupplierCost == nil || req.ShippingCost == nil ||
		req.CostPerAcquisiton == nil || req.EffectivenessRate == nil {
		return nil
	}
	if req.CompetitorMin == nil && req.CompetitorAvg == nil {
		return nil
	}

	// Com um único preço de referência, ele serve de mínimo e de média.
	minPrice := req.CompetitorMin
	avgPrice := req.CompetitorAvg
	if minPrice == nil {
		minPrice = avgPrice
	}
	if avgPrice == nil {
		avgPrice = minPrice
	}

	totalCost := *req.SupplierCost + *req.ShippingCost
	totalCostWithCPA := totalCost + *req.CostPerAcquisiton
	effectiveness := *req.EffectivenessRate / 100

	grossMargin := func(price float64) float64 {
		return price - totalCostWithCPA
	}
	marginPercent := func(price float64) float64 {
		if price == 0 {
			return 0
		}
		return utils.RoundWithTwoDecimalPlace(grossMargin(price) / price * 100)
	}
	realMargin := func(price float64) float64 {
		return grossMargin(price)*effectiveness - totalCost*(1-effectiveness)
	}

	// Menor preço que ainda entrega o piso de margem, arredondado para a
	// centena acima.
	minViablePrice := math.Ceil(totalCostWithCPA/(1-s.market.MarginFloor)/100) * 100

	calc := &domain.MarginCalculation{
		TotalCost:        totalCost,
		TotalCostWithCPA: totalCostWithCPA,

		MarginAtMin:        grossMargin(*minPrice),
		MarginPercentAtMin: marginPercent(*minPrice),
		MarginAtAvg:        grossMargin(*avgPrice),
		MarginPercentAtAvg: marginPercent(*avgPrice),

		RealMarginAtMin: realMargin(*minPrice),
		RealMarginAtAvg: realMargin(*avgPrice),

		MinViablePrice: minViablePrice,
	}

	threshold := s.market.MarginThreshold
	symbol := s.market.CurrencySymbol

	switch {
	case calc.RealMarginAtMin >= threshold:
		calc.Verdict = domain.VerdictGo
		calc.Rationale = fmt.Sprintf(
			"Margem real de %s mesmo no menor preço da concorrência: dá para competir de frente.",
			utils.FormatCurrency(symbol, calc.RealMarginAtMin),
		)
	case calc.RealMarginAtAvg >= threshold:
		calc.Verdict = domain.VerdictMaybe
		calc.Rationale = fmt.Sprintf(
			"Margem real de %s só no preço médio da concorrência; vender no preço mínimo não sustenta a operação.",
			utils.FormatCurrency(symbol, calc.RealMarginAtAvg),
		)
	default:
		calc.Verdict = domain.VerdictNoGo
		calc.Rationale = fmt.Sprintf(
			"Margem real abaixo de %s até no preço médio; o produto não paga os custos da operação.",
			utils.FormatCurrency(symbol, threshold),
		)
	}

	return calc
}
