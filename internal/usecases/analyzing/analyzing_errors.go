package analyzing

import "errors"

var (
	// ErrEmptySelection indica requisição de análise sem anúncios
	ErrEmptySelection = errors.New("nenhum anúncio selecionado para análise")

	// ErrSelectionTooLarge indica seleção acima do limite permitido
	ErrSelectionTooLarge = errors.New("seleção de anúncios acima do limite")
)

// contentUnavailable é gravado no item quando toda a cadeia de fontes falha.
const contentUnavailable = "content unavailable"
