package discovering

import "errors"

var (
	// ErrEmptyKeyword indica busca sem palavra-chave
	ErrEmptyKeyword = errors.New("palavra-chave de busca vazia")
)
