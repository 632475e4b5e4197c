package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDomain(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "URL completa",
			url:      "https://www.tienda-max.shop/producto?ref=fb",
			expected: "tienda-max.shop",
		},
		{
			name:     "URL sem esquema",
			url:      "tienda-max.shop/producto",
			expected: "tienda-max.shop",
		},
		{
			name:     "Host em maiúsculas é normalizado",
			url:      "https://Tienda-Max.SHOP",
			expected: "tienda-max.shop",
		},
		{
			name:     "URL vazia",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDomain(tt.url))
		})
	}
}
