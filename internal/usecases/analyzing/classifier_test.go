package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Brindes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Frete grátis é detectado",
			text:     "Aprovecha: envío gratis a todo el país en todas las compras",
			expected: "envío gratis a todo el país",
		},
		{
			name:     "Regalo sorpresa é detectado",
			text:     "Llévatelo hoy con regalo sorpresa incluido",
			expected: "regalo sorpresa",
		},
		{
			name:     "Duas famílias concatenam com separador",
			text:     "Envío gratis y de regalo un estuche",
			expected: "Envío gratis + de regalo",
		},
		{
			name:     "Sem brinde",
			text:     "Producto de alta calidad",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.text)
			assert.Equal(t, tt.expected, c.GiftDescription)
		})
	}
}

func TestClassify_Combos(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		hasCombo    bool
		description string
	}{
		{
			name:        "Formato NxM",
			text:        "Promoción 2x1 solo por hoy",
			hasCombo:    true,
			description: "2x1",
		},
		{
			name:        "Kit numerado",
			text:        "Lleva el kit de 3 para toda la familia",
			hasCombo:    true,
			description: "kit de 3",
		},
		{
			name:        "Unidades",
			text:        "Compra 2 unidades y paga menos",
			hasCombo:    true,
			description: "2 unidades",
		},
		{
			name:     "Sem combo",
			text:     "Una unidad por cliente",
			hasCombo: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.text)
			assert.Equal(t, tt.hasCombo, c.HasCombo)
			if tt.hasCombo {
				assert.Equal(t, tt.description, c.ComboDescription)
			}
		})
	}
}

func TestClassify_AnguloDeVenda(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Autenticidade vence qualquer outro sinal",
			text:     "Producto 100% original con garantía de 6 meses y envío gratis",
			expected: "Autenticidade",
		},
		{
			name:     "Garantia vence frete e preço",
			text:     "Garantía de 12 meses, envío gratis y 30% de descuento",
			expected: "Garantia",
		},
		{
			name:     "Frete grátis vence preço",
			text:     "Envío gratis y gran descuento",
			expected: "Frete grátis",
		},
		{
			name:     "Preço/Oferta",
			text:     "Gran promoción de temporada",
			expected: "Preço/Oferta",
		},
		{
			name:     "Rapidez",
			text:     "Entrega rápida en toda la ciudad",
			expected: "Rapidez",
		},
		{
			name:     "Nenhum ângulo",
			text:     "Conoce nuestro producto",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.text)
			assert.Equal(t, tt.expected, c.SalesAngle)
		})
	}
}

func TestClassify_CallToAction(t *testing.T) {
	c := Classify("No te quedes sin el tuyo. Compra ya con envío gratis")
	assert.Equal(t, "Compra ya", c.CallToAction)

	c = Classify("Agregar al carrito y finalizar")
	assert.Equal(t, "Agregar al carrito", c.CallToAction)
}

func TestClassify_Headline(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Primeira linha de tamanho razoável",
			text:     "Ok\nMasajeador cervical con calor infrarrojo\nCompra ya",
			expected: "Masajeador cervical con calor infrarrojo",
		},
		{
			name:     "Linhas curtas demais são puladas",
			text:     "Hola\nSí\nEl mejor masajeador del mercado",
			expected: "El mejor masajeador del mercado",
		},
		{
			name:     "Sem candidata a título",
			text:     "Ok\nNo",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.text)
			assert.Equal(t, tt.expected, c.Headline)
		})
	}
}

func TestClassify_TextoVazio(t *testing.T) {
	c := Classify("")
	assert.Equal(t, Classification{}, c)
}
