package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price string, qty int) CartItemWithProduct {
	return CartItemWithProduct{
		CartItem: CartItem{Quantity: qty},
		Product:  Product{Price: decimal.RequireFromString(price)},
	}
}

func TestSummarizeCart(t *testing.T) {
	tests := []struct {
		name     string
		items    []CartItemWithProduct
		count    int
		subtotal string
		tax      string
		total    string
	}{
		{"empty", nil, 0, "0", "0", "0"},
		{"single line", []CartItemWithProduct{line("89.99", 2)}, 2, "179.98", "18", "197.98"},
		{"several lines", []CartItemWithProduct{line("24.99", 1), line("10.05", 3)}, 4, "55.14", "5.51", "60.65"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeCart(tt.items)
			assert.Equal(t, tt.count, s.ItemCount)
			assert.True(t, s.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal %s", s.Subtotal)
			assert.True(t, s.Tax.Equal(decimal.RequireFromString(tt.tax)), "tax %s", s.Tax)
			assert.True(t, s.Total.Equal(decimal.RequireFromString(tt.total)), "total %s", s.Total)
			assert.True(t, s.Shipping.IsZero())
		})
	}
}
