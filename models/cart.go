package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is applied to the cart subtotal. Shipping is always free.
var TaxRate = decimal.RequireFromString("0.10")

type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

type CartSummary struct {
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

func SummarizeCart(items []CartItemWithProduct) CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	return CartSummary{
		ItemCount: count,
		Subtotal:  subtotal.Round(2),
		Tax:       tax,
		Shipping:  decimal.Zero,
		Total:     subtotal.Add(tax).Round(2),
	}
}
