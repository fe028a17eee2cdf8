package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Rating        decimal.Decimal  `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	IsOnSale      bool             `json:"isOnSale"`
	Badge         *string          `json:"badge"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// NewProduct holds the caller-supplied fields of a product; the store
// assigns ID and CreatedAt.
type NewProduct struct {
	Title         string
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Category      string
	Image         string
	Rating        decimal.Decimal
	ReviewCount   int
	IsOnSale      bool
	Badge         *string
}
