package models

import "time"

type Favorite struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

type FavoriteWithProduct struct {
	Favorite
	Product Product `json:"product"`
}
