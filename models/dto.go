package models

type CreateProductRequest struct {
	Title         string `json:"title" form:"title" binding:"required,min=3"`
	Description   string `json:"description" form:"description" binding:"required"`
	Price         string `json:"price" form:"price" binding:"required"`
	OriginalPrice string `json:"originalPrice" form:"originalPrice"`
	Category      string `json:"category" form:"category" binding:"required"`
	Image         string `json:"image" form:"image"`
	Rating        string `json:"rating" form:"rating"`
	ReviewCount   int    `json:"reviewCount" form:"reviewCount" binding:"min=0"`
	IsOnSale      bool   `json:"isOnSale" form:"isOnSale"`
	Badge         string `json:"badge" form:"badge"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type AddFavoriteRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
