package models

// Category is derived from the product set; categories have no storage of
// their own.
type Category struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}
