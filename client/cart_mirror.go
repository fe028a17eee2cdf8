package client

import (
	"context"
	"slices"

	"storefront/models"
)

type cartLines = []models.CartItemWithProduct

// CartMirror is the local view of the server cart.
type CartMirror struct {
	client *Client
	m      *mirror[models.CartItemWithProduct]
}

func NewCartMirror(c *Client) *CartMirror {
	return &CartMirror{
		client: c,
		m:      &mirror[models.CartItemWithProduct]{fetch: c.Cart},
	}
}

// Refresh replaces the mirror with the server cart.
func (cm *CartMirror) Refresh(ctx context.Context) error {
	return cm.m.refresh(ctx)
}

func (cm *CartMirror) Items() []models.CartItemWithProduct {
	return cm.m.snapshot()
}

func (cm *CartMirror) Summary() models.CartSummary {
	return models.SummarizeCart(cm.m.snapshot())
}

// Mutations lists every mutation applied through this mirror, oldest first.
func (cm *CartMirror) Mutations() []Mutation {
	return cm.m.mutations()
}

func (cm *CartMirror) Add(ctx context.Context, product models.Product, quantity int) (Mutation, error) {
	mut := Mutation{Kind: MutationAddToCart, ProductID: product.ID, Quantity: quantity}
	return cm.m.mutate(ctx, mut,
		func(items cartLines) cartLines {
			if i := indexOfCartLine(items, product.ID); i >= 0 {
				items[i].Quantity += quantity
				return items
			}
			return append(items, models.CartItemWithProduct{
				CartItem: models.CartItem{ProductID: product.ID, Quantity: quantity},
				Product:  product,
			})
		},
		func(ctx context.Context) error {
			_, err := cm.client.AddToCart(ctx, product.ID, quantity)
			return err
		},
	)
}

func (cm *CartMirror) UpdateQuantity(ctx context.Context, productID string, quantity int) (Mutation, error) {
	mut := Mutation{Kind: MutationUpdateQuantity, ProductID: productID, Quantity: quantity}
	return cm.m.mutate(ctx, mut,
		func(items cartLines) cartLines {
			if i := indexOfCartLine(items, productID); i >= 0 {
				items[i].Quantity = quantity
			}
			return items
		},
		func(ctx context.Context) error {
			_, err := cm.client.UpdateCartItem(ctx, productID, quantity)
			return err
		},
	)
}

func (cm *CartMirror) Remove(ctx context.Context, productID string) (Mutation, error) {
	mut := Mutation{Kind: MutationRemoveFromCart, ProductID: productID}
	return cm.m.mutate(ctx, mut,
		func(items cartLines) cartLines {
			return slices.DeleteFunc(items, func(item models.CartItemWithProduct) bool {
				return item.ProductID == productID
			})
		},
		func(ctx context.Context) error {
			return cm.client.RemoveFromCart(ctx, productID)
		},
	)
}

func (cm *CartMirror) Clear(ctx context.Context) (Mutation, error) {
	return cm.m.mutate(ctx, Mutation{Kind: MutationClearCart},
		func(cartLines) cartLines { return cartLines{} },
		cm.client.ClearCart,
	)
}

func indexOfCartLine(items cartLines, productID string) int {
	return slices.IndexFunc(items, func(item models.CartItemWithProduct) bool {
		return item.ProductID == productID
	})
}
