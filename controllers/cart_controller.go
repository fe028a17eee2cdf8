package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// @Summary Get cart
// @Description Cart items joined with their products. Items whose product no longer exists are omitted.
// @Tags Cart
// @Produce json
// @Success 200 {array} models.CartItemWithProduct
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items, err := ctrl.cartService.GetCart(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve cart")
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get cart summary
// @Description Item count, subtotal, tax, shipping and total of the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartSummary
// @Router /cart/summary [get]
func (ctrl *CartController) GetSummary(c *gin.Context) {
	summary, err := ctrl.cartService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to summarize cart")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Add to cart
// @Description Add a product to the cart. Adding a product already in the cart increases its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 201 {object} models.CartItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ctrl.cartService.AddToCart(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err, "Failed to add to cart")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// @Summary Update cart item quantity
// @Description Set the absolute quantity of the cart item for a product
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.CartItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{productId} [put]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{productId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	if err := ctrl.cartService.RemoveFromCart(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err, "Failed to remove from cart")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.ClearCart(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
