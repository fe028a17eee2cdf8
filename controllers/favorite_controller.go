package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteController(favoriteService *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// @Summary Get favorites
// @Description Favorites joined with their products. Favorites whose product no longer exists are omitted.
// @Tags Favorites
// @Produce json
// @Success 200 {array} models.FavoriteWithProduct
// @Router /favorites [get]
func (ctrl *FavoriteController) GetFavorites(c *gin.Context) {
	favorites, err := ctrl.favoriteService.GetFavorites(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve favorites")
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// @Summary Add to favorites
// @Description Mark a product as favorite. Returns 201 with the new favorite, or 200 with the existing one.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param favorite body models.AddFavoriteRequest true "Product"
// @Success 200 {object} models.Favorite
// @Success 201 {object} models.Favorite
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites [post]
func (ctrl *FavoriteController) AddToFavorites(c *gin.Context) {
	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fav, created, err := ctrl.favoriteService.AddToFavorites(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err, "Failed to add to favorites")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, fav)
}

// @Summary Remove from favorites
// @Tags Favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{productId} [delete]
func (ctrl *FavoriteController) RemoveFromFavorites(c *gin.Context) {
	if err := ctrl.favoriteService.RemoveFromFavorites(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err, "Failed to remove from favorites")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from favorites",
	})
}
