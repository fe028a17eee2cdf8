package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"storefront/libs"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	productCachePattern = "storefront:products:*"
	productCacheKey     = "storefront:products:list"
)

// ProductCacheKey is the Redis key of the cached product list. Stores that do
// not outlive the process pass a per-instance scope so a restarted or
// parallel instance never reads another store's list.
func ProductCacheKey(scope string) string {
	if scope == "" {
		return productCacheKey
	}
	return productCacheKey + ":" + scope
}

type ProductController struct {
	productService *services.ProductService
	cache          *redis.Client
	cacheKey       string
	cacheTTL       time.Duration
	uploader       libs.ImageUploader
}

// NewProductController builds the controller. cache and uploader may be nil;
// without cache every list request reads the store, without uploader image
// files are rejected.
func NewProductController(productService *services.ProductService, cache *redis.Client, cacheScope string, cacheTTL time.Duration, uploader libs.ImageUploader) *ProductController {
	return &ProductController{
		productService: productService,
		cache:          cache,
		cacheKey:       ProductCacheKey(cacheScope),
		cacheTTL:       cacheTTL,
		uploader:       uploader,
	}
}

func (ctrl *ProductController) invalidateProductCache(ctx context.Context) {
	if ctrl.cache == nil {
		return
	}
	iter := ctrl.cache.Scan(ctx, 0, productCachePattern, 0).Iterator()
	for iter.Next(ctx) {
		ctrl.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("Failed to invalidate product cache: %v", err)
	}
}

// @Summary Get all products
// @Description Get the full product list in insertion order. Filtering, sorting and pagination happen on the client.
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		cached, err := ctrl.cache.Get(ctx, ctrl.cacheKey).Bytes()
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	products, err := ctrl.productService.GetAllProducts(ctx)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	body, err := json.Marshal(products)
	if err != nil {
		respondError(c, err, "Failed to encode products")
		return
	}

	if ctrl.cache != nil {
		if err := ctrl.cache.Set(ctx, ctrl.cacheKey, body, ctrl.cacheTTL).Err(); err != nil {
			log.Printf("Failed to cache product list: %v", err)
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Get all categories
// @Description Distinct product categories in first-seen order with product counts
// @Tags Products
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create product
// @Description Create a product from JSON, or from multipart form data with an optional image file
// @Tags Products
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param product body models.CreateProductRequest true "Product fields"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	if file, err := c.FormFile("image"); err == nil {
		if ctrl.uploader == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Image uploads are not enabled",
			})
			return
		}

		url, err := ctrl.uploader.Upload(ctx, file, "products")
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		req.Image = url
	}

	product, err := ctrl.productService.CreateProduct(ctx, req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	ctrl.invalidateProductCache(ctx)

	c.JSON(http.StatusCreated, product)
}

// @Summary Delete product
// @Description Delete a product. Cart items and favorites that reference it are hidden from joined reads.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	if err := ctrl.productService.DeleteProduct(ctx, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	ctrl.invalidateProductCache(ctx)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}
