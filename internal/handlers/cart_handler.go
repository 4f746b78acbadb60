package handlers

import (
	"net/http"
	"strconv"

	"rocketshoes-cart/internal/middleware"
	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	cart := router.Group("/cart", authMiddleware.AuthRequired())
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddProduct)
		cart.PUT("/items/:product_id", h.UpdateProductAmount)
		cart.DELETE("/items/:product_id", h.RemoveProduct)
	}
}

type CartResponse struct {
	Items      models.Cart `json:"items"`
	TotalItems int         `json:"total_items"`
}

type AddProductRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
}

// Amount is not validated here: a non-positive amount is a no-op in the service.
type UpdateProductAmountRequest struct {
	Amount *int `json:"amount" binding:"required"`
}

func newCartResponse(cart models.Cart) CartResponse {
	if cart == nil {
		cart = models.Cart{}
	}
	return CartResponse{Items: cart, TotalItems: cart.TotalItems()}
}

// GetCart godoc
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartResponse(h.cartService.Cart()))
}

// AddProduct godoc
// @Summary Add one unit of a product
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddProductRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.AddProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCartResponse(cart))
}

// UpdateProductAmount godoc
// @Summary Set the amount of a product already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param item body UpdateProductAmountRequest true "New amount"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateProductAmount(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.UpdateProductAmount(c.Request.Context(), services.UpdateProductAmount{
		ProductID: productID,
		Amount:    *req.Amount,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveProduct godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveProduct(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveProduct(c.Request.Context(), productID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCartResponse(cart))
}

func productIDParam(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondBadRequest(c, "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}
