package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalogService CatalogServiceInterface
}

func NewProductHandler(catalogService CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", h.ListProducts)
}

// @Summary List products
// @Description Catalog products with the amount of each already in the cart
// @Tags products
// @Produce json
// @Param with_stock query bool false "Include live stock per product"
// @Success 200 {array} services.CatalogProduct
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	withStock, _ := strconv.ParseBool(c.DefaultQuery("with_stock", "false"))

	products, err := h.catalogService.ListProducts(c.Request.Context(), withStock)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "catalog_unavailable",
			Message: "Erro ao carregar os produtos",
		})
		return
	}

	c.JSON(http.StatusOK, products)
}
