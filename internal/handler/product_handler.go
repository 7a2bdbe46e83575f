package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ram45016/water-purifier-api/internal/dto"
	"github.com/Ram45016/water-purifier-api/internal/service"
	"github.com/Ram45016/water-purifier-api/pkg/logger"
	"github.com/Ram45016/water-purifier-api/pkg/response"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService service.ProductService
	log            *logger.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.log.Error("list products failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetByID handles GET /api/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		h.log.Error("get product failed", zap.Error(err), zap.String("product_id", id))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("create product failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		h.log.Error("update product failed", zap.Error(err), zap.String("product_id", id))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		h.log.Error("delete product failed", zap.Error(err), zap.String("product_id", id))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteProductResponse{
		Deleted: true,
		Product: product,
	})
}
