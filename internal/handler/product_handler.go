package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayorista/catalogo-backend/internal/store"
)

// ProductHandler expone el catálogo de productos.
type ProductHandler struct {
	Catalog *store.CatalogStore
}

// ListProducts devuelve el catálogo completo, sin filtros ni paginado.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		zap.L().Error("error al listar productos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("Error al obtener productos: %v", err),
		})
		return
	}
	c.JSON(http.StatusOK, products)
}
