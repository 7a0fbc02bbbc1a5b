package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayorista/catalogo-backend/internal/model"
	"github.com/mayorista/catalogo-backend/internal/store"
)

// OrderRequest espeja el JSON que envía el frontend al crear un pedido.
type OrderRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ProductID   uint   `json:"product_id" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Comments    string `json:"comments"`
}

// orderView es la forma de un pedido en GET /pedidos. No incluye
// product_id: la lista de revisión usa el nombre congelado del producto.
type orderView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Comments    string    `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderHandler expone la creación y revisión de pedidos.
type OrderHandler struct {
	Orders *store.OrderStore
}

// CreateOrder valida el payload, persiste el pedido y confirma con el
// id generado.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": fmt.Sprintf("Pedido inválido: %v", err),
		})
		return
	}

	id, err := h.Orders.InsertOrder(c.Request.Context(), model.NewOrder{
		Name:        req.Name,
		Phone:       req.Phone,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Comments:    req.Comments,
	})
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"detail": fmt.Sprintf("Pedido inválido: %v", verr),
			})
			return
		}
		zap.L().Error("error al crear pedido", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("Error al crear pedido: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": fmt.Sprintf("Pedido #%d registrado correctamente. Nos contactaremos pronto!", id),
	})
}

// ListOrders devuelve todos los pedidos, el más reciente primero.
// Es la vista de revisión interna de la tienda.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListOrders(c.Request.Context())
	if err != nil {
		zap.L().Error("error al listar pedidos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("Error al obtener pedidos: %v", err),
		})
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{
			ID:          o.ID,
			Name:        o.Name,
			Phone:       o.Phone,
			ProductName: o.ProductName,
			Quantity:    o.Quantity,
			Comments:    o.Comments,
			CreatedAt:   o.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}
