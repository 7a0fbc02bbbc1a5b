// /internal/store/order.go
package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mayorista/catalogo-backend/internal/model"
)

// OrderStore accede a la tabla pedidos.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// InsertOrder valida, persiste un pedido y devuelve el id generado.
//
// La inserción es un único INSERT: el motor asigna el autoincremento y
// GORM estampa created_at en la misma operación, así que nunca queda
// una fila parcial ni se duplican ids bajo escrituras concurrentes.
// ProductID no se valida contra el catálogo a propósito: es una
// referencia blanda.
func (s *OrderStore) InsertOrder(ctx context.Context, in model.NewOrder) (uint, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, &ValidationError{Field: "name", Reason: "no puede estar vacío"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return 0, &ValidationError{Field: "phone", Reason: "no puede estar vacío"}
	}

	order := model.Order{
		Name:        in.Name,
		Phone:       in.Phone,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Comments:    in.Comments,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, &StorageError{Op: "crear pedido", Err: err}
	}
	return order.ID, nil
}

// ListOrders devuelve todos los pedidos del más reciente al más viejo.
// El desempate por id mantiene el orden exacto cuando varios pedidos
// caen dentro de la misma marca de tiempo.
func (s *OrderStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, &StorageError{Op: "listar pedidos", Err: err}
	}
	return orders, nil
}
