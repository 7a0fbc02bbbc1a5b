// /internal/store/catalog.go
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/mayorista/catalogo-backend/internal/model"
)

// CatalogStore accede a la tabla productos. El catálogo es de solo
// lectura para la API; la escritura ocurre solo en el seed inicial.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ListProducts devuelve todos los productos en orden de inserción
// (id ascendente). Después del seed inicial nunca devuelve vacío, pero
// el caller tolera una lista vacía igual.
func (s *CatalogStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, &StorageError{Op: "listar productos", Err: err}
	}
	return products, nil
}
