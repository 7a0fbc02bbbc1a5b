// /internal/database/seed.go
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mayorista/catalogo-backend/internal/model"
)

// demoProducts devuelve el catálogo de demostración. Se devuelve una
// copia nueva en cada llamada para que GORM no reutilice IDs ya
// asignados en inserciones contra otra base.
func demoProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Gorro de Invierno Unicornio",
			Price:       2500.00,
			Description: "Gorro térmico para niñas con diseño de unicornio. Tallas 2-8 años. Material: acrílico suave.",
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Category:    "Gorros",
		},
		{
			Name:        "Gorro Polar Dinosaurio",
			Price:       2200.00,
			Description: "Gorro polar con orejas de dinosaurio. Perfecto para niños aventureros. Tallas 3-10 años.",
			ImageURL:    "https://images.unsplash.com/photo-1607083206869-4c7672e72a8a?w=400&h=400&fit=crop",
			Category:    "Gorros",
		},
		{
			Name:        "Gorro Navideño Reno",
			Price:       1800.00,
			Description: "Gorro festivo con diseño de reno navideño. Ideal para las fiestas. Talla única.",
			ImageURL:    "https://images.unsplash.com/photo-1544473244-f6895e69ad8b?w=400&h=400&fit=crop",
			Category:    "Gorros",
		},
		{
			Name:        "Gorro Térmico Oso Panda",
			Price:       2300.00,
			Description: "Gorro de invierno súper suave con diseño de oso panda. Material hipoalergénico.",
			ImageURL:    "https://images.unsplash.com/photo-1578761499019-d9d4b2a9c18e?w=400&h=400&fit=crop",
			Category:    "Gorros",
		},
		{
			Name:        "Gorro Reversible Astronauta",
			Price:       2800.00,
			Description: "Gorro reversible con diseño espacial. Un lado astronauta, otro lado galaxia. Novedad!",
			ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=400&fit=crop",
			Category:    "Gorros",
		},
	}
}

// SeedProducts inserta el catálogo de demostración si y solo si la tabla
// está vacía. Es seguro llamarla en cada arranque del proceso.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("contar productos: %w", err)
	}
	if count > 0 {
		zap.L().Debug("catálogo ya inicializado", zap.Int64("productos", count))
		return nil
	}

	products := demoProducts()
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("insertar productos de ejemplo: %w", err)
	}
	zap.L().Info("catálogo de demostración insertado", zap.Int("productos", len(products)))
	return nil
}
