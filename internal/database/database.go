// /internal/database/database.go
package database

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mayorista/catalogo-backend/internal/model"
)

// Connect abre la conexión GORM según el DSN. Un DSN postgres:// o
// postgresql:// usa el driver de Postgres; cualquier otro valor se
// interpreta como ruta de archivo sqlite (el modo por defecto en
// desarrollo, una sola base en un archivo).
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	return db, nil
}

// Migrate asegura que existan las tablas productos y pedidos.
// Es idempotente: AutoMigrate no toca tablas ya consistentes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Product{}, &model.Order{}); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	zap.L().Info("migraciones completadas")
	return nil
}
