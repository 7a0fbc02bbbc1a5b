// /internal/model/product.go
package model

// Product representa un producto del catálogo mayorista.
// El catálogo es de solo lectura: los productos se crean únicamente
// con la carga inicial (seed) y nunca se modifican vía API.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;size:200" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	ImageURL    string  `gorm:"size:1024" json:"image_url"`
	Category    string  `gorm:"size:100;index" json:"category"`
}

// TableName mantiene el nombre de tabla del esquema original.
func (Product) TableName() string {
	return "productos"
}
