// /internal/model/order.go
package model

import "time"

// Order representa un pedido enviado desde la tienda.
//
// ProductID es una referencia blanda: apunta a un Product pero no hay
// foreign key ni validación de existencia. ProductName es la foto del
// nombre del producto al momento del pedido y no se vuelve a derivar.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Phone       string    `gorm:"not null;size:50" json:"phone"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `gorm:"size:200" json:"product_name"`
	Quantity    int       `json:"quantity"`
	Comments    string    `gorm:"type:text" json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "pedidos"
}

// NewOrder agrupa los campos que envía el cliente al crear un pedido.
type NewOrder struct {
	Name        string
	Phone       string
	ProductID   uint
	ProductName string
	Quantity    int
	Comments    string
}
