package entity

import "time"

// FoodBasket cesta básica: una "receta" de productos con cantidades.
// La composición vive en FoodBasketItem y se reemplaza de forma atómica
// (borrar todo e insertar todo) al actualizar la cesta.
type FoodBasket struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// FoodBasketItem par (producto, cantidad) de la composición de una cesta.
// Pertenece en exclusiva a una cesta; referencia al producto sin poseerlo.
type FoodBasketItem struct {
	ID           int64
	FoodBasketID int64
	ProductID    int64
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
