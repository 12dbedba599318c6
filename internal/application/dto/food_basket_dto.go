package dto

import "time"

// BasketItemInput par producto/cantidad para la composición de una cesta.
type BasketItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CreateFoodBasketRequest entrada para crear una cesta con su composición.
type CreateFoodBasketRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Description string            `json:"description"`
	IsActive    *bool             `json:"is_active"`
	Products    []BasketItemInput `json:"products"`
}

// UpdateFoodBasketRequest entrada para actualizar una cesta.
// Products vacío u omitido deja la composición intacta (actualización parcial
// deliberada, no "vaciar la cesta").
type UpdateFoodBasketRequest struct {
	Name        *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description"`
	IsActive    *bool             `json:"is_active"`
	Products    []BasketItemInput `json:"products"`
}

// BasketItemResponse item de la composición con el nombre del producto.
type BasketItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// FoodBasketResponse salida de una cesta con su composición.
type FoodBasketResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   *time.Time           `json:"updated_at"`
	Products    []BasketItemResponse `json:"products"`
}

// FoodBasketListResponse lista paginada de cestas (sin composición).
type FoodBasketListResponse struct {
	Items []FoodBasketResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
