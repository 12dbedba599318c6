package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Unit         string `json:"unit"`
	MinimumStock int    `json:"minimum_stock" validate:"min=0"`
	InStock      int    `json:"in_stock" validate:"min=0"`
	IsActive     *bool  `json:"is_active"`
	CategoryID   *int64 `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// InStock no se toca aquí: el stock solo se muta vía donaciones,
// distribuciones o el ajuste de /stock.
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string `json:"unit"`
	MinimumStock *int    `json:"minimum_stock" validate:"omitempty,min=0"`
	IsActive     *bool   `json:"is_active"`
	CategoryID   *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Unit         string     `json:"unit"`
	MinimumStock int        `json:"minimum_stock"`
	InStock      int        `json:"in_stock"`
	IsActive     bool       `json:"is_active"`
	CategoryID   *int64     `json:"category_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
