package entity

import "time"

// Product representa un producto donable (alimentos, ropa, etc.).
// InStock es el único campo de stock que se muta; nunca puede quedar negativo
// tras una operación confirmada. MinimumStock es un umbral informativo para
// los reportes, no bloquea operaciones.
type Product struct {
	ID           int64
	Name         string
	Unit         string
	MinimumStock int
	InStock      int
	IsActive     bool
	CategoryID   *int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// BelowMinimum indica si el producto está por debajo del stock mínimo.
func (p *Product) BelowMinimum() bool {
	return p.InStock < p.MinimumStock
}
