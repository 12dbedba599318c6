package entity

import "time"

// Category categoría de productos (nombre único).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
