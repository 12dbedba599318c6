package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// Violation una regla de validación incumplida sobre un campo concreto.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError entrada que no cumple el esquema. Se detecta siempre antes
// de tocar la base de datos.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("datos inválidos (%d violaciones)", len(e.Violations))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// EntityNotFoundError una entidad referenciada no existe. Entity es una clave
// estable (donor, collaborator, campaign, product, family, food_basket) y
// Message el texto que ve el cliente.
type EntityNotFoundError struct {
	Entity  string
	Message string
}

func (e *EntityNotFoundError) Error() string { return e.Message }

func (e *EntityNotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound construye un EntityNotFoundError.
func NotFound(entity, message string) error {
	return &EntityNotFoundError{Entity: entity, Message: message}
}

// InsufficientStockError una distribución dejaría el stock de un producto en
// negativo. Se identifica el producto ofensor y la transacción completa se
// revierte.
type InsufficientStockError struct {
	ProductID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d", e.ProductID)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }
