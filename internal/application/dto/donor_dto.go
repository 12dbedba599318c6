package dto

import "time"

// CreateDonorRequest entrada para crear un donante.
// CPF obligatorio para pessoa_fisica, CNPJ para pessoa_juridica
// (regla cruzada en internal/application/validation).
type CreateDonorRequest struct {
	Type               string  `json:"type" validate:"required,oneof=pessoa_fisica pessoa_juridica"`
	Name               string  `json:"name" validate:"required,min=1"`
	Email              string  `json:"email" validate:"required,email"`
	Phone              string  `json:"phone" validate:"required,min=1"`
	CPF                *string `json:"cpf" validate:"omitempty,len=11,numeric"`
	CNPJ               *string `json:"cnpj" validate:"omitempty,len=14,numeric"`
	StreetAddress      string  `json:"street_address" validate:"required,min=1"`
	StreetNumber       string  `json:"street_number" validate:"required,min=1"`
	StreetComplement   *string `json:"street_complement"`
	StreetNeighborhood string  `json:"street_neighborhood" validate:"required,min=1"`
	City               string  `json:"city" validate:"required,min=1"`
	State              string  `json:"state" validate:"required,min=1"`
	ZipCode            string  `json:"zip_code" validate:"required,min=1"`
	Observation        *string `json:"observation"`
}

// UpdateDonorRequest entrada para actualizar un donante (parcial).
type UpdateDonorRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Phone              *string `json:"phone" validate:"omitempty,min=1"`
	StreetAddress      *string `json:"street_address"`
	StreetNumber       *string `json:"street_number"`
	StreetComplement   *string `json:"street_complement"`
	StreetNeighborhood *string `json:"street_neighborhood"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	ZipCode            *string `json:"zip_code"`
	Observation        *string `json:"observation"`
}

// DonorResponse salida de un donante.
type DonorResponse struct {
	ID                 int64      `json:"id"`
	Type               string     `json:"type"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	CPF                *string    `json:"cpf"`
	CNPJ               *string    `json:"cnpj"`
	StreetAddress      string     `json:"street_address"`
	StreetNumber       string     `json:"street_number"`
	StreetComplement   *string    `json:"street_complement"`
	StreetNeighborhood string     `json:"street_neighborhood"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	ZipCode            string     `json:"zip_code"`
	Observation        *string    `json:"observation"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// DonorListResponse lista paginada de donantes.
type DonorListResponse struct {
	Items []DonorResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
