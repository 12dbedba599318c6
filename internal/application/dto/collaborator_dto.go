package dto

import "time"

// CreateCollabRequest entrada para crear un colaborador.
// Las fechas llegan como string ISO y se normalizan en validation.
type CreateCollabRequest struct {
	Name          string  `json:"name" validate:"required,min=1"`
	Registration  string  `json:"registration" validate:"required,min=1"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,min=1"`
	AdmissionDate *string `json:"admission_date"`
	DismissalDate *string `json:"dismissal_date"`
	IsVolunteer   *bool   `json:"is_volunteer"`
	SectorID      *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	UserID        *int64  `json:"user_id" validate:"omitempty,gt=0"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateCollabRequest entrada para actualizar un colaborador (parcial).
type UpdateCollabRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,min=1"`
	AdmissionDate *string `json:"admission_date"`
	DismissalDate *string `json:"dismissal_date"`
	IsVolunteer   *bool   `json:"is_volunteer"`
	SectorID      *int64  `json:"sector_id" validate:"omitempty,gt=0"`
}

// CollabResponse salida de un colaborador.
type CollabResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Registration  string     `json:"registration"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	AdmissionDate *time.Time `json:"admission_date"`
	DismissalDate *time.Time `json:"dismissal_date"`
	IsVolunteer   bool       `json:"is_volunteer"`
	SectorID      *int64     `json:"sector_id"`
	UserID        *int64     `json:"user_id"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// CollabListResponse lista paginada de colaboradores.
type CollabListResponse struct {
	Items []CollabResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
