package dto

import "time"

// CreateFamilyRequest entrada para registrar una familia beneficiaria.
// social_program_id es obligatorio cuando has_social_programs es true
// (regla cruzada en internal/application/validation).
type CreateFamilyRequest struct {
	ResponsibleName    string  `json:"responsible_name" validate:"required,min=1"`
	ResponsibleCPF     string  `json:"responsible_cpf" validate:"required,len=11,numeric"`
	StreetAddress      string  `json:"street_address" validate:"required,min=1"`
	StreetNumber       string  `json:"street_number" validate:"required,min=1"`
	StreetComplement   *string `json:"street_complement"`
	StreetNeighborhood string  `json:"street_neighborhood" validate:"required,min=1"`
	City               string  `json:"city" validate:"required,min=1"`
	State              string  `json:"state" validate:"required,min=1"`
	ZipCode            string  `json:"zip_code" validate:"required,min=1"`
	Phone              string  `json:"phone" validate:"required,min=1"`
	Email              string  `json:"email" validate:"required,email"`
	MembersCount       int     `json:"members_count" validate:"required,min=1"`
	IncomeBracket      string  `json:"income_bracket" validate:"required,min=1"`
	Address            string  `json:"address" validate:"required,min=1"`
	Observation        *string `json:"observation"`
	IsActive           *bool   `json:"is_active"`
	HasSocialPrograms  *bool   `json:"has_social_programs"`
	SocialProgramID    *int64  `json:"social_program_id" validate:"omitempty,gt=0"`
}

// UpdateFamilyRequest entrada para actualizar una familia (parcial).
type UpdateFamilyRequest struct {
	ResponsibleName *string `json:"responsible_name" validate:"omitempty,min=1"`
	Phone           *string `json:"phone" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	MembersCount    *int    `json:"members_count" validate:"omitempty,min=1"`
	IncomeBracket   *string `json:"income_bracket"`
	Address         *string `json:"address"`
	Observation     *string `json:"observation"`
}

// FamilyResponse salida de una familia.
type FamilyResponse struct {
	ID                 int64      `json:"id"`
	ResponsibleName    string     `json:"responsible_name"`
	ResponsibleCPF     string     `json:"responsible_cpf"`
	StreetAddress      string     `json:"street_address"`
	StreetNumber       string     `json:"street_number"`
	StreetComplement   *string    `json:"street_complement"`
	StreetNeighborhood string     `json:"street_neighborhood"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	ZipCode            string     `json:"zip_code"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	MembersCount       int        `json:"members_count"`
	IncomeBracket      string     `json:"income_bracket"`
	Address            string     `json:"address"`
	Observation        *string    `json:"observation"`
	HasSocialPrograms  bool       `json:"has_social_programs"`
	SocialProgramID    *int64     `json:"social_program_id"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// FamilyListResponse lista paginada de familias.
type FamilyListResponse struct {
	Items []FamilyResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
