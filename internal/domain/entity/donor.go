package entity

import "time"

// Tipos de donante.
const (
	DonorTypePersonaFisica   = "pessoa_fisica"
	DonorTypePersonaJuridica = "pessoa_juridica"
)

// Donor donante (persona física o jurídica). CPF aplica a personas físicas,
// CNPJ a jurídicas. Email único. Borrado lógico vía DeletedAt.
type Donor struct {
	ID                 int64
	Type               string
	Name               string
	Email              string
	Phone              string
	CPF                *string
	CNPJ               *string
	StreetAddress      string
	StreetNumber       string
	StreetComplement   *string
	StreetNeighborhood string
	City               string
	State              string
	ZipCode            string
	Observation        *string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
}
