package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDonationRequest entrada para registrar una donación.
// Las reglas cruzadas (amount para money; quantity/unit/product para el resto;
// campaign_id para campaign) se validan en internal/application/validation.
type CreateDonationRequest struct {
	Type           string           `json:"type" validate:"required,oneof=food clothing money campaign"`
	Amount         *decimal.Decimal `json:"amount"`
	Quantity       *int             `json:"quantity"`
	Unit           *string          `json:"unit" validate:"omitempty,oneof=kg g l ml un"`
	Observations   *string          `json:"observations"`
	DonorID        int64            `json:"donor_id" validate:"required,gt=0"`
	CollaboratorID int64            `json:"collaborator_id" validate:"required,gt=0"`
	CampaignID     *int64           `json:"campaign_id" validate:"omitempty,gt=0"`
	ProductID      *int64           `json:"product_id" validate:"omitempty,gt=0"`
}

// DonationResponse salida de una donación con las referencias anidadas.
// Los ids crudos de claves foráneas se omiten en favor de los objetos.
type DonationResponse struct {
	ID           int64             `json:"id"`
	Type         string            `json:"type"`
	Amount       *decimal.Decimal  `json:"amount"`
	Quantity     *int              `json:"quantity"`
	Unit         *string           `json:"unit"`
	Observations *string           `json:"observations"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    *time.Time        `json:"updated_at"`
	Donor        DonorResponse     `json:"donor"`
	Collaborator CollabResponse    `json:"collaborator"`
	Campaign     *CampaignResponse `json:"campaign"`
	Product      *ProductResponse  `json:"product"`
}

// DonationListResponse lista paginada de donaciones (sin anidar referencias).
type DonationListResponse struct {
	Items []DonationItem `json:"items"`
	Page  PageResponse   `json:"page"`
}

// DonationItem fila plana para listados.
type DonationItem struct {
	ID             int64            `json:"id"`
	Type           string           `json:"type"`
	Amount         *decimal.Decimal `json:"amount"`
	Quantity       *int             `json:"quantity"`
	Unit           *string          `json:"unit"`
	Observations   *string          `json:"observations"`
	DonorID        int64            `json:"donor_id"`
	CollaboratorID int64            `json:"collaborator_id"`
	CampaignID     *int64           `json:"campaign_id"`
	ProductID      *int64           `json:"product_id"`
	CreatedAt      time.Time        `json:"created_at"`
}
