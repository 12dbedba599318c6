package dto

import "time"

// CreateDistributionRequest entrada para registrar la entrega de una cesta.
// DeliveryDate en RFC3339; Status por defecto pending.
type CreateDistributionRequest struct {
	FoodBasketID   int64   `json:"food_basket_id" validate:"required,gt=0"`
	CollaboratorID int64   `json:"collaborator_id" validate:"required,gt=0"`
	FamilyID       int64   `json:"family_id" validate:"required,gt=0"`
	CampaignID     *int64  `json:"campaign_id" validate:"omitempty,gt=0"`
	DeliveryDate   *string `json:"delivery_date"`
	Observations   *string `json:"observations"`
	Status         *string `json:"status" validate:"omitempty,oneof=pending delivered canceled"`
}

// UpdateDistributionStatusRequest cambio de estado de una distribución.
type UpdateDistributionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending delivered canceled"`
}

// DistributionResponse salida de una distribución.
type DistributionResponse struct {
	ID             int64      `json:"id"`
	FoodBasketID   *int64     `json:"food_basket_id"`
	CollaboratorID int64      `json:"collaborator_id"`
	FamilyID       int64      `json:"family_id"`
	CampaignID     *int64     `json:"campaign_id"`
	Status         string     `json:"status"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	Observations   *string    `json:"observations"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// DistributionListResponse lista paginada de distribuciones.
type DistributionListResponse struct {
	Items []DistributionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
