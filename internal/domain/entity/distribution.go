package entity

import "time"

// Estados de una distribución de cesta.
const (
	DistributionStatusPending   = "pending"
	DistributionStatusDelivered = "delivered"
	DistributionStatusCanceled  = "canceled"
)

// FoodBasketDistribution registro de una entrega física de cesta a una familia.
// Su creación descuenta stock según la composición de la cesta en ese momento
// (efecto snapshot: cambios posteriores a la receta no afectan entregas pasadas).
// FoodBasketID es anulable porque la cesta puede eliminarse después.
type FoodBasketDistribution struct {
	ID             int64
	FoodBasketID   *int64
	CollaboratorID int64
	FamilyID       int64
	CampaignID     *int64
	Status         string
	DeliveryDate   *time.Time
	Observations   *string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
