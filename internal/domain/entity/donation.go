package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de donación permitidos.
const (
	DonationTypeFood     = "food"
	DonationTypeClothing = "clothing"
	DonationTypeMoney    = "money"
	DonationTypeCampaign = "campaign"
)

// Unidades de medida permitidas para donaciones en especie.
var DonationUnits = []string{"kg", "g", "l", "ml", "un"}

// Donation registro de una donación. Inmutable después de su creación:
// ningún flujo la actualiza ni elimina.
// Amount aplica a donaciones monetarias; Quantity/Unit/ProductID a las demás.
type Donation struct {
	ID             int64
	Type           string
	Amount         *decimal.Decimal
	Quantity       *int
	Unit           *string
	Observations   *string
	DonorID        int64
	CollaboratorID int64
	CampaignID     *int64
	ProductID      *int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
