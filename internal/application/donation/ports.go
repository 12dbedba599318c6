// Package donation implementa el registro y consulta de donaciones,
// incluido el incremento transaccional de stock para donaciones en especie.
package donation

import (
	"context"

	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que recibe
// fn operan sobre la misma transacción; si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		donations repository.DonationRepository,
		products repository.ProductRepository,
	) error) error
}
