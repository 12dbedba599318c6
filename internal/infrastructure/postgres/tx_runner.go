package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ong-esperanza/donaciones-api/internal/application/basket"
	"github.com/ong-esperanza/donaciones-api/internal/application/distribution"
	"github.com/ong-esperanza/donaciones-api/internal/application/donation"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// Ensure TxRunner satisface los puertos transaccionales de cada flujo.
var _ donation.TxRunner = (*TxRunner)(nil)
var _ distribution.TxRunner = (*TxRunner)(nil)
var _ basket.TxRunner = (*TxRunner)(nil)
var _ usecase.StockTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con repos de donaciones y productos (alta de
// donación con incremento de stock) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	donations repository.DonationRepository,
	products repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDonationRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDistribution inicia una transacción con repos de distribuciones,
// productos y cestas (entrega de cesta con descuento de stock; la
// composición se lee dentro de la misma transacción).
func (r *TxRunner) RunDistribution(ctx context.Context, fn func(
	distributions repository.DistributionRepository,
	products repository.ProductRepository,
	baskets repository.FoodBasketRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDistributionRepository(tx), NewProductRepository(tx), NewFoodBasketRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBasket inicia una transacción con el repo de cestas (reemplazo atómico
// de la composición).
func (r *TxRunner) RunBasket(ctx context.Context, fn func(
	baskets repository.FoodBasketRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewFoodBasketRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProducts inicia una transacción solo con el repo de productos (ajuste
// manual de stock).
func (r *TxRunner) RunProducts(ctx context.Context, fn func(
	products repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
