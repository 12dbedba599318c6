package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

const distributionColumns = `id, food_basket_id, collaborator_id, family_id, campaign_id, status, delivery_date, observations, created_at, updated_at`

// DistributionRepo implementación del puerto DistributionRepository sobre PostgreSQL (usable con pool o tx).
type DistributionRepo struct {
	q Querier
}

// NewDistributionRepository construye el adaptador de persistencia para distribuciones. Pasar pool o tx (Querier).
func NewDistributionRepository(q Querier) *DistributionRepo {
	return &DistributionRepo{q: q}
}

// Create persiste una distribución y devuelve su id.
func (r *DistributionRepo) Create(ctx context.Context, distribution *entity.FoodBasketDistribution) (int64, error) {
	query := `
		INSERT INTO food_basket_distributions (food_basket_id, collaborator_id, family_id, campaign_id, status, delivery_date, observations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		distribution.FoodBasketID, distribution.CollaboratorID, distribution.FamilyID,
		distribution.CampaignID, distribution.Status, distribution.DeliveryDate,
		distribution.Observations, distribution.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert distribution: %w", err)
	}
	return id, nil
}

// GetByID obtiene una distribución por id.
func (r *DistributionRepo) GetByID(ctx context.Context, id int64) (*entity.FoodBasketDistribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM food_basket_distributions WHERE id = $1`
	var d entity.FoodBasketDistribution
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.FoodBasketID, &d.CollaboratorID, &d.FamilyID, &d.CampaignID,
		&d.Status, &d.DeliveryDate, &d.Observations, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distribution: %w", err)
	}
	return &d, nil
}

// List lista distribuciones, de la más reciente a la más antigua.
func (r *DistributionRepo) List(ctx context.Context, limit, offset int) ([]*entity.FoodBasketDistribution, error) {
	query := `
		SELECT ` + distributionColumns + `
		FROM food_basket_distributions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	defer rows.Close()

	var out []*entity.FoodBasketDistribution
	for rows.Next() {
		var d entity.FoodBasketDistribution
		if err := rows.Scan(&d.ID, &d.FoodBasketID, &d.CollaboratorID, &d.FamilyID, &d.CampaignID,
			&d.Status, &d.DeliveryDate, &d.Observations, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado de una distribución.
func (r *DistributionRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE food_basket_distributions SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update distribution status: %w", err)
	}
	return nil
}
