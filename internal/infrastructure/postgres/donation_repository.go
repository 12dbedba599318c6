package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

const donationColumns = `id, type, amount, quantity, unit, observations, donor_id, collaborator_id, campaign_id, product_id, created_at, updated_at`

// DonationRepo implementación del puerto DonationRepository sobre PostgreSQL (usable con pool o tx).
type DonationRepo struct {
	q Querier
}

// NewDonationRepository construye el adaptador de persistencia para donaciones. Pasar pool o tx (Querier).
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{q: q}
}

// Create persiste una donación y devuelve su id.
func (r *DonationRepo) Create(ctx context.Context, donation *entity.Donation) (int64, error) {
	query := `
		INSERT INTO donations (type, amount, quantity, unit, observations, donor_id, collaborator_id, campaign_id, product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		donation.Type, donation.Amount, donation.Quantity, donation.Unit, donation.Observations,
		donation.DonorID, donation.CollaboratorID, donation.CampaignID, donation.ProductID,
		donation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert donation: %w", err)
	}
	return id, nil
}

// GetByID obtiene una donación por id.
func (r *DonationRepo) GetByID(ctx context.Context, id int64) (*entity.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	var d entity.Donation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Type, &d.Amount, &d.Quantity, &d.Unit, &d.Observations,
		&d.DonorID, &d.CollaboratorID, &d.CampaignID, &d.ProductID,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return &d, nil
}

// List lista donaciones filtradas, de la más reciente a la más antigua.
func (r *DonationRepo) List(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Type != "" {
		n++
		query += fmt.Sprintf(" AND type = $%d", n)
		args = append(args, filter.Type)
	}
	if filter.DonorID != nil {
		n++
		query += fmt.Sprintf(" AND donor_id = $%d", n)
		args = append(args, *filter.DonorID)
	}
	if filter.CollaboratorID != nil {
		n++
		query += fmt.Sprintf(" AND collaborator_id = $%d", n)
		args = append(args, *filter.CollaboratorID)
	}
	if filter.CampaignID != nil {
		n++
		query += fmt.Sprintf(" AND campaign_id = $%d", n)
		args = append(args, *filter.CampaignID)
	}
	if filter.ProductID != nil {
		n++
		query += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, *filter.ProductID)
	}
	if filter.From != nil {
		n++
		query += fmt.Sprintf(" AND created_at >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		query += fmt.Sprintf(" AND created_at <= $%d", n)
		args = append(args, *filter.To)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Donation
	for rows.Next() {
		var d entity.Donation
		if err := rows.Scan(&d.ID, &d.Type, &d.Amount, &d.Quantity, &d.Unit, &d.Observations,
			&d.DonorID, &d.CollaboratorID, &d.CampaignID, &d.ProductID,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
