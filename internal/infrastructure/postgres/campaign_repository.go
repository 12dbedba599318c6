package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

const campaignColumns = `id, name, description, campaign_type, start_date, end_date, is_active, created_at, updated_at`

// CampaignRepo implementación del puerto CampaignRepository sobre PostgreSQL (usable con pool o tx).
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador de persistencia para campañas. Pasar pool o tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

// Create persiste una campaña y devuelve su id.
func (r *CampaignRepo) Create(ctx context.Context, campaign *entity.Campaign) (int64, error) {
	query := `
		INSERT INTO campaigns (name, description, campaign_type, start_date, end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		campaign.Name, campaign.Description, campaign.CampaignType,
		campaign.StartDate, campaign.EndDate, campaign.IsActive, campaign.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert campaign: %w", err)
	}
	return id, nil
}

// GetByID obtiene una campaña por id.
func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CampaignType,
		&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// List lista campañas, filtrables por estado activo.
func (r *CampaignRepo) List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []any{}
	n := 0

	if isActive != nil {
		n++
		query += fmt.Sprintf(" AND is_active = $%d", n)
		args = append(args, *isActive)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var out []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CampaignType,
			&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza una campaña.
func (r *CampaignRepo) Update(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $2, description = $3, campaign_type = $4, start_date = $5, end_date = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		campaign.ID, campaign.Name, campaign.Description, campaign.CampaignType,
		campaign.StartDate, campaign.EndDate, campaign.IsActive, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}
