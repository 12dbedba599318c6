package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DonationsReport devuelve filas denormalizadas paginadas y el resumen por
// tipo sobre el mismo conjunto filtrado.
func (r *ReportRepo) DonationsReport(ctx context.Context, filter repository.DonationsReportFilter) (*repository.DonationsReportResult, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0

	if filter.From != nil {
		n++
		where += fmt.Sprintf(" AND d.created_at >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		where += fmt.Sprintf(" AND d.created_at <= $%d", n)
		args = append(args, *filter.To)
	}
	if filter.DonorID != nil {
		n++
		where += fmt.Sprintf(" AND d.donor_id = $%d", n)
		args = append(args, *filter.DonorID)
	}
	if filter.CollaboratorID != nil {
		n++
		where += fmt.Sprintf(" AND d.collaborator_id = $%d", n)
		args = append(args, *filter.CollaboratorID)
	}
	if filter.CampaignID != nil {
		n++
		where += fmt.Sprintf(" AND d.campaign_id = $%d", n)
		args = append(args, *filter.CampaignID)
	}
	if filter.ProductID != nil {
		n++
		where += fmt.Sprintf(" AND d.product_id = $%d", n)
		args = append(args, *filter.ProductID)
	}

	rowsQuery := `
		SELECT d.id, d.type, d.amount, d.quantity, d.unit,
		       dn.name, c.name, ca.name, p.name, d.created_at
		FROM donations d
		JOIN donors dn ON dn.id = d.donor_id
		JOIN collaborators c ON c.id = d.collaborator_id
		LEFT JOIN campaigns ca ON ca.id = d.campaign_id
		LEFT JOIN products p ON p.id = d.product_id` + where +
		fmt.Sprintf(" ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	rowArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, rowsQuery, rowArgs...)
	if err != nil {
		return nil, fmt.Errorf("donations report rows: %w", err)
	}
	defer rows.Close()

	result := &repository.DonationsReportResult{}
	for rows.Next() {
		var row repository.DonationsReportRow
		if err := rows.Scan(&row.ID, &row.Type, &row.Amount, &row.Quantity, &row.Unit,
			&row.DonorName, &row.CollaboratorName, &row.CampaignName, &row.ProductName,
			&row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("donations report rows: %w", err)
	}

	summaryQuery := `
		SELECT d.type, COUNT(*), COALESCE(SUM(d.amount), 0), COALESCE(SUM(d.quantity), 0)
		FROM donations d` + where + `
		GROUP BY d.type
		ORDER BY d.type`
	sumRows, err := r.q.Query(ctx, summaryQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("donations report summary: %w", err)
	}
	defer sumRows.Close()

	for sumRows.Next() {
		var s repository.DonationTypeSummary
		if err := sumRows.Scan(&s.Type, &s.Count, &s.TotalAmount, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan report summary: %w", err)
		}
		result.Summary = append(result.Summary, s)
	}
	return result, sumRows.Err()
}

// StockReport devuelve el inventario filtrado con totales. filter.Name llega
// ya normalizado (minúsculas, sin acentos); la columna se pliega con unaccent.
func (r *ReportRepo) StockReport(ctx context.Context, filter repository.StockReportFilter) (*repository.StockReportResult, error) {
	query := `
		SELECT p.id, p.name, p.unit, p.in_stock, p.minimum_stock, p.is_active,
		       p.category_id, c.name, p.in_stock < p.minimum_stock
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Name != "" {
		n++
		query += fmt.Sprintf(" AND unaccent(lower(p.name)) LIKE '%%' || $%d || '%%'", n)
		args = append(args, filter.Name)
	}
	if filter.CategoryID != nil {
		n++
		query += fmt.Sprintf(" AND p.category_id = $%d", n)
		args = append(args, *filter.CategoryID)
	}
	if filter.IsActive != nil {
		n++
		query += fmt.Sprintf(" AND p.is_active = $%d", n)
		args = append(args, *filter.IsActive)
	}
	query += " ORDER BY p.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()

	result := &repository.StockReportResult{}
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Unit, &row.InStock, &row.MinimumStock,
			&row.IsActive, &row.CategoryID, &row.CategoryName, &row.BelowMinimum); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		result.Products = append(result.Products, row)
		result.Summary.TotalProducts++
		result.Summary.TotalInStock += int64(row.InStock)
		if row.BelowMinimum {
			result.Summary.ProductsBelowMinimum++
		}
	}
	return result, rows.Err()
}

// CampaignsReport agrega donaciones por tipo de campaña en el rango dado.
func (r *ReportRepo) CampaignsReport(ctx context.Context, from, to *time.Time) ([]repository.CampaignTypeSummary, error) {
	query := `
		SELECT ca.campaign_type,
		       COUNT(DISTINCT ca.id),
		       COUNT(d.id),
		       COALESCE(SUM(d.amount), 0),
		       COALESCE(SUM(d.quantity), 0)
		FROM campaigns ca
		LEFT JOIN donations d ON d.campaign_id = ca.id`
	args := []any{}
	n := 0

	if from != nil {
		n++
		query += fmt.Sprintf(" AND d.created_at >= $%d", n)
		args = append(args, *from)
	}
	if to != nil {
		n++
		query += fmt.Sprintf(" AND d.created_at <= $%d", n)
		args = append(args, *to)
	}
	query += `
		GROUP BY ca.campaign_type
		ORDER BY ca.campaign_type`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("campaigns report: %w", err)
	}
	defer rows.Close()

	var out []repository.CampaignTypeSummary
	for rows.Next() {
		var s repository.CampaignTypeSummary
		if err := rows.Scan(&s.CampaignType, &s.Campaigns, &s.Donations, &s.TotalAmount, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan campaign summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CollaboratorsReport agrega colaboradores y donaciones registradas por sector.
// Los colaboradores sin sector aparecen en la fila "sin sector".
func (r *ReportRepo) CollaboratorsReport(ctx context.Context) ([]repository.SectorSummary, error) {
	query := `
		SELECT s.id, COALESCE(s.name, 'sin sector'),
		       COUNT(DISTINCT c.id),
		       COUNT(d.id)
		FROM collaborators c
		LEFT JOIN sectors s ON s.id = c.sector_id
		LEFT JOIN donations d ON d.collaborator_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY s.id, s.name
		ORDER BY s.name NULLS LAST`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("collaborators report: %w", err)
	}
	defer rows.Close()

	var out []repository.SectorSummary
	for rows.Next() {
		var s repository.SectorSummary
		if err := rows.Scan(&s.SectorID, &s.SectorName, &s.Collaborators, &s.Donations); err != nil {
			return nil, fmt.Errorf("scan sector summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
