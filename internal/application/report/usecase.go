// Package report casos de uso de reportes de solo lectura.
package report

import (
	"context"
	"fmt"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// UseCase reportes agregados sobre donaciones, stock, campañas y
// colaboradores. Solo lectura.
type UseCase struct {
	reports repository.ReportRepository
}

func NewUseCase(reports repository.ReportRepository) *UseCase {
	return &UseCase{reports: reports}
}

// Donations devuelve el reporte general de donaciones: filas filtradas y
// paginadas más un resumen por tipo sobre el mismo conjunto.
func (uc *UseCase) Donations(ctx context.Context, filter repository.DonationsReportFilter) (*dto.DonationsReportResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	result, err := uc.reports.DonationsReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("generando reporte de donaciones: %w", err)
	}

	out := &dto.DonationsReportResponse{
		Rows:    make([]dto.DonationsReportRow, 0, len(result.Rows)),
		Summary: make([]dto.DonationTypeSummary, 0, len(result.Summary)),
		Page:    dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, r := range result.Rows {
		out.Rows = append(out.Rows, dto.DonationsReportRow{
			ID:               r.ID,
			Type:             r.Type,
			Amount:           r.Amount,
			Quantity:         r.Quantity,
			Unit:             r.Unit,
			DonorName:        r.DonorName,
			CollaboratorName: r.CollaboratorName,
			CampaignName:     r.CampaignName,
			ProductName:      r.ProductName,
			CreatedAt:        r.CreatedAt,
		})
	}
	for _, s := range result.Summary {
		out.Summary = append(out.Summary, dto.DonationTypeSummary{
			Type:          s.Type,
			Count:         s.Count,
			TotalAmount:   s.TotalAmount,
			TotalQuantity: s.TotalQuantity,
		})
	}
	return out, nil
}

// Stock devuelve el inventario con totales. El filtro por nombre es parcial,
// insensible a mayúsculas y a acentos.
func (uc *UseCase) Stock(ctx context.Context, filter repository.StockReportFilter) (*dto.StockReportResponse, error) {
	filter.Name = Fold(filter.Name)

	result, err := uc.reports.StockReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("generando reporte de stock: %w", err)
	}

	out := &dto.StockReportResponse{
		Filters: dto.StockReportFilters{
			CategoryID: filter.CategoryID,
			IsActive:   filter.IsActive,
		},
		Summary: dto.StockReportSummary{
			TotalProducts:        result.Summary.TotalProducts,
			TotalInStock:         result.Summary.TotalInStock,
			ProductsBelowMinimum: result.Summary.ProductsBelowMinimum,
		},
		Products: make([]dto.StockReportRow, 0, len(result.Products)),
	}
	if filter.Name != "" {
		out.Filters.Name = &filter.Name
	}
	for _, p := range result.Products {
		out.Products = append(out.Products, dto.StockReportRow{
			ID:           p.ID,
			Name:         p.Name,
			Unit:         p.Unit,
			InStock:      p.InStock,
			MinimumStock: p.MinimumStock,
			IsActive:     p.IsActive,
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			BelowMinimum: p.BelowMinimum,
		})
	}
	return out, nil
}

// Campaigns devuelve los agregados de donaciones por tipo de campaña.
func (uc *UseCase) Campaigns(ctx context.Context, filter repository.DonationsReportFilter) (*dto.CampaignsReportResponse, error) {
	summary, err := uc.reports.CampaignsReport(ctx, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("generando reporte de campañas: %w", err)
	}

	out := &dto.CampaignsReportResponse{Summary: make([]dto.CampaignTypeSummary, 0, len(summary))}
	for _, s := range summary {
		out.Summary = append(out.Summary, dto.CampaignTypeSummary{
			CampaignType:  s.CampaignType,
			Campaigns:     s.Campaigns,
			Donations:     s.Donations,
			TotalAmount:   s.TotalAmount,
			TotalQuantity: s.TotalQuantity,
		})
	}
	return out, nil
}

// Collaborators devuelve los agregados de colaboradores por sector.
func (uc *UseCase) Collaborators(ctx context.Context) (*dto.CollaboratorsReportResponse, error) {
	summary, err := uc.reports.CollaboratorsReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("generando reporte de colaboradores: %w", err)
	}

	out := &dto.CollaboratorsReportResponse{Summary: make([]dto.SectorSummary, 0, len(summary))}
	for _, s := range summary {
		out.Summary = append(out.Summary, dto.SectorSummary{
			SectorID:      s.SectorID,
			SectorName:    s.SectorName,
			Collaborators: s.Collaborators,
			Donations:     s.Donations,
		})
	}
	return out, nil
}
