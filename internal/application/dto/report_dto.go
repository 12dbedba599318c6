package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationsReportResponse reporte general de donaciones: filas paginadas +
// resumen agregado por tipo sobre el mismo conjunto filtrado.
type DonationsReportResponse struct {
	Rows    []DonationsReportRow  `json:"rows"`
	Summary []DonationTypeSummary `json:"summary"`
	Page    PageResponse          `json:"page"`
}

// DonationsReportRow fila del reporte con nombres denormalizados.
type DonationsReportRow struct {
	ID               int64            `json:"id"`
	Type             string           `json:"type"`
	Amount           *decimal.Decimal `json:"amount"`
	Quantity         *int             `json:"quantity"`
	Unit             *string          `json:"unit"`
	DonorName        string           `json:"donor_name"`
	CollaboratorName string           `json:"collaborator_name"`
	CampaignName     *string          `json:"campaign_name"`
	ProductName      *string          `json:"product_name"`
	CreatedAt        time.Time        `json:"created_at"`
}

// DonationTypeSummary agregado por tipo de donación.
type DonationTypeSummary struct {
	Type          string          `json:"type"`
	Count         int64           `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int64           `json:"total_quantity"`
}

// StockReportResponse reporte de stock: filtros aplicados, totales y filas.
type StockReportResponse struct {
	Filters  StockReportFilters `json:"filters"`
	Summary  StockReportSummary `json:"summary"`
	Products []StockReportRow   `json:"products"`
}

// StockReportFilters eco de los filtros aplicados.
type StockReportFilters struct {
	Name       *string `json:"name"`
	CategoryID *int64  `json:"category_id"`
	IsActive   *bool   `json:"is_active"`
}

// StockReportSummary totales del reporte de stock.
type StockReportSummary struct {
	TotalProducts        int64 `json:"total_products"`
	TotalInStock         int64 `json:"total_in_stock"`
	ProductsBelowMinimum int64 `json:"products_below_minimum"`
}

// StockReportRow fila del reporte de stock.
type StockReportRow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	InStock      int     `json:"in_stock"`
	MinimumStock int     `json:"minimum_stock"`
	IsActive     bool    `json:"is_active"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	BelowMinimum bool    `json:"below_minimum"`
}

// CampaignsReportResponse agregados de donaciones por tipo de campaña.
type CampaignsReportResponse struct {
	Summary []CampaignTypeSummary `json:"summary"`
}

// CampaignTypeSummary agregado por tipo de campaña.
type CampaignTypeSummary struct {
	CampaignType  string          `json:"campaign_type"`
	Campaigns     int64           `json:"campaigns"`
	Donations     int64           `json:"donations"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int64           `json:"total_quantity"`
}

// CollaboratorsReportResponse agregados de colaboradores por sector.
type CollaboratorsReportResponse struct {
	Summary []SectorSummary `json:"summary"`
}

// SectorSummary agregado por sector.
type SectorSummary struct {
	SectorID      *int64 `json:"sector_id"`
	SectorName    string `json:"sector_name"`
	Collaborators int64  `json:"collaborators"`
	Donations     int64  `json:"donations"`
}
