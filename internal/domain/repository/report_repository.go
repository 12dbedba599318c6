package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DonationsReportFilter filtros del reporte general de donaciones.
type DonationsReportFilter struct {
	From           *time.Time
	To             *time.Time
	DonorID        *int64
	CollaboratorID *int64
	CampaignID     *int64
	ProductID      *int64
	Limit          int
	Offset         int
}

// DonationsReportRow fila del reporte de donaciones con nombres denormalizados.
type DonationsReportRow struct {
	ID               int64
	Type             string
	Amount           *decimal.Decimal
	Quantity         *int
	Unit             *string
	DonorName        string
	CollaboratorName string
	CampaignName     *string
	ProductName      *string
	CreatedAt        time.Time
}

// DonationTypeSummary agregado por tipo de donación sobre el conjunto filtrado.
type DonationTypeSummary struct {
	Type          string
	Count         int64
	TotalAmount   decimal.Decimal
	TotalQuantity int64
}

// DonationsReportResult filas paginadas + resumen agregado por tipo.
type DonationsReportResult struct {
	Rows    []DonationsReportRow
	Summary []DonationTypeSummary
}

// StockReportFilter filtros del reporte de stock.
type StockReportFilter struct {
	Name       string // coincidencia parcial, insensible a mayúsculas y acentos
	CategoryID *int64
	IsActive   *bool
}

// StockReportRow fila del reporte de stock.
type StockReportRow struct {
	ID           int64
	Name         string
	Unit         string
	InStock      int
	MinimumStock int
	IsActive     bool
	CategoryID   *int64
	CategoryName *string
	BelowMinimum bool
}

// StockReportSummary totales del reporte de stock.
type StockReportSummary struct {
	TotalProducts        int64
	TotalInStock         int64
	ProductsBelowMinimum int64
}

// StockReportResult filas + totales.
type StockReportResult struct {
	Products []StockReportRow
	Summary  StockReportSummary
}

// CampaignTypeSummary agregado de donaciones por tipo de campaña.
type CampaignTypeSummary struct {
	CampaignType  string
	Campaigns     int64
	Donations     int64
	TotalAmount   decimal.Decimal
	TotalQuantity int64
}

// SectorSummary agregado de colaboradores y donaciones registradas por sector.
type SectorSummary struct {
	SectorID      *int64
	SectorName    string
	Collaborators int64
	Donations     int64
}

// ReportRepository consultas de solo lectura para reportes. Sin efectos de
// escritura; la consistencia es la de la consulta individual.
type ReportRepository interface {
	DonationsReport(ctx context.Context, filter DonationsReportFilter) (*DonationsReportResult, error)
	StockReport(ctx context.Context, filter StockReportFilter) (*StockReportResult, error)
	CampaignsReport(ctx context.Context, from, to *time.Time) ([]CampaignTypeSummary, error)
	CollaboratorsReport(ctx context.Context) ([]SectorSummary, error)
}
