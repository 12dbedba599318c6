package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/report"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// ReportHandler maneja los reportes de solo lectura (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Donations godoc
// @Summary      Reporte general de donaciones
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from             query  string  false  "Fecha inicial (RFC3339 o AAAA-MM-DD)"
// @Param        to               query  string  false  "Fecha final (RFC3339 o AAAA-MM-DD)"
// @Param        donor_id         query  int     false  "Filtrar por donante"
// @Param        collaborator_id  query  int     false  "Filtrar por colaborador"
// @Param        campaign_id      query  int     false  "Filtrar por campaña"
// @Param        product_id       query  int     false  "Filtrar por producto"
// @Param        limit            query  int     false  "Límite"  default(50)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200              {object}  dto.DonationsReportResponse
// @Router       /api/reports/donations [get]
func (h *ReportHandler) Donations(c *fiber.Ctx) error {
	filter := h.donationsFilter(c)
	out, err := h.uc.Donations(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Reporte de inventario
// @Description  El filtro por nombre es parcial, insensible a mayúsculas y acentos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        name         query  string  false  "Coincidencia parcial por nombre"
// @Param        category_id  query  int     false  "Filtrar por categoría"
// @Param        is_active    query  bool    false  "Filtrar por estado"
// @Success      200          {object}  dto.StockReportResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	filter := repository.StockReportFilter{
		Name:       c.Query("name"),
		CategoryID: queryInt64(c, "category_id"),
		IsActive:   queryBool(c, "is_active"),
	}
	out, err := h.uc.Stock(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Campaigns godoc
// @Summary      Reporte de campañas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (RFC3339 o AAAA-MM-DD)"
// @Param        to    query  string  false  "Fecha final (RFC3339 o AAAA-MM-DD)"
// @Success      200   {object}  dto.CampaignsReportResponse
// @Router       /api/reports/campaigns [get]
func (h *ReportHandler) Campaigns(c *fiber.Ctx) error {
	filter := h.donationsFilter(c)
	out, err := h.uc.Campaigns(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Collaborators godoc
// @Summary      Reporte de colaboradores por sector
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CollaboratorsReportResponse
// @Router       /api/reports/collaborators [get]
func (h *ReportHandler) Collaborators(c *fiber.Ctx) error {
	out, err := h.uc.Collaborators(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) donationsFilter(c *fiber.Ctx) repository.DonationsReportFilter {
	filter := repository.DonationsReportFilter{
		DonorID:        queryInt64(c, "donor_id"),
		CollaboratorID: queryInt64(c, "collaborator_id"),
		CampaignID:     queryInt64(c, "campaign_id"),
		ProductID:      queryInt64(c, "product_id"),
		Limit:          c.QueryInt("limit", 50),
		Offset:         c.QueryInt("offset", 0),
	}
	if s := c.Query("from"); s != "" {
		if t, ok := validation.ParseDate(s); ok {
			filter.From = &t
		}
	}
	if s := c.Query("to"); s != "" {
		if t, ok := validation.ParseDate(s); ok {
			filter.To = &t
		}
	}
	return filter
}
