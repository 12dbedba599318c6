package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/donation"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/validation"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

// DonationHandler maneja las peticiones HTTP para Donation (protegido).
type DonationHandler struct {
	create *donation.CreateDonationUseCase
	query  *donation.QueryDonationsUseCase
}

// NewDonationHandler construye el handler.
func NewDonationHandler(create *donation.CreateDonationUseCase, query *donation.QueryDonationsUseCase) *DonationHandler {
	return &DonationHandler{create: create, query: query}
}

// Create godoc
// @Summary      Registrar donación
// @Description  Para donaciones en especie con producto, incrementa el stock en la misma transacción.
// @Tags         donations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonationRequest  true  "Datos de la donación"
// @Success      201   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.create.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener donación por ID
// @Tags         donations
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la donación"
// @Success      200  {object}  dto.DonationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donations/{id} [get]
func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.query.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar donaciones
// @Tags         donations
// @Security     Bearer
// @Produce      json
// @Param        type             query  string  false  "Filtrar por tipo"  Enums(food, clothing, money, campaign)
// @Param        donor_id         query  int     false  "Filtrar por donante"
// @Param        collaborator_id  query  int     false  "Filtrar por colaborador"
// @Param        campaign_id      query  int     false  "Filtrar por campaña"
// @Param        product_id       query  int     false  "Filtrar por producto"
// @Param        from             query  string  false  "Fecha inicial (RFC3339 o AAAA-MM-DD)"
// @Param        to               query  string  false  "Fecha final (RFC3339 o AAAA-MM-DD)"
// @Param        limit            query  int     false  "Límite"  default(20)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200              {object}  dto.DonationListResponse
// @Router       /api/donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	page.DefaultPage()
	filter := repository.DonationFilter{
		Type:           c.Query("type"),
		DonorID:        queryInt64(c, "donor_id"),
		CollaboratorID: queryInt64(c, "collaborator_id"),
		CampaignID:     queryInt64(c, "campaign_id"),
		ProductID:      queryInt64(c, "product_id"),
		Limit:          page.Limit,
		Offset:         page.Offset,
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
	out, err := h.query.List(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
