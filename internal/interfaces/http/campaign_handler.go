package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
)

// CampaignHandler maneja las peticiones HTTP para Campaign (protegido).
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campaña
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Datos de la campaña"
// @Success      201   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener campaña por ID
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar campañas
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        is_active  query  bool  false  "Filtrar por estado"
// @Param        limit      query  int   false  "Límite"  default(20)
// @Param        offset     query  int   false  "Offset"  default(0)
// @Success      200        {object}  dto.CampaignListResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), queryBool(c, "is_active"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campaña
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la campaña"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CampaignResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
