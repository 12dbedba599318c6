package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/distribution"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
)

// DistributionHandler maneja las peticiones HTTP para las entregas de cestas (protegido).
type DistributionHandler struct {
	create *distribution.CreateDistributionUseCase
	query  *distribution.QueryDistributionsUseCase
}

// NewDistributionHandler construye el handler.
func NewDistributionHandler(create *distribution.CreateDistributionUseCase, query *distribution.QueryDistributionsUseCase) *DistributionHandler {
	return &DistributionHandler{create: create, query: query}
}

// Create godoc
// @Summary      Registrar entrega de cesta
// @Description  Descuenta stock por cada producto de la cesta, todo o nada.
// @Tags         distributions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributionRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/food-basket-distributions [post]
func (h *DistributionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributionRequest
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
// @Summary      Obtener entrega por ID
// @Tags         distributions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.DistributionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/food-basket-distributions/{id} [get]
func (h *DistributionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar entregas
// @Tags         distributions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DistributionListResponse
// @Router       /api/food-basket-distributions [get]
func (h *DistributionHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una entrega
// @Description  No revierte stock: una entrega cancelada conserva el descuento aplicado.
// @Tags         distributions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDistributionStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/food-basket-distributions/{id}/status [patch]
func (h *DistributionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateDistributionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.query.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
