package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
)

// FamilyHandler maneja las peticiones HTTP para Family (protegido).
type FamilyHandler struct {
	uc *usecase.FamilyUseCase
}

// NewFamilyHandler construye el handler.
func NewFamilyHandler(uc *usecase.FamilyUseCase) *FamilyHandler {
	return &FamilyHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar familia beneficiaria
// @Tags         families
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFamilyRequest  true  "Datos de la familia"
// @Success      201   {object}  dto.FamilyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/families [post]
func (h *FamilyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFamilyRequest
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
// @Summary      Obtener familia por ID
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la familia"
// @Success      200  {object}  dto.FamilyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/families/{id} [get]
func (h *FamilyHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar familias
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        is_active  query  bool  false  "Filtrar por estado"
// @Param        limit      query  int   false  "Límite"  default(20)
// @Param        offset     query  int   false  "Offset"  default(0)
// @Success      200        {object}  dto.FamilyListResponse
// @Router       /api/families [get]
func (h *FamilyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), queryBool(c, "is_active"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar familia
// @Tags         families
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la familia"
// @Param        body  body  dto.UpdateFamilyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FamilyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/families/{id} [put]
func (h *FamilyHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateFamilyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar familia
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        id      path   int   true  "ID de la familia"
// @Param        active  query  bool  true  "Nuevo estado"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/families/{id}/active [patch]
func (h *FamilyHandler) SetActive(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	active := c.QueryBool("active", true)
	if err := h.uc.SetActive(c.UserContext(), id, active); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// Delete godoc
// @Summary      Eliminar familia (borrado lógico)
// @Tags         families
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la familia"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/families/{id} [delete]
func (h *FamilyHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "familia eliminada"})
}
