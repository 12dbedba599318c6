package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
)

// DonorHandler maneja las peticiones HTTP para Donor (protegido).
type DonorHandler struct {
	uc *usecase.DonorUseCase
}

// NewDonorHandler construye el handler.
func NewDonorHandler(uc *usecase.DonorUseCase) *DonorHandler {
	return &DonorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar donante
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonorRequest  true  "Datos del donante"
// @Success      201   {object}  dto.DonorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/donors [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonorRequest
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
// @Summary      Obtener donante por ID
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del donante"
// @Success      200  {object}  dto.DonorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [get]
func (h *DonorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar donantes
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        is_active  query  bool  false  "Filtrar por estado"
// @Param        limit      query  int   false  "Límite"  default(20)
// @Param        offset     query  int   false  "Offset"  default(0)
// @Success      200        {object}  dto.DonorListResponse
// @Router       /api/donors [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), queryBool(c, "is_active"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar donante
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del donante"
// @Param        body  body  dto.UpdateDonorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DonorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [put]
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateDonorRequest
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
// @Summary      Activar o desactivar donante
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id      path   int   true  "ID del donante"
// @Param        active  query  bool  true  "Nuevo estado"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/donors/{id}/active [patch]
func (h *DonorHandler) SetActive(c *fiber.Ctx) error {
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
// @Summary      Eliminar donante (borrado lógico)
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del donante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [delete]
func (h *DonorHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "donante eliminado"})
}
