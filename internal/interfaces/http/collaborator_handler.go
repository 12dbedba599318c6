package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
)

// CollaboratorHandler maneja las peticiones HTTP para Collaborator (protegido).
type CollaboratorHandler struct {
	uc *usecase.CollaboratorUseCase
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(uc *usecase.CollaboratorUseCase) *CollaboratorHandler {
	return &CollaboratorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar colaborador
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCollabRequest  true  "Datos del colaborador"
// @Success      201   {object}  dto.CollabResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collaborators [post]
func (h *CollaboratorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCollabRequest
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
// @Summary      Obtener colaborador por ID
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del colaborador"
// @Success      200  {object}  dto.CollabResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [get]
func (h *CollaboratorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar colaboradores
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        is_active  query  bool  false  "Filtrar por estado"
// @Param        limit      query  int   false  "Límite"  default(20)
// @Param        offset     query  int   false  "Offset"  default(0)
// @Success      200        {object}  dto.CollabListResponse
// @Router       /api/collaborators [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), queryBool(c, "is_active"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del colaborador"
// @Param        body  body  dto.UpdateCollabRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CollabResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [put]
func (h *CollaboratorHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateCollabRequest
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
// @Summary      Activar o desactivar colaborador
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id      path   int   true  "ID del colaborador"
// @Param        active  query  bool  true  "Nuevo estado"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id}/active [patch]
func (h *CollaboratorHandler) SetActive(c *fiber.Ctx) error {
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
// @Summary      Eliminar colaborador (borrado lógico)
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del colaborador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [delete]
func (h *CollaboratorHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "colaborador eliminado"})
}
