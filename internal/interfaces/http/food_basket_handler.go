package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/basket"
	"github.com/ong-esperanza/donaciones-api/internal/application/dto"
)

// FoodBasketHandler maneja las peticiones HTTP para FoodBasket (protegido).
type FoodBasketHandler struct {
	uc *basket.FoodBasketUseCase
}

// NewFoodBasketHandler construye el handler.
func NewFoodBasketHandler(uc *basket.FoodBasketUseCase) *FoodBasketHandler {
	return &FoodBasketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cesta básica
// @Tags         food-baskets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFoodBasketRequest  true  "Cesta con su composición"
// @Success      201   {object}  dto.FoodBasketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/food-baskets [post]
func (h *FoodBasketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFoodBasketRequest
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
// @Summary      Obtener cesta por ID (con composición)
// @Tags         food-baskets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la cesta"
// @Success      200  {object}  dto.FoodBasketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/food-baskets/{id} [get]
func (h *FoodBasketHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar cestas
// @Tags         food-baskets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FoodBasketListResponse
// @Router       /api/food-baskets [get]
func (h *FoodBasketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cesta
// @Description  products con elementos reemplaza la composición completa; vacío u omitido la deja intacta.
// @Tags         food-baskets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la cesta"
// @Param        body  body  dto.UpdateFoodBasketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FoodBasketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/food-baskets/{id} [put]
func (h *FoodBasketHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateFoodBasketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
