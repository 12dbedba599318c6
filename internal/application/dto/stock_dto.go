package dto

// AdjustStockRequest ajuste aditivo de stock: positivo entra, negativo sale.
type AdjustStockRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// AdjustStockResponse confirma el ajuste con el producto actualizado.
type AdjustStockResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
