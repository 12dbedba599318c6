package dto

import "time"

// CreateCampaignRequest entrada para crear una campaña.
type CreateCampaignRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Description  *string `json:"description"`
	CampaignType string  `json:"campaign_type" validate:"required,min=1"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsActive     *bool   `json:"is_active"`
}

// UpdateCampaignRequest entrada para actualizar una campaña (parcial).
type UpdateCampaignRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	CampaignType *string `json:"campaign_type" validate:"omitempty,min=1"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsActive     *bool   `json:"is_active"`
}

// CampaignResponse salida de una campaña.
type CampaignResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	CampaignType string     `json:"campaign_type"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// CampaignListResponse lista paginada de campañas.
type CampaignListResponse struct {
	Items []CampaignResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
