package entity

import "time"

// Campaign campaña de recaudación o distribución.
type Campaign struct {
	ID           int64
	Name         string
	Description  *string
	CampaignType string
	StartDate    *time.Time
	EndDate      *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
