package entity

import "time"

// Collaborator persona que opera en la ONG (empleado o voluntario).
// Registration (matrícula) y Email son únicos. Borrado lógico vía DeletedAt.
type Collaborator struct {
	ID            int64
	Name          string
	Registration  string
	Email         string
	Phone         string
	AdmissionDate *time.Time
	DismissalDate *time.Time
	IsVolunteer   bool
	SectorID      *int64
	UserID        *int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}
