package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin        = "admin"
	RoleCollaborator = "collaborator"
)

// User usuario del sistema con acceso por email/contraseña.
// PasswordHash es un hash bcrypt; nunca sale en respuestas.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
