package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ong-esperanza/donaciones-api/internal/domain"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/internal/domain/repository"
)

var _ repository.CollaboratorRepository = (*CollaboratorRepo)(nil)

const collaboratorColumns = `id, name, registration, email, phone, admission_date, dismissal_date, is_volunteer, sector_id, user_id, is_active, created_at, updated_at, deleted_at`

// CollaboratorRepo implementación del puerto CollaboratorRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas excluyen registros con borrado lógico.
type CollaboratorRepo struct {
	q Querier
}

// NewCollaboratorRepository construye el adaptador de persistencia para colaboradores. Pasar pool o tx (Querier).
func NewCollaboratorRepository(q Querier) *CollaboratorRepo {
	return &CollaboratorRepo{q: q}
}

// Create persiste un colaborador y devuelve su id.
func (r *CollaboratorRepo) Create(ctx context.Context, collaborator *entity.Collaborator) (int64, error) {
	query := `
		INSERT INTO collaborators (name, registration, email, phone, admission_date, dismissal_date, is_volunteer, sector_id, user_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		collaborator.Name, collaborator.Registration, collaborator.Email, collaborator.Phone,
		collaborator.AdmissionDate, collaborator.DismissalDate, collaborator.IsVolunteer,
		collaborator.SectorID, collaborator.UserID, collaborator.IsActive, collaborator.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert collaborator: %w", err)
	}
	return id, nil
}

// GetByID obtiene un colaborador por id.
func (r *CollaboratorRepo) GetByID(ctx context.Context, id int64) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get collaborator")
}

// GetByEmail obtiene un colaborador por email.
func (r *CollaboratorRepo) GetByEmail(ctx context.Context, email string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE lower(email) = lower($1) AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get collaborator by email")
}

// GetByRegistration obtiene un colaborador por matrícula.
func (r *CollaboratorRepo) GetByRegistration(ctx context.Context, registration string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE registration = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, registration), "get collaborator by registration")
}

// List lista colaboradores, filtrables por estado activo.
func (r *CollaboratorRepo) List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE deleted_at IS NULL`
	args := []any{}
	n := 0

	if isActive != nil {
		n++
		query += fmt.Sprintf(" AND is_active = $%d", n)
		args = append(args, *isActive)
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()

	var out []*entity.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collaborator: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza un colaborador. La matrícula es inmutable.
func (r *CollaboratorRepo) Update(ctx context.Context, collaborator *entity.Collaborator) error {
	query := `
		UPDATE collaborators
		SET name = $2, email = $3, phone = $4, admission_date = $5, dismissal_date = $6,
		    is_volunteer = $7, sector_id = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		collaborator.ID, collaborator.Name, collaborator.Email, collaborator.Phone,
		collaborator.AdmissionDate, collaborator.DismissalDate, collaborator.IsVolunteer,
		collaborator.SectorID, collaborator.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update collaborator: %w", err)
	}
	return nil
}

// SetActive activa o desactiva un colaborador.
func (r *CollaboratorRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE collaborators SET is_active = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set collaborator active: %w", err)
	}
	return nil
}

// SoftDelete marca un colaborador como eliminado.
func (r *CollaboratorRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE collaborators SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	return nil
}

func (r *CollaboratorRepo) scanOne(row pgx.Row, op string) (*entity.Collaborator, error) {
	c, err := scanCollaborator(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanCollaborator(row pgx.Row) (*entity.Collaborator, error) {
	var c entity.Collaborator
	err := row.Scan(
		&c.ID, &c.Name, &c.Registration, &c.Email, &c.Phone,
		&c.AdmissionDate, &c.DismissalDate, &c.IsVolunteer,
		&c.SectorID, &c.UserID, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
