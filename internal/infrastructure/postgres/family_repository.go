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

var _ repository.FamilyRepository = (*FamilyRepo)(nil)

const familyColumns = `id, responsible_name, responsible_cpf, street_address, street_number, street_complement, street_neighborhood, city, state, zip_code, phone, email, members_count, income_bracket, address, observation, has_social_programs, social_program_id, is_active, created_at, updated_at, deleted_at`

// FamilyRepo implementación del puerto FamilyRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas excluyen registros con borrado lógico.
type FamilyRepo struct {
	q Querier
}

// NewFamilyRepository construye el adaptador de persistencia para familias. Pasar pool o tx (Querier).
func NewFamilyRepository(q Querier) *FamilyRepo {
	return &FamilyRepo{q: q}
}

// Create persiste una familia y devuelve su id.
func (r *FamilyRepo) Create(ctx context.Context, family *entity.Family) (int64, error) {
	query := `
		INSERT INTO families (responsible_name, responsible_cpf, street_address, street_number, street_complement, street_neighborhood, city, state, zip_code, phone, email, members_count, income_bracket, address, observation, has_social_programs, social_program_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		family.ResponsibleName, family.ResponsibleCPF,
		family.StreetAddress, family.StreetNumber, family.StreetComplement, family.StreetNeighborhood,
		family.City, family.State, family.ZipCode, family.Phone, family.Email,
		family.MembersCount, family.IncomeBracket, family.Address, family.Observation,
		family.HasSocialPrograms, family.SocialProgramID, family.IsActive, family.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert family: %w", err)
	}
	return id, nil
}

// GetByID obtiene una familia por id.
func (r *FamilyRepo) GetByID(ctx context.Context, id int64) (*entity.Family, error) {
	query := `SELECT ` + familyColumns + ` FROM families WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get family")
}

// GetByCPF obtiene una familia por el CPF del responsable.
func (r *FamilyRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Family, error) {
	query := `SELECT ` + familyColumns + ` FROM families WHERE responsible_cpf = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, cpf), "get family by cpf")
}

// List lista familias, filtrables por estado activo.
func (r *FamilyRepo) List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Family, error) {
	query := `SELECT ` + familyColumns + ` FROM families WHERE deleted_at IS NULL`
	args := []any{}
	n := 0

	if isActive != nil {
		n++
		query += fmt.Sprintf(" AND is_active = $%d", n)
		args = append(args, *isActive)
	}
	query += fmt.Sprintf(" ORDER BY responsible_name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	defer rows.Close()

	var out []*entity.Family
	for rows.Next() {
		f, err := scanFamily(rows)
		if err != nil {
			return nil, fmt.Errorf("scan family: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update actualiza una familia. El CPF del responsable es inmutable.
func (r *FamilyRepo) Update(ctx context.Context, family *entity.Family) error {
	query := `
		UPDATE families
		SET responsible_name = $2, phone = $3, email = $4, members_count = $5,
		    income_bracket = $6, address = $7, observation = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		family.ID, family.ResponsibleName, family.Phone, family.Email,
		family.MembersCount, family.IncomeBracket, family.Address, family.Observation,
		family.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update family: %w", err)
	}
	return nil
}

// SetActive activa o desactiva una familia.
func (r *FamilyRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE families SET is_active = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set family active: %w", err)
	}
	return nil
}

// SoftDelete marca una familia como eliminada.
func (r *FamilyRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE families SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete family: %w", err)
	}
	return nil
}

func (r *FamilyRepo) scanOne(row pgx.Row, op string) (*entity.Family, error) {
	f, err := scanFamily(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

func scanFamily(row pgx.Row) (*entity.Family, error) {
	var f entity.Family
	err := row.Scan(
		&f.ID, &f.ResponsibleName, &f.ResponsibleCPF,
		&f.StreetAddress, &f.StreetNumber, &f.StreetComplement, &f.StreetNeighborhood,
		&f.City, &f.State, &f.ZipCode, &f.Phone, &f.Email,
		&f.MembersCount, &f.IncomeBracket, &f.Address, &f.Observation,
		&f.HasSocialPrograms, &f.SocialProgramID, &f.IsActive,
		&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
