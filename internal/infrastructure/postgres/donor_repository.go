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

var _ repository.DonorRepository = (*DonorRepo)(nil)

const donorColumns = `id, type, name, email, phone, cpf, cnpj, street_address, street_number, street_complement, street_neighborhood, city, state, zip_code, observation, is_active, created_at, updated_at, deleted_at`

// DonorRepo implementación del puerto DonorRepository sobre PostgreSQL (usable con pool o tx).
// Todas las consultas excluyen registros con borrado lógico.
type DonorRepo struct {
	q Querier
}

// NewDonorRepository construye el adaptador de persistencia para donantes. Pasar pool o tx (Querier).
func NewDonorRepository(q Querier) *DonorRepo {
	return &DonorRepo{q: q}
}

// Create persiste un donante y devuelve su id.
func (r *DonorRepo) Create(ctx context.Context, donor *entity.Donor) (int64, error) {
	query := `
		INSERT INTO donors (type, name, email, phone, cpf, cnpj, street_address, street_number, street_complement, street_neighborhood, city, state, zip_code, observation, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		donor.Type, donor.Name, donor.Email, donor.Phone, donor.CPF, donor.CNPJ,
		donor.StreetAddress, donor.StreetNumber, donor.StreetComplement, donor.StreetNeighborhood,
		donor.City, donor.State, donor.ZipCode, donor.Observation, donor.IsActive, donor.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert donor: %w", err)
	}
	return id, nil
}

// GetByID obtiene un donante por id.
func (r *DonorRepo) GetByID(ctx context.Context, id int64) (*entity.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get donor")
}

// GetByEmail obtiene un donante por email.
func (r *DonorRepo) GetByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE lower(email) = lower($1) AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get donor by email")
}

// List lista donantes, filtrables por estado activo.
func (r *DonorRepo) List(ctx context.Context, isActive *bool, limit, offset int) ([]*entity.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE deleted_at IS NULL`
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
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Donor
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update actualiza un donante. type, cpf y cnpj son inmutables.
func (r *DonorRepo) Update(ctx context.Context, donor *entity.Donor) error {
	query := `
		UPDATE donors
		SET name = $2, email = $3, phone = $4, street_address = $5, street_number = $6,
		    street_complement = $7, street_neighborhood = $8, city = $9, state = $10,
		    zip_code = $11, observation = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		donor.ID, donor.Name, donor.Email, donor.Phone,
		donor.StreetAddress, donor.StreetNumber, donor.StreetComplement, donor.StreetNeighborhood,
		donor.City, donor.State, donor.ZipCode, donor.Observation, donor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update donor: %w", err)
	}
	return nil
}

// SetActive activa o desactiva un donante.
func (r *DonorRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE donors SET is_active = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set donor active: %w", err)
	}
	return nil
}

// SoftDelete marca un donante como eliminado.
func (r *DonorRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE donors SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete donor: %w", err)
	}
	return nil
}

func (r *DonorRepo) scanOne(row pgx.Row, op string) (*entity.Donor, error) {
	d, err := scanDonor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func scanDonor(row pgx.Row) (*entity.Donor, error) {
	var d entity.Donor
	err := row.Scan(
		&d.ID, &d.Type, &d.Name, &d.Email, &d.Phone, &d.CPF, &d.CNPJ,
		&d.StreetAddress, &d.StreetNumber, &d.StreetComplement, &d.StreetNeighborhood,
		&d.City, &d.State, &d.ZipCode, &d.Observation, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
