package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, rut, legal_name, trade_name, email, phone, website, address, city, country,
	payment_terms, currency, contact_name, contact_email, contact_phone, status, notes, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.RUT, &s.LegalName, &s.TradeName, &s.Email, &s.Phone, &s.Website, &s.Address,
		&s.City, &s.Country, &s.PaymentTerms, &s.Currency, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.RUT, s.LegalName, s.TradeName, s.Email, s.Phone, s.Website, s.Address, s.City, s.Country,
		s.PaymentTerms, s.Currency, s.ContactName, s.ContactEmail, s.ContactPhone, s.Status, s.Notes,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.getOne(ctx, "get supplier", "id = $1", id)
}

// GetByRUT obtiene un proveedor por RUT normalizado.
func (r *SupplierRepo) GetByRUT(ctx context.Context, rut string) (*entity.Supplier, error) {
	return r.getOne(ctx, "get supplier by rut", "rut = $1", rut)
}

// GetByEmail compara sin distinguir mayúsculas.
func (r *SupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	return r.getOne(ctx, "get supplier by email", "lower(email) = lower($1)", email)
}

// Update actualiza todos los campos editables.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET rut = $2, legal_name = $3, trade_name = $4, email = $5, phone = $6, website = $7,
			address = $8, city = $9, country = $10, payment_terms = $11, currency = $12, contact_name = $13,
			contact_email = $14, contact_phone = $15, status = $16, notes = $17, updated_at = $18
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.RUT, s.LegalName, s.TradeName, s.Email, s.Phone, s.Website,
		s.Address, s.City, s.Country, s.PaymentTerms, s.Currency, s.ContactName,
		s.ContactEmail, s.ContactPhone, s.Status, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el proveedor y sus asociaciones; los movimientos quedan sin proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por RUT o razón social y estado; ordena por razón social.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	where := `($1 = '' OR rut ILIKE $2 OR legal_name ILIKE $2) AND ($3 = '' OR status = $3)`
	args := []any{f.Search, likePattern(f.Search), f.Status}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM suppliers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE `+where+` ORDER BY legal_name LIMIT $4 OFFSET $5`,
		append(args, limitArg(f.Limit), f.Offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}
