package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id_proveedor, nombre_proveedor, cuit_proveedor, direccion, telefono_proveedor, email, estado, fecha_creacion`

// Create persiste un proveedor. CUIT único.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO proveedor (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.CUIT, supplier.Address,
		supplier.Phone, supplier.Email, supplier.Active, supplier.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM proveedor WHERE id_proveedor = $1`
	return r.getOne(query, id)
}

// GetByCUIT obtiene un proveedor por CUIT. Devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByCUIT(cuit string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM proveedor WHERE cuit_proveedor = $1`
	return r.getOne(query, cuit)
}

func (r *SupplierRepo) getOne(query string, arg any) (*entity.Supplier, error) {
	var p entity.Supplier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.CUIT, &p.Address, &p.Phone, &p.Email, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM proveedor ORDER BY nombre_proveedor LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var p entity.Supplier
		if err := rows.Scan(&p.ID, &p.Name, &p.CUIT, &p.Address, &p.Phone, &p.Email, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza datos de contacto; el CUIT no cambia.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE proveedor SET nombre_proveedor = $2, direccion = $3, telefono_proveedor = $4, email = $5
		WHERE id_proveedor = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Address, supplier.Phone, supplier.Email,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedor WHERE id_proveedor = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
