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

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL (usable con pool o tx).
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

const supplyColumns = `id_insumo, nombre_insumo, descripcion_insumo, costo_unitario, fecha_expiracion, id_categoria, id_proveedor, estado_insumo, fecha_creacion, fecha_actualizacion`

func scanSupply(row pgx.Row) (*entity.Supply, error) {
	var s entity.Supply
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.UnitCost, &s.ExpiryDate,
		&s.CategoryID, &s.SupplierID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un insumo.
func (r *SupplyRepo) Create(supply *entity.Supply) error {
	query := `
		INSERT INTO insumo (` + supplyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.Name, supply.Description, supply.UnitCost, supply.ExpiryDate,
		supply.CategoryID, supply.SupplierID, supply.Active, supply.CreatedAt, supply.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *SupplyRepo) GetByID(id string) (*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM insumo WHERE id_insumo = $1`
	s, err := scanSupply(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return s, nil
}

// List lista insumos; onlyActive excluye las bajas lógicas.
func (r *SupplyRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM insumo`
	if onlyActive {
		query += ` WHERE estado_insumo = true`
	}
	query += ` ORDER BY nombre_insumo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supply
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListWithCriticalStock insumos activos con al menos una fila de stock en o
// por debajo del umbral crítico.
func (r *SupplyRepo) ListWithCriticalStock() ([]*entity.Supply, error) {
	query := `
		SELECT DISTINCT i.id_insumo, i.nombre_insumo, i.descripcion_insumo, i.costo_unitario, i.fecha_expiracion,
		       i.id_categoria, i.id_proveedor, i.estado_insumo, i.fecha_creacion, i.fecha_actualizacion
		FROM insumo i
		JOIN stock_deposito sd ON sd.id_insumo = i.id_insumo
		WHERE i.estado_insumo = true AND sd.cantidad_actual <= sd.stock_critico
		ORDER BY i.nombre_insumo`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list insumos stock critico: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supply
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza un insumo.
func (r *SupplyRepo) Update(supply *entity.Supply) error {
	query := `
		UPDATE insumo SET nombre_insumo = $2, descripcion_insumo = $3, costo_unitario = $4,
		       fecha_expiracion = $5, id_categoria = $6, id_proveedor = $7, fecha_actualizacion = $8
		WHERE id_insumo = $1`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.Name, supply.Description, supply.UnitCost,
		supply.ExpiryDate, supply.CategoryID, supply.SupplierID, supply.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	return nil
}

// Deactivate baja lógica del insumo.
func (r *SupplyRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE insumo SET estado_insumo = false, fecha_actualizacion = now() WHERE id_insumo = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate insumo: %w", err)
	}
	return nil
}
