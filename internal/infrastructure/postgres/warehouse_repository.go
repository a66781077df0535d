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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste un depósito.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO deposito (id_deposito, nom_deposito, dir_deposito, responsable, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.Responsible,
		warehouse.Active, warehouse.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposito: %w", err)
	}
	return nil
}

// GetByID obtiene un depósito por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `
		SELECT id_deposito, nom_deposito, dir_deposito, responsable, estado, fecha_creacion
		FROM deposito WHERE id_deposito = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Address, &w.Responsible, &w.Active, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposito: %w", err)
	}
	return &w, nil
}

// List lista depósitos con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id_deposito, nom_deposito, dir_deposito, responsable, estado, fecha_creacion
		FROM deposito ORDER BY nom_deposito LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depositos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.Responsible, &w.Active, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposito: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un depósito.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE deposito SET nom_deposito = $2, dir_deposito = $3, responsable = $4
		WHERE id_deposito = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.Responsible,
	)
	if err != nil {
		return fmt.Errorf("update deposito: %w", err)
	}
	return nil
}

// Delete elimina un depósito.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deposito WHERE id_deposito = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete deposito: %w", err)
	}
	return nil
}
