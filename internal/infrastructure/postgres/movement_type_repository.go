package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)
var _ repository.MovementReasonRepository = (*MovementReasonRepo)(nil)

// MovementTypeRepo implementación de MovementTypeRepository sobre PostgreSQL (usable con pool o tx).
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// Create persiste un tipo de movimiento.
func (r *MovementTypeRepo) Create(mtype *entity.MovementType) error {
	query := `
		INSERT INTO tipo_movimiento (id_tipo_movimiento, nombre_tipo, afecta_stock, estado)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, mtype.ID, mtype.Name, mtype.StockEffect, mtype.Active)
	if err != nil {
		return fmt.Errorf("insert tipo_movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *MovementTypeRepo) GetByID(id string) (*entity.MovementType, error) {
	query := `
		SELECT id_tipo_movimiento, nombre_tipo, afecta_stock, estado
		FROM tipo_movimiento WHERE id_tipo_movimiento = $1`
	var t entity.MovementType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.StockEffect, &t.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo_movimiento: %w", err)
	}
	return &t, nil
}

// List lista tipos de movimiento.
func (r *MovementTypeRepo) List(limit, offset int) ([]*entity.MovementType, error) {
	query := `
		SELECT id_tipo_movimiento, nombre_tipo, afecta_stock, estado
		FROM tipo_movimiento ORDER BY nombre_tipo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tipos_movimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementType
	for rows.Next() {
		var t entity.MovementType
		if err := rows.Scan(&t.ID, &t.Name, &t.StockEffect, &t.Active); err != nil {
			return nil, fmt.Errorf("scan tipo_movimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de movimiento.
func (r *MovementTypeRepo) Update(mtype *entity.MovementType) error {
	query := `
		UPDATE tipo_movimiento SET nombre_tipo = $2, afecta_stock = $3, estado = $4
		WHERE id_tipo_movimiento = $1`
	_, err := r.q.Exec(context.Background(), query, mtype.ID, mtype.Name, mtype.StockEffect, mtype.Active)
	if err != nil {
		return fmt.Errorf("update tipo_movimiento: %w", err)
	}
	return nil
}

// Delete elimina un tipo de movimiento.
func (r *MovementTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tipo_movimiento WHERE id_tipo_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tipo_movimiento: %w", err)
	}
	return nil
}

// MovementReasonRepo implementación de MovementReasonRepository sobre PostgreSQL (usable con pool o tx).
type MovementReasonRepo struct {
	q Querier
}

// NewMovementReasonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementReasonRepository(q Querier) *MovementReasonRepo {
	return &MovementReasonRepo{q: q}
}

// Create persiste una razón de movimiento.
func (r *MovementReasonRepo) Create(reason *entity.MovementReason) error {
	query := `
		INSERT INTO razon_movimiento (id_razon_movimiento, nombre_razon, id_tipo_movimiento)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, reason.ID, reason.Name, reason.TypeID)
	if err != nil {
		return fmt.Errorf("insert razon_movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene una razón por ID.
func (r *MovementReasonRepo) GetByID(id string) (*entity.MovementReason, error) {
	query := `
		SELECT id_razon_movimiento, nombre_razon, id_tipo_movimiento
		FROM razon_movimiento WHERE id_razon_movimiento = $1`
	var m entity.MovementReason
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Name, &m.TypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get razon_movimiento: %w", err)
	}
	return &m, nil
}

// ListByType lista las razones de un tipo.
func (r *MovementReasonRepo) ListByType(typeID string) ([]*entity.MovementReason, error) {
	query := `
		SELECT id_razon_movimiento, nombre_razon, id_tipo_movimiento
		FROM razon_movimiento WHERE id_tipo_movimiento = $1 ORDER BY nombre_razon`
	rows, err := r.q.Query(context.Background(), query, typeID)
	if err != nil {
		return nil, fmt.Errorf("list razones por tipo: %w", err)
	}
	defer rows.Close()
	return scanReasons(rows)
}

// List lista razones con paginación.
func (r *MovementReasonRepo) List(limit, offset int) ([]*entity.MovementReason, error) {
	query := `
		SELECT id_razon_movimiento, nombre_razon, id_tipo_movimiento
		FROM razon_movimiento ORDER BY nombre_razon LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list razones: %w", err)
	}
	defer rows.Close()
	return scanReasons(rows)
}

func scanReasons(rows pgx.Rows) ([]*entity.MovementReason, error) {
	var list []*entity.MovementReason
	for rows.Next() {
		var m entity.MovementReason
		if err := rows.Scan(&m.ID, &m.Name, &m.TypeID); err != nil {
			return nil, fmt.Errorf("scan razon_movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update renombra una razón.
func (r *MovementReasonRepo) Update(reason *entity.MovementReason) error {
	query := `UPDATE razon_movimiento SET nombre_razon = $2 WHERE id_razon_movimiento = $1`
	_, err := r.q.Exec(context.Background(), query, reason.ID, reason.Name)
	if err != nil {
		return fmt.Errorf("update razon_movimiento: %w", err)
	}
	return nil
}

// Delete elimina una razón.
func (r *MovementReasonRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM razon_movimiento WHERE id_razon_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete razon_movimiento: %w", err)
	}
	return nil
}
