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

var _ repository.MovementRepository = (*MovementRepo)(nil)
var _ repository.MovementDetailRepository = (*MovementDetailRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id_movimiento, fecha_movimiento, id_deposito_origen, id_deposito_destino, id_tipo_movimiento, id_razon_movimiento, id_usuario, id_orden_compra, numero_comprobante, observaciones, estado_movimiento, fecha_creacion`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Date, &m.OriginID, &m.DestinationID, &m.TypeID, &m.ReasonID,
		&m.UserID, &m.OrderID, &m.VoucherNumber, &m.Observations, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste la cabecera de un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimiento_inventario (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Date, movement.OriginID, movement.DestinationID,
		movement.TypeID, movement.ReasonID, movement.UserID, movement.OrderID,
		movement.VoucherNumber, movement.Observations, movement.Status, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera de movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimiento_inventario WHERE id_movimiento = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos por filtros con paginación; devuelve el total de filas.
// El filtro de depósito coincide origen o destino.
func (r *MovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	if filter.WarehouseID != "" {
		p := next()
		where += fmt.Sprintf(` AND (id_deposito_origen = %s OR id_deposito_destino = %s)`, p, p)
		args = append(args, filter.WarehouseID)
	}
	if filter.TypeID != "" {
		where += ` AND id_tipo_movimiento = ` + next()
		args = append(args, filter.TypeID)
	}
	if filter.Status != "" {
		where += ` AND estado_movimiento = ` + next()
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		where += ` AND fecha_movimiento >= ` + next()
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += ` AND fecha_movimiento <= ` + next()
		args = append(args, *filter.To)
	}

	var total int
	countQuery := `SELECT count(*) FROM movimiento_inventario` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}

	query := `SELECT ` + movementColumns + ` FROM movimiento_inventario` + where +
		` ORDER BY fecha_movimiento DESC LIMIT ` + next() + ` OFFSET ` + next()
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// Update actualiza una cabecera de movimiento.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movimiento_inventario
		SET fecha_movimiento = $2, id_deposito_origen = $3, id_deposito_destino = $4,
		    id_razon_movimiento = $5, numero_comprobante = $6, observaciones = $7, estado_movimiento = $8
		WHERE id_movimiento = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Date, movement.OriginID, movement.DestinationID,
		movement.ReasonID, movement.VoucherNumber, movement.Observations, movement.Status,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Delete elimina la cabecera; los detalles caen por FK ON DELETE CASCADE.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimiento_inventario WHERE id_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// MovementDetailRepo implementación de MovementDetailRepository sobre PostgreSQL (usable con pool o tx).
type MovementDetailRepo struct {
	q Querier
}

// NewMovementDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementDetailRepository(q Querier) *MovementDetailRepo {
	return &MovementDetailRepo{q: q}
}

const movementDetailColumns = `id_detalle_movimiento, id_movimiento, id_insumo, cantidad, costo_unitario, lote, fecha_vencimiento`

func scanMovementDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var d entity.MovementDetail
	err := row.Scan(&d.ID, &d.MovementID, &d.SupplyID, &d.Quantity, &d.UnitCost, &d.Lot, &d.ExpiryDate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste un detalle de movimiento. Único por (movimiento, insumo, lote).
func (r *MovementDetailRepo) Create(detail *entity.MovementDetail) error {
	query := `
		INSERT INTO detalle_movimiento_inventario (` + movementDetailColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.MovementID, detail.SupplyID, detail.Quantity,
		detail.UnitCost, detail.Lot, detail.ExpiryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert detalle_movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un detalle por ID.
func (r *MovementDetailRepo) GetByID(id string) (*entity.MovementDetail, error) {
	query := `SELECT ` + movementDetailColumns + ` FROM detalle_movimiento_inventario WHERE id_detalle_movimiento = $1`
	d, err := scanMovementDetail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle_movimiento: %w", err)
	}
	return d, nil
}

// ListByMovement lista los detalles de un movimiento.
func (r *MovementDetailRepo) ListByMovement(movementID string) ([]*entity.MovementDetail, error) {
	query := `SELECT ` + movementDetailColumns + ` FROM detalle_movimiento_inventario WHERE id_movimiento = $1 ORDER BY id_detalle_movimiento`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list detalles_movimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		d, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle_movimiento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// FindByMovementSupplyLot resuelve la unicidad (movimiento, insumo, lote). nil, nil si no existe.
func (r *MovementDetailRepo) FindByMovementSupplyLot(movementID, supplyID, lot string) (*entity.MovementDetail, error) {
	query := `SELECT ` + movementDetailColumns + ` FROM detalle_movimiento_inventario
		WHERE id_movimiento = $1 AND id_insumo = $2 AND lote = $3`
	d, err := scanMovementDetail(r.q.QueryRow(context.Background(), query, movementID, supplyID, lot))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find detalle_movimiento: %w", err)
	}
	return d, nil
}

// Update actualiza un detalle de movimiento.
func (r *MovementDetailRepo) Update(detail *entity.MovementDetail) error {
	query := `
		UPDATE detalle_movimiento_inventario
		SET id_insumo = $2, cantidad = $3, costo_unitario = $4, lote = $5, fecha_vencimiento = $6
		WHERE id_detalle_movimiento = $1`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SupplyID, detail.Quantity, detail.UnitCost, detail.Lot, detail.ExpiryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update detalle_movimiento: %w", err)
	}
	return nil
}

// Delete elimina un detalle de movimiento.
func (r *MovementDetailRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detalle_movimiento_inventario WHERE id_detalle_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle_movimiento: %w", err)
	}
	return nil
}
