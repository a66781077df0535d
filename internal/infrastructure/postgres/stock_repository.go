package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Las mutaciones de cantidad son sentencias atómicas: el incremento usa upsert
// y el decremento un UPDATE directo, sin leer-modificar-escribir.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id_stock_deposito, id_deposito, id_insumo, cantidad_actual, stock_minimo, stock_critico, fecha_ultimo_movimiento`

func scanStock(row pgx.Row) (*entity.StockRow, error) {
	var s entity.StockRow
	err := row.Scan(&s.ID, &s.WarehouseID, &s.SupplyID, &s.Quantity, &s.MinimumStock, &s.CriticalStock, &s.LastMovement)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una fila de stock. Única por (deposito, insumo).
func (r *StockRepo) Create(row *entity.StockRow) error {
	query := `
		INSERT INTO stock_deposito (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.WarehouseID, row.SupplyID, row.Quantity,
		row.MinimumStock, row.CriticalStock, row.LastMovement,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock_deposito: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.StockRow, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_deposito WHERE id_stock_deposito = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_deposito: %w", err)
	}
	return s, nil
}

// GetByWarehouseSupply obtiene la fila de un par (deposito, insumo). nil, nil si no hay fila.
func (r *StockRepo) GetByWarehouseSupply(warehouseID, supplyID string) (*entity.StockRow, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_deposito WHERE id_deposito = $1 AND id_insumo = $2`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, warehouseID, supplyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock por par: %w", err)
	}
	return s, nil
}

// List lista filas de stock, opcionalmente por depósito y/o insumo.
func (r *StockRepo) List(filter repository.StockFilter) ([]*entity.StockRow, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_deposito WHERE 1=1`
	args := []any{}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		query += fmt.Sprintf(` AND id_deposito = $%d`, len(args))
	}
	if filter.SupplyID != "" {
		args = append(args, filter.SupplyID)
		query += fmt.Sprintf(` AND id_insumo = $%d`, len(args))
	}
	query += ` ORDER BY id_deposito, id_insumo`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock_deposito: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRow
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock_deposito: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update escribe cantidad y umbrales de una fila.
func (r *StockRepo) Update(row *entity.StockRow) error {
	query := `
		UPDATE stock_deposito
		SET cantidad_actual = $2, stock_minimo = $3, stock_critico = $4, fecha_ultimo_movimiento = $5
		WHERE id_stock_deposito = $1`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.Quantity, row.MinimumStock, row.CriticalStock, row.LastMovement,
	)
	if err != nil {
		return fmt.Errorf("update stock_deposito: %w", err)
	}
	return nil
}

// AddQuantity upsert atómico: crea la fila con cantidad qty o la incrementa.
// Dos movimientos concurrentes sobre el mismo par no pierden actualizaciones.
func (r *StockRepo) AddQuantity(warehouseID, supplyID string, qty int64, at time.Time) error {
	query := `
		INSERT INTO stock_deposito (id_stock_deposito, id_deposito, id_insumo, cantidad_actual, stock_minimo, stock_critico, fecha_ultimo_movimiento)
		VALUES ($1, $2, $3, $4, 0, 0, $5)
		ON CONFLICT (id_deposito, id_insumo)
		DO UPDATE SET cantidad_actual = stock_deposito.cantidad_actual + EXCLUDED.cantidad_actual,
		              fecha_ultimo_movimiento = EXCLUDED.fecha_ultimo_movimiento`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), warehouseID, supplyID, qty, at)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// SubtractQuantity decremento atómico. Si no hay fila para el par es un no-op
// silencioso; la cantidad puede quedar negativa.
func (r *StockRepo) SubtractQuantity(warehouseID, supplyID string, qty int64, at time.Time) error {
	query := `
		UPDATE stock_deposito
		SET cantidad_actual = cantidad_actual - $3, fecha_ultimo_movimiento = $4
		WHERE id_deposito = $1 AND id_insumo = $2`
	_, err := r.q.Exec(context.Background(), query, warehouseID, supplyID, qty, at)
	if err != nil {
		return fmt.Errorf("subtract stock: %w", err)
	}
	return nil
}

// Delete elimina una fila de stock.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_deposito WHERE id_stock_deposito = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock_deposito: %w", err)
	}
	return nil
}
