package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `id_alerta, tipo_alerta, mensaje, id_insumo, id_deposito, id_usuario_asignado, estado_alerta, fecha_creacion, fecha_resolucion`

func scanAlert(row pgx.Row) (*entity.StockAlert, error) {
	var a entity.StockAlert
	err := row.Scan(
		&a.ID, &a.Type, &a.Message, &a.SupplyID, &a.WarehouseID,
		&a.AssignedUserID, &a.Status, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una alerta.
func (r *AlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO alerta_stock (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Type, alert.Message, alert.SupplyID, alert.WarehouseID,
		alert.AssignedUserID, alert.Status, alert.CreatedAt, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alerta: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerta_stock WHERE id_alerta = $1`
	a, err := scanAlert(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return a, nil
}

// List lista alertas por filtros con paginación; devuelve el total de filas.
func (r *AlertRepo) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND estado_alerta = $%d`, len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(` AND tipo_alerta = $%d`, len(args))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(` AND id_deposito = $%d`, len(args))
	}
	if filter.AssignedUserID != "" {
		args = append(args, filter.AssignedUserID)
		where += fmt.Sprintf(` AND id_usuario_asignado = $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM alerta_stock`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count alertas: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + alertColumns + ` FROM alerta_stock` + where +
		fmt.Sprintf(` ORDER BY fecha_creacion DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// FindActive busca una alerta ACTIVA para (insumo, deposito, tipo). nil, nil si no hay.
func (r *AlertRepo) FindActive(supplyID, warehouseID, alertType string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerta_stock
		WHERE id_insumo = $1 AND id_deposito = $2 AND tipo_alerta = $3 AND estado_alerta = $4
		LIMIT 1`
	a, err := scanAlert(r.q.QueryRow(context.Background(), query, supplyID, warehouseID, alertType, entity.AlertActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find alerta activa: %w", err)
	}
	return a, nil
}

// Update actualiza estado, asignación y fecha de resolución.
func (r *AlertRepo) Update(alert *entity.StockAlert) error {
	query := `
		UPDATE alerta_stock
		SET mensaje = $2, id_usuario_asignado = $3, estado_alerta = $4, fecha_resolucion = $5
		WHERE id_alerta = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Message, alert.AssignedUserID, alert.Status, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update alerta: %w", err)
	}
	return nil
}

// Delete elimina una alerta.
func (r *AlertRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alerta_stock WHERE id_alerta = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alerta: %w", err)
	}
	return nil
}

// DeleteByStockPair elimina todas las alertas de un par (insumo, deposito).
func (r *AlertRepo) DeleteByStockPair(supplyID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM alerta_stock WHERE id_insumo = $1 AND id_deposito = $2`, supplyID, warehouseID)
	if err != nil {
		return fmt.Errorf("delete alertas por par: %w", err)
	}
	return nil
}
