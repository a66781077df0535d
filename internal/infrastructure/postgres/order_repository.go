package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)
var _ repository.OrderDetailRepository = (*OrderDetailRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id_orden_compra, numero_orden, id_proveedor, id_usuario_solicita, fecha_orden, fecha_entrega_estimada, estado_orden, observaciones, total_orden`

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.Number, &o.SupplierID, &o.UserID, &o.OrderDate,
		&o.EstimatedDelivery, &o.Status, &o.Observations, &o.Total,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden de compra. Número único.
func (r *OrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO orden_compra (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.SupplierID, order.UserID, order.OrderDate,
		order.EstimatedDelivery, order.Status, order.Observations, order.Total,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden_compra: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM orden_compra WHERE id_orden_compra = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden_compra: %w", err)
	}
	return o, nil
}

// GetByNumber obtiene una orden por número. nil, nil si no existe.
func (r *OrderRepo) GetByNumber(number string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM orden_compra WHERE numero_orden = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden por numero: %w", err)
	}
	return o, nil
}

// List lista órdenes por filtros con paginación; devuelve el total de filas.
func (r *OrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND estado_orden = $%d`, len(args))
	}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		where += fmt.Sprintf(` AND id_proveedor = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(` AND fecha_orden >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(` AND fecha_orden <= $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM orden_compra`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ordenes: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + orderColumns + ` FROM orden_compra` + where +
		fmt.Sprintf(` ORDER BY fecha_orden DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan orden_compra: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

// Update actualiza la cabecera de una orden.
func (r *OrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE orden_compra
		SET fecha_entrega_estimada = $2, estado_orden = $3, observaciones = $4
		WHERE id_orden_compra = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.EstimatedDelivery, order.Status, order.Observations,
	)
	if err != nil {
		return fmt.Errorf("update orden_compra: %w", err)
	}
	return nil
}

// UpdateTotal escribe el total recalculado de la orden.
func (r *OrderRepo) UpdateTotal(orderID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orden_compra SET total_orden = $2 WHERE id_orden_compra = $1`, orderID, total)
	if err != nil {
		return fmt.Errorf("update total orden: %w", err)
	}
	return nil
}

// Delete elimina una orden; los detalles caen por FK ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orden_compra WHERE id_orden_compra = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orden_compra: %w", err)
	}
	return nil
}

// OrderDetailRepo implementación de OrderDetailRepository sobre PostgreSQL (usable con pool o tx).
type OrderDetailRepo struct {
	q Querier
}

// NewOrderDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderDetailRepository(q Querier) *OrderDetailRepo {
	return &OrderDetailRepo{q: q}
}

const orderDetailColumns = `id_detalle_orden, id_orden_compra, id_insumo, cantidad_solicitada, cantidad_recibida, precio_unitario, subtotal`

func scanOrderDetail(row pgx.Row) (*entity.OrderDetail, error) {
	var d entity.OrderDetail
	err := row.Scan(&d.ID, &d.OrderID, &d.SupplyID, &d.Requested, &d.Received, &d.UnitPrice, &d.Subtotal)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste un detalle de orden. Único por (orden, insumo).
func (r *OrderDetailRepo) Create(detail *entity.OrderDetail) error {
	query := `
		INSERT INTO detalle_orden_compra (` + orderDetailColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.OrderID, detail.SupplyID, detail.Requested,
		detail.Received, detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert detalle_orden: %w", err)
	}
	return nil
}

// GetByID obtiene un detalle de orden por ID.
func (r *OrderDetailRepo) GetByID(id string) (*entity.OrderDetail, error) {
	query := `SELECT ` + orderDetailColumns + ` FROM detalle_orden_compra WHERE id_detalle_orden = $1`
	d, err := scanOrderDetail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle_orden: %w", err)
	}
	return d, nil
}

// ListByOrder lista los detalles de una orden.
func (r *OrderDetailRepo) ListByOrder(orderID string) ([]*entity.OrderDetail, error) {
	query := `SELECT ` + orderDetailColumns + ` FROM detalle_orden_compra WHERE id_orden_compra = $1 ORDER BY id_detalle_orden`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list detalles_orden: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		d, err := scanOrderDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle_orden: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// FindByOrderSupply resuelve la unicidad (orden, insumo). nil, nil si no existe.
func (r *OrderDetailRepo) FindByOrderSupply(orderID, supplyID string) (*entity.OrderDetail, error) {
	query := `SELECT ` + orderDetailColumns + ` FROM detalle_orden_compra
		WHERE id_orden_compra = $1 AND id_insumo = $2`
	d, err := scanOrderDetail(r.q.QueryRow(context.Background(), query, orderID, supplyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find detalle_orden: %w", err)
	}
	return d, nil
}

// Update actualiza un detalle de orden.
func (r *OrderDetailRepo) Update(detail *entity.OrderDetail) error {
	query := `
		UPDATE detalle_orden_compra
		SET cantidad_solicitada = $2, cantidad_recibida = $3, precio_unitario = $4, subtotal = $5
		WHERE id_detalle_orden = $1`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.Requested, detail.Received, detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update detalle_orden: %w", err)
	}
	return nil
}

// Delete elimina un detalle de orden.
func (r *OrderDetailRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detalle_orden_compra WHERE id_detalle_orden = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle_orden: %w", err)
	}
	return nil
}

// SumSubtotals suma los subtotales vigentes de la orden (0 si no hay detalles).
func (r *OrderDetailRepo) SumSubtotals(orderID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(subtotal), 0) FROM detalle_orden_compra WHERE id_orden_compra = $1`,
		orderID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum subtotales: %w", err)
	}
	return total, nil
}
