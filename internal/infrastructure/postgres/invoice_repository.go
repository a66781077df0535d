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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id_factura, numero_factura, fecha_emision, fecha_vencimiento, monto_total, id_proveedor, id_orden_compra, estado_factura, observaciones`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var f entity.Invoice
	err := row.Scan(
		&f.ID, &f.Number, &f.IssueDate, &f.DueDate, &f.Total,
		&f.SupplierID, &f.OrderID, &f.Status, &f.Observations,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste una factura. (numero, proveedor) único.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO factura_proveedor (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.IssueDate, invoice.DueDate, invoice.Total,
		invoice.SupplierID, invoice.OrderID, invoice.Status, invoice.Observations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM factura_proveedor WHERE id_factura = $1`
	f, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return f, nil
}

// FindByNumberSupplier resuelve la unicidad (numero_factura, proveedor). nil, nil si no existe.
func (r *InvoiceRepo) FindByNumberSupplier(number, supplierID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM factura_proveedor WHERE numero_factura = $1 AND id_proveedor = $2`
	f, err := scanInvoice(r.q.QueryRow(context.Background(), query, number, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find factura: %w", err)
	}
	return f, nil
}

// List lista facturas por filtros con paginación; devuelve el total de filas.
// OnlyOverdue limita a pendientes con vencimiento anterior a filter.Now.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND estado_factura = $%d`, len(args))
	}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		where += fmt.Sprintf(` AND id_proveedor = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(` AND fecha_emision >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(` AND fecha_emision <= $%d`, len(args))
	}
	if filter.OnlyOverdue {
		args = append(args, filter.Now)
		where += fmt.Sprintf(` AND estado_factura = 'PENDIENTE' AND fecha_vencimiento < $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM factura_proveedor`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count facturas: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + invoiceColumns + ` FROM factura_proveedor` + where +
		fmt.Sprintf(` ORDER BY fecha_emision DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		f, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, total, rows.Err()
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE factura_proveedor
		SET fecha_vencimiento = $2, monto_total = $3, estado_factura = $4, observaciones = $5
		WHERE id_factura = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.DueDate, invoice.Total, invoice.Status, invoice.Observations,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// Delete elimina una factura.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM factura_proveedor WHERE id_factura = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}
