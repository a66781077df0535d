package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// OrderUseCase alta y gestión de órdenes de compra. El total de la orden es
// siempre la suma de los subtotales de sus detalles.
type OrderUseCase struct {
	txRunner TxRunner
	orders   repository.OrderRepository
	details  repository.OrderDetailRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orders repository.OrderRepository, details repository.OrderDetailRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orders: orders, details: details}
}

// Create crea la orden con sus detalles iniciales en una transacción; el
// total se calcula a partir de las líneas. Número de orden único.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrdenRequest) (*entity.PurchaseOrder, error) {
	status := in.EstadoOrden
	if status == "" {
		status = entity.OrderPending
	}
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, d := range in.Detalles {
		if d.CantidadSolicitada <= 0 || !d.PrecioUnitario.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	total := decimal.Zero
	for _, d := range in.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(d.CantidadSolicitada)))
	}
	order := &entity.PurchaseOrder{
		ID:                uuid.New().String(),
		Number:            in.NumeroOrden,
		SupplierID:        in.IDProveedor,
		UserID:            in.IDUsuarioSolicita,
		OrderDate:         time.Now(),
		EstimatedDelivery: in.FechaEntregaEstimada,
		Status:            status,
		Observations:      in.Observaciones,
		Total:             total,
	}

	err := uc.txRunner.RunOrders(ctx, func(r TxRepos) error {
		existing, err := r.Orders.GetByNumber(in.NumeroOrden)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := r.Orders.Create(order); err != nil {
			return err
		}
		for _, d := range in.Detalles {
			det := &entity.OrderDetail{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				SupplyID:  d.IDInsumo,
				Requested: d.CantidadSolicitada,
				UnitPrice: d.PrecioUnitario,
			}
			det.ComputeSubtotal()
			if err := r.Details.Create(det); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID devuelve la orden con sus detalles cargados.
func (uc *OrderUseCase) GetByID(id string) (*entity.PurchaseOrder, []*entity.OrderDetail, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	details, err := uc.details.ListByOrder(id)
	if err != nil {
		return nil, nil, err
	}
	return order, details, nil
}

// List lista órdenes con filtros y paginación; devuelve el total de filas.
func (uc *OrderUseCase) List(filter repository.OrderFilter, limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	return uc.orders.List(filter, limit, offset)
}

// Update actualiza la cabecera (estado, entrega estimada, observaciones).
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrdenRequest) (*entity.PurchaseOrder, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.FechaEntregaEstimada != nil {
		order.EstimatedDelivery = in.FechaEntregaEstimada
	}
	if in.EstadoOrden != nil {
		order.Status = *in.EstadoOrden
	}
	if in.Observaciones != nil {
		order.Observations = *in.Observaciones
	}
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina una orden que aún no fue recibida; los detalles caen en
// cascada. Una orden RECIBIDA_PARCIAL o RECIBIDA_TOTAL es inmutable.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.OrderPartialReceived || order.Status == entity.OrderTotalReceived {
		return domain.ErrConflict
	}
	return uc.orders.Delete(id)
}
