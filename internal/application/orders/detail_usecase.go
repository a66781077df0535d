package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// DetailUseCase gestiona los detalles de orden de compra. Cada mutación
// recalcula el total de la orden dentro de la misma transacción, sumando los
// subtotales vigentes: el total nunca se ajusta incrementalmente.
type DetailUseCase struct {
	txRunner TxRunner
	details  repository.OrderDetailRepository
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(txRunner TxRunner, details repository.OrderDetailRepository) *DetailUseCase {
	return &DetailUseCase{txRunner: txRunner, details: details}
}

// guardOrder carga la orden y rechaza mutaciones sobre órdenes terminales.
func guardOrder(r TxRepos, orderID string) (*entity.PurchaseOrder, error) {
	order, err := r.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Terminal() {
		return nil, domain.ErrConflict
	}
	return order, nil
}

// refreshTotal re-suma los subtotales y escribe el total de la orden.
func refreshTotal(r TxRepos, orderID string) error {
	total, err := r.Details.SumSubtotals(orderID)
	if err != nil {
		return err
	}
	return r.Orders.UpdateTotal(orderID, total)
}

// Create agrega una línea a una orden abierta. Unicidad (orden, insumo).
func (uc *DetailUseCase) Create(ctx context.Context, in dto.CreateDetalleOrdenRequest) (*entity.OrderDetail, error) {
	if in.CantidadRecibida > in.CantidadSolicitada {
		return nil, domain.ErrInvalidInput
	}
	if !in.PrecioUnitario.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	detail := &entity.OrderDetail{
		ID:        uuid.New().String(),
		OrderID:   in.IDOrdenCompra,
		SupplyID:  in.IDInsumo,
		Requested: in.CantidadSolicitada,
		Received:  in.CantidadRecibida,
		UnitPrice: in.PrecioUnitario,
	}
	detail.ComputeSubtotal()

	err := uc.txRunner.RunOrders(ctx, func(r TxRepos) error {
		if _, err := guardOrder(r, in.IDOrdenCompra); err != nil {
			return err
		}
		supply, err := r.Supplies.GetByID(in.IDInsumo)
		if err != nil {
			return err
		}
		if supply == nil {
			return domain.ErrNotFound
		}
		existing, err := r.Details.FindByOrderSupply(in.IDOrdenCompra, in.IDInsumo)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := r.Details.Create(detail); err != nil {
			return err
		}
		return refreshTotal(r, in.IDOrdenCompra)
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Update modifica cantidades o precio de una línea y recalcula subtotal y
// total. cantidad_recibida nunca puede superar cantidad_solicitada.
func (uc *DetailUseCase) Update(ctx context.Context, id string, in dto.UpdateDetalleOrdenRequest) (*entity.OrderDetail, error) {
	var detail *entity.OrderDetail
	err := uc.txRunner.RunOrders(ctx, func(r TxRepos) error {
		var err error
		detail, err = r.Details.GetByID(id)
		if err != nil {
			return err
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		if _, err := guardOrder(r, detail.OrderID); err != nil {
			return err
		}

		if in.CantidadSolicitada != nil {
			detail.Requested = *in.CantidadSolicitada
		}
		if in.CantidadRecibida != nil {
			detail.Received = *in.CantidadRecibida
		}
		if in.PrecioUnitario != nil {
			if !in.PrecioUnitario.IsPositive() {
				return domain.ErrInvalidInput
			}
			detail.UnitPrice = *in.PrecioUnitario
		}
		if detail.Received > detail.Requested {
			return domain.ErrInvalidInput
		}
		detail.ComputeSubtotal()

		if err := r.Details.Update(detail); err != nil {
			return err
		}
		return refreshTotal(r, detail.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete elimina la línea y recalcula el total de la orden.
func (uc *DetailUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunOrders(ctx, func(r TxRepos) error {
		detail, err := r.Details.GetByID(id)
		if err != nil {
			return err
		}
		if detail == nil {
			return domain.ErrNotFound
		}
		if _, err := guardOrder(r, detail.OrderID); err != nil {
			return err
		}
		if err := r.Details.Delete(id); err != nil {
			return err
		}
		return refreshTotal(r, detail.OrderID)
	})
}

// GetByID devuelve una línea por id.
func (uc *DetailUseCase) GetByID(id string) (*entity.OrderDetail, error) {
	detail, err := uc.details.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// ListByOrder lista las líneas de una orden.
func (uc *DetailUseCase) ListByOrder(orderID string) ([]*entity.OrderDetail, error) {
	return uc.details.ListByOrder(orderID)
}
