package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// DetailUseCase CRUD de detalles de movimiento sueltos. Los detalles de un
// movimiento COMPLETADO son inmutables: su efecto ya fue aplicado al stock.
type DetailUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	details   repository.MovementDetailRepository
	supplies  repository.SupplyRepository
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	details repository.MovementDetailRepository,
	supplies repository.SupplyRepository,
) *DetailUseCase {
	return &DetailUseCase{txRunner: txRunner, movements: movements, details: details, supplies: supplies}
}

// Create agrega un detalle a un movimiento existente no completado.
// Unicidad: (movimiento, insumo, lote).
func (uc *DetailUseCase) Create(ctx context.Context, in dto.CreateDetalleMovimientoRequest) (*entity.MovementDetail, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var det *entity.MovementDetail
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		mov, err := r.Movements.GetByID(in.IDMovimiento)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Completed() {
			return domain.ErrConflict
		}
		supply, err := r.Supplies.GetByID(in.IDInsumo)
		if err != nil {
			return err
		}
		if supply == nil {
			return domain.ErrNotFound
		}
		existing, err := r.Details.FindByMovementSupplyLot(in.IDMovimiento, in.IDInsumo, in.Lote)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		det = &entity.MovementDetail{
			ID:         uuid.New().String(),
			MovementID: in.IDMovimiento,
			SupplyID:   in.IDInsumo,
			Quantity:   in.Cantidad,
			UnitCost:   in.CostoUnitario,
			Lot:        in.Lote,
			ExpiryDate: in.FechaVencimiento,
		}
		return r.Details.Create(det)
	})
	if err != nil {
		return nil, err
	}
	return det, nil
}

// Update modifica un detalle de un movimiento no completado.
func (uc *DetailUseCase) Update(ctx context.Context, id string, in dto.UpdateDetalleMovimientoRequest) (*entity.MovementDetail, error) {
	var det *entity.MovementDetail
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		var err error
		det, err = r.Details.GetByID(id)
		if err != nil {
			return err
		}
		if det == nil {
			return domain.ErrNotFound
		}
		mov, err := r.Movements.GetByID(det.MovementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Completed() {
			return domain.ErrConflict
		}
		if in.Cantidad != nil {
			if *in.Cantidad <= 0 {
				return domain.ErrInvalidInput
			}
			det.Quantity = *in.Cantidad
		}
		if in.CostoUnitario != nil {
			det.UnitCost = in.CostoUnitario
		}
		if in.Lote != nil {
			det.Lot = *in.Lote
		}
		if in.FechaVencimiento != nil {
			det.ExpiryDate = in.FechaVencimiento
		}
		return r.Details.Update(det)
	})
	if err != nil {
		return nil, err
	}
	return det, nil
}

// Delete elimina un detalle de un movimiento no completado.
func (uc *DetailUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		det, err := r.Details.GetByID(id)
		if err != nil {
			return err
		}
		if det == nil {
			return domain.ErrNotFound
		}
		mov, err := r.Movements.GetByID(det.MovementID)
		if err != nil {
			return err
		}
		if mov != nil && mov.Completed() {
			return domain.ErrConflict
		}
		return r.Details.Delete(id)
	})
}

// GetByID devuelve un detalle por ID.
func (uc *DetailUseCase) GetByID(id string) (*entity.MovementDetail, error) {
	det, err := uc.details.GetByID(id)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrNotFound
	}
	return det, nil
}

// ListByMovement lista los detalles de un movimiento.
func (uc *DetailUseCase) ListByMovement(movementID string) ([]*entity.MovementDetail, error) {
	return uc.details.ListByMovement(movementID)
}
