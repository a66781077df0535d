package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// MovementUseCase motor de movimientos de inventario: alta transaccional de
// cabecera + detalles, transición de estado con aplicación de stock una única
// vez, y baja con la regla de inmutabilidad de movimientos completados.
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	details   repository.MovementDetailRepository
}

// NewMovementUseCase construye el caso de uso. Los repositorios sueltos se
// usan para lecturas fuera de transacción (GetByID, List).
func NewMovementUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	details repository.MovementDetailRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		details:   details,
	}
}

// Create valida y persiste un movimiento con sus detalles como unidad atómica.
// Si el estado inicial es COMPLETADO, la aplicación de stock corre dentro de la
// misma transacción: cualquier falla revierte también cabecera y detalles.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovimientoRequest) (*entity.Movement, error) {
	status := in.EstadoMovimiento
	if status == "" {
		status = entity.MovementPending
	}
	if status != entity.MovementPending && status != entity.MovementCompleted && status != entity.MovementCancelled {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Unicidad (insumo, lote) dentro del mismo request.
	seen := make(map[[2]string]bool, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.IDInsumo == "" || d.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		key := [2]string{d.IDInsumo, d.Lote}
		if seen[key] {
			return nil, domain.ErrDuplicate
		}
		seen[key] = true
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:            uuid.New().String(),
		Date:          now,
		OriginID:      in.IDDepositoOrigen,
		DestinationID: in.IDDepositoDestino,
		TypeID:        in.IDTipoMovimiento,
		ReasonID:      in.IDRazonMovimiento,
		UserID:        in.IDUsuario,
		OrderID:       in.IDOrdenCompra,
		VoucherNumber: in.NumeroComprobante,
		Observations:  in.Observaciones,
		Status:        status,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		mtype, err := r.Types.GetByID(in.IDTipoMovimiento)
		if err != nil {
			return err
		}
		if mtype == nil || !mtype.Active {
			return domain.ErrNotFound
		}
		if in.IDRazonMovimiento != nil {
			reason, err := r.Reasons.GetByID(*in.IDRazonMovimiento)
			if err != nil {
				return err
			}
			if reason == nil {
				return domain.ErrNotFound
			}
			// La razón debe pertenecer al tipo indicado.
			if reason.TypeID != mtype.ID {
				return domain.ErrInvalidInput
			}
		}
		if err := r.Movements.Create(mov); err != nil {
			return err
		}
		created := make([]*entity.MovementDetail, 0, len(in.Detalles))
		for _, d := range in.Detalles {
			det := &entity.MovementDetail{
				ID:         uuid.New().String(),
				MovementID: mov.ID,
				SupplyID:   d.IDInsumo,
				Quantity:   d.Cantidad,
				UnitCost:   d.CostoUnitario,
				Lot:        d.Lote,
				ExpiryDate: d.FechaVencimiento,
			}
			if err := r.Details.Create(det); err != nil {
				return err
			}
			created = append(created, det)
		}
		if status == entity.MovementCompleted {
			return applyStock(r, mov, mtype, created, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Update actualiza comprobante, observaciones y/o estado. Solo la transición
// de un estado no COMPLETADO a COMPLETADO dispara la aplicación de stock, y lo
// hace exactamente una vez; repetir COMPLETADO es una actualización plana.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovimientoRequest) (*entity.Movement, error) {
	var updated *entity.Movement
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		mov, err := r.Movements.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		wasCompleted := mov.Completed()
		if in.NumeroComprobante != nil {
			mov.VoucherNumber = *in.NumeroComprobante
		}
		if in.Observaciones != nil {
			mov.Observations = *in.Observaciones
		}
		if in.EstadoMovimiento != nil {
			mov.Status = *in.EstadoMovimiento
		}
		if err := r.Movements.Update(mov); err != nil {
			return err
		}
		if !wasCompleted && mov.Completed() {
			mtype, err := r.Types.GetByID(mov.TypeID)
			if err != nil {
				return err
			}
			if mtype == nil {
				return domain.ErrNotFound
			}
			details, err := r.Details.ListByMovement(mov.ID)
			if err != nil {
				return err
			}
			if err := applyStock(r, mov, mtype, details, time.Now()); err != nil {
				return err
			}
		}
		updated = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina un movimiento no completado; los detalles caen en cascada.
// Un movimiento COMPLETADO es inmutable y devuelve conflicto.
func (uc *MovementUseCase) Delete(id string) error {
	mov, err := uc.movements.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	if mov.Completed() {
		return domain.ErrConflict
	}
	return uc.movements.Delete(id)
}

// GetByID devuelve el movimiento con sus detalles cargados.
func (uc *MovementUseCase) GetByID(id string) (*entity.Movement, []*entity.MovementDetail, error) {
	mov, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if mov == nil {
		return nil, nil, domain.ErrNotFound
	}
	details, err := uc.details.ListByMovement(id)
	if err != nil {
		return nil, nil, err
	}
	return mov, details, nil
}

// List lista movimientos con filtros y paginación; devuelve el total de filas.
func (uc *MovementUseCase) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, int, error) {
	return uc.movements.List(filter, limit, offset)
}
