package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// StockUseCase ediciones directas del stock por depósito. La actualización de
// cantidad corre en la misma transacción que el chequeo-y-alta de la alerta,
// para que nunca se observe un estado intermedio.
type StockUseCase struct {
	txRunner TxRunner
	stock    repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, stock repository.StockRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, stock: stock}
}

// Create registra la fila de stock para un par (deposito, insumo) que aún no
// la tiene. Invariantes: cantidad >= 0, stock_critico <= stock_minimo.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*entity.StockRow, error) {
	if in.CantidadActual < 0 || in.StockMinimo < 0 || in.StockCritico < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.StockCritico > in.StockMinimo {
		return nil, domain.ErrInvalidInput
	}
	row := &entity.StockRow{
		ID:            uuid.New().String(),
		WarehouseID:   in.IDDeposito,
		SupplyID:      in.IDInsumo,
		Quantity:      in.CantidadActual,
		MinimumStock:  in.StockMinimo,
		CriticalStock: in.StockCritico,
	}
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		existing, err := r.Stock.GetByWarehouseSupply(in.IDDeposito, in.IDInsumo)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return r.Stock.Create(row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Update edita cantidad y/o umbrales. Siempre que el body trae cantidad_actual
// se reevalúan los umbrales y se genera la alerta dentro de la misma
// transacción (dedup contra ACTIVAS), aunque la cantidad no haya cambiado:
// el cliente pudo haber bajado un umbral en el mismo request.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*entity.StockRow, error) {
	var row *entity.StockRow
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		var err error
		row, err = r.Stock.GetByID(id)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		quantityProvided := in.CantidadActual != nil
		if quantityProvided {
			if *in.CantidadActual < 0 {
				return domain.ErrInvalidInput
			}
			if *in.CantidadActual != row.Quantity {
				now := time.Now()
				row.LastMovement = &now
			}
			row.Quantity = *in.CantidadActual
		}
		if in.FechaUltimoMov != nil {
			row.LastMovement = in.FechaUltimoMov
		}
		if in.StockMinimo != nil {
			row.MinimumStock = *in.StockMinimo
		}
		if in.StockCritico != nil {
			row.CriticalStock = *in.StockCritico
		}
		// Invariante validado contra los valores resultantes, no solo los del body.
		if row.CriticalStock > row.MinimumStock {
			return domain.ErrInvalidInput
		}
		if err := r.Stock.Update(row); err != nil {
			return err
		}
		if quantityProvided {
			supplyName, warehouseName, err := stockNames(r, row)
			if err != nil {
				return err
			}
			return alerts.EnsureStockAlert(r.Alerts, row, supplyName, warehouseName)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetByID devuelve una fila de stock por su ID.
func (uc *StockUseCase) GetByID(id string) (*entity.StockRow, error) {
	row, err := uc.stock.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

// List lista filas de stock con filtros opcionales por depósito e insumo.
func (uc *StockUseCase) List(filter repository.StockFilter) ([]*entity.StockRow, error) {
	return uc.stock.List(filter)
}

// Delete elimina una fila de stock solo si su cantidad es 0, limpiando en la
// misma transacción las alertas del par (insumo, deposito).
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		row, err := r.Stock.GetByID(id)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if row.Quantity > 0 {
			return domain.ErrConflict
		}
		if err := r.Alerts.DeleteByStockPair(row.SupplyID, row.WarehouseID); err != nil {
			return err
		}
		return r.Stock.Delete(id)
	})
}

// stockNames resuelve nombres legibles de insumo y depósito para el mensaje de
// alerta, con el ID como respaldo.
func stockNames(r TxRepos, row *entity.StockRow) (string, string, error) {
	supplyName, warehouseName := row.SupplyID, row.WarehouseID
	supply, err := r.Supplies.GetByID(row.SupplyID)
	if err != nil {
		return "", "", err
	}
	if supply != nil {
		supplyName = supply.Name
	}
	warehouse, err := r.Warehouses.GetByID(row.WarehouseID)
	if err != nil {
		return "", "", err
	}
	if warehouse != nil {
		warehouseName = warehouse.Name
	}
	return supplyName, warehouseName, nil
}
