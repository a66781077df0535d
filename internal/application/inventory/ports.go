package inventory

import (
	"context"

	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// TxRepos repositorios atados a la transacción del motor de inventario.
type TxRepos struct {
	Movements  repository.MovementRepository
	Details    repository.MovementDetailRepository
	Types      repository.MovementTypeRepository
	Reasons    repository.MovementReasonRepository
	Stock      repository.StockRepository
	Alerts     repository.AlertRepository
	Supplies   repository.SupplyRepository
	Warehouses repository.WarehouseRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: cabecera, detalles y
// aplicación de stock se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
