package orders

import (
	"context"

	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// TxRepos repositorios atados a la transacción de órdenes de compra.
type TxRepos struct {
	Orders   repository.OrderRepository
	Details  repository.OrderDetailRepository
	Supplies repository.SupplyRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD. La mutación de
// un detalle y el recálculo del total de su orden confirman o revierten juntos.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(r TxRepos) error) error
}
