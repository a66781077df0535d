package orders_test

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/orders"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria: suficientes para verificar el recálculo transaccional del
// total y las reglas de mutación de detalles.
// ──────────────────────────────────────────────────────────────────────────────

type orderStore struct {
	orders   map[string]*entity.PurchaseOrder
	details  map[string]*entity.OrderDetail
	supplies map[string]*entity.Supply
}

func newOrderStore() *orderStore {
	return &orderStore{
		orders:   make(map[string]*entity.PurchaseOrder),
		details:  make(map[string]*entity.OrderDetail),
		supplies: make(map[string]*entity.Supply),
	}
}

func (s *orderStore) repos() orders.TxRepos {
	return orders.TxRepos{
		Orders:   &memOrderRepo{s},
		Details:  &memOrderDetailRepo{s},
		Supplies: &memOrderSupplyRepo{s},
	}
}

type orderTxRunner struct{ s *orderStore }

func (r *orderTxRunner) RunOrders(_ context.Context, fn func(orders.TxRepos) error) error {
	return fn(r.s.repos())
}

type memOrderRepo struct{ s *orderStore }

func (r *memOrderRepo) Create(o *entity.PurchaseOrder) error { r.s.orders[o.ID] = o; return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.s.orders[id], nil
}
func (r *memOrderRepo) GetByNumber(number string) (*entity.PurchaseOrder, error) {
	for _, o := range r.s.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return nil, nil
}
func (r *memOrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}
func (r *memOrderRepo) Update(o *entity.PurchaseOrder) error { r.s.orders[o.ID] = o; return nil }
func (r *memOrderRepo) UpdateTotal(orderID string, total decimal.Decimal) error {
	if o := r.s.orders[orderID]; o != nil {
		o.Total = total
	}
	return nil
}
func (r *memOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	for did, d := range r.s.details {
		if d.OrderID == id {
			delete(r.s.details, did)
		}
	}
	return nil
}

type memOrderDetailRepo struct{ s *orderStore }

func (r *memOrderDetailRepo) Create(d *entity.OrderDetail) error { r.s.details[d.ID] = d; return nil }
func (r *memOrderDetailRepo) GetByID(id string) (*entity.OrderDetail, error) {
	return r.s.details[id], nil
}
func (r *memOrderDetailRepo) ListByOrder(orderID string) ([]*entity.OrderDetail, error) {
	var out []*entity.OrderDetail
	for _, d := range r.s.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memOrderDetailRepo) FindByOrderSupply(orderID, supplyID string) (*entity.OrderDetail, error) {
	for _, d := range r.s.details {
		if d.OrderID == orderID && d.SupplyID == supplyID {
			return d, nil
		}
	}
	return nil, nil
}
func (r *memOrderDetailRepo) Update(d *entity.OrderDetail) error { r.s.details[d.ID] = d; return nil }
func (r *memOrderDetailRepo) Delete(id string) error             { delete(r.s.details, id); return nil }
func (r *memOrderDetailRepo) SumSubtotals(orderID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, d := range r.s.details {
		if d.OrderID == orderID {
			sum = sum.Add(d.Subtotal)
		}
	}
	return sum, nil
}

type memOrderSupplyRepo struct{ s *orderStore }

func (r *memOrderSupplyRepo) Create(sp *entity.Supply) error { r.s.supplies[sp.ID] = sp; return nil }
func (r *memOrderSupplyRepo) GetByID(id string) (*entity.Supply, error) {
	return r.s.supplies[id], nil
}
func (r *memOrderSupplyRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supply, error) {
	return nil, nil
}
func (r *memOrderSupplyRepo) ListWithCriticalStock() ([]*entity.Supply, error) { return nil, nil }
func (r *memOrderSupplyRepo) Update(sp *entity.Supply) error {
	r.s.supplies[sp.ID] = sp
	return nil
}
func (r *memOrderSupplyRepo) Deactivate(id string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	store    *orderStore
	orderUC  *orders.OrderUseCase
	detailUC *orders.DetailUseCase
	supply   *entity.Supply
	supply2  *entity.Supply
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	s := newOrderStore()
	f := &orderFixture{
		store:   s,
		supply:  &entity.Supply{ID: uuid.New().String(), Name: "Jeringas 5ml", Active: true},
		supply2: &entity.Supply{ID: uuid.New().String(), Name: "Gasas estériles", Active: true},
	}
	s.supplies[f.supply.ID] = f.supply
	s.supplies[f.supply2.ID] = f.supply2

	runner := &orderTxRunner{s}
	repos := s.repos()
	f.orderUC = orders.NewOrderUseCase(runner, repos.Orders, repos.Details)
	f.detailUC = orders.NewDetailUseCase(runner, repos.Details)
	return f
}

func (f *orderFixture) crearOrden(t *testing.T) *entity.PurchaseOrder {
	t.Helper()
	order, err := f.orderUC.Create(context.Background(), dto.CreateOrdenRequest{
		NumeroOrden:       "OC-0001",
		IDProveedor:       uuid.New().String(),
		IDUsuarioSolicita: uuid.New().String(),
		Detalles: []dto.DetalleOrdenInlineRequest{
			{IDInsumo: f.supply.ID, CantidadSolicitada: 10, PrecioUnitario: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Total derivado
// ──────────────────────────────────────────────────────────────────────────────

// El total de la orden nace como la suma de los subtotales de sus líneas.
func TestOrden_Create_TotalDesdeLineas(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.orderUC.Create(context.Background(), dto.CreateOrdenRequest{
		NumeroOrden:       "OC-0100",
		IDProveedor:       uuid.New().String(),
		IDUsuarioSolicita: uuid.New().String(),
		Detalles: []dto.DetalleOrdenInlineRequest{
			{IDInsumo: f.supply.ID, CantidadSolicitada: 10, PrecioUnitario: decimal.NewFromInt(100)},
			{IDInsumo: f.supply2.ID, CantidadSolicitada: 3, PrecioUnitario: decimal.NewFromFloat(25.50)},
		},
	})
	require.NoError(t, err)

	// 10×100 + 3×25.50 = 1076.50
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(1076.50)),
		"total esperado 1076.50, obtenido %s", order.Total)
}

// Agregar una línea recalcula el total sumando subtotales vigentes.
func TestOrden_AgregarDetalle_RecalculaTotal(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t) // total 1000

	_, err := f.detailUC.Create(context.Background(), dto.CreateDetalleOrdenRequest{
		IDOrdenCompra:      order.ID,
		IDInsumo:           f.supply2.ID,
		CantidadSolicitada: 5,
		PrecioUnitario:     decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	got := f.store.orders[order.ID].Total
	assert.True(t, got.Equal(decimal.NewFromInt(1200)), "total esperado 1200, obtenido %s", got)
}

// Editar una línea recalcula subtotal y total.
func TestOrden_EditarDetalle_RecalculaTotal(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)
	details, err := f.detailUC.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	cant := int64(4)
	_, err = f.detailUC.Update(context.Background(), details[0].ID, dto.UpdateDetalleOrdenRequest{
		CantidadSolicitada: &cant,
	})
	require.NoError(t, err)

	got := f.store.orders[order.ID].Total
	assert.True(t, got.Equal(decimal.NewFromInt(400)), "total esperado 400, obtenido %s", got)
}

// Borrar la única línea deja el total en 0.
func TestOrden_BorrarDetalle_TotalEnCero(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)
	details, err := f.detailUC.ListByOrder(order.ID)
	require.NoError(t, err)

	require.NoError(t, f.detailUC.Delete(context.Background(), details[0].ID))

	got := f.store.orders[order.ID].Total
	assert.True(t, got.Equal(decimal.Zero), "total esperado 0, obtenido %s", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de mutación
// ──────────────────────────────────────────────────────────────────────────────

// Número de orden repetido es duplicado.
func TestOrden_NumeroDuplicado_Rechazado(t *testing.T) {
	f := newOrderFixture(t)
	f.crearOrden(t)

	_, err := f.orderUC.Create(context.Background(), dto.CreateOrdenRequest{
		NumeroOrden:       "OC-0001",
		IDProveedor:       uuid.New().String(),
		IDUsuarioSolicita: uuid.New().String(),
		Detalles: []dto.DetalleOrdenInlineRequest{
			{IDInsumo: f.supply.ID, CantidadSolicitada: 1, PrecioUnitario: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// (orden, insumo) repetido entre detalles es duplicado.
func TestOrden_DetalleInsumoDuplicado_Rechazado(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)

	_, err := f.detailUC.Create(context.Background(), dto.CreateDetalleOrdenRequest{
		IDOrdenCompra:      order.ID,
		IDInsumo:           f.supply.ID,
		CantidadSolicitada: 2,
		PrecioUnitario:     decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// cantidad_recibida no puede superar cantidad_solicitada.
func TestOrden_RecibidaMayorASolicitada_Invalida(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)
	details, err := f.detailUC.ListByOrder(order.ID)
	require.NoError(t, err)

	recibida := int64(99)
	_, err = f.detailUC.Update(context.Background(), details[0].ID, dto.UpdateDetalleOrdenRequest{
		CantidadRecibida: &recibida,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una orden terminal (RECIBIDA_TOTAL o CANCELADA) no admite cambios en detalles.
func TestOrden_Terminal_DetallesInmutables(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)
	f.store.orders[order.ID].Status = entity.OrderTotalReceived

	_, err := f.detailUC.Create(context.Background(), dto.CreateDetalleOrdenRequest{
		IDOrdenCompra:      order.ID,
		IDInsumo:           f.supply2.ID,
		CantidadSolicitada: 1,
		PrecioUnitario:     decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// La baja de una orden con recepciones registradas devuelve conflicto.
func TestOrden_DeleteConRecepciones_Conflicto(t *testing.T) {
	f := newOrderFixture(t)
	order := f.crearOrden(t)
	f.store.orders[order.ID].Status = entity.OrderPartialReceived

	err := f.orderUC.Delete(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	f.store.orders[order.ID].Status = entity.OrderPending
	assert.NoError(t, f.orderUC.Delete(order.ID))
}
