package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: un depósito, un insumo, un tipo POSITIVO y uno NEGATIVO.
// ──────────────────────────────────────────────────────────────────────────────

type motorFixture struct {
	store      *memStore
	uc         *inventory.MovementUseCase
	warehouse  *entity.Warehouse
	supply     *entity.Supply
	typeIn     *entity.MovementType // POSITIVO
	typeOut    *entity.MovementType // NEGATIVO
	typeNeutro *entity.MovementType
	userID     string
}

func newMotorFixture(t *testing.T) *motorFixture {
	t.Helper()
	s := newMemStore()
	f := &motorFixture{
		store:      s,
		warehouse:  &entity.Warehouse{ID: uuid.New().String(), Name: "Depósito Central", Active: true},
		supply:     &entity.Supply{ID: uuid.New().String(), Name: "Guantes de nitrilo", Active: true},
		typeIn:     &entity.MovementType{ID: uuid.New().String(), Name: "Compra", StockEffect: entity.StockEffectPositive, Active: true},
		typeOut:    &entity.MovementType{ID: uuid.New().String(), Name: "Consumo", StockEffect: entity.StockEffectNegative, Active: true},
		typeNeutro: &entity.MovementType{ID: uuid.New().String(), Name: "Recuento", StockEffect: entity.StockEffectNeutral, Active: true},
		userID:     uuid.New().String(),
	}
	s.warehouses[f.warehouse.ID] = f.warehouse
	s.supplies[f.supply.ID] = f.supply
	s.types[f.typeIn.ID] = f.typeIn
	s.types[f.typeOut.ID] = f.typeOut
	s.types[f.typeNeutro.ID] = f.typeNeutro

	repos := s.repos()
	f.uc = inventory.NewMovementUseCase(&memTxRunner{s}, repos.Movements, repos.Details)
	return f
}

// entrada arma un request COMPLETADO de tipo POSITIVO hacia el depósito del fixture.
func (f *motorFixture) entrada(qty int64) dto.CreateMovimientoRequest {
	return dto.CreateMovimientoRequest{
		IDDepositoDestino: &f.warehouse.ID,
		IDTipoMovimiento:  f.typeIn.ID,
		IDUsuario:         f.userID,
		EstadoMovimiento:  entity.MovementCompleted,
		Detalles: []dto.DetalleMovimientoRequest{
			{IDInsumo: f.supply.ID, Cantidad: qty},
		},
	}
}

// salida arma un request COMPLETADO de tipo NEGATIVO desde el depósito del fixture.
func (f *motorFixture) salida(qty int64) dto.CreateMovimientoRequest {
	return dto.CreateMovimientoRequest{
		IDDepositoOrigen: &f.warehouse.ID,
		IDTipoMovimiento: f.typeOut.ID,
		IDUsuario:        f.userID,
		EstadoMovimiento: entity.MovementCompleted,
		Detalles: []dto.DetalleMovimientoRequest{
			{IDInsumo: f.supply.ID, Cantidad: qty},
		},
	}
}

func (f *motorFixture) stockActual(t *testing.T) int64 {
	t.Helper()
	repos := f.store.repos()
	row, err := repos.Stock.GetByWarehouseSupply(f.warehouse.ID, f.supply.ID)
	require.NoError(t, err)
	require.NotNil(t, row, "debe existir la fila de stock")
	return row.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de stock
// ──────────────────────────────────────────────────────────────────────────────

// Un movimiento POSITIVO completado crea la fila de stock con la cantidad.
func TestMovimiento_EntradaCompletada_CreaStock(t *testing.T) {
	f := newMotorFixture(t)

	mov, err := f.uc.Create(context.Background(), f.entrada(10))
	require.NoError(t, err)
	assert.Equal(t, entity.MovementCompleted, mov.Status)
	assert.Equal(t, int64(10), f.stockActual(t))
}

// Un NEGATIVO posterior descuenta del mismo par (deposito, insumo).
func TestMovimiento_SalidaCompletada_DescuentaStock(t *testing.T) {
	f := newMotorFixture(t)

	_, err := f.uc.Create(context.Background(), f.entrada(10))
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), f.salida(4))
	require.NoError(t, err)

	assert.Equal(t, int64(6), f.stockActual(t))
}

// Restar sobre un par sin fila de stock es un no-op silencioso: no crea fila
// y el movimiento igual queda COMPLETADO.
func TestMovimiento_SalidaSinFilaDeStock_NoOp(t *testing.T) {
	f := newMotorFixture(t)

	mov, err := f.uc.Create(context.Background(), f.salida(5))
	require.NoError(t, err)
	assert.Equal(t, entity.MovementCompleted, mov.Status)

	row, err := f.store.repos().Stock.GetByWarehouseSupply(f.warehouse.ID, f.supply.ID)
	require.NoError(t, err)
	assert.Nil(t, row, "la resta no debe crear la fila")
}

// El stock puede quedar negativo: no se valida stock suficiente.
func TestMovimiento_StockNegativoPermitido(t *testing.T) {
	f := newMotorFixture(t)

	_, err := f.uc.Create(context.Background(), f.entrada(3))
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), f.salida(8))
	require.NoError(t, err)

	assert.Equal(t, int64(-5), f.stockActual(t))
}

// Un tipo NEUTRO completado no toca el stock.
func TestMovimiento_TipoNeutro_NoTocaStock(t *testing.T) {
	f := newMotorFixture(t)

	_, err := f.uc.Create(context.Background(), f.entrada(10))
	require.NoError(t, err)

	in := f.entrada(99)
	in.IDTipoMovimiento = f.typeNeutro.ID
	_, err = f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.stockActual(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transición de estado: aplicar una única vez
// ──────────────────────────────────────────────────────────────────────────────

// PENDIENTE → COMPLETADO aplica stock en la transición.
func TestMovimiento_TransicionACompletado_AplicaStock(t *testing.T) {
	f := newMotorFixture(t)

	in := f.entrada(7)
	in.EstadoMovimiento = entity.MovementPending
	mov, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	row, err := f.store.repos().Stock.GetByWarehouseSupply(f.warehouse.ID, f.supply.ID)
	require.NoError(t, err)
	assert.Nil(t, row, "un movimiento PENDIENTE no debe tocar stock")

	completed := entity.MovementCompleted
	_, err = f.uc.Update(context.Background(), mov.ID, dto.UpdateMovimientoRequest{EstadoMovimiento: &completed})
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.stockActual(t))
}

// Repetir COMPLETADO sobre un movimiento ya completado no re-aplica el efecto.
func TestMovimiento_RecompletarNoReaplicaStock(t *testing.T) {
	f := newMotorFixture(t)

	mov, err := f.uc.Create(context.Background(), f.entrada(10))
	require.NoError(t, err)
	require.Equal(t, int64(10), f.stockActual(t))

	completed := entity.MovementCompleted
	_, err = f.uc.Update(context.Background(), mov.ID, dto.UpdateMovimientoRequest{EstadoMovimiento: &completed})
	require.NoError(t, err)

	assert.Equal(t, int64(10), f.stockActual(t), "el delta no debe aplicarse dos veces")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y bajas
// ──────────────────────────────────────────────────────────────────────────────

// Sin detalles el alta es inválida.
func TestMovimiento_SinDetalles_Invalido(t *testing.T) {
	f := newMotorFixture(t)

	in := f.entrada(1)
	in.Detalles = nil
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// (insumo, lote) repetido dentro del mismo request es duplicado.
func TestMovimiento_DetalleDuplicadoEnRequest_Rechazado(t *testing.T) {
	f := newMotorFixture(t)

	in := f.entrada(5)
	in.Detalles = append(in.Detalles, dto.DetalleMovimientoRequest{IDInsumo: f.supply.ID, Cantidad: 3})
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// La razón debe pertenecer al tipo del movimiento.
func TestMovimiento_RazonDeOtroTipo_Invalida(t *testing.T) {
	f := newMotorFixture(t)
	reason := &entity.MovementReason{ID: uuid.New().String(), Name: "Rotura", TypeID: f.typeOut.ID}
	f.store.reasons[reason.ID] = reason

	in := f.entrada(5)
	in.IDRazonMovimiento = &reason.ID
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un movimiento COMPLETADO es inmutable: la baja devuelve conflicto.
func TestMovimiento_DeleteCompletado_Conflicto(t *testing.T) {
	f := newMotorFixture(t)

	mov, err := f.uc.Create(context.Background(), f.entrada(10))
	require.NoError(t, err)

	err = f.uc.Delete(mov.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// La baja de un PENDIENTE elimina cabecera y detalles en cascada.
func TestMovimiento_DeletePendiente_CascadaDetalles(t *testing.T) {
	f := newMotorFixture(t)

	in := f.entrada(10)
	in.EstadoMovimiento = entity.MovementPending
	mov, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(mov.ID))

	details, err := f.store.repos().Details.ListByMovement(mov.ID)
	require.NoError(t, err)
	assert.Empty(t, details)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas generadas por el motor
// ──────────────────────────────────────────────────────────────────────────────

// Cruzar el umbral crítico al descontar genera una alerta STOCK_CRITICO con
// los nombres legibles en el mensaje.
func TestMovimiento_CruceUmbralCritico_GeneraAlerta(t *testing.T) {
	f := newMotorFixture(t)

	// Fila preexistente con umbrales: min 5, crítico 2.
	row := &entity.StockRow{
		ID:            uuid.New().String(),
		WarehouseID:   f.warehouse.ID,
		SupplyID:      f.supply.ID,
		Quantity:      10,
		MinimumStock:  5,
		CriticalStock: 2,
	}
	f.store.stock[row.ID] = row

	_, err := f.uc.Create(context.Background(), f.salida(9))
	require.NoError(t, err)
	require.Equal(t, int64(1), f.stockActual(t))

	alert, err := f.store.repos().Alerts.FindActive(f.supply.ID, f.warehouse.ID, entity.AlertTypeCritical)
	require.NoError(t, err)
	require.NotNil(t, alert, "debe existir una alerta ACTIVA de stock crítico")
	assert.Contains(t, alert.Message, "Guantes de nitrilo")
	assert.Contains(t, alert.Message, "Depósito Central")
}

// Una segunda caída bajo el mismo umbral no duplica la alerta ACTIVA.
func TestMovimiento_AlertaActivaNoSeDuplica(t *testing.T) {
	f := newMotorFixture(t)

	row := &entity.StockRow{
		ID:            uuid.New().String(),
		WarehouseID:   f.warehouse.ID,
		SupplyID:      f.supply.ID,
		Quantity:      10,
		MinimumStock:  5,
		CriticalStock: 2,
	}
	f.store.stock[row.ID] = row

	_, err := f.uc.Create(context.Background(), f.salida(9))
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), f.salida(1))
	require.NoError(t, err)

	count := 0
	for _, a := range f.store.alerts {
		if a.Type == entity.AlertTypeCritical && a.Status == entity.AlertActive {
			count++
		}
	}
	assert.Equal(t, 1, count, "a lo sumo una alerta ACTIVA por (insumo, deposito, tipo)")
}
