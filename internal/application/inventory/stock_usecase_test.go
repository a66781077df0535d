package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

func newStockFixture(t *testing.T) (*memStore, *inventory.StockUseCase, *entity.Warehouse, *entity.Supply) {
	t.Helper()
	s := newMemStore()
	wh := &entity.Warehouse{ID: uuid.New().String(), Name: "Depósito Norte", Active: true}
	sp := &entity.Supply{ID: uuid.New().String(), Name: "Alcohol etílico", Active: true}
	s.warehouses[wh.ID] = wh
	s.supplies[sp.ID] = sp
	uc := inventory.NewStockUseCase(&memTxRunner{s}, s.repos().Stock)
	return s, uc, wh, sp
}

func TestStock_Create_ParDuplicado_Rechazado(t *testing.T) {
	_, uc, wh, sp := newStockFixture(t)

	in := dto.CreateStockRequest{IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 5, StockMinimo: 3, StockCritico: 1}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// stock_critico no puede superar stock_minimo, ni en alta ni tras un update
// parcial que deje los valores combinados en violación.
func TestStock_InvarianteUmbrales(t *testing.T) {
	_, uc, wh, sp := newStockFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 5, StockMinimo: 2, StockCritico: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	row, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 5, StockMinimo: 4, StockCritico: 2,
	})
	require.NoError(t, err)

	// Subir solo el crítico por encima del mínimo vigente también es inválido.
	critico := int64(9)
	_, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{StockCritico: &critico})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Editar la cantidad por debajo del umbral genera la alerta en la misma
// operación; repetir la edición no la duplica.
func TestStock_UpdateCantidad_GeneraAlertaConDedup(t *testing.T) {
	s, uc, wh, sp := newStockFixture(t)

	row, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 10, StockMinimo: 5, StockCritico: 2,
	})
	require.NoError(t, err)

	baja := int64(4)
	_, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{CantidadActual: &baja})
	require.NoError(t, err)

	alert, err := s.repos().Alerts.FindActive(sp.ID, wh.ID, entity.AlertTypeMinimum)
	require.NoError(t, err)
	require.NotNil(t, alert, "debe generarse la alerta STOCK_MINIMO")

	otra := int64(3)
	_, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{CantidadActual: &otra})
	require.NoError(t, err)

	assert.Len(t, s.alerts, 1, "la alerta ACTIVA equivalente no debe duplicarse")
}

// Reenviar la misma cantidad con un umbral recién bajado en el mismo body
// también evalúa y genera la alerta: basta con que cantidad_actual venga en
// el request, no hace falta que cambie.
func TestStock_MismaCantidadConUmbralNuevo_GeneraAlerta(t *testing.T) {
	s, uc, wh, sp := newStockFixture(t)

	row, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 4, StockMinimo: 3, StockCritico: 1,
	})
	require.NoError(t, err)
	require.Empty(t, s.alerts, "con 4 sobre mínimo 3 no hay alerta")

	misma := int64(4)
	minimo := int64(5)
	_, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{
		CantidadActual: &misma,
		StockMinimo:    &minimo,
	})
	require.NoError(t, err)

	alert, err := s.repos().Alerts.FindActive(sp.ID, wh.ID, entity.AlertTypeMinimum)
	require.NoError(t, err)
	assert.NotNil(t, alert, "el umbral nuevo deja la cantidad reenviada por debajo del mínimo")
}

// Un cambio de cantidad estampa fecha_ultimo_mov; el body también puede fijarla
// explícitamente.
func TestStock_UpdateCantidad_EstampaUltimoMovimiento(t *testing.T) {
	_, uc, wh, sp := newStockFixture(t)

	row, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 10, StockMinimo: 2, StockCritico: 1,
	})
	require.NoError(t, err)

	antes := time.Now()
	nueva := int64(8)
	actualizada, err := uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{CantidadActual: &nueva})
	require.NoError(t, err)
	require.NotNil(t, actualizada.LastMovement)
	assert.False(t, actualizada.LastMovement.Before(antes))

	explicita := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	misma := int64(8)
	actualizada, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{
		CantidadActual: &misma,
		FechaUltimoMov: &explicita,
	})
	require.NoError(t, err)
	require.NotNil(t, actualizada.LastMovement)
	assert.True(t, explicita.Equal(*actualizada.LastMovement))
}

// La baja exige cantidad 0 y arrastra las alertas del par.
func TestStock_Delete_SoloEnCero_LimpiaAlertas(t *testing.T) {
	s, uc, wh, sp := newStockFixture(t)

	row, err := uc.Create(context.Background(), dto.CreateStockRequest{
		IDDeposito: wh.ID, IDInsumo: sp.ID, CantidadActual: 3, StockMinimo: 5, StockCritico: 1,
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), row.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "con cantidad > 0 no se elimina")

	cero := int64(0)
	_, err = uc.Update(context.Background(), row.ID, dto.UpdateStockRequest{CantidadActual: &cero})
	require.NoError(t, err)
	require.NotEmpty(t, s.alerts, "bajar a 0 genera alerta")

	require.NoError(t, uc.Delete(context.Background(), row.ID))
	assert.Empty(t, s.stock)
	assert.Empty(t, s.alerts, "las alertas del par se eliminan junto con la fila")
}
