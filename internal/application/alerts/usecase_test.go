package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// memAlertRepo repositorio en memoria, suficiente para el ciclo de vida.
type memAlertRepo struct {
	byID map[string]*entity.StockAlert
}

func newMemAlertRepo() *memAlertRepo {
	return &memAlertRepo{byID: make(map[string]*entity.StockAlert)}
}

func (r *memAlertRepo) Create(a *entity.StockAlert) error { r.byID[a.ID] = a; return nil }
func (r *memAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	return r.byID[id], nil
}
func (r *memAlertRepo) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	var out []*entity.StockAlert
	for _, a := range r.byID {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}
func (r *memAlertRepo) FindActive(supplyID, warehouseID, alertType string) (*entity.StockAlert, error) {
	for _, a := range r.byID {
		if a.SupplyID == supplyID && a.WarehouseID == warehouseID &&
			a.Type == alertType && a.Status == entity.AlertActive {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAlertRepo) Update(a *entity.StockAlert) error { r.byID[a.ID] = a; return nil }
func (r *memAlertRepo) Delete(id string) error            { delete(r.byID, id); return nil }
func (r *memAlertRepo) DeleteByStockPair(supplyID, warehouseID string) error {
	for id, a := range r.byID {
		if a.SupplyID == supplyID && a.WarehouseID == warehouseID {
			delete(r.byID, id)
		}
	}
	return nil
}

// El alta manual sin estado explícito nace ACTIVA.
func TestAlerta_CreateManual_NaceActiva(t *testing.T) {
	uc := alerts.NewAlertUseCase(newMemAlertRepo())

	alert, err := uc.Create(dto.CreateAlertaRequest{
		TipoAlerta: entity.AlertTypeExpiry,
		Mensaje:    "Lote L-204 vence en 5 días",
		IDInsumo:   "ins-1",
		IDDeposito: "dep-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertActive, alert.Status)
	assert.False(t, alert.CreatedAt.IsZero())
}

// Pasar a RESUELTA sin fecha_resolucion estampa la hora actual.
func TestAlerta_Resolver_EstampaFecha(t *testing.T) {
	repo := newMemAlertRepo()
	uc := alerts.NewAlertUseCase(repo)

	alert, err := uc.Create(dto.CreateAlertaRequest{
		TipoAlerta: entity.AlertTypeCritical,
		Mensaje:    "Stock crítico",
		IDInsumo:   "ins-1",
		IDDeposito: "dep-1",
	})
	require.NoError(t, err)

	resuelta := entity.AlertResolved
	antes := time.Now()
	updated, err := uc.Update(alert.ID, dto.UpdateAlertaRequest{EstadoAlerta: &resuelta})
	require.NoError(t, err)

	require.NotNil(t, updated.ResolvedAt)
	assert.False(t, updated.ResolvedAt.Before(antes), "la fecha de resolución debe ser actual")
}

// Una fecha de resolución explícita se respeta tal cual.
func TestAlerta_Resolver_FechaExplicitaSeRespeta(t *testing.T) {
	repo := newMemAlertRepo()
	uc := alerts.NewAlertUseCase(repo)

	alert, err := uc.Create(dto.CreateAlertaRequest{
		TipoAlerta: entity.AlertTypeMinimum,
		Mensaje:    "Stock mínimo",
		IDInsumo:   "ins-1",
		IDDeposito: "dep-1",
	})
	require.NoError(t, err)

	resuelta := entity.AlertResolved
	cuando := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updated, err := uc.Update(alert.ID, dto.UpdateAlertaRequest{
		EstadoAlerta:    &resuelta,
		FechaResolucion: &cuando,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	assert.True(t, updated.ResolvedAt.Equal(cuando))
}

func TestAlerta_UpdateInexistente_NotFound(t *testing.T) {
	uc := alerts.NewAlertUseCase(newMemAlertRepo())

	vista := entity.AlertSeen
	_, err := uc.Update("no-existe", dto.UpdateAlertaRequest{EstadoAlerta: &vista})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// EvaluateStock: CRITICO tiene prioridad sobre BAJO; NORMAL no genera alerta.
func TestEvaluateStock_Prioridades(t *testing.T) {
	critico := &entity.StockRow{Quantity: 1, MinimumStock: 5, CriticalStock: 2, SupplyID: "i", WarehouseID: "d"}
	alerta := alerts.EvaluateStock(critico, "Guantes", "Central")
	require.NotNil(t, alerta)
	assert.Equal(t, entity.AlertTypeCritical, alerta.Type)

	bajo := &entity.StockRow{Quantity: 4, MinimumStock: 5, CriticalStock: 2, SupplyID: "i", WarehouseID: "d"}
	alerta = alerts.EvaluateStock(bajo, "Guantes", "Central")
	require.NotNil(t, alerta)
	assert.Equal(t, entity.AlertTypeMinimum, alerta.Type)

	normal := &entity.StockRow{Quantity: 9, MinimumStock: 5, CriticalStock: 2}
	assert.Nil(t, alerts.EvaluateStock(normal, "Guantes", "Central"))
}
