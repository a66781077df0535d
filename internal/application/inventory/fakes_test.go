package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del motor de inventario. Sin BD: el
// "tx runner" pasa los mismos repos dentro y fuera de la transacción, lo que
// alcanza para verificar la semántica de aplicación de stock y alertas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	movements  map[string]*entity.Movement
	details    map[string]*entity.MovementDetail
	types      map[string]*entity.MovementType
	reasons    map[string]*entity.MovementReason
	stock      map[string]*entity.StockRow
	alerts     map[string]*entity.StockAlert
	supplies   map[string]*entity.Supply
	warehouses map[string]*entity.Warehouse
}

func newMemStore() *memStore {
	return &memStore{
		movements:  make(map[string]*entity.Movement),
		details:    make(map[string]*entity.MovementDetail),
		types:      make(map[string]*entity.MovementType),
		reasons:    make(map[string]*entity.MovementReason),
		stock:      make(map[string]*entity.StockRow),
		alerts:     make(map[string]*entity.StockAlert),
		supplies:   make(map[string]*entity.Supply),
		warehouses: make(map[string]*entity.Warehouse),
	}
}

func (s *memStore) repos() inventory.TxRepos {
	return inventory.TxRepos{
		Movements:  &memMovementRepo{s},
		Details:    &memDetailRepo{s},
		Types:      &memTypeRepo{s},
		Reasons:    &memReasonRepo{s},
		Stock:      &memStockRepo{s},
		Alerts:     &memAlertRepo{s},
		Supplies:   &memSupplyRepo{s},
		Warehouses: &memWarehouseRepo{s},
	}
}

// memTxRunner ejecuta el callback directamente sobre los repos en memoria.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(inventory.TxRepos) error) error {
	return fn(r.s.repos())
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	r.s.movements[m.ID] = m
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	return r.s.movements[id], nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, int, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.TypeID != "" && m.TypeID != filter.TypeID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *memMovementRepo) Update(m *entity.Movement) error {
	r.s.movements[m.ID] = m
	return nil
}

func (r *memMovementRepo) Delete(id string) error {
	delete(r.s.movements, id)
	// Cascada, como la FK ON DELETE CASCADE real.
	for did, d := range r.s.details {
		if d.MovementID == id {
			delete(r.s.details, did)
		}
	}
	return nil
}

// ── Detalles de movimiento ────────────────────────────────────────────────────

type memDetailRepo struct{ s *memStore }

func (r *memDetailRepo) Create(d *entity.MovementDetail) error {
	r.s.details[d.ID] = d
	return nil
}

func (r *memDetailRepo) GetByID(id string) (*entity.MovementDetail, error) {
	return r.s.details[id], nil
}

func (r *memDetailRepo) ListByMovement(movementID string) ([]*entity.MovementDetail, error) {
	var out []*entity.MovementDetail
	for _, d := range r.s.details {
		if d.MovementID == movementID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memDetailRepo) FindByMovementSupplyLot(movementID, supplyID, lot string) (*entity.MovementDetail, error) {
	for _, d := range r.s.details {
		if d.MovementID == movementID && d.SupplyID == supplyID && d.Lot == lot {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDetailRepo) Update(d *entity.MovementDetail) error {
	r.s.details[d.ID] = d
	return nil
}

func (r *memDetailRepo) Delete(id string) error {
	delete(r.s.details, id)
	return nil
}

// ── Tipos y razones ───────────────────────────────────────────────────────────

type memTypeRepo struct{ s *memStore }

func (r *memTypeRepo) Create(t *entity.MovementType) error { r.s.types[t.ID] = t; return nil }
func (r *memTypeRepo) GetByID(id string) (*entity.MovementType, error) {
	return r.s.types[id], nil
}
func (r *memTypeRepo) List(limit, offset int) ([]*entity.MovementType, error) { return nil, nil }
func (r *memTypeRepo) Update(t *entity.MovementType) error                    { r.s.types[t.ID] = t; return nil }
func (r *memTypeRepo) Delete(id string) error                                 { delete(r.s.types, id); return nil }

type memReasonRepo struct{ s *memStore }

func (r *memReasonRepo) Create(m *entity.MovementReason) error { r.s.reasons[m.ID] = m; return nil }
func (r *memReasonRepo) GetByID(id string) (*entity.MovementReason, error) {
	return r.s.reasons[id], nil
}
func (r *memReasonRepo) ListByType(typeID string) ([]*entity.MovementReason, error) {
	return nil, nil
}
func (r *memReasonRepo) List(limit, offset int) ([]*entity.MovementReason, error) { return nil, nil }
func (r *memReasonRepo) Update(m *entity.MovementReason) error {
	r.s.reasons[m.ID] = m
	return nil
}
func (r *memReasonRepo) Delete(id string) error { delete(r.s.reasons, id); return nil }

// ── Stock ─────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Create(row *entity.StockRow) error {
	r.s.stock[row.ID] = row
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.StockRow, error) {
	return r.s.stock[id], nil
}

func (r *memStockRepo) GetByWarehouseSupply(warehouseID, supplyID string) (*entity.StockRow, error) {
	for _, row := range r.s.stock {
		if row.WarehouseID == warehouseID && row.SupplyID == supplyID {
			return row, nil
		}
	}
	return nil, nil
}

func (r *memStockRepo) List(filter repository.StockFilter) ([]*entity.StockRow, error) {
	var out []*entity.StockRow
	for _, row := range r.s.stock {
		if filter.WarehouseID != "" && row.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.SupplyID != "" && row.SupplyID != filter.SupplyID {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memStockRepo) Update(row *entity.StockRow) error {
	r.s.stock[row.ID] = row
	return nil
}

func (r *memStockRepo) AddQuantity(warehouseID, supplyID string, qty int64, at time.Time) error {
	row, _ := r.GetByWarehouseSupply(warehouseID, supplyID)
	if row == nil {
		row = &entity.StockRow{
			ID:          uuid.New().String(),
			WarehouseID: warehouseID,
			SupplyID:    supplyID,
		}
		r.s.stock[row.ID] = row
	}
	row.Quantity += qty
	row.LastMovement = &at
	return nil
}

func (r *memStockRepo) SubtractQuantity(warehouseID, supplyID string, qty int64, at time.Time) error {
	row, _ := r.GetByWarehouseSupply(warehouseID, supplyID)
	if row == nil {
		// No-op silencioso, igual que el UPDATE SQL sin filas afectadas.
		return nil
	}
	row.Quantity -= qty
	row.LastMovement = &at
	return nil
}

func (r *memStockRepo) Delete(id string) error {
	delete(r.s.stock, id)
	return nil
}

// ── Alertas ───────────────────────────────────────────────────────────────────

type memAlertRepo struct{ s *memStore }

func (r *memAlertRepo) Create(a *entity.StockAlert) error {
	r.s.alerts[a.ID] = a
	return nil
}

func (r *memAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	return r.s.alerts[id], nil
}

func (r *memAlertRepo) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	var out []*entity.StockAlert
	for _, a := range r.s.alerts {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.WarehouseID != "" && a.WarehouseID != filter.WarehouseID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (r *memAlertRepo) FindActive(supplyID, warehouseID, alertType string) (*entity.StockAlert, error) {
	for _, a := range r.s.alerts {
		if a.SupplyID == supplyID && a.WarehouseID == warehouseID &&
			a.Type == alertType && a.Status == entity.AlertActive {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAlertRepo) Update(a *entity.StockAlert) error {
	r.s.alerts[a.ID] = a
	return nil
}

func (r *memAlertRepo) Delete(id string) error {
	delete(r.s.alerts, id)
	return nil
}

func (r *memAlertRepo) DeleteByStockPair(supplyID, warehouseID string) error {
	for id, a := range r.s.alerts {
		if a.SupplyID == supplyID && a.WarehouseID == warehouseID {
			delete(r.s.alerts, id)
		}
	}
	return nil
}

// ── Insumos y depósitos ───────────────────────────────────────────────────────

type memSupplyRepo struct{ s *memStore }

func (r *memSupplyRepo) Create(sp *entity.Supply) error { r.s.supplies[sp.ID] = sp; return nil }
func (r *memSupplyRepo) GetByID(id string) (*entity.Supply, error) {
	return r.s.supplies[id], nil
}
func (r *memSupplyRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supply, error) {
	return nil, nil
}
func (r *memSupplyRepo) ListWithCriticalStock() ([]*entity.Supply, error) { return nil, nil }
func (r *memSupplyRepo) Update(sp *entity.Supply) error                   { r.s.supplies[sp.ID] = sp; return nil }
func (r *memSupplyRepo) Deactivate(id string) error {
	if sp := r.s.supplies[id]; sp != nil {
		sp.Active = false
	}
	return nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.s.warehouses[w.ID] = w; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}
func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}
func (r *memWarehouseRepo) Delete(id string) error { delete(r.s.warehouses, id); return nil }
