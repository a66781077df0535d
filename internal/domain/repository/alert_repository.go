package repository

import "github.com/tu-usuario/insumos-api/internal/domain/entity"

// AlertFilter filtros de listado para alertas de stock.
type AlertFilter struct {
	Status         string
	Type           string
	WarehouseID    string
	AssignedUserID string
}

// AlertRepository puerto de persistencia para alertas de stock.
type AlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	List(filter AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error)
	// FindActive busca una alerta ACTIVA para (insumo, deposito, tipo).
	// Devuelve nil, nil si no existe; es la base del chequeo anti-duplicados.
	FindActive(supplyID, warehouseID, alertType string) (*entity.StockAlert, error)
	Update(alert *entity.StockAlert) error
	Delete(id string) error
	// DeleteByStockPair elimina todas las alertas de un par (insumo, deposito);
	// se usa al dar de baja la fila de stock correspondiente.
	DeleteByStockPair(supplyID, warehouseID string) error
}
