package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// EvaluateStock determina si una fila de stock amerita una alerta de umbral.
// CRITICO tiene prioridad sobre BAJO; nivel NORMAL devuelve nil.
func EvaluateStock(row *entity.StockRow, supplyName, warehouseName string) *entity.StockAlert {
	var alertType, message string
	switch row.Level() {
	case entity.StockLevelCritical:
		alertType = entity.AlertTypeCritical
		message = fmt.Sprintf("Stock crítico: %s en %s (%d unidades)", supplyName, warehouseName, row.Quantity)
	case entity.StockLevelLow:
		alertType = entity.AlertTypeMinimum
		message = fmt.Sprintf("Stock mínimo: %s en %s (%d unidades)", supplyName, warehouseName, row.Quantity)
	default:
		return nil
	}
	return &entity.StockAlert{
		ID:          uuid.New().String(),
		Type:        alertType,
		Message:     message,
		SupplyID:    row.SupplyID,
		WarehouseID: row.WarehouseID,
		Status:      entity.AlertActive,
		CreatedAt:   time.Now(),
	}
}

// EnsureStockAlert evalúa la fila y crea la alerta correspondiente si no
// existe ya una ACTIVA para el mismo (insumo, deposito, tipo). El chequeo y el
// alta deben correr en la misma transacción que la mutación de stock.
func EnsureStockAlert(repo repository.AlertRepository, row *entity.StockRow, supplyName, warehouseName string) error {
	alert := EvaluateStock(row, supplyName, warehouseName)
	if alert == nil {
		return nil
	}
	existing, err := repo.FindActive(alert.SupplyID, alert.WarehouseID, alert.Type)
	if err != nil {
		return err
	}
	if existing != nil {
		// Ya hay una alerta ACTIVA equivalente: no duplicar.
		return nil
	}
	return repo.Create(alert)
}
