package inventory

import (
	"time"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// applyStock aplica a las filas de stock el efecto de un movimiento que pasa a
// COMPLETADO, según el signo del tipo (afecta_stock) y los depósitos de la
// cabecera. El motor garantiza una única invocación por movimiento: volver a
// ejecutar esta rutina sobre un movimiento ya completado duplicaría los deltas.
//
// Comportamientos heredados del sistema de referencia, conservados a propósito:
// restar sobre una fila inexistente es un no-op y el resultado puede quedar
// negativo (no se valida stock suficiente).
func applyStock(r TxRepos, mov *entity.Movement, mtype *entity.MovementType, details []*entity.MovementDetail, now time.Time) error {
	for _, d := range details {
		switch mtype.StockEffect {
		case entity.StockEffectPositive:
			if mov.DestinationID == nil {
				continue
			}
			if err := r.Stock.AddQuantity(*mov.DestinationID, d.SupplyID, d.Quantity, now); err != nil {
				return err
			}
			if err := raiseAlertIfNeeded(r, *mov.DestinationID, d.SupplyID); err != nil {
				return err
			}
		case entity.StockEffectNegative:
			if mov.OriginID == nil {
				continue
			}
			if err := r.Stock.SubtractQuantity(*mov.OriginID, d.SupplyID, d.Quantity, now); err != nil {
				return err
			}
			if err := raiseAlertIfNeeded(r, *mov.OriginID, d.SupplyID); err != nil {
				return err
			}
		}
		// NEUTRO: no toca stock.
	}
	return nil
}

// raiseAlertIfNeeded reevalúa la fila de stock tras aplicar el delta y genera
// la alerta de umbral si corresponde (dedup contra alertas ACTIVAS).
func raiseAlertIfNeeded(r TxRepos, warehouseID, supplyID string) error {
	row, err := r.Stock.GetByWarehouseSupply(warehouseID, supplyID)
	if err != nil {
		return err
	}
	if row == nil {
		// La resta sobre un par sin fila no crea stock; nada que evaluar.
		return nil
	}
	supplyName, warehouseName, err := stockNames(r, row)
	if err != nil {
		return err
	}
	return alerts.EnsureStockAlert(r.Alerts, row, supplyName, warehouseName)
}
