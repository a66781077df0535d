package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/insumos-api/internal/domain/entity"
)

// El nivel se deriva de cantidad vs. umbrales; CRITICO gana sobre BAJO.
func TestStockRow_Level(t *testing.T) {
	cases := []struct {
		name     string
		qty      int64
		min      int64
		critical int64
		want     string
	}{
		{"por encima del mínimo", 10, 5, 2, entity.StockLevelNormal},
		{"igual al mínimo", 5, 5, 2, entity.StockLevelLow},
		{"entre crítico y mínimo", 3, 5, 2, entity.StockLevelLow},
		{"igual al crítico", 2, 5, 2, entity.StockLevelCritical},
		{"por debajo del crítico", 0, 5, 2, entity.StockLevelCritical},
		{"negativo", -3, 5, 2, entity.StockLevelCritical},
		{"umbrales en cero y cantidad cero", 0, 0, 0, entity.StockLevelCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := &entity.StockRow{Quantity: tc.qty, MinimumStock: tc.min, CriticalStock: tc.critical}
			assert.Equal(t, tc.want, row.Level())
		})
	}
}

func TestStockRow_Percent(t *testing.T) {
	assert.Equal(t, 200, (&entity.StockRow{Quantity: 10, MinimumStock: 5}).Percent())
	assert.Equal(t, 50, (&entity.StockRow{Quantity: 5, MinimumStock: 10}).Percent())
	// Redondeo al entero más cercano: 1/3 ≈ 33%.
	assert.Equal(t, 33, (&entity.StockRow{Quantity: 1, MinimumStock: 3}).Percent())
	// Mínimo 0: el porcentaje no tiene sentido, se informa 0.
	assert.Equal(t, 0, (&entity.StockRow{Quantity: 7, MinimumStock: 0}).Percent())
}

func TestStockRow_NeedsRestock(t *testing.T) {
	assert.False(t, (&entity.StockRow{Quantity: 6, MinimumStock: 5}).NeedsRestock())
	assert.True(t, (&entity.StockRow{Quantity: 5, MinimumStock: 5}).NeedsRestock())
	assert.True(t, (&entity.StockRow{Quantity: 0, MinimumStock: 5}).NeedsRestock())
}
