package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
)

func TestParseIntOrZero(t *testing.T) {
	assert.Equal(t, int64(12), dto.ParseIntOrZero(" 12 "))
	assert.Equal(t, int64(-3), dto.ParseIntOrZero("-3"))
	assert.Equal(t, int64(0), dto.ParseIntOrZero(""))
	assert.Equal(t, int64(0), dto.ParseIntOrZero("doze"))
	assert.Equal(t, int64(0), dto.ParseIntOrZero("3.5"), "decimales no son enteros válidos")
}

func TestParseDecimalOrZero(t *testing.T) {
	assert.True(t, decimal.RequireFromString("12.5").Equal(dto.ParseDecimalOrZero("12.5")))
	assert.True(t, dto.ParseDecimalOrZero("12,5").IsZero(), "coma decimal no se acepta")
	assert.True(t, dto.ParseDecimalOrZero("").IsZero())
}

func TestProductForm_ToRequest(t *testing.T) {
	cat := int64(4)
	req := dto.ProductForm{
		Name:        "  Parafuso  ",
		Price:       "abc",
		Quantity:    "7",
		MinQuantity: "x",
	}.ToRequest(&cat)

	assert.Equal(t, "Parafuso", req.Name)
	assert.Equal(t, &cat, req.CategoryID)
	assert.True(t, req.Price.IsZero())
	assert.Equal(t, int64(7), req.Quantity)
	assert.Equal(t, int64(0), req.MinQuantity)
}

func TestLowStockReport_Empty(t *testing.T) {
	var nilReport *dto.LowStockReport
	assert.True(t, nilReport.Empty())
	assert.True(t, (&dto.LowStockReport{}).Empty())
	assert.False(t, (&dto.LowStockReport{Items: []dto.LowStockItem{{ProductID: 1}}}).Empty())
}
