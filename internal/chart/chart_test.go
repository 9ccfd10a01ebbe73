package chart

import (
	"testing"

	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the PNG magic number.
var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47}

func TestSpendingPie(t *testing.T) {
	t.Run("empty breakdown", func(t *testing.T) {
		_, err := SpendingPie(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("renders a PNG", func(t *testing.T) {
		png, err := SpendingPie([]report.CategorySlice{
			{Name: model.CategoryFood, Value: 130, Color: model.CategoryColor(model.CategoryFood)},
			{Name: model.CategoryHousing, Value: 900, Color: model.CategoryColor(model.CategoryHousing)},
		})
		require.NoError(t, err)
		require.Greater(t, len(png), 4)
		assert.Equal(t, pngHeader, png[:4])
	})
}

func TestBalanceTrend(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		_, err := BalanceTrend(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("single point still renders", func(t *testing.T) {
		png, err := BalanceTrend([]report.DailyBalance{
			{Date: "2024-03-01", Balance: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, pngHeader, png[:4])
	})

	t.Run("multi-day series renders", func(t *testing.T) {
		png, err := BalanceTrend([]report.DailyBalance{
			{Date: "2024-03-01", Balance: -50},
			{Date: "2024-03-02", Balance: -80},
			{Date: "2024-03-05", Balance: 120},
		})
		require.NoError(t, err)
		assert.Equal(t, pngHeader, png[:4])
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := BalanceTrend([]report.DailyBalance{{Date: "yesterday", Balance: 1}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid series date")
	})
}
