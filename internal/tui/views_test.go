package tui

import (
	"strings"
	"testing"

	"github.com/amanjot-a/fintrack/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		assert.Empty(t, sparkline(nil, 10))
	})

	t.Run("flat series uses lowest rune", func(t *testing.T) {
		got := sparkline([]report.DailyBalance{
			{Date: "2024-03-01", Balance: 5},
			{Date: "2024-03-02", Balance: 5},
		}, 10)
		assert.Contains(t, got, "▁▁")
	})

	t.Run("rising series ends high", func(t *testing.T) {
		got := sparkline([]report.DailyBalance{
			{Date: "2024-03-01", Balance: 0},
			{Date: "2024-03-02", Balance: 50},
			{Date: "2024-03-03", Balance: 100},
		}, 10)
		assert.Contains(t, got, "█")
	})

	t.Run("long series keeps the most recent points", func(t *testing.T) {
		series := make([]report.DailyBalance, 100)
		for i := range series {
			series[i] = report.DailyBalance{Date: "2024-03-01", Balance: float64(i)}
		}
		got := sparkline(series, 10)
		runes := 0
		for _, r := range got {
			if strings.ContainsRune(string(sparkRunes), r) {
				runes++
			}
		}
		assert.Equal(t, 10, runes)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a long ...", truncate("a long description", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
