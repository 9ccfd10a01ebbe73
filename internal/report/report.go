// Package report derives aggregate views from a transaction snapshot.
// All functions are pure: same input, same output, no hidden state.
package report

import (
	"sort"

	"github.com/amanjot-a/fintrack/internal/model"
)

// Summary holds the headline totals shown on the stat cards.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

// CategorySlice is one segment of the spending breakdown.
type CategorySlice struct {
	Name  string
	Color string
	Value float64
}

// DailyBalance is one point of the cumulative balance trend.
type DailyBalance struct {
	Date    string // YYYY-MM-DD
	Balance float64
}

// Summarize computes total income, total expense, and their difference.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	for _, tx := range transactions {
		switch tx.Type {
		case model.Income:
			s.TotalIncome += tx.Amount
		case model.Expense:
			s.TotalExpense += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

// BreakdownByCategory sums expense transactions per category, sorted by
// total descending. Ties keep the order categories were first seen in.
// Income transactions and untouched categories are omitted.
func BreakdownByCategory(transactions []model.Transaction) []CategorySlice {
	totals := make(map[string]float64)
	order := make(map[string]int)

	for _, tx := range transactions {
		if tx.Type != model.Expense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order[tx.Category] = len(order)
		}
		totals[tx.Category] += tx.Amount
	}

	slices := make([]CategorySlice, 0, len(totals))
	for name, value := range totals {
		slices = append(slices, CategorySlice{
			Name:  name,
			Value: value,
			Color: model.CategoryColor(name),
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}
		return order[slices[i].Name] < order[slices[j].Name]
	})

	return slices
}

// DailyBalanceSeries buckets transactions by their own calendar day,
// computes each day's net, and accumulates a running balance across days
// in chronological order.
func DailyBalanceSeries(transactions []model.Transaction) []DailyBalance {
	nets := make(map[string]float64)
	for _, tx := range transactions {
		nets[tx.Day()] += tx.Signed()
	}

	days := make([]string, 0, len(nets))
	for d := range nets {
		days = append(days, d)
	}
	sort.Strings(days)

	series := make([]DailyBalance, 0, len(days))
	running := 0.0
	for _, d := range days {
		running += nets[d]
		series = append(series, DailyBalance{Date: d, Balance: running})
	}

	return series
}
