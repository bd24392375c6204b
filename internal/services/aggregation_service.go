package services

import (
	"sort"
	"time"

	"poisar-hisap/internal/models"

	"github.com/shopspring/decimal"
)

// aggregationService implements AggregationServiceInterface
type aggregationService struct{}

// NewAggregationService creates the dashboard aggregation engine
func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

// Aggregate derives the dashboard view from the loaded expense set. Daily
// buckets group by the exact stored date string; no timezone
// renormalization happens here. Records without a category are bucketed
// under the display label only, their stored category stays absent.
func (s *aggregationService) Aggregate(expenses []models.Expense, now time.Time) models.AggregatedView {
	view := models.AggregatedView{
		TotalSpend:            decimal.Zero,
		AveragePerTransaction: decimal.Zero,
		DailySeries:           []models.DailyPoint{},
		TopCategories:         []models.CategoryTotal{},
		LastRefreshed:         now,
	}

	if len(expenses) == 0 {
		return view
	}

	dailyTotals := make(map[string]decimal.Decimal)
	categoryTotals := make(map[string]decimal.Decimal)
	categoryOrder := make([]string, 0)

	for i := range expenses {
		expense := &expenses[i]
		view.TotalSpend = view.TotalSpend.Add(expense.Amount)

		dailyTotals[expense.Date] = dailyTotals[expense.Date].Add(expense.Amount)

		label := models.UncategorizedLabel
		if expense.Category != nil && *expense.Category != "" {
			label = *expense.Category
		}
		if _, seen := categoryTotals[label]; !seen {
			categoryOrder = append(categoryOrder, label)
		}
		categoryTotals[label] = categoryTotals[label].Add(expense.Amount)
	}

	view.TransactionCount = len(expenses)
	view.AveragePerTransaction = view.TotalSpend.DivRound(decimal.NewFromInt(int64(len(expenses))), 2)

	dates := make([]string, 0, len(dailyTotals))
	for date := range dailyTotals {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		view.DailySeries = append(view.DailySeries, models.DailyPoint{
			Date:   date,
			Amount: dailyTotals[date],
		})
	}

	// Ties keep first-seen grouping order; the stable sort preserves the
	// insertion order built above
	categories := make([]models.CategoryTotal, 0, len(categoryOrder))
	for _, label := range categoryOrder {
		categories = append(categories, models.CategoryTotal{
			Category: label,
			Amount:   categoryTotals[label],
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})
	if len(categories) > models.TopCategoryLimit {
		categories = categories[:models.TopCategoryLimit]
	}
	view.TopCategories = categories

	return view
}
