package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the display-only bucket for records whose category
// is absent. The stored record keeps its NULL category; only the
// aggregation groups under this label.
const UncategorizedLabel = "Uncategorized"

// TopCategoryLimit caps the category leaderboard in the aggregated view
const TopCategoryLimit = 5

// DailyPoint is one entry of the daily spending series, keyed by the exact
// stored date string.
type DailyPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTotal is one entry of the category leaderboard.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AggregatedView is the derived dashboard summary. It is recomputed from
// the currently loaded expense set on every fetch and never persisted.
type AggregatedView struct {
	TotalSpend            decimal.Decimal `json:"total_spend"`
	TransactionCount      int             `json:"transaction_count"`
	AveragePerTransaction decimal.Decimal `json:"average_per_transaction"`
	DailySeries           []DailyPoint    `json:"daily_series"`
	TopCategories         []CategoryTotal `json:"top_categories"`
	LastRefreshed         time.Time       `json:"last_refreshed"`
}
