package services

import (
	"testing"
	"time"

	"poisar-hisap/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AggregationServiceTestSuite is the test suite for the aggregation engine
type AggregationServiceTestSuite struct {
	suite.Suite
	aggregator AggregationServiceInterface
	now        time.Time
}

func TestAggregationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.aggregator = NewAggregationService()
	s.now = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
}

func (s *AggregationServiceTestSuite) expense(date string, amount float64, category *string) models.Expense {
	return models.Expense{
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Currency: models.DefaultCurrency,
		Category: category,
	}
}

func (s *AggregationServiceTestSuite) TestAggregate_EmptySet() {
	view := s.aggregator.Aggregate(nil, s.now)

	s.True(view.TotalSpend.IsZero())
	s.Zero(view.TransactionCount)
	s.True(view.AveragePerTransaction.IsZero(), "empty set yields zero average, not NaN")
	s.Empty(view.DailySeries)
	s.Empty(view.TopCategories)
	s.Equal(s.now, view.LastRefreshed)
}

func (s *AggregationServiceTestSuite) TestAggregate_TotalsAndAverage() {
	food := "Food"
	expenses := []models.Expense{
		s.expense("2025-10-13", 100, &food),
		s.expense("2025-10-14", 50, nil),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	s.Equal("150", view.TotalSpend.String())
	s.Equal(2, view.TransactionCount)
	s.Equal("75", view.AveragePerTransaction.String())
}

func (s *AggregationServiceTestSuite) TestAggregate_DailySeriesAscendingSumsToTotal() {
	expenses := []models.Expense{
		s.expense("2025-10-14", 30, nil),
		s.expense("2025-10-10", 20, nil),
		s.expense("2025-10-14", 70, nil),
		s.expense("2025-10-12", 80, nil),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	require := s.Require()
	require.Len(view.DailySeries, 3)
	s.Equal("2025-10-10", view.DailySeries[0].Date)
	s.Equal("2025-10-12", view.DailySeries[1].Date)
	s.Equal("2025-10-14", view.DailySeries[2].Date)
	s.Equal("100", view.DailySeries[2].Amount.String(), "same-day records collapse into one bucket")

	seriesSum := decimal.Zero
	for _, point := range view.DailySeries {
		seriesSum = seriesSum.Add(point.Amount)
	}
	s.True(seriesSum.Equal(view.TotalSpend), "daily series must sum to total spend")
}

func (s *AggregationServiceTestSuite) TestAggregate_DatesGroupByStoredString() {
	// Stored date strings are opaque keys; nothing reinterprets them in a
	// different timezone
	expenses := []models.Expense{
		s.expense("2025-10-14", 10, nil),
		s.expense("2025-10-14", 10, nil),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	s.Require().Len(view.DailySeries, 1)
	s.Equal("2025-10-14", view.DailySeries[0].Date)
}

func (s *AggregationServiceTestSuite) TestAggregate_TopCategories() {
	food := "Food"
	travel := "Travel"
	rent := "Rent"
	fuel := "Fuel"
	books := "Books"
	games := "Games"

	expenses := []models.Expense{
		s.expense("2025-10-14", 500, &rent),
		s.expense("2025-10-14", 120, &food),
		s.expense("2025-10-13", 80, &travel),
		s.expense("2025-10-13", 60, &fuel),
		s.expense("2025-10-12", 40, &books),
		s.expense("2025-10-12", 20, &games),
		s.expense("2025-10-11", 300, &food),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	require := s.Require()
	require.Len(view.TopCategories, models.TopCategoryLimit, "leaderboard truncates to five")
	s.Equal("Rent", view.TopCategories[0].Category)
	s.Equal("Food", view.TopCategories[1].Category)
	s.Equal("420", view.TopCategories[1].Amount.String())
	s.Equal("Travel", view.TopCategories[2].Category)
	s.Equal("Fuel", view.TopCategories[3].Category)
	s.Equal("Books", view.TopCategories[4].Category)
}

func (s *AggregationServiceTestSuite) TestAggregate_TiesKeepFirstSeenOrder() {
	zomato := "Zomato"
	uber := "Uber"
	chai := "Chai"

	expenses := []models.Expense{
		s.expense("2025-10-14", 100, &zomato),
		s.expense("2025-10-14", 100, &uber),
		s.expense("2025-10-14", 100, &chai),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	require := s.Require()
	require.Len(view.TopCategories, 3)
	s.Equal("Zomato", view.TopCategories[0].Category)
	s.Equal("Uber", view.TopCategories[1].Category)
	s.Equal("Chai", view.TopCategories[2].Category)
}

func (s *AggregationServiceTestSuite) TestAggregate_UncategorizedBucket() {
	food := "Food"
	empty := ""

	expenses := []models.Expense{
		s.expense("2025-10-14", 100, nil),
		s.expense("2025-10-14", 50, &empty),
		s.expense("2025-10-13", 30, &food),
	}

	view := s.aggregator.Aggregate(expenses, s.now)

	require := s.Require()
	require.Len(view.TopCategories, 2)
	s.Equal(models.UncategorizedLabel, view.TopCategories[0].Category)
	s.Equal("150", view.TopCategories[0].Amount.String(), "nil and empty categories share the display bucket")
	s.Equal("Food", view.TopCategories[1].Category)

	// Source records keep their stored category untouched
	s.Nil(expenses[0].Category)
	s.Equal("", *expenses[1].Category)
}

func (s *AggregationServiceTestSuite) TestAggregate_AverageRoundsToTwoPlaces() {
	expenses := []models.Expense{
		s.expense("2025-10-14", 10, nil),
		s.expense("2025-10-14", 10, nil),
		s.expense("2025-10-14", 10, nil),
	}
	expenses[0].Amount = decimal.NewFromFloat(10.01)

	view := s.aggregator.Aggregate(expenses, s.now)

	s.Equal("10", view.AveragePerTransaction.String())
}
