package classifier_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunebudget/true_cost_app/internal/classifier"
)

func TestRulesClassifier_ExpenseKeywords(t *testing.T) {
	c := classifier.NewRulesClassifier(50, 3)

	testCases := []struct {
		name        string
		description string
		amount      decimal.Decimal
	}{
		{"lunch", "lunch today", decimal.NewFromInt(35)},
		{"taxi", "taxi to office", decimal.NewFromInt(25)},
		{"expensive dinner still expense", "fancy dinner with friends", decimal.NewFromInt(500)},
		{"keyword is case insensitive", "Grocery run", decimal.NewFromInt(80)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := c.Classify(context.Background(), tc.description, tc.amount)
			require.NoError(t, err)
			assert.False(t, result.IsCapital)
			assert.Equal(t, "Daily Expense", result.Category)
			assert.Zero(t, result.UsefulLifeYears)
		})
	}
}

func TestRulesClassifier_KnownDurables(t *testing.T) {
	c := classifier.NewRulesClassifier(50, 3)

	testCases := []struct {
		name          string
		description   string
		amount        decimal.Decimal
		wantCategory  string
		wantLifeYears float64
	}{
		{"wok", "bought a wok", decimal.NewFromInt(300), "Wok", 10},
		{"phone", "bought an iPhone 16", decimal.NewFromInt(7999), "Phone", 3},
		{"washing machine", "bought a washing machine", decimal.NewFromInt(2500), "Washing Machine", 10},
		{"cheap durable is still capital", "new desk chair", decimal.NewFromInt(40), "Desk", 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := c.Classify(context.Background(), tc.description, tc.amount)
			require.NoError(t, err)
			assert.True(t, result.IsCapital)
			assert.Equal(t, tc.wantCategory, result.Category)
			assert.Equal(t, tc.wantLifeYears, result.UsefulLifeYears)
			assert.Equal(t, tc.description, result.ItemName)
		})
	}
}

func TestRulesClassifier_AmountThreshold(t *testing.T) {
	c := classifier.NewRulesClassifier(50, 3)

	small, err := c.Classify(context.Background(), "mystery purchase", decimal.NewFromInt(49))
	require.NoError(t, err)
	assert.False(t, small.IsCapital)
	assert.Equal(t, "Daily Expense", small.Category)

	large, err := c.Classify(context.Background(), "mystery purchase", decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, large.IsCapital)
	assert.Equal(t, "Other", large.Category)
	assert.Equal(t, float64(3), large.UsefulLifeYears)
}

func TestRulesClassifier_KeywordsWinOverDurables(t *testing.T) {
	c := classifier.NewRulesClassifier(50, 3)

	// "gas" (expense keyword) appears before any durable match is tried.
	result, err := c.Classify(context.Background(), "gas for the car", decimal.NewFromInt(60))
	require.NoError(t, err)
	assert.False(t, result.IsCapital)
}
