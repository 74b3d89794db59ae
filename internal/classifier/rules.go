package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
)

// expenseKeywords mark purchases that are consumed immediately and never
// capitalized.
var expenseKeywords = []string{
	"lunch", "dinner", "breakfast", "meal", "food", "takeout", "coffee", "tea",
	"fruit", "snack", "grocery", "supermarket",
	"taxi", "uber", "lyft", "subway", "metro", "bus", "gas", "fuel",
	"movie", "cinema", "concert", "ticket", "entertainment", "game",
	"phone bill", "internet", "utility", "electricity", "water bill",
	"haircut", "salon", "spa", "massage",
	"hospital", "medicine", "doctor", "pharmacy",
}

type lifespanEntry struct {
	item  string
	years float64
}

// defaultLifespans lists typical useful lives for durable goods. Order
// matters: earlier entries win when more than one item name matches.
var defaultLifespans = []lifespanEntry{
	{"phone", 3},
	{"computer", 5},
	{"laptop", 4},
	{"tablet", 4},
	{"tv", 8},
	{"television", 8},
	{"refrigerator", 12},
	{"fridge", 12},
	{"washing machine", 10},
	{"air conditioner", 10},
	{"microwave", 8},
	{"rice cooker", 6},
	{"wok", 10},
	{"pan", 10},
	{"cookware", 8},
	{"furniture", 10},
	{"bed", 10},
	{"mattress", 8},
	{"sofa", 10},
	{"desk", 12},
	{"table", 12},
	{"chair", 8},
	{"clothes", 2},
	{"clothing", 2},
	{"shoes", 2},
	{"bag", 5},
	{"watch", 10},
	{"glasses", 3},
	{"bicycle", 8},
	{"bike", 8},
	{"electric scooter", 5},
	{"car", 10},
}

// RulesClassifier applies local keyword rules. It never fails, which makes it
// the terminal fallback behind the remote classifier.
type RulesClassifier struct {
	capitalThreshold   decimal.Decimal
	defaultLifeYears   float64
	dailyExpenseLabel  string
	defaultAssetsLabel string
}

// NewRulesClassifier builds the local rule set. capitalThreshold is the
// amount below which an unmatched purchase is still treated as an operating
// expense; defaultLifeYears applies when an unmatched purchase crosses it.
func NewRulesClassifier(capitalThreshold float64, defaultLifeYears int) *RulesClassifier {
	return &RulesClassifier{
		capitalThreshold:   decimal.NewFromFloat(capitalThreshold),
		defaultLifeYears:   float64(defaultLifeYears),
		dailyExpenseLabel:  "Daily Expense",
		defaultAssetsLabel: "Other",
	}
}

var _ portssvc.Classifier = (*RulesClassifier)(nil)

// Classify walks the rules in order: expense keywords, known durable goods,
// then the amount threshold.
func (c *RulesClassifier) Classify(ctx context.Context, description string, amount decimal.Decimal) (*domain.Classification, error) {
	lower := strings.ToLower(description)

	for _, keyword := range expenseKeywords {
		if strings.Contains(lower, keyword) {
			return &domain.Classification{
				IsCapital:       false,
				Category:        c.dailyExpenseLabel,
				ItemName:        description,
				UsefulLifeYears: 0,
				Reasoning:       fmt.Sprintf("Contains keyword '%s', classified as operating expense", keyword),
			}, nil
		}
	}

	for _, entry := range defaultLifespans {
		if strings.Contains(lower, entry.item) {
			return &domain.Classification{
				IsCapital:       true,
				Category:        titleCase(entry.item),
				ItemName:        description,
				UsefulLifeYears: entry.years,
				Reasoning:       fmt.Sprintf("Matches '%s', using default lifespan of %g years", entry.item, entry.years),
			}, nil
		}
	}

	if amount.LessThan(c.capitalThreshold) {
		return &domain.Classification{
			IsCapital:       false,
			Category:        c.dailyExpenseLabel,
			ItemName:        description,
			UsefulLifeYears: 0,
			Reasoning:       "Low amount, treated as operating expense",
		}, nil
	}

	return &domain.Classification{
		IsCapital:       true,
		Category:        c.defaultAssetsLabel,
		ItemName:        description,
		UsefulLifeYears: c.defaultLifeYears,
		Reasoning:       fmt.Sprintf("Default as capital expenditure, %g years", c.defaultLifeYears),
	}, nil
}

// titleCase upper-cases the first letter of each space-separated word.
// strings.Title is deprecated and Unicode-aware casing is overkill for the
// ASCII item vocabulary above.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
