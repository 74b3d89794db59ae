package services

import (
	"context"
	"time"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// ReportingService produces the cash-basis and accrual-basis views and their
// reconciliation.
type ReportingService interface {
	// CashFlow sums raw cash movements with transaction dates in
	// [start, end] inclusive. Depreciation is never consulted.
	CashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowReport, error)

	// Accrual reports the month's true living cost: operating expenses plus
	// depreciation. It runs the depreciation batch for the period first.
	Accrual(ctx context.Context, year int, month time.Month) (*domain.AccrualReport, error)

	// Compare reconciles the cash and accrual views of the same month.
	Compare(ctx context.Context, year int, month time.Month) (*domain.ReconciliationReport, error)

	// BalanceSheet reports the book value of all non-disposed assets.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)

	// DailyCost estimates the daily cost of living over a trailing window.
	DailyCost(ctx context.Context, days int) (*domain.DailyCostReport, error)
}
