package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/dto"
	"github.com/lunebudget/true_cost_app/internal/middleware"
)

// daysPerMonth is the display convention for spreading a non-capital expense.
var daysPerMonth = decimal.NewFromInt(30)

type RecordingService struct {
	txnRepo    portsrepo.TransactionRepositoryFacade
	assetRepo  portsrepo.AssetRepositoryFacade
	classifier portssvc.Classifier
	now        func() time.Time
}

// NewRecordingService creates the service that books money movements.
func NewRecordingService(txnRepo portsrepo.TransactionRepositoryFacade, assetRepo portsrepo.AssetRepositoryFacade, classifier portssvc.Classifier) *RecordingService {
	return &RecordingService{
		txnRepo:    txnRepo,
		assetRepo:  assetRepo,
		classifier: classifier,
		now:        time.Now,
	}
}

// Ensure RecordingService implements portssvc.RecordingService
var _ portssvc.RecordingService = (*RecordingService)(nil)

// WithClock overrides the service clock, for deterministic tests.
func (s *RecordingService) WithClock(now func() time.Time) *RecordingService {
	s.now = now
	return s
}

// resolveDate parses an optional "YYYY-MM-DD" request date, defaulting to
// today. Malformed input fails with ErrValidation before anything is booked.
func (s *RecordingService) resolveDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", apperrors.ErrValidation, *raw)
	}
	return t, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}

// estimatePurchaseImpact projects how a purchase spreads across time. For
// operating expenses the spread degenerates: the full amount lands on the
// month it was paid.
func estimatePurchaseImpact(amount decimal.Decimal, usefulLifeYears float64) domain.PurchaseImpact {
	if usefulLifeYears <= 0 {
		return domain.PurchaseImpact{
			MonthlyCost: amount,
			DailyCost:   amount.Div(daysPerMonth),
			YearlyCost:  amount.Mul(decimal.NewFromInt(12)),
		}
	}
	years := decimal.NewFromFloat(usefulLifeYears)
	months := years.Mul(decimal.NewFromInt(12))
	return domain.PurchaseImpact{
		MonthlyCost: amount.Div(months),
		DailyCost:   amount.Div(years.Mul(decimal.NewFromInt(365))),
		YearlyCost:  amount.Div(years),
	}
}

// RecordExpense books an expense. The classifier decides whether it is
// capitalized; with UseClassifier false it is always booked as a plain
// operating expense.
func (s *RecordingService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*domain.RecordingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	txnDate, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	useClassifier := req.UseClassifier == nil || *req.UseClassifier

	var classification *domain.Classification
	if useClassifier {
		classification, err = s.classifier.Classify(ctx, req.Description, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to classify expense: %w", err)
		}
	} else {
		classification = &domain.Classification{
			IsCapital:       false,
			Category:        "Other",
			ItemName:        req.Description,
			UsefulLifeYears: 0,
			Reasoning:       "Classifier not used",
		}
	}

	if classification.IsCapital {
		return s.bookCapital(ctx, req.Description, req.Amount, txnDate, *classification)
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		Type:            domain.Expense,
		Category:        classification.Category,
		TransactionDate: txnDate,
		CreatedAt:       s.now(),
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save expense transaction: %w", err)
	}

	logger.Info("Expense recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", txn.Category),
		slog.String("amount", txn.Amount.String()),
	)

	return &domain.RecordingResult{
		Transaction:    txn,
		Classification: *classification,
		Impact:         estimatePurchaseImpact(req.Amount, 0),
	}, nil
}

// bookCapital creates the asset and its linked capital transaction in one
// repository call so they commit or fail together.
func (s *RecordingService) bookCapital(ctx context.Context, description string, amount decimal.Decimal, txnDate time.Time, classification domain.Classification) (*domain.RecordingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	usefulLifeMonths := int(math.Round(classification.UsefulLifeYears * 12))

	asset := domain.Asset{
		AssetID:                 uuid.NewString(),
		Name:                    classification.ItemName,
		OriginalCost:            amount,
		UsefulLifeMonths:        usefulLifeMonths,
		PurchaseDate:            txnDate,
		ResidualValue:           decimal.Zero,
		Category:                classification.Category,
		MonthlyDepreciation:     domain.ComputeMonthlyDepreciation(amount, decimal.Zero, usefulLifeMonths),
		AccumulatedDepreciation: decimal.Zero,
		CreatedAt:               s.now(),
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     description,
		Amount:          amount,
		Type:            domain.Capital,
		Category:        classification.Category,
		TransactionDate: txnDate,
		CreatedAt:       s.now(),
		AssetID:         &asset.AssetID,
	}

	if err := s.assetRepo.SaveAssetWithTransaction(ctx, asset, txn); err != nil {
		return nil, fmt.Errorf("failed to save asset with capital transaction: %w", err)
	}

	logger.Info("Capital expenditure recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("asset_id", asset.AssetID),
		slog.Int("useful_life_months", usefulLifeMonths),
		slog.String("amount", amount.String()),
	)

	return &domain.RecordingResult{
		Transaction:    txn,
		Asset:          &asset,
		Classification: classification,
		Impact:         estimatePurchaseImpact(amount, classification.UsefulLifeYears),
	}, nil
}

// RecordIncome books an income transaction.
func (s *RecordingService) RecordIncome(ctx context.Context, req dto.RecordIncomeRequest) (*domain.RecordingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	txnDate, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "Income"
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		Type:            domain.Income,
		Category:        category,
		TransactionDate: txnDate,
		CreatedAt:       s.now(),
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save income transaction: %w", err)
	}

	logger.Info("Income recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", txn.Amount.String()),
	)

	return &domain.RecordingResult{
		Transaction: txn,
		Classification: domain.Classification{
			IsCapital: false,
			Category:  category,
			ItemName:  req.Description,
			Reasoning: "Income",
		},
	}, nil
}

// RecordCapitalExpense books a capital expenditure with an explicitly given
// useful life, bypassing the classifier.
func (s *RecordingService) RecordCapitalExpense(ctx context.Context, req dto.RecordCapitalExpenseRequest) (*domain.RecordingResult, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.UsefulLifeYears <= 0 {
		return nil, fmt.Errorf("%w: useful life must be positive, got %g years", apperrors.ErrValidation, req.UsefulLifeYears)
	}
	txnDate, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}

	classification := domain.Classification{
		IsCapital:       true,
		Category:        category,
		ItemName:        req.Description,
		UsefulLifeYears: req.UsefulLifeYears,
		Reasoning:       "Useful life provided by the user",
	}
	return s.bookCapital(ctx, req.Description, req.Amount, txnDate, classification)
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (s *RecordingService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// UpdateTransaction corrects description, amount and/or category of a booked
// transaction and returns the corrected record.
func (s *RecordingService) UpdateTransaction(ctx context.Context, transactionID string, description *string, amount *decimal.Decimal, category *string) (*domain.Transaction, error) {
	if description == nil && amount == nil && category == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	if amount != nil {
		if err := validateAmount(*amount); err != nil {
			return nil, err
		}
	}

	if err := s.txnRepo.UpdateTransactionFields(ctx, transactionID, description, amount, category); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction %s after update: %w", transactionID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// RetractTransaction deletes a transaction; for capital transactions the
// linked asset and its depreciation history are removed in the same database
// transaction.
func (s *RecordingService) RetractTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransactionCascade(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to retract transaction %s: %w", transactionID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Transaction retracted", slog.String("transaction_id", transactionID))
	return nil
}
