package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionFields(ctx context.Context, transactionID string, description *string, amount *decimal.Decimal, category *string) error {
	args := m.Called(ctx, transactionID, description, amount, category)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionCascade(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, includeDisposed bool) ([]domain.Asset, error) {
	args := m.Called(ctx, includeDisposed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAssetWithTransaction(ctx context.Context, asset domain.Asset, txn domain.Transaction) error {
	args := m.Called(ctx, asset, txn)
	return args.Error(0)
}

func (m *MockAssetRepository) DisposeAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAssetCascade(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

var _ portsrepo.AssetRepositoryFacade = (*MockAssetRepository)(nil)

// --- Mock DepreciationRepository ---
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) ListDepreciationRecords(ctx context.Context, assetID *string, period *string) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) DepreciationExists(ctx context.Context, assetID string, period string) (bool, error) {
	args := m.Called(ctx, assetID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepreciationRepository) PostDepreciation(ctx context.Context, record domain.DepreciationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

var _ portsrepo.DepreciationRepositoryFacade = (*MockDepreciationRepository)(nil)

// --- Mock Classifier ---
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, description string, amount decimal.Decimal) (*domain.Classification, error) {
	args := m.Called(ctx, description, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Classification), args.Error(1)
}

var _ portssvc.Classifier = (*MockClassifier)(nil)

// --- Mock DepreciationService ---
type MockDepreciationService struct {
	mock.Mock
}

func (m *MockDepreciationService) Run(ctx context.Context, period string) (*domain.DepreciationRunResult, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRunResult), args.Error(1)
}

var _ portssvc.DepreciationService = (*MockDepreciationService)(nil)
