package repositories

// RepositoryProvider bundles the repositories for service construction.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepositoryFacade
	AssetRepo        AssetRepositoryFacade
	DepreciationRepo DepreciationRepositoryFacade
}
