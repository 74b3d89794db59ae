package services

// ServiceContainer bundles the application services for route registration.
type ServiceContainer struct {
	Recording    RecordingService
	Depreciation DepreciationService
	Reporting    ReportingService
	Asset        AssetService
}
