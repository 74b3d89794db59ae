package domain

// RecordingResult is what a recording operation produced: the booked
// transaction, the asset if the spend was capitalized, the classification
// that drove the decision, and a display-only cost impact projection.
type RecordingResult struct {
	Transaction    Transaction
	Asset          *Asset
	Classification Classification
	Impact         PurchaseImpact
}
