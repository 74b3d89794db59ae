package dto

// RunDepreciationRequest selects the period for a depreciation batch run.
// An empty period defaults to the current month.
type RunDepreciationRequest struct {
	Period string `form:"period" binding:"omitempty,period"`
}
