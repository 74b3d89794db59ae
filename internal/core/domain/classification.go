package domain

// Classification is the result of analyzing a free-text expense description:
// whether to capitalize it, the spending category, and an estimated useful
// life for capital items.
type Classification struct {
	IsCapital       bool    `json:"isCapital"`
	Category        string  `json:"category"`
	ItemName        string  `json:"itemName"`
	UsefulLifeYears float64 `json:"usefulLifeYears"` // 0 for operating expenses
	Reasoning       string  `json:"reasoning"`
}
