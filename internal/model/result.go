package model

// LineItem is one resolved income or expense entry for a year.
type LineItem struct {
	SourceID string  `json:"source_id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// MemberYear is one family member's age (and, for children, education stage)
// in a given year.
type MemberYear struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Stage    string `json:"stage,omitempty"`
}

type AssetBalance struct {
	AssetID string  `json:"asset_id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// AssetChange decomposes a year's total-asset movement.
type AssetChange struct {
	InterestGain   float64 `json:"interest_gain"`
	Contribution   float64 `json:"contribution"`
	CashFlowImpact float64 `json:"cash_flow_impact"`
	TotalChange    float64 `json:"total_change"`
}

type YearlyResult struct {
	Year              int                `json:"year"`
	Members           []MemberYear       `json:"members"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	CashFlow          float64            `json:"cash_flow"`
	IncomeDetails     []LineItem         `json:"income_details"`
	ExpenseDetails    []LineItem         `json:"expense_details"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	AssetBalances     []AssetBalance     `json:"asset_balances"`
	TotalAssets       float64            `json:"total_assets"`
	AssetChange       AssetChange        `json:"asset_change"`
	Events            []string           `json:"events,omitempty"`
}
