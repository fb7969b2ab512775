package model

import (
	json "github.com/goccy/go-json"
)

// Plan is the full input snapshot for one simulation run. The engine never
// mutates it; every edit in the caller produces a fresh snapshot.
type Plan struct {
	Family   []FamilyMember `json:"family"`
	Incomes  []Income       `json:"incomes"`
	Expenses []Expense      `json:"expenses"`
	Assets   []Asset        `json:"assets"`
	Events   []LifeEvent    `json:"events"`
	Settings Settings       `json:"settings"`
}

// Member returns the family member with the given id, or nil.
func (p *Plan) Member(id string) *FamilyMember {
	for i := range p.Family {
		if p.Family[i].MemberID == id {
			return &p.Family[i]
		}
	}
	return nil
}

type Role string

const (
	RoleHouseholdHead Role = "household_head"
	RoleSpouse        Role = "spouse"
	RoleChild         Role = "child"
	RoleOther         Role = "other"
)

type FamilyMember struct {
	MemberID   string `json:"member_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	BirthYear  int    `json:"birth_year"`
	BirthMonth int    `json:"birth_month"`
}

// AgeIn returns the member's age in the given calendar year.
func (m *FamilyMember) AgeIn(year int) int {
	return year - m.BirthYear
}

type IncomeKind string

const (
	IncomeSalary     IncomeKind = "salary"
	IncomePension    IncomeKind = "pension"
	IncomeRetirement IncomeKind = "retirement"
	IncomeInvestment IncomeKind = "investment"
	IncomeBusiness   IncomeKind = "business"
	IncomeOther      IncomeKind = "other"
)

// Income is a tagged variant: Kind selects the resolver, Properties carries
// the kind-specific fields and is unmarshaled by the resolver itself.
type Income struct {
	IncomeID   string          `json:"income_id"`
	Name       string          `json:"name"`
	Kind       IncomeKind      `json:"kind"`
	MemberID   string          `json:"member_id,omitempty"`
	Properties json.RawMessage `json:"properties"`
}

type ExpenseCategory string

const (
	ExpenseHousing       ExpenseCategory = "housing"
	ExpenseEducation     ExpenseCategory = "education"
	ExpenseTax           ExpenseCategory = "tax"
	ExpenseInsurance     ExpenseCategory = "insurance"
	ExpenseCar           ExpenseCategory = "car"
	ExpenseAllowance     ExpenseCategory = "allowance"
	ExpenseLiving        ExpenseCategory = "living"
	ExpenseUtility       ExpenseCategory = "utility"
	ExpenseCommunication ExpenseCategory = "communication"
	ExpenseMedical       ExpenseCategory = "medical"
	ExpenseOther         ExpenseCategory = "other"

	// ExpenseEvent is the reporting category for one-off life events. It is
	// not a declarable expense record category.
	ExpenseEvent ExpenseCategory = "event"
)

type Expense struct {
	ExpenseID  string          `json:"expense_id"`
	Name       string          `json:"name"`
	Category   ExpenseCategory `json:"category"`
	MemberID   string          `json:"member_id,omitempty"`
	Properties json.RawMessage `json:"properties"`
}

type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetDeposit    AssetType = "deposit"
	AssetStocks     AssetType = "stocks"
	AssetBonds      AssetType = "bonds"
	AssetFund       AssetType = "fund"
	AssetOtherAsset AssetType = "other"
)

type Asset struct {
	AssetID      string        `json:"asset_id"`
	Name         string        `json:"name"`
	Type         AssetType     `json:"type"`
	Value        float64       `json:"value"`
	AnnualRate   float64       `json:"annual_rate"`
	Compounding  bool          `json:"compounding"`
	Accumulation *Accumulation `json:"accumulation,omitempty"`
}

// CashLike reports whether the asset can serve as the ledger's
// cash-equivalent holding.
func (a *Asset) CashLike() bool {
	return a.Type == AssetCash || a.Type == AssetDeposit
}

// Accumulation is a scheduled recurring contribution into an asset.
type Accumulation struct {
	MonthlyAmount float64 `json:"monthly_amount"`
	StartYear     int     `json:"start_year"`
	EndYear       int     `json:"end_year"`
}

type EventType string

const (
	EventGeneral     EventType = "general"
	EventCarPurchase EventType = "car_purchase"
)

type LifeEvent struct {
	EventID            string          `json:"event_id"`
	Name               string          `json:"name"`
	Type               EventType       `json:"type"`
	Year               int             `json:"year"`
	Cost               float64         `json:"cost"`
	RecurrenceInterval int             `json:"recurrence_interval,omitempty"`
	EndYear            int             `json:"end_year,omitempty"`
	CarMaintenance     *CarMaintenance `json:"car_maintenance,omitempty"`
}

// CarMaintenance is the recurring cost bundle attached to a car purchase.
type CarMaintenance struct {
	AnnualCost float64 `json:"annual_cost"`
}
