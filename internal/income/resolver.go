// Package income resolves income records to annual amounts. Each kind has
// its own resolver that unmarshals its kind-specific properties; resolvers
// are stateless given (record, year).
package income

import (
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/tax"
)

// Context carries the per-year inputs shared by all resolvers.
type Context struct {
	Plan     *model.Plan
	Settings model.Settings
	Params   *tax.Params
	Year     int
}

// Result is one record's contribution for a year: the annual amount and any
// tax expense entries it generates as a side effect.
type Result struct {
	Amount float64
	Taxes  []model.LineItem
}

// Resolver turns one income record plus the year context into a Result.
// Out-of-window records resolve to a zero Result, never an error.
type Resolver interface {
	Resolve(ctx *Context, rec *model.Income) Result
}

var registry = map[model.IncomeKind]Resolver{
	model.IncomeSalary:     &SalaryResolver{},
	model.IncomePension:    &PensionResolver{},
	model.IncomeRetirement: &RetirementResolver{},
	model.IncomeInvestment: &InvestmentResolver{},
	model.IncomeBusiness:   &BusinessResolver{},
	model.IncomeOther:      &BusinessResolver{},
}

func Get(kind model.IncomeKind) (Resolver, bool) {
	r, ok := registry[kind]
	return r, ok
}

// Periodicity values shared by the flat-amount variants.
const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
	PeriodOneTime = "one_time"
)

// annualize converts a declared amount to an annual figure.
func annualize(amount float64, periodicity string) float64 {
	if periodicity == PeriodMonthly {
		return amount * 12
	}
	return amount
}

// inWindow reports whether year falls inside [start, end]; a zero start is
// open at the beginning and a zero end is open at the end.
func inWindow(year, start, end int) bool {
	if start != 0 && year < start {
		return false
	}
	if end != 0 && year > end {
		return false
	}
	return true
}
