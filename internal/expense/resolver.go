// Package expense resolves expense records to inflation-adjusted annual
// amounts. Like income resolvers, each category unmarshals its own
// properties and out-of-window records resolve to zero.
package expense

import (
	"lifeplan-engine/internal/education"
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/tax"
)

// Context carries the per-year inputs shared by all resolvers. TotalIncome
// and SalaryAutoTaxed are populated by the orchestrator after income
// resolution so the generic tax expense can avoid double taxation.
type Context struct {
	Plan            *model.Plan
	Settings        model.Settings
	Params          *tax.Params
	Costs           *education.CostTable
	Year            int
	TotalIncome     float64
	SalaryAutoTaxed bool
}

// Resolver turns one expense record plus the year context into an annual
// amount. Zero means the record does not apply this year.
type Resolver interface {
	Resolve(ctx *Context, rec *model.Expense) float64
}

var registry = map[model.ExpenseCategory]Resolver{
	model.ExpenseHousing:       &HousingResolver{},
	model.ExpenseEducation:     &EducationResolver{},
	model.ExpenseTax:           &TaxResolver{},
	model.ExpenseCar:           &CarResolver{},
	model.ExpenseInsurance:     &RecurringResolver{},
	model.ExpenseAllowance:     &RecurringResolver{},
	model.ExpenseLiving:        &RecurringResolver{},
	model.ExpenseUtility:       &RecurringResolver{},
	model.ExpenseCommunication: &RecurringResolver{},
	model.ExpenseMedical:       &RecurringResolver{},
	model.ExpenseOther:         &OtherResolver{},
}

func Get(category model.ExpenseCategory) (Resolver, bool) {
	r, ok := registry[category]
	return r, ok
}

const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

func annualize(amount float64, periodicity string) float64 {
	if periodicity == PeriodYearly {
		return amount
	}
	return amount * 12
}

func inWindow(year, start, end int) bool {
	if start != 0 && year < start {
		return false
	}
	if end != 0 && year > end {
		return false
	}
	return true
}
