package expense

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/mortgage"
)

const (
	HousingRent      = "rent"
	HousingOwnedLoan = "owned_loan"
	HousingOwned     = "owned"
)

type housingProps struct {
	Mode        string  `json:"mode"`
	MonthlyRent float64 `json:"monthly_rent"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`

	LoanPrincipal float64             `json:"loan_principal"`
	LoanRate      float64             `json:"loan_rate"`
	LoanTermYears int                 `json:"loan_term_years"`
	LoanStartYear int                 `json:"loan_start_year"`
	RateSchedule  []mortgage.RateStep `json:"rate_schedule,omitempty"`

	PropertyTax float64 `json:"property_tax"`

	Apartment       bool    `json:"apartment"`
	CondoMonthlyFee float64 `json:"condo_monthly_fee"`
	RepairCost      float64 `json:"repair_cost"`
	RepairInterval  int     `json:"repair_interval"`
	RepairStartYear int     `json:"repair_start_year"`
	FireInsurance   float64 `json:"fire_insurance"`
}

type HousingResolver struct{}

func (r *HousingResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	var props housingProps
	json.Unmarshal(rec.Properties, &props)

	switch props.Mode {
	case HousingRent:
		if !inWindow(ctx.Year, props.StartYear, props.EndYear) {
			return 0
		}
		return props.MonthlyRent * 12 * ctx.Settings.InflationFactor(ctx.Year)
	case HousingOwnedLoan, HousingOwned:
		return r.resolveOwned(ctx, &props)
	}
	return 0
}

func (r *HousingResolver) resolveOwned(ctx *Context, props *housingProps) float64 {
	ownedFrom := props.StartYear
	if ownedFrom == 0 {
		ownedFrom = props.LoanStartYear
	}
	if !inWindow(ctx.Year, ownedFrom, props.EndYear) {
		return 0
	}

	infl := ctx.Settings.InflationFactor(ctx.Year)
	total := props.PropertyTax*infl + props.FireInsurance*infl

	if props.Apartment {
		total += props.CondoMonthlyFee * 12 * infl
	}
	if props.RepairInterval > 0 && props.RepairCost > 0 {
		repairFrom := props.RepairStartYear
		if repairFrom == 0 {
			repairFrom = ownedFrom
		}
		if ctx.Year >= repairFrom && (ctx.Year-repairFrom)%props.RepairInterval == 0 {
			total += props.RepairCost * infl
		}
	}

	// Loan payments are nominal debt service and are not inflation adjusted.
	if props.Mode == HousingOwnedLoan {
		total += mortgage.AnnualPayment(
			props.LoanPrincipal, props.LoanRate, props.RateSchedule,
			props.LoanStartYear, props.LoanTermYears, ctx.Year)
	}
	return total
}
