package income

import (
	"fmt"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type pensionProps struct {
	ContributionYears int     `json:"contribution_years"`
	AvgMonthlyIncome  float64 `json:"avg_monthly_income"`
	BasicOnly         bool    `json:"basic_only"`
	CorporatePension  float64 `json:"corporate_pension"`
	StartAge          int     `json:"start_age"`
	CustomAmount      float64 `json:"custom_amount"`
}

type PensionResolver struct{}

func (r *PensionResolver) Resolve(ctx *Context, rec *model.Income) Result {
	member := ctx.Plan.Member(rec.MemberID)
	if member == nil {
		return Result{}
	}

	var props pensionProps
	json.Unmarshal(rec.Properties, &props)

	startAge := props.StartAge
	if startAge == 0 {
		startAge = ctx.Params.StandardClaimAge
	}
	age := member.AgeIn(ctx.Year)
	if age < startAge {
		return Result{}
	}

	amount := props.CustomAmount
	if amount == 0 {
		amount = r.statutoryAmount(ctx, &props, startAge)
	}
	if amount <= 0 {
		return Result{}
	}

	return Result{
		Amount: amount,
		Taxes: []model.LineItem{{
			SourceID: rec.IncomeID,
			Name:     fmt.Sprintf("Pension tax (%s)", rec.Name),
			Category: string(model.ExpenseTax),
			Amount:   ctx.Params.PensionTax(amount, age, ctx.Year),
		}},
	}
}

// statutoryAmount sums the capped basic pension, the earnings-proportional
// component, the early/deferred-claim adjustment and any corporate pension.
func (r *PensionResolver) statutoryAmount(ctx *Context, props *pensionProps, startAge int) float64 {
	p := ctx.Params

	years := props.ContributionYears
	if years > p.BasicPensionFullYears {
		years = p.BasicPensionFullYears
	}
	basic := p.FullBasicPension * float64(years) / float64(p.BasicPensionFullYears)

	var earnings float64
	if !props.BasicOnly {
		earnings = props.AvgMonthlyIncome * p.EarningsMultiplier * float64(props.ContributionYears) * 12
	}

	amount := (basic + earnings) * p.ClaimAdjustment(startAge)
	return amount + props.CorporatePension
}
