package income

import (
	"fmt"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type retirementProps struct {
	Amount       float64 `json:"amount"`
	ReceiptYear  int     `json:"receipt_year"`
	ServiceYears int     `json:"service_years"`
}

type RetirementResolver struct{}

func (r *RetirementResolver) Resolve(ctx *Context, rec *model.Income) Result {
	var props retirementProps
	json.Unmarshal(rec.Properties, &props)

	if ctx.Year != props.ReceiptYear || props.Amount <= 0 {
		return Result{}
	}

	years := props.ServiceYears
	if years == 0 {
		years = estimateServiceYears(ctx, rec.MemberID)
	}

	return Result{
		Amount: props.Amount,
		Taxes: []model.LineItem{{
			SourceID: rec.IncomeID,
			Name:     fmt.Sprintf("Retirement tax (%s)", rec.Name),
			Category: string(model.ExpenseTax),
			Amount:   ctx.Params.RetirementTax(props.Amount, years, ctx.Year),
		}},
	}
}

// estimateServiceYears derives years of service from the member's salary
// record's age window when no explicit value is declared.
func estimateServiceYears(ctx *Context, memberID string) int {
	for i := range ctx.Plan.Incomes {
		other := &ctx.Plan.Incomes[i]
		if other.Kind != model.IncomeSalary || other.MemberID != memberID {
			continue
		}
		var sp salaryProps
		json.Unmarshal(other.Properties, &sp)
		if sp.EndAge > sp.StartAge {
			return sp.EndAge - sp.StartAge
		}
	}
	return ctx.Params.DefaultServiceYears
}
