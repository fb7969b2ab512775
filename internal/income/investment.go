package income

import (
	"fmt"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type flatProps struct {
	Amount      float64 `json:"amount"`
	Periodicity string  `json:"periodicity"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`
}

// active reports whether the record contributes in the given year,
// accounting for one-time periodicity.
func (p *flatProps) active(year int) bool {
	if p.Periodicity == PeriodOneTime {
		return year == p.StartYear
	}
	return inWindow(year, p.StartYear, p.EndYear)
}

type InvestmentResolver struct{}

func (r *InvestmentResolver) Resolve(ctx *Context, rec *model.Income) Result {
	var props flatProps
	json.Unmarshal(rec.Properties, &props)

	if !props.active(ctx.Year) {
		return Result{}
	}
	amount := annualize(props.Amount, props.Periodicity)
	if amount <= 0 {
		return Result{}
	}

	return Result{
		Amount: amount,
		Taxes: []model.LineItem{{
			SourceID: rec.IncomeID,
			Name:     fmt.Sprintf("Withholding tax (%s)", rec.Name),
			Category: string(model.ExpenseTax),
			Amount:   ctx.Params.Withholding(amount),
		}},
	}
}
