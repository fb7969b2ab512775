package expense

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type recurringProps struct {
	Amount      float64 `json:"amount"`
	Periodicity string  `json:"periodicity"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`
}

// RecurringResolver serves the plain recurring categories: insurance,
// allowance, living, utility, communication and medical.
type RecurringResolver struct{}

func (r *RecurringResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	var props recurringProps
	json.Unmarshal(rec.Properties, &props)

	if !inWindow(ctx.Year, props.StartYear, props.EndYear) {
		return 0
	}
	return annualize(props.Amount, props.Periodicity) * ctx.Settings.InflationFactor(ctx.Year)
}
