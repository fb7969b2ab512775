package expense

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

const (
	ModeOneTime   = "one_time"
	ModeInterval  = "interval"
	ModeRecurring = "recurring"
)

type otherProps struct {
	Mode          string  `json:"mode"`
	Amount        float64 `json:"amount"`
	Periodicity   string  `json:"periodicity"`
	StartYear     int     `json:"start_year"`
	EndYear       int     `json:"end_year"`
	IntervalYears int     `json:"interval_years"`
}

// OtherResolver handles the generic expense: one-time, interval-recurring or
// plain recurring.
type OtherResolver struct{}

func (r *OtherResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	var props otherProps
	json.Unmarshal(rec.Properties, &props)

	infl := ctx.Settings.InflationFactor(ctx.Year)

	switch props.Mode {
	case ModeOneTime:
		if ctx.Year != props.StartYear {
			return 0
		}
		return props.Amount * infl
	case ModeInterval:
		if props.IntervalYears <= 0 || !inWindow(ctx.Year, props.StartYear, props.EndYear) {
			return 0
		}
		if (ctx.Year-props.StartYear)%props.IntervalYears != 0 {
			return 0
		}
		return props.Amount * infl
	default:
		if !inWindow(ctx.Year, props.StartYear, props.EndYear) {
			return 0
		}
		return annualize(props.Amount, props.Periodicity) * infl
	}
}
