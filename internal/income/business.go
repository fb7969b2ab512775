package income

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

// BusinessResolver serves both business and generic other income: a flat
// declared amount inside its window, scaled by the income growth factor.
type BusinessResolver struct{}

func (r *BusinessResolver) Resolve(ctx *Context, rec *model.Income) Result {
	var props flatProps
	json.Unmarshal(rec.Properties, &props)

	if !props.active(ctx.Year) {
		return Result{}
	}
	amount := annualize(props.Amount, props.Periodicity) * ctx.Settings.GrowthFactor(ctx.Year)
	if amount <= 0 {
		return Result{}
	}
	return Result{Amount: amount}
}
