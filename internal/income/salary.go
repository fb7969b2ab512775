package income

import (
	"fmt"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

// CurvePoint is one declared point on the age→annual-amount salary curve.
type CurvePoint struct {
	Age    int     `json:"age"`
	Amount float64 `json:"amount"`
}

type salaryProps struct {
	Curve         []CurvePoint `json:"curve"`
	StartAge      int          `json:"start_age"`
	EndAge        int          `json:"end_age"`
	AutoTax       bool         `json:"auto_tax"`
	IncludesBonus bool         `json:"includes_bonus"`
}

type SalaryResolver struct{}

func (r *SalaryResolver) Resolve(ctx *Context, rec *model.Income) Result {
	member := ctx.Plan.Member(rec.MemberID)
	if member == nil {
		return Result{}
	}

	var props salaryProps
	json.Unmarshal(rec.Properties, &props)

	age := member.AgeIn(ctx.Year)
	if age < props.StartAge || (props.EndAge != 0 && age > props.EndAge) {
		return Result{}
	}

	amount := interpolateCurve(props.Curve, age) * ctx.Settings.GrowthFactor(ctx.Year)
	if amount <= 0 {
		return Result{}
	}

	res := Result{Amount: amount}
	if props.AutoTax {
		res.Taxes = append(res.Taxes, model.LineItem{
			SourceID: rec.IncomeID,
			Name:     fmt.Sprintf("Tax & insurance (%s)", rec.Name),
			Category: string(model.ExpenseTax),
			Amount:   ctx.Params.SalaryTax(amount, age, ctx.Year),
		})
	}
	return res
}

// interpolateCurve linearly interpolates the declared curve at the given
// age, extrapolating flat beyond its first and last points. The curve is
// expected sorted ascending by age.
func interpolateCurve(curve []CurvePoint, age int) float64 {
	if len(curve) == 0 {
		return 0
	}
	if age <= curve[0].Age {
		return curve[0].Amount
	}
	last := curve[len(curve)-1]
	if age >= last.Age {
		return last.Amount
	}
	for i := 1; i < len(curve); i++ {
		if age > curve[i].Age {
			continue
		}
		lo, hi := curve[i-1], curve[i]
		if hi.Age == lo.Age {
			return hi.Amount
		}
		t := float64(age-lo.Age) / float64(hi.Age-lo.Age)
		return lo.Amount + t*(hi.Amount-lo.Amount)
	}
	return last.Amount
}
