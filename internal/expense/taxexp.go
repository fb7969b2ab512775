package expense

import (
	"math"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type taxProps struct {
	Auto        bool    `json:"auto"`
	Amount      float64 `json:"amount"`
	Periodicity string  `json:"periodicity"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`
}

// autoTaxRate approximates combined tax and social insurance as a share of
// total income when no salary record computes it precisely.
const autoTaxRate = 0.20

// TaxResolver handles the generic tax expense record. In auto mode it is
// suppressed for the whole year whenever any salary record already emitted
// an auto-tax entry, even for a different household member. That is a known
// modeling approximation kept for parity with how households actually
// declare a single tax record.
type TaxResolver struct{}

func (r *TaxResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	var props taxProps
	json.Unmarshal(rec.Properties, &props)

	if !inWindow(ctx.Year, props.StartYear, props.EndYear) {
		return 0
	}

	if props.Auto {
		if ctx.SalaryAutoTaxed {
			return 0
		}
		return math.Floor(ctx.TotalIncome * autoTaxRate)
	}
	return annualize(props.Amount, props.Periodicity) * ctx.Settings.InflationFactor(ctx.Year)
}
