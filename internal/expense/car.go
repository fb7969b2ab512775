package expense

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

type carProps struct {
	HasCar            bool    `json:"has_car"`
	AnnualTax         float64 `json:"annual_tax"`
	AnnualInsurance   float64 `json:"annual_insurance"`
	AnnualMaintenance float64 `json:"annual_maintenance"`
	MonthlyGas        float64 `json:"monthly_gas"`
	MonthlyParking    float64 `json:"monthly_parking"`

	PurchasePrice       float64 `json:"purchase_price"`
	PurchaseYear        int     `json:"purchase_year"`
	ReplacementInterval int     `json:"replacement_interval"`
}

type CarResolver struct{}

func (r *CarResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	var props carProps
	json.Unmarshal(rec.Properties, &props)

	if !props.HasCar {
		return 0
	}

	infl := ctx.Settings.InflationFactor(ctx.Year)
	total := (props.AnnualTax + props.AnnualInsurance + props.AnnualMaintenance +
		props.MonthlyGas*12 + props.MonthlyParking*12) * infl

	if props.ReplacementInterval > 0 && ctx.Year >= props.PurchaseYear &&
		(ctx.Year-props.PurchaseYear)%props.ReplacementInterval == 0 {
		total += props.PurchasePrice * infl
	}
	return total
}
