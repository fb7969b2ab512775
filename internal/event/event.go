// Package event resolves one-off and recurring life events, including the
// car-maintenance streams attached to car-purchase events.
package event

import (
	"lifeplan-engine/internal/model"
)

// Resolve returns the expense line items the event generates in the given
// year and whether the event itself fired (for output annotation). Costs are
// inflation adjusted at fire time. Car-purchase costs and their maintenance
// streams are attributed to the "car" category.
func Resolve(settings model.Settings, ev *model.LifeEvent, year int) ([]model.LineItem, bool) {
	var items []model.LineItem
	fired := fires(settings, ev, year)

	category := string(model.ExpenseEvent)
	if ev.Type == model.EventCarPurchase {
		category = string(model.ExpenseCar)
	}

	if fired && ev.Cost != 0 {
		items = append(items, model.LineItem{
			SourceID: ev.EventID,
			Name:     ev.Name,
			Category: category,
			Amount:   ev.Cost * settings.InflationFactor(year),
		})
	}

	if ev.Type == model.EventCarPurchase && ev.CarMaintenance != nil &&
		ev.CarMaintenance.AnnualCost > 0 && year >= ev.Year && year <= endYear(settings, ev) {
		items = append(items, model.LineItem{
			SourceID: ev.EventID,
			Name:     ev.Name + " (maintenance)",
			Category: string(model.ExpenseCar),
			Amount:   ev.CarMaintenance.AnnualCost * settings.InflationFactor(year),
		})
	}

	return items, fired
}

func fires(settings model.Settings, ev *model.LifeEvent, year int) bool {
	if year < ev.Year {
		return false
	}
	if year == ev.Year {
		return true
	}
	if ev.RecurrenceInterval <= 0 {
		return false
	}
	if year > endYear(settings, ev) {
		return false
	}
	return (year-ev.Year)%ev.RecurrenceInterval == 0
}

func endYear(settings model.Settings, ev *model.LifeEvent) int {
	if ev.EndYear != 0 && ev.EndYear < settings.EndYear {
		return ev.EndYear
	}
	return settings.EndYear
}
