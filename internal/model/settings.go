package model

import (
	"math"
	"time"
)

// Settings are the simulation horizon and the global rate assumptions.
type Settings struct {
	StartYear        int     `json:"start_year"`
	EndYear          int     `json:"end_year"`
	InflationRate    float64 `json:"inflation_rate"`
	IncomeGrowthRate float64 `json:"income_growth_rate"`
}

const defaultHorizonYears = 50

// DefaultSettings starts at the current calendar year with a 50-year horizon
// and flat prices and incomes.
func DefaultSettings() Settings {
	year := time.Now().Year()
	return Settings{
		StartYear: year,
		EndYear:   year + defaultHorizonYears,
	}
}

// InflationFactor is the price-level multiplier for the given year relative
// to the simulation start.
func (s Settings) InflationFactor(year int) float64 {
	if s.InflationRate == 0 {
		return 1
	}
	return math.Pow(1+s.InflationRate, float64(year-s.StartYear))
}

// GrowthFactor is the income-growth multiplier for the given year relative
// to the simulation start.
func (s Settings) GrowthFactor(year int) float64 {
	if s.IncomeGrowthRate == 0 {
		return 1
	}
	return math.Pow(1+s.IncomeGrowthRate, float64(year-s.StartYear))
}
