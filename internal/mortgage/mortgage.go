// Package mortgage amortizes housing loans: fixed-rate annuity payments and
// variable-rate loans whose remaining balance must be simulated forward from
// origination one month at a time.
package mortgage

import "math"

// RateStep changes the loan's annual rate starting AfterYears years from
// origination. Steps are expected in ascending AfterYears order.
type RateStep struct {
	AfterYears int     `json:"after_years"`
	Rate       float64 `json:"rate"`
}

// AnnuityPayment returns the annual annuity payment that fully amortizes
// principal at the given annual nominal rate over termYears. A zero rate
// degenerates to straight-line principal repayment.
func AnnuityPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termYears)
	}
	r := annualRate / 12
	n := float64(termYears) * 12
	growth := math.Pow(1+r, n)
	monthly := principal * r * growth / (growth - 1)
	return monthly * 12
}

// RateInEffect returns the annual rate applicable elapsedYears after
// origination: the base rate, overridden by the latest step already reached.
func RateInEffect(baseRate float64, schedule []RateStep, elapsedYears int) float64 {
	rate := baseRate
	for _, s := range schedule {
		if elapsedYears >= s.AfterYears {
			rate = s.Rate
		}
	}
	return rate
}

// AnnualPayment returns the loan expense for a calendar year, zero outside
// the loan term. For a scheduled (variable-rate) loan the remaining balance
// is re-simulated from origination: each elapsed year re-derives the annuity
// payment from the then-current balance and remaining term at the rate in
// effect, then amortizes twelve monthly steps to carry the true balance
// forward. The returned payment is this year's annuity against that balance,
// not a cached origination schedule.
func AnnualPayment(principal, baseRate float64, schedule []RateStep, startYear, termYears, year int) float64 {
	if year < startYear || year >= startYear+termYears {
		return 0
	}
	if len(schedule) == 0 {
		return AnnuityPayment(principal, baseRate, termYears)
	}

	balance := principal
	for y := startYear; y < year; y++ {
		elapsed := y - startYear
		rate := RateInEffect(baseRate, schedule, elapsed)
		remaining := termYears - elapsed
		balance = amortizeYear(balance, rate, remaining)
		if balance <= 0 {
			return 0
		}
	}

	elapsed := year - startYear
	rate := RateInEffect(baseRate, schedule, elapsed)
	return AnnuityPayment(balance, rate, termYears-elapsed)
}

// amortizeYear applies twelve monthly amortization steps and returns the
// balance carried into the next year.
func amortizeYear(balance, annualRate float64, remainingYears int) float64 {
	payment := AnnuityPayment(balance, annualRate, remainingYears)
	monthly := payment / 12
	mr := annualRate / 12
	for m := 0; m < 12; m++ {
		interest := balance * mr
		principalPaid := monthly - interest
		if principalPaid > balance {
			principalPaid = balance
		}
		balance -= principalPaid
		if balance <= 0 {
			return 0
		}
	}
	return balance
}

// TotalInterest returns the interest paid over a full fixed-rate term.
func TotalInterest(principal, annualRate float64, termYears int) float64 {
	return AnnuityPayment(principal, annualRate, termYears)*float64(termYears) - principal
}
