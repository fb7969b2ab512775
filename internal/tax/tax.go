// Package tax implements the simplified progressive income-tax,
// social-insurance, pension-tax and retirement-tax model. All exported
// results are floored to whole yen; negative intermediate bases clamp to
// zero before bracket lookup.
package tax

import "math"

// IncomeTax computes income tax on employment income: salary-income
// deduction, basic deduction, progressive schedule, reconstruction surtax
// (through the surtax final year) and the flat residence tax.
func (p *Params) IncomeTax(income float64, year int) float64 {
	if income <= 0 {
		return 0
	}
	taxable := income - p.salaryDeduction(income) - p.BasicDeduction
	if taxable < 0 {
		taxable = 0
	}
	return math.Floor(p.progressive(taxable, year) + taxable*p.ResidenceTaxRate)
}

// SocialInsurance computes the annual employee share of health, nursing-care,
// pension and employment-insurance premiums for the given income and age.
func (p *Params) SocialInsurance(income float64, age int) float64 {
	if income <= 0 {
		return 0
	}
	healthBase := math.Min(income, p.HealthIncomeCap)
	total := healthBase * p.HealthRate / 2
	if age >= p.NursingMinAge && age < p.NursingMaxAge {
		total += healthBase * p.NursingRate / 2
	}
	if age < p.PensionPremMaxAge {
		total += math.Min(income, p.PensionIncomeCap) * p.PensionPremRate / 2
	}
	total += income * p.EmploymentRate
	return math.Floor(total)
}

// SalaryTax is the combined income tax and social insurance emitted by a
// salary record with automatic tax calculation enabled.
func (p *Params) SalaryTax(income float64, age, year int) float64 {
	return p.IncomeTax(income, year) + p.SocialInsurance(income, age)
}

// PensionTax computes tax on public-pension income: age-tiered pension
// deduction, basic deduction, progressive schedule plus surtax and residence
// tax, and the elderly medical-insurance surcharge.
func (p *Params) PensionTax(pension float64, age, year int) float64 {
	if pension <= 0 {
		return 0
	}
	taxable := pension - p.pensionDeduction(pension, age) - p.BasicDeduction
	if taxable < 0 {
		taxable = 0
	}
	total := p.progressive(taxable, year) + taxable*p.ResidenceTaxRate
	total += p.elderlySurcharge(pension, age)
	return math.Floor(total)
}

// RetirementTax computes the one-time tax on a retirement lump sum: the
// service-year deduction, half the excess taxable, progressive schedule plus
// surtax, and residence tax on the taxable half. No social insurance applies.
func (p *Params) RetirementTax(lumpSum float64, serviceYears, year int) float64 {
	if lumpSum <= 0 {
		return 0
	}
	if serviceYears < 1 {
		serviceYears = 1
	}
	deduction := p.retirementDeduction(serviceYears)
	taxable := (lumpSum - deduction) / 2
	if taxable < 0 {
		taxable = 0
	}
	return math.Floor(p.progressive(taxable, year) + taxable*p.ResidenceTaxRate)
}

// Withholding is the flat withholding tax on investment income.
func (p *Params) Withholding(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return math.Floor(amount * p.WithholdingRate)
}

// progressive applies the bracket schedule and the reconstruction surtax.
func (p *Params) progressive(taxable float64, year int) float64 {
	if taxable <= 0 {
		return 0
	}
	var base float64
	for _, b := range p.Brackets {
		if b.UpTo == 0 || taxable <= b.UpTo {
			base = taxable*b.Rate - b.Subtractor
			break
		}
	}
	if base < 0 {
		base = 0
	}
	if year <= p.SurtaxFinalYear {
		base += base * p.SurtaxRate
	}
	return base
}

func (p *Params) salaryDeduction(income float64) float64 {
	for _, b := range p.SalaryDeduction {
		if b.UpTo == 0 || income <= b.UpTo {
			return income*b.Rate + b.Offset
		}
	}
	return 0
}

func (p *Params) pensionDeduction(pension float64, age int) float64 {
	table := p.PensionDeductionUnder65
	if age >= p.StandardClaimAge {
		table = p.PensionDeduction65Plus
	}
	for _, b := range table {
		if b.UpTo == 0 || pension <= b.UpTo {
			return pension*b.Rate + b.Offset
		}
	}
	return 0
}

func (p *Params) elderlySurcharge(pension float64, age int) float64 {
	ec := p.ElderlyCare
	switch {
	case age >= ec.LateMinAge:
		fee := pension*ec.LateRate + ec.LateFlatFee
		return math.Min(fee, ec.LateCap)
	case age >= ec.MidMinAge:
		for _, b := range ec.MidBands {
			if b.UpTo == 0 || pension <= b.UpTo {
				return b.Fee
			}
		}
	}
	return 0
}

func (p *Params) retirementDeduction(serviceYears int) float64 {
	years := float64(serviceYears)
	breakYears := float64(p.RetirementDeductionBreakYears)
	var deduction float64
	if years <= breakYears {
		deduction = p.RetirementDeductionPerYear * years
	} else {
		deduction = p.RetirementDeductionPerYear*breakYears +
			p.RetirementDeductionPerYearLong*(years-breakYears)
	}
	if deduction < p.RetirementDeductionFloor {
		deduction = p.RetirementDeductionFloor
	}
	return deduction
}

// ClaimAdjustment returns the early/deferred pension claim multiplier for a
// claim starting at the given age: reduced per month before the standard
// claim age (floored), increased per month after (capped).
func (p *Params) ClaimAdjustment(claimAge int) float64 {
	months := (claimAge - p.StandardClaimAge) * 12
	switch {
	case months < 0:
		factor := 1 + float64(months)*p.EarlyClaimPerMonth
		return math.Max(factor, p.EarlyClaimFloor)
	case months > 0:
		factor := 1 + float64(months)*p.DeferredClaimPerMonth
		return math.Min(factor, p.DeferredClaimCeil)
	}
	return 1
}
