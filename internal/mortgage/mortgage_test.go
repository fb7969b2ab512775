package mortgage

import (
	"math"
	"testing"
)

func TestFixedRateAnnualPayment(t *testing.T) {
	payment := AnnuityPayment(30_000_000, 0.01, 30)

	// ~1,159,000/year for a 30M loan at 1% over 30 years.
	if math.Abs(payment-1_159_000) > 1_159_000*0.01 {
		t.Fatalf("expected ~1159000, got %f", payment)
	}

	// Constant across the term.
	for year := 2026; year < 2056; year++ {
		p := AnnualPayment(30_000_000, 0.01, nil, 2026, 30, year)
		if p != payment {
			t.Fatalf("year %d: expected constant payment %f, got %f", year, payment, p)
		}
	}
}

func TestPaymentsCoverPrincipalPlusInterest(t *testing.T) {
	principal := 30_000_000.0
	payment := AnnuityPayment(principal, 0.01, 30)
	totalPaid := payment * 30
	expected := principal + TotalInterest(principal, 0.01, 30)

	if math.Abs(totalPaid-expected) > 1 {
		t.Fatalf("total paid %f != principal+interest %f", totalPaid, expected)
	}
	if totalPaid <= principal {
		t.Fatalf("total paid %f should exceed principal %f", totalPaid, principal)
	}
}

func TestZeroRateStraightLine(t *testing.T) {
	payment := AnnuityPayment(30_000_000, 0, 30)
	if payment != 1_000_000 {
		t.Fatalf("expected 1000000, got %f", payment)
	}
}

func TestOutsideTermIsZero(t *testing.T) {
	if p := AnnualPayment(30_000_000, 0.01, nil, 2026, 30, 2025); p != 0 {
		t.Fatalf("expected 0 before origination, got %f", p)
	}
	if p := AnnualPayment(30_000_000, 0.01, nil, 2026, 30, 2056); p != 0 {
		t.Fatalf("expected 0 after maturity, got %f", p)
	}
}

func TestVariableRateStepRaisesPayment(t *testing.T) {
	schedule := []RateStep{{AfterYears: 10, Rate: 0.02}}

	before := AnnualPayment(30_000_000, 0.005, schedule, 2026, 35, 2035)
	atStep := AnnualPayment(30_000_000, 0.005, schedule, 2026, 35, 2036)

	if atStep <= before {
		t.Fatalf("payment must rise when the rate steps up: before %f, after %f", before, atStep)
	}

	// The stepped payment is recomputed against the amortized remaining
	// balance, so it must stay below a payment on the full principal at the
	// higher rate over the remaining term.
	naive := AnnuityPayment(30_000_000, 0.02, 25)
	if atStep >= naive {
		t.Fatalf("stepped payment %f should reflect the reduced balance (< %f)", atStep, naive)
	}
}

func TestVariableMatchesFixedWithoutSteps(t *testing.T) {
	schedule := []RateStep{{AfterYears: 0, Rate: 0.01}}
	fixed := AnnuityPayment(30_000_000, 0.01, 30)

	got := AnnualPayment(30_000_000, 0.01, schedule, 2026, 30, 2026)
	if math.Abs(got-fixed) > 1 {
		t.Fatalf("first-year variable payment %f should match fixed %f", got, fixed)
	}
}

func TestRateInEffect(t *testing.T) {
	schedule := []RateStep{{AfterYears: 5, Rate: 0.015}, {AfterYears: 10, Rate: 0.02}}

	if r := RateInEffect(0.005, schedule, 0); r != 0.005 {
		t.Fatalf("expected base rate, got %f", r)
	}
	if r := RateInEffect(0.005, schedule, 5); r != 0.015 {
		t.Fatalf("expected first step, got %f", r)
	}
	if r := RateInEffect(0.005, schedule, 12); r != 0.02 {
		t.Fatalf("expected second step, got %f", r)
	}
}
