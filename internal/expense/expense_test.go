package expense

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/education"
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/mortgage"
	"lifeplan-engine/internal/tax"
)

func testContext(year int, plan *model.Plan) *Context {
	return &Context{
		Plan:     plan,
		Settings: plan.Settings,
		Params:   tax.DefaultParams(),
		Costs:    education.DefaultCostTable(),
		Year:     year,
	}
}

func basePlan() *model.Plan {
	return &model.Plan{
		Family: []model.FamilyMember{
			{MemberID: "c1", Name: "Hanako", Role: model.RoleChild, BirthYear: 2019},
		},
		Settings: model.Settings{StartYear: 2026, EndYear: 2075},
	}
}

func TestRentWithInflation(t *testing.T) {
	plan := basePlan()
	plan.Settings.InflationRate = 0.01
	rec := model.Expense{
		ExpenseID: "h1", Name: "Rent", Category: model.ExpenseHousing,
		Properties: json.RawMessage(`{"mode": "rent", "monthly_rent": 120000, "start_year": 2026, "end_year": 2035}`),
	}
	r := &HousingResolver{}

	got := r.Resolve(testContext(2028, plan), &rec)
	expected := 120_000 * 12 * math.Pow(1.01, 2)
	if math.Abs(got-expected) > 1e-6 {
		t.Fatalf("expected %f, got %f", expected, got)
	}

	if got := r.Resolve(testContext(2036, plan), &rec); got != 0 {
		t.Fatalf("expected zero after window, got %f", got)
	}
}

func TestOwnedWithLoan(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "h1", Name: "House", Category: model.ExpenseHousing,
		Properties: json.RawMessage(`{
			"mode": "owned_loan",
			"loan_principal": 30000000, "loan_rate": 0.01,
			"loan_term_years": 30, "loan_start_year": 2026,
			"property_tax": 120000, "fire_insurance": 20000
		}`),
	}
	r := &HousingResolver{}

	got := r.Resolve(testContext(2030, plan), &rec)
	loan := mortgage.AnnuityPayment(30_000_000, 0.01, 30)
	expected := loan + 120_000 + 20_000
	if math.Abs(got-expected) > 1e-6 {
		t.Fatalf("expected %f, got %f", expected, got)
	}

	// After the loan term only the ownership costs remain.
	got = r.Resolve(testContext(2058, plan), &rec)
	if math.Abs(got-140_000) > 1e-6 {
		t.Fatalf("expected ownership costs 140000 after loan, got %f", got)
	}
}

func TestApartmentFeesAndMajorRepair(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "h1", Name: "Condo", Category: model.ExpenseHousing,
		Properties: json.RawMessage(`{
			"mode": "owned",
			"start_year": 2026,
			"apartment": true, "condo_monthly_fee": 25000,
			"repair_cost": 1000000, "repair_interval": 12, "repair_start_year": 2026
		}`),
	}
	r := &HousingResolver{}

	withRepair := r.Resolve(testContext(2026, plan), &rec)
	if math.Abs(withRepair-(25_000*12+1_000_000)) > 1e-6 {
		t.Fatalf("expected fees plus repair, got %f", withRepair)
	}

	plain := r.Resolve(testContext(2027, plan), &rec)
	if math.Abs(plain-25_000*12) > 1e-6 {
		t.Fatalf("expected fees only, got %f", plain)
	}

	nextCycle := r.Resolve(testContext(2038, plan), &rec)
	if math.Abs(nextCycle-(25_000*12+1_000_000)) > 1e-6 {
		t.Fatalf("expected repair to recur after 12 years, got %f", nextCycle)
	}
}

func TestEducationStageCosts(t *testing.T) {
	plan := basePlan() // child born 2019
	rec := model.Expense{
		ExpenseID: "e1", Name: "School", Category: model.ExpenseEducation, MemberID: "c1",
		Properties: json.RawMessage(`{
			"elementary": "public", "junior_high": "private", "university": "none",
			"extracurricular_monthly": 10000, "extra_start_age": 6, "extra_end_age": 15
		}`),
	}
	r := &EducationResolver{}
	costs := education.DefaultCostTable()

	// Age 7: public elementary plus extracurricular.
	got := r.Resolve(testContext(2026, plan), &rec)
	expected := costs.Elementary.Public + 10_000*12
	if math.Abs(got-expected) > 1e-6 {
		t.Fatalf("expected %f, got %f", expected, got)
	}

	// Age 13: private junior high plus extracurricular.
	got = r.Resolve(testContext(2032, plan), &rec)
	expected = costs.JuniorHigh.Private + 10_000*12
	if math.Abs(got-expected) > 1e-6 {
		t.Fatalf("expected %f, got %f", expected, got)
	}

	// Age 16: high school not declared, only extracurricular gone too (>15).
	got = r.Resolve(testContext(2035, plan), &rec)
	if got != 0 {
		t.Fatalf("expected zero for undeclared stage, got %f", got)
	}

	// Age 19: university declared "none" contributes zero.
	got = r.Resolve(testContext(2038, plan), &rec)
	if got != 0 {
		t.Fatalf("expected zero for none selection, got %f", got)
	}
}

func TestAutoTaxSuppressedBySalaryTax(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "t1", Name: "Taxes", Category: model.ExpenseTax,
		Properties: json.RawMessage(`{"auto": true}`),
	}
	r := &TaxResolver{}

	ctx := testContext(2026, plan)
	ctx.TotalIncome = 6_000_000
	ctx.SalaryAutoTaxed = true
	if got := r.Resolve(ctx, &rec); got != 0 {
		t.Fatalf("expected suppression with salary auto-tax present, got %f", got)
	}

	ctx.SalaryAutoTaxed = false
	if got := r.Resolve(ctx, &rec); got != 1_200_000 {
		t.Fatalf("expected 20%% of income, got %f", got)
	}
}

func TestCustomTaxAmount(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "t1", Name: "Taxes", Category: model.ExpenseTax,
		Properties: json.RawMessage(`{"amount": 50000, "periodicity": "monthly"}`),
	}
	r := &TaxResolver{}

	if got := r.Resolve(testContext(2026, plan), &rec); got != 600_000 {
		t.Fatalf("expected 600000, got %f", got)
	}
}

func TestCarRunningCostsAndReplacement(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "c1", Name: "Car", Category: model.ExpenseCar,
		Properties: json.RawMessage(`{
			"has_car": true,
			"annual_tax": 40000, "annual_insurance": 60000, "annual_maintenance": 50000,
			"monthly_gas": 8000, "monthly_parking": 12000,
			"purchase_price": 2500000, "purchase_year": 2026, "replacement_interval": 7
		}`),
	}
	r := &CarResolver{}

	running := 40_000.0 + 60_000 + 50_000 + 8_000*12 + 12_000*12

	got := r.Resolve(testContext(2026, plan), &rec)
	if math.Abs(got-(running+2_500_000)) > 1e-6 {
		t.Fatalf("expected purchase year total, got %f", got)
	}

	got = r.Resolve(testContext(2027, plan), &rec)
	if math.Abs(got-running) > 1e-6 {
		t.Fatalf("expected running costs only, got %f", got)
	}

	got = r.Resolve(testContext(2033, plan), &rec)
	if math.Abs(got-(running+2_500_000)) > 1e-6 {
		t.Fatalf("expected replacement purchase, got %f", got)
	}
}

func TestNoCarResolvesZero(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "c1", Name: "Car", Category: model.ExpenseCar,
		Properties: json.RawMessage(`{"has_car": false, "annual_tax": 40000}`),
	}
	r := &CarResolver{}

	if got := r.Resolve(testContext(2026, plan), &rec); got != 0 {
		t.Fatalf("expected zero without a car, got %f", got)
	}
}

func TestGenericOneTime(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "o1", Name: "Renovation", Category: model.ExpenseOther,
		Properties: json.RawMessage(`{"mode": "one_time", "amount": 3000000, "start_year": 2030}`),
	}
	r := &OtherResolver{}

	if got := r.Resolve(testContext(2030, plan), &rec); got != 3_000_000 {
		t.Fatalf("expected 3000000, got %f", got)
	}
	if got := r.Resolve(testContext(2031, plan), &rec); got != 0 {
		t.Fatalf("expected zero outside the one-time year, got %f", got)
	}
}

func TestGenericInterval(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "o1", Name: "Appliances", Category: model.ExpenseOther,
		Properties: json.RawMessage(`{"mode": "interval", "amount": 300000, "start_year": 2026, "interval_years": 10}`),
	}
	r := &OtherResolver{}

	if got := r.Resolve(testContext(2026, plan), &rec); got != 300_000 {
		t.Fatalf("expected base-year hit, got %f", got)
	}
	if got := r.Resolve(testContext(2031, plan), &rec); got != 0 {
		t.Fatalf("expected zero off-cycle, got %f", got)
	}
	if got := r.Resolve(testContext(2036, plan), &rec); got != 300_000 {
		t.Fatalf("expected cycle hit, got %f", got)
	}
}

func TestRecurringMonthlyWithWindow(t *testing.T) {
	plan := basePlan()
	rec := model.Expense{
		ExpenseID: "l1", Name: "Groceries", Category: model.ExpenseLiving,
		Properties: json.RawMessage(`{"amount": 180000, "periodicity": "monthly", "start_year": 2026, "end_year": 2060}`),
	}
	r := &RecurringResolver{}

	if got := r.Resolve(testContext(2030, plan), &rec); got != 180_000*12 {
		t.Fatalf("expected 2160000, got %f", got)
	}
	if got := r.Resolve(testContext(2061, plan), &rec); got != 0 {
		t.Fatalf("expected zero after window, got %f", got)
	}
}
