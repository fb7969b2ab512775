package tax

// Params holds every statutory constant the calculator uses. The values are
// simplified approximations of the Japanese regime circa 2024, intended for
// household planning rather than filing. They are data, not law: callers may
// load overrides from configuration without touching the algorithms.
type Params struct {
	SalaryDeduction []SalaryDeductionBracket `mapstructure:"salary_deduction"`
	BasicDeduction  float64                  `mapstructure:"basic_deduction"`
	Brackets        []Bracket                `mapstructure:"brackets"`

	SurtaxRate       float64 `mapstructure:"surtax_rate"`
	SurtaxFinalYear  int     `mapstructure:"surtax_final_year"`
	ResidenceTaxRate float64 `mapstructure:"residence_tax_rate"`

	HealthRate        float64 `mapstructure:"health_rate"`
	HealthIncomeCap   float64 `mapstructure:"health_income_cap"`
	NursingRate       float64 `mapstructure:"nursing_rate"`
	NursingMinAge     int     `mapstructure:"nursing_min_age"`
	NursingMaxAge     int     `mapstructure:"nursing_max_age"`
	PensionPremRate   float64 `mapstructure:"pension_premium_rate"`
	PensionIncomeCap  float64 `mapstructure:"pension_income_cap"`
	PensionPremMaxAge int     `mapstructure:"pension_premium_max_age"`
	EmploymentRate    float64 `mapstructure:"employment_rate"`

	FullBasicPension      float64 `mapstructure:"full_basic_pension"`
	BasicPensionFullYears int     `mapstructure:"basic_pension_full_years"`
	EarningsMultiplier    float64 `mapstructure:"earnings_multiplier"`
	EarlyClaimPerMonth    float64 `mapstructure:"early_claim_per_month"`
	EarlyClaimFloor       float64 `mapstructure:"early_claim_floor"`
	DeferredClaimPerMonth float64 `mapstructure:"deferred_claim_per_month"`
	DeferredClaimCeil     float64 `mapstructure:"deferred_claim_ceil"`
	StandardClaimAge      int     `mapstructure:"standard_claim_age"`

	PensionDeduction65Plus  []PensionDeductionBracket `mapstructure:"pension_deduction_65_plus"`
	PensionDeductionUnder65 []PensionDeductionBracket `mapstructure:"pension_deduction_under_65"`

	ElderlyCare ElderlyCareParams `mapstructure:"elderly_care"`

	WithholdingRate float64 `mapstructure:"withholding_rate"`

	RetirementDeductionPerYear     float64 `mapstructure:"retirement_deduction_per_year"`
	RetirementDeductionPerYearLong float64 `mapstructure:"retirement_deduction_per_year_long"`
	RetirementDeductionFloor       float64 `mapstructure:"retirement_deduction_floor"`
	RetirementDeductionBreakYears  int     `mapstructure:"retirement_deduction_break_years"`
	DefaultServiceYears            int     `mapstructure:"default_service_years"`
}

// SalaryDeductionBracket: for income up to UpTo (0 = unbounded), the
// deduction is income*Rate + Offset.
type SalaryDeductionBracket struct {
	UpTo   float64 `mapstructure:"up_to"`
	Rate   float64 `mapstructure:"rate"`
	Offset float64 `mapstructure:"offset"`
}

// Bracket: for taxable income up to UpTo (0 = unbounded), tax is
// taxable*Rate − Subtractor.
type Bracket struct {
	UpTo       float64 `mapstructure:"up_to"`
	Rate       float64 `mapstructure:"rate"`
	Subtractor float64 `mapstructure:"subtractor"`
}

// PensionDeductionBracket mirrors SalaryDeductionBracket for pension income.
type PensionDeductionBracket struct {
	UpTo   float64 `mapstructure:"up_to"`
	Rate   float64 `mapstructure:"rate"`
	Offset float64 `mapstructure:"offset"`
}

// ElderlyCareParams approximate the late-elderly medical premium (75+) and
// the national-health stepped premium for ages 65–74.
type ElderlyCareParams struct {
	LateRate    float64    `mapstructure:"late_rate"`
	LateFlatFee float64    `mapstructure:"late_flat_fee"`
	LateCap     float64    `mapstructure:"late_cap"`
	MidBands    []CareBand `mapstructure:"mid_bands"`
	MidMinAge   int        `mapstructure:"mid_min_age"`
	LateMinAge  int        `mapstructure:"late_min_age"`
}

// CareBand: flat annual fee for income up to UpTo (0 = unbounded).
type CareBand struct {
	UpTo float64 `mapstructure:"up_to"`
	Fee  float64 `mapstructure:"fee"`
}

// DefaultParams returns the built-in approximation set.
func DefaultParams() *Params {
	return &Params{
		SalaryDeduction: []SalaryDeductionBracket{
			{UpTo: 1_625_000, Rate: 0, Offset: 550_000},
			{UpTo: 1_800_000, Rate: 0.40, Offset: -100_000},
			{UpTo: 3_600_000, Rate: 0.30, Offset: 80_000},
			{UpTo: 6_600_000, Rate: 0.20, Offset: 440_000},
			{UpTo: 8_500_000, Rate: 0.10, Offset: 1_100_000},
			{UpTo: 0, Rate: 0, Offset: 1_950_000},
		},
		BasicDeduction: 480_000,
		Brackets: []Bracket{
			{UpTo: 1_950_000, Rate: 0.05, Subtractor: 0},
			{UpTo: 3_300_000, Rate: 0.10, Subtractor: 97_500},
			{UpTo: 6_950_000, Rate: 0.20, Subtractor: 427_500},
			{UpTo: 9_000_000, Rate: 0.23, Subtractor: 636_000},
			{UpTo: 18_000_000, Rate: 0.33, Subtractor: 1_536_000},
			{UpTo: 40_000_000, Rate: 0.40, Subtractor: 2_796_000},
			{UpTo: 0, Rate: 0.45, Subtractor: 4_796_000},
		},

		SurtaxRate:       0.021,
		SurtaxFinalYear:  2037,
		ResidenceTaxRate: 0.10,

		HealthRate:        0.0998,
		HealthIncomeCap:   16_680_000,
		NursingRate:       0.0182,
		NursingMinAge:     40,
		NursingMaxAge:     65,
		PensionPremRate:   0.183,
		PensionIncomeCap:  7_800_000,
		PensionPremMaxAge: 70,
		EmploymentRate:    0.006,

		FullBasicPension:      816_000,
		BasicPensionFullYears: 40,
		EarningsMultiplier:    0.005481,
		EarlyClaimPerMonth:    0.004,
		EarlyClaimFloor:       0.76,
		DeferredClaimPerMonth: 0.007,
		DeferredClaimCeil:     1.84,
		StandardClaimAge:      65,

		PensionDeduction65Plus: []PensionDeductionBracket{
			{UpTo: 3_300_000, Rate: 0, Offset: 1_100_000},
			{UpTo: 4_100_000, Rate: 0.25, Offset: 275_000},
			{UpTo: 7_700_000, Rate: 0.15, Offset: 685_000},
			{UpTo: 10_000_000, Rate: 0.05, Offset: 1_455_000},
			{UpTo: 0, Rate: 0, Offset: 1_955_000},
		},
		PensionDeductionUnder65: []PensionDeductionBracket{
			{UpTo: 1_300_000, Rate: 0, Offset: 600_000},
			{UpTo: 4_100_000, Rate: 0.25, Offset: 275_000},
			{UpTo: 7_700_000, Rate: 0.15, Offset: 685_000},
			{UpTo: 10_000_000, Rate: 0.05, Offset: 1_455_000},
			{UpTo: 0, Rate: 0, Offset: 1_955_000},
		},

		ElderlyCare: ElderlyCareParams{
			LateRate:    0.08,
			LateFlatFee: 47_000,
			LateCap:     660_000,
			MidBands: []CareBand{
				{UpTo: 1_000_000, Fee: 20_000},
				{UpTo: 2_000_000, Fee: 60_000},
				{UpTo: 3_000_000, Fee: 100_000},
				{UpTo: 4_000_000, Fee: 150_000},
				{UpTo: 0, Fee: 200_000},
			},
			MidMinAge:  65,
			LateMinAge: 75,
		},

		WithholdingRate: 0.20315,

		RetirementDeductionPerYear:     400_000,
		RetirementDeductionPerYearLong: 700_000,
		RetirementDeductionFloor:       800_000,
		RetirementDeductionBreakYears:  20,
		DefaultServiceYears:            38,
	}
}
