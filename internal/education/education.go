// Package education maps a child's age to an education stage and looks up
// the annual cost of that stage under a public/private selection.
package education

// Stage is a banded life phase with half-open age boundaries.
type Stage string

const (
	StageNone         Stage = ""
	StageKindergarten Stage = "kindergarten"
	StageElementary   Stage = "elementary"
	StageJuniorHigh   Stage = "junior_high"
	StageHighSchool   Stage = "high_school"
	StageUniversity   Stage = "university"
)

// StageFor resolves the education stage for an age: kindergarten 3–5,
// elementary 6–11, junior high 12–14, high school 15–17, university 18–21.
func StageFor(age int) Stage {
	switch {
	case age >= 3 && age < 6:
		return StageKindergarten
	case age >= 6 && age < 12:
		return StageElementary
	case age >= 12 && age < 15:
		return StageJuniorHigh
	case age >= 15 && age < 18:
		return StageHighSchool
	case age >= 18 && age < 22:
		return StageUniversity
	}
	return StageNone
}

// Choice selects the school type for a stage. ChoiceNone contributes zero.
type Choice string

const (
	ChoiceNone    Choice = "none"
	ChoicePublic  Choice = "public"
	ChoicePrivate Choice = "private"
)

// StageCost is the annual cost of one stage by school type, in yen.
type StageCost struct {
	Public  float64 `mapstructure:"public"`
	Private float64 `mapstructure:"private"`
}

// CostTable holds per-stage annual costs. Like tax.Params, the values are
// planning approximations and may be overridden from configuration.
type CostTable struct {
	Kindergarten StageCost `mapstructure:"kindergarten"`
	Elementary   StageCost `mapstructure:"elementary"`
	JuniorHigh   StageCost `mapstructure:"junior_high"`
	HighSchool   StageCost `mapstructure:"high_school"`
	University   StageCost `mapstructure:"university"`
}

func DefaultCostTable() *CostTable {
	return &CostTable{
		Kindergarten: StageCost{Public: 220_000, Private: 530_000},
		Elementary:   StageCost{Public: 320_000, Private: 1_600_000},
		JuniorHigh:   StageCost{Public: 490_000, Private: 1_410_000},
		HighSchool:   StageCost{Public: 460_000, Private: 970_000},
		University:   StageCost{Public: 540_000, Private: 1_310_000},
	}
}

// AnnualCost returns the cost of attending the given stage under the given
// choice. Unknown stages and ChoiceNone cost nothing.
func (t *CostTable) AnnualCost(stage Stage, choice Choice) float64 {
	var sc StageCost
	switch stage {
	case StageKindergarten:
		sc = t.Kindergarten
	case StageElementary:
		sc = t.Elementary
	case StageJuniorHigh:
		sc = t.JuniorHigh
	case StageHighSchool:
		sc = t.HighSchool
	case StageUniversity:
		sc = t.University
	default:
		return 0
	}
	switch choice {
	case ChoicePublic:
		return sc.Public
	case ChoicePrivate:
		return sc.Private
	}
	return 0
}
