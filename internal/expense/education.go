package expense

import (
	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/education"
	"lifeplan-engine/internal/model"
)

type educationProps struct {
	Kindergarten education.Choice `json:"kindergarten"`
	Elementary   education.Choice `json:"elementary"`
	JuniorHigh   education.Choice `json:"junior_high"`
	HighSchool   education.Choice `json:"high_school"`
	University   education.Choice `json:"university"`

	ExtracurricularMonthly float64 `json:"extracurricular_monthly"`
	ExtraStartAge          int     `json:"extra_start_age"`
	ExtraEndAge            int     `json:"extra_end_age"`
}

func (p *educationProps) choiceFor(stage education.Stage) education.Choice {
	switch stage {
	case education.StageKindergarten:
		return p.Kindergarten
	case education.StageElementary:
		return p.Elementary
	case education.StageJuniorHigh:
		return p.JuniorHigh
	case education.StageHighSchool:
		return p.HighSchool
	case education.StageUniversity:
		return p.University
	}
	return education.ChoiceNone
}

type EducationResolver struct{}

func (r *EducationResolver) Resolve(ctx *Context, rec *model.Expense) float64 {
	child := ctx.Plan.Member(rec.MemberID)
	if child == nil {
		return 0
	}

	var props educationProps
	json.Unmarshal(rec.Properties, &props)

	age := child.AgeIn(ctx.Year)
	infl := ctx.Settings.InflationFactor(ctx.Year)

	stage := education.StageFor(age)
	total := ctx.Costs.AnnualCost(stage, props.choiceFor(stage)) * infl

	if props.ExtracurricularMonthly > 0 && age >= props.ExtraStartAge &&
		(props.ExtraEndAge == 0 || age <= props.ExtraEndAge) {
		total += props.ExtracurricularMonthly * 12 * infl
	}
	return total
}
