// Package engine is the year-loop orchestrator: a pure function from a plan
// snapshot to an ordered sequence of yearly results.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lifeplan-engine/internal/education"
	"lifeplan-engine/internal/event"
	"lifeplan-engine/internal/expense"
	"lifeplan-engine/internal/income"
	"lifeplan-engine/internal/ledger"
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/tax"
)

// Process runs the simulation with the built-in tax parameters and
// education cost table.
func Process(req *model.SimulationRequest) *model.SimulationResponse {
	return ProcessWith(req, tax.DefaultParams(), education.DefaultCostTable())
}

// ProcessWith runs the simulation with explicit parameter sets. It never
// mutates the request; resolver-level oddities become WARNING messages and
// only an unusable year range fails the run.
func ProcessWith(req *model.SimulationRequest, params *tax.Params, costs *education.CostTable) *model.SimulationResponse {
	start := time.Now()

	plan := &req.Plan
	settings := plan.Settings

	var messages []model.CalculationMessage
	outcome := model.OutcomeSuccess

	var years []model.YearlyResult
	if settings.StartYear == 0 || settings.EndYear < settings.StartYear {
		messages = append(messages, model.CalculationMessage{
			ID:      0,
			Level:   model.LevelCritical,
			Code:    "INVALID_YEAR_RANGE",
			Message: fmt.Sprintf("Simulation years [%d, %d] are not a usable range", settings.StartYear, settings.EndYear),
		})
		outcome = model.OutcomeFailure
	} else {
		years, messages = run(plan, params, costs)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.CalculationMessage{}
	}
	if years == nil {
		years = []model.YearlyResult{}
	}

	return &model.SimulationResponse{
		SimulationMetadata: model.SimulationMetadata{
			SimulationID:          uuid.New().String(),
			PlanID:                req.PlanID,
			SimulationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			SimulationCompletedAt: now.Format(time.RFC3339),
			SimulationDurationMs:  elapsed.Milliseconds(),
			SimulationOutcome:     outcome,
		},
		SimulationResult: model.SimulationResult{
			Messages: messages,
			Years:    years,
		},
	}
}

func run(plan *model.Plan, params *tax.Params, costs *education.CostTable) ([]model.YearlyResult, []model.CalculationMessage) {
	settings := plan.Settings
	led := ledger.New(plan.Assets)

	var messages []model.CalculationMessage
	warned := make(map[string]bool)
	warn := func(key, code, text string) {
		if warned[key] {
			return
		}
		warned[key] = true
		messages = append(messages, model.CalculationMessage{
			ID:      len(messages),
			Level:   model.LevelWarning,
			Code:    code,
			Message: text,
		})
	}

	years := make([]model.YearlyResult, 0, settings.EndYear-settings.StartYear+1)

	for year := settings.StartYear; year <= settings.EndYear; year++ {
		ictx := &income.Context{Plan: plan, Settings: settings, Params: params, Year: year}

		var incomeDetails, derivedTaxes []model.LineItem
		var totalIncome float64
		salaryAutoTaxed := false

		for i := range plan.Incomes {
			rec := &plan.Incomes[i]
			resolver, ok := income.Get(rec.Kind)
			if !ok {
				warn("income:"+rec.IncomeID, "UNKNOWN_INCOME_KIND",
					fmt.Sprintf("Income %q has unknown kind %q; treated as zero", rec.Name, rec.Kind))
				continue
			}
			res := resolver.Resolve(ictx, rec)
			if res.Amount != 0 {
				incomeDetails = append(incomeDetails, model.LineItem{
					SourceID: rec.IncomeID,
					Name:     rec.Name,
					Category: string(rec.Kind),
					Amount:   res.Amount,
				})
				totalIncome += res.Amount
			}
			for _, t := range res.Taxes {
				if t.Amount == 0 {
					continue
				}
				derivedTaxes = append(derivedTaxes, t)
				if rec.Kind == model.IncomeSalary {
					salaryAutoTaxed = true
				}
			}
		}

		ectx := &expense.Context{
			Plan: plan, Settings: settings, Params: params, Costs: costs,
			Year: year, TotalIncome: totalIncome, SalaryAutoTaxed: salaryAutoTaxed,
		}

		var expenseDetails []model.LineItem
		var totalExpense float64

		for i := range plan.Expenses {
			rec := &plan.Expenses[i]
			resolver, ok := expense.Get(rec.Category)
			if !ok {
				warn("expense:"+rec.ExpenseID, "UNKNOWN_EXPENSE_CATEGORY",
					fmt.Sprintf("Expense %q has unknown category %q; treated as zero", rec.Name, rec.Category))
				continue
			}
			amount := resolver.Resolve(ectx, rec)
			if amount != 0 {
				expenseDetails = append(expenseDetails, model.LineItem{
					SourceID: rec.ExpenseID,
					Name:     rec.Name,
					Category: string(rec.Category),
					Amount:   amount,
				})
				totalExpense += amount
			}
		}

		for _, t := range derivedTaxes {
			expenseDetails = append(expenseDetails, t)
			totalExpense += t.Amount
		}

		var eventNames []string
		for i := range plan.Events {
			ev := &plan.Events[i]
			items, fired := event.Resolve(settings, ev, year)
			for _, item := range items {
				expenseDetails = append(expenseDetails, item)
				totalExpense += item.Amount
			}
			if fired {
				eventNames = append(eventNames, ev.Name)
			}
		}

		cashFlow := totalIncome - totalExpense
		snap := led.Advance(year, cashFlow)

		years = append(years, model.YearlyResult{
			Year:              year,
			Members:           resolveMembers(plan.Family, year),
			TotalIncome:       totalIncome,
			TotalExpense:      totalExpense,
			CashFlow:          cashFlow,
			IncomeDetails:     incomeDetails,
			ExpenseDetails:    expenseDetails,
			IncomeByCategory:  sumByCategory(incomeDetails),
			ExpenseByCategory: sumByCategory(expenseDetails),
			AssetBalances:     snap.Balances,
			TotalAssets:       snap.Total,
			AssetChange:       snap.Change,
			Events:            eventNames,
		})
	}

	return years, messages
}

// resolveMembers derives each member's age for the year and, for children,
// the education stage label.
func resolveMembers(family []model.FamilyMember, year int) []model.MemberYear {
	members := make([]model.MemberYear, 0, len(family))
	for i := range family {
		m := &family[i]
		my := model.MemberYear{
			MemberID: m.MemberID,
			Name:     m.Name,
			Age:      m.AgeIn(year),
		}
		if m.Role == model.RoleChild {
			my.Stage = string(education.StageFor(my.Age))
		}
		members = append(members, my)
	}
	return members
}

func sumByCategory(items []model.LineItem) map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range items {
		totals[item.Category] += item.Amount
	}
	return totals
}
