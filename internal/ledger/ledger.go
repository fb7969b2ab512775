// Package ledger threads per-asset balances through the year loop: growth,
// affordability-clamped scheduled contributions, cash-flow application and
// the deficit-liquidation waterfall.
package ledger

import (
	"sort"

	"lifeplan-engine/internal/model"
)

// Ledger carries asset state across years. It is the only stateful part of
// a simulation run.
type Ledger struct {
	assets    []model.Asset
	balances  map[string]float64
	cashID    string
	virtual   float64
	lastTotal float64
}

// Snapshot is one year's asset outcome.
type Snapshot struct {
	Balances []model.AssetBalance
	Total    float64
	Change   model.AssetChange
}

// New seeds a ledger from the declared assets. The cash-equivalent holding
// is the first cash or deposit asset, else the first asset declared.
func New(assets []model.Asset) *Ledger {
	l := &Ledger{
		assets:   assets,
		balances: make(map[string]float64, len(assets)),
	}
	for i := range assets {
		l.balances[assets[i].AssetID] = assets[i].Value
		l.lastTotal += assets[i].Value
		if l.cashID == "" && assets[i].CashLike() {
			l.cashID = assets[i].AssetID
		}
	}
	if l.cashID == "" && len(assets) > 0 {
		l.cashID = assets[0].AssetID
	}
	return l
}

// Advance applies one year's net cash flow to the ledger and returns the
// year's snapshot. With no declared assets, cash flow accumulates in a
// single virtual running total.
func (l *Ledger) Advance(year int, cashFlow float64) Snapshot {
	if len(l.assets) == 0 {
		l.virtual += cashFlow
		return Snapshot{
			Total: l.virtual,
			Change: model.AssetChange{
				CashFlowImpact: cashFlow,
				TotalChange:    cashFlow,
			},
		}
	}

	desired := make(map[string]float64, len(l.assets))
	var totalDesired float64
	for i := range l.assets {
		a := &l.assets[i]
		if c := a.Accumulation; c != nil && c.MonthlyAmount > 0 &&
			year >= c.StartYear && (c.EndYear == 0 || year <= c.EndYear) {
			desired[a.AssetID] = c.MonthlyAmount * 12
			totalDesired += c.MonthlyAmount * 12
		}
	}

	// Affordability clamp: contributions shrink proportionally so their sum
	// never exceeds the cash projected after this year's flow.
	scale := 1.0
	projectedCash := l.balances[l.cashID] + cashFlow
	if totalDesired > 0 && projectedCash < totalDesired {
		if projectedCash <= 0 {
			scale = 0
		} else {
			scale = projectedCash / totalDesired
		}
	}

	var interestGain, totalContribution float64
	for i := range l.assets {
		a := &l.assets[i]
		bal := l.balances[a.AssetID]

		var gain float64
		if a.AnnualRate != 0 {
			if a.Compounding {
				gain = bal * a.AnnualRate
			} else {
				gain = a.Value * a.AnnualRate
			}
		}

		contribution := desired[a.AssetID] * scale
		if contribution > 0 && a.Compounding && a.AnnualRate > 0 {
			// Monthly deposits sit in the asset for half a year on average.
			gain += contribution * a.AnnualRate / 2
		}

		l.balances[a.AssetID] = bal + gain + contribution
		interestGain += gain
		totalContribution += contribution
	}

	l.balances[l.cashID] += cashFlow - totalContribution

	l.liquidate()

	snap := Snapshot{Balances: make([]model.AssetBalance, 0, len(l.assets))}
	for i := range l.assets {
		a := &l.assets[i]
		snap.Balances = append(snap.Balances, model.AssetBalance{
			AssetID: a.AssetID,
			Name:    a.Name,
			Balance: l.balances[a.AssetID],
		})
		snap.Total += l.balances[a.AssetID]
	}
	snap.Change = model.AssetChange{
		InterestGain:   interestGain,
		Contribution:   totalContribution,
		CashFlowImpact: cashFlow,
		TotalChange:    snap.Total - l.lastTotal,
	}
	l.lastTotal = snap.Total
	return snap
}

// liquidate draws down non-cash assets, lowest yield first, to bring a
// negative cash balance back to zero. The move is dollar-for-dollar, so the
// ledger total is unchanged. If holdings run out the deficit remains on the
// cash balance: an insolvent scenario, not a fault.
func (l *Ledger) liquidate() {
	deficit := -l.balances[l.cashID]
	if deficit <= 0 {
		return
	}

	order := make([]*model.Asset, 0, len(l.assets))
	for i := range l.assets {
		if l.assets[i].AssetID != l.cashID {
			order = append(order, &l.assets[i])
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].AnnualRate < order[j].AnnualRate
	})

	for _, a := range order {
		if deficit <= 0 {
			break
		}
		available := l.balances[a.AssetID]
		if available <= 0 {
			continue
		}
		take := available
		if take > deficit {
			take = deficit
		}
		l.balances[a.AssetID] -= take
		l.balances[l.cashID] += take
		deficit -= take
	}
}
