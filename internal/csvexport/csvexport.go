// Package csvexport flattens yearly results into a year-columned CSV table:
// one row per output field, one column per year. Output is UTF-8 with a
// byte-order mark so spreadsheet applications detect the encoding.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"lifeplan-engine/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write emits the CSV table for the given results. encoding/csv handles
// quote-escaping of embedded commas, quotes and newlines.
func Write(w io.Writer, years []model.YearlyResult) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(years)+1)
	header = append(header, "Item")
	for _, y := range years {
		header = append(header, fmt.Sprintf("%d", y.Year))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rows := buildRows(years)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Bytes is Write into a buffer.
func Bytes(years []model.YearlyResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, years); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildRows(years []model.YearlyResult) [][]string {
	var rows [][]string

	row := func(label string, value func(model.YearlyResult) string) {
		r := make([]string, 0, len(years)+1)
		r = append(r, label)
		for _, y := range years {
			r = append(r, value(y))
		}
		rows = append(rows, r)
	}
	money := func(label string, value func(model.YearlyResult) float64) {
		row(label, func(y model.YearlyResult) string {
			return fmt.Sprintf("%.0f", value(y))
		})
	}

	for _, m := range memberList(years) {
		id := m.MemberID
		row("Age: "+m.Name, func(y model.YearlyResult) string {
			for _, my := range y.Members {
				if my.MemberID == id {
					return fmt.Sprintf("%d", my.Age)
				}
			}
			return ""
		})
	}

	money("Total income", func(y model.YearlyResult) float64 { return y.TotalIncome })
	for _, cat := range categoryList(years, func(y model.YearlyResult) map[string]float64 { return y.IncomeByCategory }) {
		c := cat
		money("Income: "+c, func(y model.YearlyResult) float64 { return y.IncomeByCategory[c] })
	}

	money("Total expense", func(y model.YearlyResult) float64 { return y.TotalExpense })
	for _, cat := range categoryList(years, func(y model.YearlyResult) map[string]float64 { return y.ExpenseByCategory }) {
		c := cat
		money("Expense: "+c, func(y model.YearlyResult) float64 { return y.ExpenseByCategory[c] })
	}

	money("Cash flow", func(y model.YearlyResult) float64 { return y.CashFlow })

	for _, a := range assetList(years) {
		id := a.AssetID
		money("Asset: "+a.Name, func(y model.YearlyResult) float64 {
			for _, ab := range y.AssetBalances {
				if ab.AssetID == id {
					return ab.Balance
				}
			}
			return 0
		})
	}

	money("Total assets", func(y model.YearlyResult) float64 { return y.TotalAssets })
	money("Interest gain", func(y model.YearlyResult) float64 { return y.AssetChange.InterestGain })
	money("Contributions", func(y model.YearlyResult) float64 { return y.AssetChange.Contribution })

	row("Events", func(y model.YearlyResult) string {
		var s string
		for i, name := range y.Events {
			if i > 0 {
				s += ", "
			}
			s += name
		}
		return s
	})

	return rows
}

// memberList returns the member identities of the first year; identities are
// stable across the run.
func memberList(years []model.YearlyResult) []model.MemberYear {
	if len(years) == 0 {
		return nil
	}
	return years[0].Members
}

func assetList(years []model.YearlyResult) []model.AssetBalance {
	if len(years) == 0 {
		return nil
	}
	return years[0].AssetBalances
}

// categoryList is the sorted union of category keys across all years.
func categoryList(years []model.YearlyResult, pick func(model.YearlyResult) map[string]float64) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, y := range years {
		for cat := range pick(y) {
			if !seen[cat] {
				seen[cat] = true
				cats = append(cats, cat)
			}
		}
	}
	sort.Strings(cats)
	return cats
}
