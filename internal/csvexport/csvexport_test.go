package csvexport

import (
	"bytes"
	"strings"
	"testing"

	"lifeplan-engine/internal/model"
)

func sampleYears() []model.YearlyResult {
	return []model.YearlyResult{
		{
			Year: 2026,
			Members: []model.MemberYear{
				{MemberID: "m1", Name: "Taro", Age: 40},
			},
			TotalIncome:       5_000_000,
			TotalExpense:      3_000_000,
			CashFlow:          2_000_000,
			IncomeByCategory:  map[string]float64{"salary": 5_000_000},
			ExpenseByCategory: map[string]float64{"living": 3_000_000},
			AssetBalances: []model.AssetBalance{
				{AssetID: "a1", Name: "Bank", Balance: 3_000_000},
			},
			TotalAssets: 3_000_000,
			Events:      []string{`Buy "dream" house, finally`},
		},
		{
			Year: 2027,
			Members: []model.MemberYear{
				{MemberID: "m1", Name: "Taro", Age: 41},
			},
			TotalIncome:       5_100_000,
			TotalExpense:      3_100_000,
			CashFlow:          2_000_000,
			IncomeByCategory:  map[string]float64{"salary": 5_100_000},
			ExpenseByCategory: map[string]float64{"living": 3_100_000},
			AssetBalances: []model.AssetBalance{
				{AssetID: "a1", Name: "Bank", Balance: 5_000_000},
			},
			TotalAssets: 5_000_000,
		},
	}
}

func TestWriteStartsWithBOM(t *testing.T) {
	data, err := Bytes(sampleYears())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("output must start with a UTF-8 BOM")
	}
}

func TestYearColumns(t *testing.T) {
	data, err := Bytes(sampleYears())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data[3:])), "\n")
	if !strings.HasPrefix(lines[0], "Item,2026,2027") {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	var found bool
	for _, line := range lines {
		if strings.HasPrefix(line, "Total income,5000000,5100000") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing total income row in:\n%s", string(data))
	}
}

func TestEmbeddedQuotesAndCommasEscaped(t *testing.T) {
	data, err := Bytes(sampleYears())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// encoding/csv doubles quotes and wraps fields containing commas.
	if !strings.Contains(string(data), `"Buy ""dream"" house, finally"`) {
		t.Fatalf("event name not escaped:\n%s", string(data))
	}
}

func TestEmptyResults(t *testing.T) {
	data, err := Bytes(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data[3:])), "\n")
	if lines[0] != "Item" {
		t.Fatalf("expected bare header, got %q", lines[0])
	}
}
