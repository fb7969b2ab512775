package store

import (
	"testing"

	"lifeplan-engine/internal/model"
)

func TestImportToleratesMissingKeys(t *testing.T) {
	plan, err := Import([]byte(`{}`))
	if err != nil {
		t.Fatalf("empty document must import: %v", err)
	}
	if plan.Family == nil || plan.Incomes == nil || plan.Expenses == nil ||
		plan.Assets == nil || plan.Events == nil {
		t.Fatal("missing collections must become empty, not nil")
	}
	if plan.Settings.StartYear == 0 || plan.Settings.EndYear <= plan.Settings.StartYear {
		t.Fatalf("expected default settings, got %+v", plan.Settings)
	}
}

func TestImportMalformedJSON(t *testing.T) {
	if _, err := Import([]byte(`{"family": [`)); err == nil {
		t.Fatal("malformed JSON must be reported")
	}
}

func TestRoundTrip(t *testing.T) {
	original := &model.Plan{
		Family: []model.FamilyMember{
			{MemberID: "m1", Name: "Taro", Role: model.RoleHouseholdHead, BirthYear: 1986},
		},
		Assets: []model.Asset{
			{AssetID: "a1", Name: "Bank", Type: model.AssetCash, Value: 1_000_000},
		},
		Settings: model.Settings{StartYear: 2026, EndYear: 2075, InflationRate: 0.01},
	}

	data, err := Export(original)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	plan, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(plan.Family) != 1 || plan.Family[0].Name != "Taro" {
		t.Fatalf("family did not round-trip: %+v", plan.Family)
	}
	if len(plan.Assets) != 1 || plan.Assets[0].Value != 1_000_000 {
		t.Fatalf("assets did not round-trip: %+v", plan.Assets)
	}
	if plan.Settings != original.Settings {
		t.Fatalf("settings did not round-trip: %+v", plan.Settings)
	}
	if plan.Incomes == nil || len(plan.Incomes) != 0 {
		t.Fatalf("expected empty incomes, got %+v", plan.Incomes)
	}
}
