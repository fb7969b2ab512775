// Package store round-trips the whole input state through a single JSON
// document. Import is tolerant: missing top-level keys become empty
// collections or default settings, and malformed JSON leaves the caller's
// prior state untouched.
package store

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"lifeplan-engine/internal/model"
)

// Document is the persisted shape of a plan.
type Document struct {
	Family     []model.FamilyMember `json:"family"`
	Incomes    []model.Income       `json:"incomes"`
	Expenses   []model.Expense      `json:"expenses"`
	Assets     []model.Asset        `json:"assets"`
	Events     []model.LifeEvent    `json:"events"`
	Settings   *model.Settings      `json:"settings"`
	ExportedAt string               `json:"exported_at,omitempty"`
}

// Import parses a plan document, substituting empty collections and default
// settings for missing keys.
func Import(data []byte) (*model.Plan, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan document: %w", err)
	}
	return doc.toPlan(), nil
}

func (doc *Document) toPlan() *model.Plan {
	plan := &model.Plan{
		Family:   doc.Family,
		Incomes:  doc.Incomes,
		Expenses: doc.Expenses,
		Assets:   doc.Assets,
		Events:   doc.Events,
		Settings: model.DefaultSettings(),
	}
	if doc.Settings != nil {
		plan.Settings = *doc.Settings
	}
	if plan.Family == nil {
		plan.Family = []model.FamilyMember{}
	}
	if plan.Incomes == nil {
		plan.Incomes = []model.Income{}
	}
	if plan.Expenses == nil {
		plan.Expenses = []model.Expense{}
	}
	if plan.Assets == nil {
		plan.Assets = []model.Asset{}
	}
	if plan.Events == nil {
		plan.Events = []model.LifeEvent{}
	}
	return plan
}

// Export serializes a plan with an export timestamp.
func Export(plan *model.Plan) ([]byte, error) {
	settings := plan.Settings
	doc := Document{
		Family:     plan.Family,
		Incomes:    plan.Incomes,
		Expenses:   plan.Expenses,
		Assets:     plan.Assets,
		Events:     plan.Events,
		Settings:   &settings,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return json.Marshal(doc)
}
