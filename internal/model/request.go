package model

type SimulationRequest struct {
	PlanID string `json:"plan_id,omitempty"`
	Plan   Plan   `json:"plan"`
}
