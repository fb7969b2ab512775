package model

type SimulationResponse struct {
	SimulationMetadata SimulationMetadata `json:"simulation_metadata"`
	SimulationResult   SimulationResult   `json:"simulation_result"`
}

type SimulationMetadata struct {
	SimulationID          string `json:"simulation_id"`
	PlanID                string `json:"plan_id,omitempty"`
	SimulationStartedAt   string `json:"simulation_started_at"`
	SimulationCompletedAt string `json:"simulation_completed_at"`
	SimulationDurationMs  int64  `json:"simulation_duration_ms"`
	SimulationOutcome     string `json:"simulation_outcome"`
}

type SimulationResult struct {
	Messages []CalculationMessage `json:"messages"`
	Years    []YearlyResult       `json:"years"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
