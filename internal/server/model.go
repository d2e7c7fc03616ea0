package server

import "github.com/lifeplan/planner/internal/domain"

// ProjectionRequest is the body of POST /v1/projection and /v1/metrics.
type ProjectionRequest struct {
	Profile     domain.Profile              `json:"profile"`
	Scenario    domain.Scenario             `json:"scenario"`
	Assumptions *domain.AssumptionOverrides `json:"assumptions,omitempty"`
}

// ProjectionResponse carries the yearly snapshots.
type ProjectionResponse struct {
	Projection []domain.YearSnapshot `json:"projection"`
}

// MetricsResponse carries the projection together with its derived metrics.
type MetricsResponse struct {
	Projection []domain.YearSnapshot   `json:"projection"`
	Metrics    *domain.EnhancedMetrics `json:"metrics"`
}

// CompareRequest is the body of POST /v1/compare.
type CompareRequest struct {
	Profile     domain.Profile              `json:"profile"`
	Scenarios   []domain.Scenario           `json:"scenarios"`
	Assumptions *domain.AssumptionOverrides `json:"assumptions,omitempty"`
}

// SelectRequest is the body of POST /v1/session/compare.
type SelectRequest struct {
	IDs []string `json:"ids"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
