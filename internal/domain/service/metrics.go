package service

// Auth operation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// AuthMetrics counts account operations by outcome.
type AuthMetrics interface {
	ObserveAuth(operation, outcome string)
}
