// Package errors defines the typed business errors the transfer engine
// returns. Callers distinguish kinds with errors.Is against the sentinels
// below; the HTTP layer maps each kind to a status code.
package errors

// DomainError is an expected business outcome, not a fault.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }
