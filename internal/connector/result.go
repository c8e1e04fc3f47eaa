package connector

import "fmt"

// ValidationResult is the outcome of validating one connector.
// Valid is true exactly when Errors is empty; warnings never affect it.
type ValidationResult struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r *ValidationResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) addErrorf(format string, args ...any) {
	r.addError(fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) addWarningf(format string, args ...any) {
	r.addWarning(fmt.Sprintf(format, args...))
}

// AggregateResult combines the results of every enabled connector.
// Errors and Warnings are prefixed with "[DisplayName] " in registry order.
type AggregateResult struct {
	Valid    bool                         `json:"isValid"`
	Errors   []string                     `json:"errors"`
	Warnings []string                     `json:"warnings"`
	Results  map[string]*ValidationResult `json:"results"`
}
