// Package validator defines request payload validation.
//
// Use cases validate inbound structs through the Validator interface; the v10
// implementation wires go-playground/validator with English translations and
// the application's custom rules.
package validator

// Validator validates structs against their declared rules.
type Validator interface {
	Validate(data any) error
}
