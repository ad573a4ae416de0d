package model

import (
	"errors"
	"strings"
)

// ErrorResponse represents the error envelope returned by every endpoint.
// Detail is either a message string or a list of FieldError values.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// Validation error types reported in FieldError.Type.
const (
	ErrTypeMissing          = "missing"
	ErrTypeJSONInvalid      = "json_invalid"
	ErrTypeGreaterThanEqual = "greater_than_equal"
	ErrTypeLessThanEqual    = "less_than_equal"
	ErrTypeStringType       = "string_type"
	ErrTypeFloatType        = "float_type"
	ErrTypeIntType          = "int_type"
	ErrTypeIntFromFloat     = "int_from_float"
	ErrTypeBoolType         = "bool_type"
	ErrTypeListType         = "list_type"
	ErrTypeDictType         = "dict_type"
	ErrTypeIntParsing       = "int_parsing"
	ErrTypeBoolParsing      = "bool_parsing"
)

// FieldError describes a single failed validation rule.
// Loc is the path to the offending value, e.g. ["body", "price"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned when a request body or query parameter
// does not satisfy its schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// merge appends the fields of other whose location is not already reported.
func (e *ValidationError) merge(other *ValidationError) {
	seen := make(map[string]bool, len(e.Fields))
	for _, f := range e.Fields {
		seen[strings.Join(f.Loc, ".")] = true
	}
	for _, f := range other.Fields {
		if !seen[strings.Join(f.Loc, ".")] {
			e.Fields = append(e.Fields, f)
		}
	}
}

// NewValidationError creates a validation error for a single location.
func NewValidationError(loc []string, msg, errType string) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Loc: loc, Msg: msg, Type: errType}},
	}
}

// Common domain errors
var (
	ErrDatabaseUnavailable = errors.New("Database not available. Check DATABASE_URL and DATABASE_NAME environment variables.")
	ErrDocumentNotFound    = errors.New("document not found")
)
