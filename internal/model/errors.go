package model

import "fmt"

// ParseError represents failures decoding raw input into a document
type ParseError struct {
	Source  string
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Source, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Source, e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(source, field, message string, cause error) *ParseError {
	return &ParseError{
		Source:  source,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents a domain rule or structural violation.
// Form and Field locate the failure; either may be empty when a rule
// is evaluated outside a form.
type ValidationError struct {
	Form    string
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	where := e.Field
	if e.Form != "" {
		if where == "" {
			where = e.Form
		} else {
			where = e.Form + "." + e.Field
		}
	}
	if where == "" {
		where = "value"
	}
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", where, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", where, e.Message, e.Rule)
}

// In returns a copy located at form/field. A field path already on the
// error is prefixed with field; index paths ("[2]") attach directly.
func (e *ValidationError) In(form, field string) *ValidationError {
	out := *e
	if field != "" {
		switch {
		case out.Field == "":
			out.Field = field
		case out.Field[0] == '[':
			out.Field = field + out.Field
		default:
			out.Field = field + "." + out.Field
		}
	}
	if form != "" {
		out.Form = form
	}
	return &out
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// Invalid creates an unlocated validation error for a rule function
func Invalid(value interface{}, rule, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Value:   value,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}
