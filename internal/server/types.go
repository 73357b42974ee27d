package server

import (
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// FieldError locates a validation failure
type FieldError struct {
	Form    string `json:"form,omitempty"`
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid    bool         `json:"valid"`
	Kind     string       `json:"kind,omitempty"`
	Type     int          `json:"type,omitempty"`
	Encf     string       `json:"encf,omitempty"`
	Document form.Data    `json:"document,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	// Validation is set when a document failed validation
	Validation *FieldError `json:"validation,omitempty"`
	// Gateway lists the messages of a gateway rejection
	Gateway []string `json:"gateway,omitempty"`
}

func fieldError(e *model.ValidationError) FieldError {
	return FieldError{Form: e.Form, Field: e.Field, Rule: e.Rule, Message: e.Message}
}
