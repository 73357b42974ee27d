package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// ErrNotApplicable is returned by a validator to drop the value: the
// field is set to null instead of failing.
var ErrNotApplicable = errors.New("form: value not applicable")

// Validator is a domain rule run after a field's own constraints. It may
// normalize the value and may read earlier fields through the Context.
type Validator struct {
	name string
	refs []string
	fn   func(v any, ctx *Context) (any, error)
}

// Rule wraps a context-free rule
func Rule[T any](name string, fn func(T) (T, error)) Validator {
	return RuleWith(name, func(v T, _ *Context) (T, error) { return fn(v) })
}

// RuleWith wraps a rule that reads the earlier fields named in refs
func RuleWith[T any](name string, fn func(T, *Context) (T, error), refs ...string) Validator {
	return Validator{
		name: name,
		refs: refs,
		fn: func(v any, ctx *Context) (any, error) {
			typed, ok := v.(T)
			if !ok {
				var zero T
				return nil, model.Invalid(v, "type", "rule %s expects %T, got %T", name, zero, v)
			}
			out, err := fn(typed, ctx)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// Name returns the rule name
func (v Validator) Name() string { return v.name }

// view gives read access to validated values
type view struct {
	values map[string]any
}

// Get returns the raw validated value or nil
func (v view) Get(name string) any {
	return v.values[name]
}

// Has reports whether the field holds a non-null value
func (v view) Has(name string) bool {
	return v.values[name] != nil
}

// String returns a string value or ""
func (v view) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

// Int returns an integer value or 0
func (v view) Int(name string) int64 {
	n, _ := v.values[name].(int64)
	return n
}

// Decimal returns a decimal value or zero
func (v view) Decimal(name string) decimal.Decimal {
	d, ok := v.values[name].(decimal.Decimal)
	if !ok {
		return decimal.Zero
	}
	return d
}

// Date returns a date value or the zero time
func (v view) Date(name string) time.Time {
	t, _ := v.values[name].(time.Time)
	return t
}

// Form returns a nested form or nil
func (v view) Form(name string) *Form {
	f, _ := v.values[name].(*Form)
	return f
}

// Forms returns the elements of a form list
func (v view) Forms(name string) []*Form {
	fs, _ := v.values[name].([]*Form)
	return fs
}

// List returns the elements of a scalar list
func (v view) List(name string) []any {
	l, _ := v.values[name].([]any)
	return l
}

// Context is handed to validators and computed defaults. It exposes the
// fields assigned so far.
type Context struct {
	view
	schema *Schema
	field  string
}

// Schema returns the schema under construction
func (c *Context) Schema() *Schema { return c.schema }

// Field returns the name of the field being validated
func (c *Context) Field() string { return c.field }

// Errorf builds a validation error; the engine locates it at the field
// being validated.
func (c *Context) Errorf(rule, format string, args ...any) error {
	return &model.ValidationError{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}
