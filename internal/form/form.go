package form

import (
	"errors"
	"sort"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// Values is keyword input for a schema, keyed by attribute name
type Values map[string]any

// Form is a validated, immutable instance of a schema
type Form struct {
	view
	schema *Schema
}

// New validates in against the schema. Fields are resolved in declaration
// order, then the schema's cross-field hook runs. Any failure aborts
// construction with a *model.ValidationError.
func (s *Schema) New(in Values) (*Form, error) {
	if err := s.rejectUnknown(in); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(s.fields))
	ctx := &Context{view: view{values: values}, schema: s}

	for _, f := range s.fields {
		ctx.field = f.name
		raw, supplied := in[f.name]

		if f.readOnly && supplied && !isAbsent(raw) {
			return nil, s.fail(f.name, model.Invalid(raw, "read_only", "is computed and cannot be set"))
		}

		if !supplied || f.readOnly {
			switch {
			case f.def != nil:
				v, err := f.def.resolve(ctx)
				if err != nil {
					return nil, s.fail(f.name, err)
				}
				raw = v
			case !f.required:
				raw = nil
			default:
				return nil, s.fail(f.name, model.Invalid(nil, "required", "is required"))
			}
		}

		if isAbsent(raw) {
			if f.required {
				return nil, s.fail(f.name, model.Invalid(nil, "required", "may not be null"))
			}
			values[f.name] = nil
			continue
		}

		v, err := f.clean(ctx, raw)
		if err != nil {
			return nil, s.fail(f.name, err)
		}
		values[f.name] = v
	}

	form := &Form{view: view{values: values}, schema: s}
	if s.validate != nil {
		if err := s.validate(form); err != nil {
			return nil, s.fail("", err)
		}
	}
	return form, nil
}

// MustNew is New that panics, for fixtures and static data
func (s *Schema) MustNew(in Values) *Form {
	f, err := s.New(in)
	if err != nil {
		panic(err)
	}
	return f
}

func (s *Schema) rejectUnknown(in Values) error {
	var unknown []string
	for name := range in {
		if _, ok := s.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &model.ValidationError{
		Form:    s.name,
		Field:   unknown[0],
		Rule:    "unknown",
		Message: "is not a field of " + s.name,
	}
}

// fail locates err at field. Errors that are not validation errors are
// wrapped into one so callers only deal with a single kind.
func (s *Schema) fail(field string, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return verr.In(s.name, field)
	}
	return &model.ValidationError{Form: s.name, Field: field, Rule: "invalid", Message: err.Error()}
}

// Schema returns the schema the form was built from
func (f *Form) Schema() *Schema { return f.schema }

// Name returns the schema name
func (f *Form) Name() string { return f.schema.name }

// Values returns a copy of the validated values keyed by attribute name
func (f *Form) Values() Values {
	out := make(Values, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// With builds a new form from this one's values with changes applied
func (f *Form) With(changes Values) (*Form, error) {
	in := f.Values()
	for _, fd := range f.schema.fields {
		if _, derived := fd.def.(computed); derived || fd.readOnly {
			delete(in, fd.name)
		}
	}
	for k, v := range changes {
		in[k] = v
	}
	return f.schema.New(in)
}
