package form

import (
	"fmt"
)

// Hook is a per-field serialization override. It receives the field's
// value and the form, and returns the value to emit or an error.
type Hook func(v any, f *Form) (any, error)

// Schema is an ordered, immutable list of field descriptors plus the
// form-level rules that span several fields.
type Schema struct {
	name     string
	fields   []*Field
	index    map[string]*Field
	validate func(*Form) error
	hooks    map[string]Hook
	parent   *Schema
}

// SchemaOption configures a schema
type SchemaOption func(*Schema)

// WithValidate sets the cross-field hook run after every field is assigned
func WithValidate(fn func(*Form) error) SchemaOption {
	return func(s *Schema) { s.validate = fn }
}

// WithHook registers a serialization override for field
func WithHook(field string, h Hook) SchemaOption {
	return func(s *Schema) {
		if s.hooks == nil {
			s.hooks = make(map[string]Hook)
		}
		s.hooks[field] = h
	}
}

// NewSchema builds a schema. Field names and wire names must be unique,
// and every reference a validator or default makes must point to a field
// declared earlier.
func NewSchema(name string, fields []*Field, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: fields,
		index:  make(map[string]*Field, len(fields)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchema is NewSchema for package level declarations
func MustSchema(name string, fields []*Field, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) check() error {
	externals := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		if f.name == "" {
			return fmt.Errorf("form %s: field without name", s.name)
		}
		if _, dup := s.index[f.name]; dup {
			return fmt.Errorf("form %s: duplicate field %q", s.name, f.name)
		}
		if other, dup := externals[f.External()]; dup {
			return fmt.Errorf("form %s: fields %q and %q share wire name %q", s.name, other, f.name, f.External())
		}
		if (f.kind == KindForm || f.kind == KindFormList) && f.schema == nil {
			return fmt.Errorf("form %s: field %q has no schema", s.name, f.name)
		}
		if f.kind == KindList && f.elem == nil {
			return fmt.Errorf("form %s: field %q has no element descriptor", s.name, f.name)
		}
		if f.readOnly && f.def == nil {
			return fmt.Errorf("form %s: read-only field %q needs a default", s.name, f.name)
		}
		var deps []string
		if f.def != nil {
			deps = append(deps, f.def.dependencies()...)
		}
		for _, r := range f.rules {
			deps = append(deps, r.refs...)
		}
		if f.elem != nil {
			for _, r := range f.elem.rules {
				deps = append(deps, r.refs...)
			}
		}
		for _, dep := range deps {
			if _, ok := s.index[dep]; !ok {
				return fmt.Errorf("form %s: field %q references %q before it is declared", s.name, f.name, dep)
			}
		}
		s.index[f.name] = f
		externals[f.External()] = f.name
	}
	for name := range s.hooks {
		if _, ok := s.index[name]; !ok {
			return fmt.Errorf("form %s: hook for unknown field %q", s.name, name)
		}
	}
	return nil
}

// Extend derives a schema: fields named in drop are removed, add is
// appended, and the parent's validate hook and serialization hooks are
// kept unless opts replace them. Instances of the derived schema are
// accepted wherever the parent is expected.
func (s *Schema) Extend(name string, drop []string, add []*Field, opts ...SchemaOption) (*Schema, error) {
	skip := make(map[string]bool, len(drop))
	for _, d := range drop {
		if _, ok := s.index[d]; !ok {
			return nil, fmt.Errorf("form %s: cannot drop unknown field %q", s.name, d)
		}
		skip[d] = true
	}
	fields := make([]*Field, 0, len(s.fields)+len(add))
	for _, f := range s.fields {
		if !skip[f.name] {
			fields = append(fields, f.clone())
		}
	}
	fields = append(fields, add...)

	base := []SchemaOption{WithValidate(s.validate)}
	for field, h := range s.hooks {
		if !skip[field] {
			base = append(base, WithHook(field, h))
		}
	}
	child, err := NewSchema(name, fields, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	child.parent = s
	return child, nil
}

// MustExtend is Extend for package level declarations
func (s *Schema) MustExtend(name string, drop []string, add []*Field, opts ...SchemaOption) *Schema {
	child, err := s.Extend(name, drop, add, opts...)
	if err != nil {
		panic(err)
	}
	return child
}

// Name returns the schema name
func (s *Schema) Name() string { return s.name }

// Fields returns the field descriptors in declaration order
func (s *Schema) Fields() []*Field {
	return append([]*Field(nil), s.fields...)
}

// Field returns the descriptor named name
func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.index[name]
	return f, ok
}

// Is reports whether s is other or derives from it
func (s *Schema) Is(other *Schema) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}
