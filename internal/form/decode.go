package form

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// Decode builds a form from generic decoded JSON. Keys may be either
// attribute or wire names; nested objects and arrays of objects are
// built into child forms first.
func (s *Schema) Decode(raw map[string]any) (*Form, error) {
	in := make(Values, len(raw))
	for k, v := range raw {
		fd, ok := s.lookup(k)
		if !ok {
			return nil, &model.ValidationError{Form: s.name, Field: k, Rule: "unknown", Message: "is not a field of " + s.name}
		}
		if _, dup := in[fd.name]; dup {
			return nil, &model.ValidationError{Form: s.name, Field: k, Rule: "duplicate", Message: "given twice"}
		}
		decoded, err := s.decodeValue(fd, v)
		if err != nil {
			return nil, err
		}
		in[fd.name] = decoded
	}
	return s.New(in)
}

// DecodeJSON parses data and decodes it. Numbers keep their literal
// text so decimals are not rounded through float64.
func (s *Schema) DecodeJSON(data []byte) (*Form, error) {
	raw, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	return s.Decode(raw)
}

// DecodeObject parses a JSON object preserving number literals
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, model.NewParseError("json", "", "invalid document", err)
	}
	if raw == nil {
		return nil, model.NewParseError("json", "", "expected an object", nil)
	}
	return raw, nil
}

func (s *Schema) lookup(key string) (*Field, bool) {
	if fd, ok := s.index[key]; ok {
		return fd, true
	}
	for _, fd := range s.fields {
		if fd.external == key {
			return fd, true
		}
	}
	return nil, false
}

func (s *Schema) decodeValue(fd *Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch fd.kind {
	case KindForm:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, s.fail(fd.name, model.Invalid(fmt.Sprintf("%T", v), "form", "must be an object"))
		}
		child, err := fd.schema.Decode(obj)
		if err != nil {
			return nil, s.fail(fd.name, err)
		}
		return child, nil
	case KindFormList:
		items, ok := v.([]any)
		if !ok {
			return nil, s.fail(fd.name, model.Invalid(fmt.Sprintf("%T", v), "list", "must be a list"))
		}
		forms := make([]*Form, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, s.fail(fd.name+"["+strconv.Itoa(i)+"]", model.Invalid(fmt.Sprintf("%T", item), "form", "must be an object"))
			}
			child, err := fd.schema.Decode(obj)
			if err != nil {
				return nil, s.fail(fd.name+"["+strconv.Itoa(i)+"]", err)
			}
			forms = append(forms, child)
		}
		return forms, nil
	}
	return v, nil
}
