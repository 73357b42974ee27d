package form

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
)

// KeyStyle selects the keys of serialized output
type KeyStyle int

const (
	// KeyExternal uses the declared wire names (eNCF, RNCEmisor, ...)
	KeyExternal KeyStyle = iota
	// KeyAttribute uses the camelCase attribute names (encf, rnc, ...)
	KeyAttribute
)

// ParseKeyStyle maps "dgii"/"external" and "alanube"/"attribute" to a style
func ParseKeyStyle(s string) (KeyStyle, bool) {
	switch s {
	case "", "dgii", "external":
		return KeyExternal, true
	case "alanube", "attribute", "camel":
		return KeyAttribute, true
	}
	return KeyExternal, false
}

// Data is the serialized projection of a form
type Data map[string]any

type serializeConfig struct {
	allowNull  bool
	allowBlank bool
	keys       KeyStyle
	places     int32
}

// SerializeOption configures Serialize
type SerializeOption func(*serializeConfig)

// AllowNull keeps null values in the output
func AllowNull() SerializeOption {
	return func(c *serializeConfig) { c.allowNull = true }
}

// AllowBlank keeps empty strings in the output
func AllowBlank() SerializeOption {
	return func(c *serializeConfig) { c.allowBlank = true }
}

// WithKeys selects the key style
func WithKeys(k KeyStyle) SerializeOption {
	return func(c *serializeConfig) { c.keys = k }
}

// WithFallbackPlaces sets the rounding used for decimals of fields that
// declare no decimal places
func WithFallbackPlaces(p int32) SerializeOption {
	return func(c *serializeConfig) { c.places = p }
}

// Serialize projects the form into wire data. It never mutates the form
// and returns equal output for equal options.
func (f *Form) Serialize(opts ...SerializeOption) (Data, error) {
	cfg := serializeConfig{keys: KeyExternal, places: DefaultDecimalPlaces}
	for _, opt := range opts {
		opt(&cfg)
	}
	return f.serialize(&cfg)
}

func (f *Form) serialize(cfg *serializeConfig) (Data, error) {
	out := make(Data, len(f.schema.fields))
	for _, fd := range f.schema.fields {
		v := f.values[fd.name]

		if hook, ok := f.schema.hooks[fd.name]; ok {
			hv, err := hook(v, f)
			if err != nil {
				return nil, f.schema.fail(fd.name, err)
			}
			v = hv
		}

		if isAbsent(v) {
			if s, blank := v.(string); blank && cfg.allowBlank {
				out[key(fd, cfg)] = s
				continue
			}
			if v == nil && cfg.allowNull {
				out[key(fd, cfg)] = nil
			}
			continue
		}

		wire, err := project(fd, v, cfg)
		if err != nil {
			return nil, f.schema.fail(fd.name, err)
		}
		out[key(fd, cfg)] = wire
	}
	return out, nil
}

func key(fd *Field, cfg *serializeConfig) string {
	if cfg.keys == KeyAttribute {
		return fd.name
	}
	return fd.External()
}

func project(fd *Field, v any, cfg *serializeConfig) (any, error) {
	switch val := v.(type) {
	case *Form:
		return val.serialize(cfg)
	case []*Form:
		items := make([]any, 0, len(val))
		for _, child := range val {
			data, err := child.serialize(cfg)
			if err != nil {
				return nil, err
			}
			items = append(items, data)
		}
		return items, nil
	case []any:
		elem := fd
		if fd.elem != nil {
			elem = fd.elem
		}
		items := make([]any, 0, len(val))
		for _, item := range val {
			p, err := project(elem, item, cfg)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
		return items, nil
	case time.Time:
		return val.Format(DateLayout), nil
	case decimal.Decimal:
		places := cfg.places
		if fd.placesSet {
			places = fd.places
		}
		return dec.Float(val, places), nil
	}
	return v, nil
}

// JSON serializes the form and encodes it
func (f *Form) JSON(opts ...SerializeOption) ([]byte, error) {
	data, err := f.Serialize(opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// MarshalJSON encodes the form with default serialization options
func (f *Form) MarshalJSON() ([]byte, error) {
	return f.JSON()
}
