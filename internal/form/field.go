package form

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
	"github.com/rezonia/alanube-ecf/internal/dgii"
)

// Kind identifies how a field parses and checks its value
type Kind int

// Field kinds
const (
	KindString Kind = iota
	KindInt
	KindDecimal
	KindDate
	KindEmail
	KindPhone
	KindRNC
	KindNCF
	KindUnitMeasure
	KindForm
	KindList
	KindFormList
)

var kindNames = map[Kind]string{
	KindString:      "string",
	KindInt:         "int",
	KindDecimal:     "decimal",
	KindDate:        "date",
	KindEmail:       "email",
	KindPhone:       "phone",
	KindRNC:         "rnc",
	KindNCF:         "ncf",
	KindUnitMeasure: "unit_measure",
	KindForm:        "form",
	KindList:        "list",
	KindFormList:    "form_list",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Default field constraints
const (
	DefaultMaxDigits     int32 = 16
	DefaultDecimalPlaces int32 = 2
	DefaultIntMax        int64 = 20
	EmailMaxLength             = 80
	PhoneMaxLength             = 12
)

var (
	defaultIntMax  = decimal.NewFromInt(DefaultIntMax)
	rncMax         = decimal.NewFromInt(99999999999)
	unitMeasureMin = decimal.NewFromInt(1)
	unitMeasureMax = decimal.NewFromInt(99)
)

// Field describes one attribute of a schema: its wire name, how raw
// input becomes a domain value and which constraints apply.
type Field struct {
	name     string
	external string
	kind     Kind
	required bool
	readOnly bool
	def      Default
	rules    []Validator
	help     string

	minLength  int
	maxLength  int
	min        *decimal.Decimal
	max        *decimal.Decimal
	digits     int32
	places     int32
	placesSet  bool
	strChoices []string
	intChoices []int64
	series     string
	schema     *Schema
	elem       *Field
}

// Option configures a field
type Option func(*Field)

func newField(kind Kind, name, external string, opts []Option) *Field {
	f := &Field{name: name, external: external, kind: kind}
	switch kind {
	case KindInt:
		f.max = &defaultIntMax
	case KindDecimal:
		f.digits = DefaultMaxDigits
		f.places = DefaultDecimalPlaces
		f.placesSet = true
	case KindEmail:
		f.maxLength = EmailMaxLength
	case KindPhone:
		f.maxLength = PhoneMaxLength
	case KindRNC:
		f.max = &rncMax
	case KindNCF:
		f.series = dgii.SeriesE
	case KindUnitMeasure:
		f.min = &unitMeasureMin
		f.max = &unitMeasureMax
	}
	for _, opt := range opts {
		opt(f)
	}
	if kind == KindDecimal && f.max == nil && f.digits > 0 {
		m := dec.MaxForDigits(f.digits, f.places)
		f.max = &m
	}
	if kind == KindNCF {
		switch f.series {
		case dgii.SeriesE:
			f.minLength, f.maxLength = 13, 13
		case dgii.SeriesB:
			f.minLength, f.maxLength = 11, 11
		default:
			f.minLength, f.maxLength = 11, 13
		}
	}
	return f
}

// String declares a text field
func String(name, external string, opts ...Option) *Field {
	return newField(KindString, name, external, opts)
}

// Int declares an integer field. Without Range or Max it accepts values up to 20.
func Int(name, external string, opts ...Option) *Field {
	return newField(KindInt, name, external, opts)
}

// Decimal declares a decimal field, 16 digits with 2 places by default
func Decimal(name, external string, opts ...Option) *Field {
	return newField(KindDecimal, name, external, opts)
}

// Date declares a calendar date field
func Date(name, external string, opts ...Option) *Field {
	return newField(KindDate, name, external, opts)
}

// Email declares an email address field
func Email(name, external string, opts ...Option) *Field {
	return newField(KindEmail, name, external, opts)
}

// Phone declares a phone number field normalized to NNN-NNN-NNNN
func Phone(name, external string, opts ...Option) *Field {
	return newField(KindPhone, name, external, opts)
}

// RNC declares a tax id field
func RNC(name, external string, opts ...Option) *Field {
	return newField(KindRNC, name, external, opts)
}

// NCF declares a fiscal receipt number field, E series unless Series says otherwise
func NCF(name, external string, opts ...Option) *Field {
	return newField(KindNCF, name, external, opts)
}

// UnitMeasure declares a unit of measure code field
func UnitMeasure(name, external string, opts ...Option) *Field {
	return newField(KindUnitMeasure, name, external, opts)
}

// Nested declares a field holding an instance of schema
func Nested(name, external string, schema *Schema, opts ...Option) *Field {
	f := newField(KindForm, name, external, opts)
	f.schema = schema
	return f
}

// List declares a bounded list of scalar values checked by elem
func List(name, external string, elem *Field, opts ...Option) *Field {
	f := newField(KindList, name, external, opts)
	f.elem = elem
	return f
}

// ListOf declares a bounded list of schema instances
func ListOf(name, external string, schema *Schema, opts ...Option) *Field {
	f := newField(KindFormList, name, external, opts)
	f.schema = schema
	return f
}

// Required disallows null and empty values
func Required() Option {
	return func(f *Field) { f.required = true }
}

// ReadOnly makes the field computed: input is rejected and the default always applies
func ReadOnly() Option {
	return func(f *Field) { f.readOnly = true }
}

// WithDefault sets the value used when the field is omitted
func WithDefault(d Default) Option {
	return func(f *Field) { f.def = d }
}

// MinLength sets the minimum length of a string or list
func MinLength(n int) Option {
	return func(f *Field) { f.minLength = n }
}

// MaxLength sets the maximum length of a string or list
func MaxLength(n int) Option {
	return func(f *Field) { f.maxLength = n }
}

// Range bounds a numeric field
func Range(min, max int64) Option {
	return func(f *Field) {
		lo, hi := decimal.NewFromInt(min), decimal.NewFromInt(max)
		f.min, f.max = &lo, &hi
	}
}

// Min sets the lower bound of a numeric field
func Min(v int64) Option {
	return func(f *Field) {
		d := decimal.NewFromInt(v)
		f.min = &d
	}
}

// Max sets the upper bound of a numeric field
func Max(v int64) Option {
	return func(f *Field) {
		d := decimal.NewFromInt(v)
		f.max = &d
	}
}

// MaxValue sets the upper bound from a decimal literal such as "999.99"
func MaxValue(v string) Option {
	return func(f *Field) {
		d := decimal.RequireFromString(v)
		f.max = &d
	}
}

// Digits sets total digits and decimal places of a decimal field
func Digits(maxDigits, places int32) Option {
	return func(f *Field) {
		f.digits = maxDigits
		f.places = places
		f.placesSet = true
	}
}

// Choices restricts a string field to the given values
func Choices(values ...string) Option {
	return func(f *Field) { f.strChoices = values }
}

// IntChoices restricts an integer field to the given values
func IntChoices(values ...int64) Option {
	return func(f *Field) { f.intChoices = values }
}

// Series pins an NCF field to one series; "" accepts both
func Series(s string) Option {
	return func(f *Field) { f.series = s }
}

// Check appends validators run after the field's own constraints
func Check(v ...Validator) Option {
	return func(f *Field) { f.rules = append(f.rules, v...) }
}

// Help attaches a description
func Help(text string) Option {
	return func(f *Field) { f.help = text }
}

// Name returns the attribute name
func (f *Field) Name() string { return f.name }

// External returns the wire name, falling back to the attribute name
func (f *Field) External() string {
	if f.external == "" {
		return f.name
	}
	return f.external
}

// Kind returns the field kind
func (f *Field) Kind() Kind { return f.kind }

// IsRequired reports whether null is disallowed
func (f *Field) IsRequired() bool { return f.required }

// IsReadOnly reports whether the field is computed
func (f *Field) IsReadOnly() bool { return f.readOnly }

// Places returns the decimal places, 0 when not a decimal field
func (f *Field) Places() int32 { return f.places }

// Schema returns the nested schema of a form or form list field
func (f *Field) Schema() *Schema { return f.schema }

// Help returns the field description
func (f *Field) Help() string { return f.help }

func (f *Field) clone() *Field {
	c := *f
	c.rules = append([]Validator(nil), f.rules...)
	return &c
}
