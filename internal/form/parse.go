package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// DateLayout is the accepted and serialized date format
const DateLayout = "2006-01-02"

// number matches JSON number literals from any decoder
type number interface {
	Float64() (float64, error)
	Int64() (int64, error)
	String() string
}

// clean turns a present raw value into the field's domain value. A nil
// result with a nil error means a validator dropped the value.
func (f *Field) clean(ctx *Context, raw any) (any, error) {
	v, err := f.parse(ctx, raw)
	if err != nil {
		return nil, err
	}
	if err := f.constrain(v); err != nil {
		return nil, err
	}
	for _, rule := range f.rules {
		v, err = rule.fn(v, ctx)
		if errors.Is(err, ErrNotApplicable) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
	}
	return v, nil
}

func (f *Field) parse(ctx *Context, raw any) (any, error) {
	switch f.kind {
	case KindString:
		return toText(raw)
	case KindEmail:
		s, err := toText(raw)
		if err != nil {
			return nil, err
		}
		return dgii.ValidateEmail(s)
	case KindPhone:
		s, err := toText(raw)
		if err != nil {
			return nil, err
		}
		return dgii.FormatPhone(s)
	case KindNCF:
		s, err := toText(raw)
		if err != nil {
			return nil, err
		}
		if err := f.checkLength(utf8.RuneCountInString(s)); err != nil {
			return nil, err
		}
		return dgii.ValidateNCF(s, f.series)
	case KindInt:
		return toInt(raw)
	case KindRNC:
		s, err := toText(raw)
		if err != nil {
			return nil, err
		}
		return dgii.NormalizeRNC(s)
	case KindUnitMeasure:
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		if err := f.checkBounds(decimal.NewFromInt(n)); err != nil {
			return nil, err
		}
		return dgii.ValidateUnitMeasure(n)
	case KindDecimal:
		d, err := toDecimal(raw)
		if err != nil {
			return nil, err
		}
		if f.placesSet {
			d = dec.RoundTo(d, f.places)
		}
		return d, nil
	case KindDate:
		return toDate(raw)
	case KindForm:
		return f.toForm(raw)
	case KindList:
		return f.toList(ctx, raw)
	case KindFormList:
		return f.toFormList(raw)
	}
	return nil, fmt.Errorf("form: unknown field kind %d", f.kind)
}

func (f *Field) constrain(v any) error {
	switch val := v.(type) {
	case string:
		if err := f.checkLength(utf8.RuneCountInString(val)); err != nil {
			return err
		}
		if len(f.strChoices) > 0 && !containsString(f.strChoices, val) {
			return model.Invalid(val, "choice", "must be one of %s", strings.Join(f.strChoices, ", "))
		}
	case int64:
		if err := f.checkBounds(decimal.NewFromInt(val)); err != nil {
			return err
		}
		if len(f.intChoices) > 0 && !containsInt(f.intChoices, val) {
			return model.Invalid(val, "choice", "must be one of %v", f.intChoices)
		}
	case decimal.Decimal:
		return f.checkBounds(val)
	case []any:
		return f.checkLength(len(val))
	case []*Form:
		return f.checkLength(len(val))
	}
	return nil
}

func (f *Field) checkLength(n int) error {
	if f.minLength > 0 && n < f.minLength {
		return model.Invalid(n, "min_length", "must have at least %d elements or characters", f.minLength)
	}
	if f.maxLength > 0 && n > f.maxLength {
		return model.Invalid(n, "max_length", "must have at most %d elements or characters", f.maxLength)
	}
	return nil
}

func (f *Field) checkBounds(d decimal.Decimal) error {
	if f.min != nil && d.LessThan(*f.min) {
		return model.Invalid(d.String(), "min_value", "must be greater than or equal to %s", f.min.String())
	}
	if f.max != nil && d.GreaterThan(*f.max) {
		return model.Invalid(d.String(), "max_value", "must be less than or equal to %s", f.max.String())
	}
	return nil
}

func (f *Field) toForm(raw any) (any, error) {
	child, ok := raw.(*Form)
	if !ok || child == nil {
		return nil, model.Invalid(fmt.Sprintf("%T", raw), "form", "must be a %s form", f.schema.Name())
	}
	if !child.schema.Is(f.schema) {
		return nil, model.Invalid(child.schema.Name(), "form", "must be a %s form", f.schema.Name())
	}
	return child, nil
}

// toList cleans every element against the enclosing form's context
func (f *Field) toList(ctx *Context, raw any) (any, error) {
	items, err := toSlice(raw)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		if isAbsent(item) {
			continue
		}
		v, err := f.elem.clean(ctx, item)
		if err != nil {
			return nil, locateIndex(err, i)
		}
		if v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *Field) toFormList(raw any) (any, error) {
	if forms, ok := raw.([]*Form); ok {
		raw = formsToAny(forms)
	}
	items, err := toSlice(raw)
	if err != nil {
		return nil, err
	}
	out := make([]*Form, 0, len(items))
	for i, item := range items {
		child, err := f.toForm(item)
		if err != nil {
			return nil, locateIndex(err, i)
		}
		out = append(out, child.(*Form))
	}
	return out, nil
}

func locateIndex(err error, i int) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return verr.In("", "["+strconv.Itoa(i)+"]")
	}
	return err
}

func formsToAny(forms []*Form) []any {
	out := make([]any, len(forms))
	for i, f := range forms {
		out[i] = f
	}
	return out
}

func toSlice(raw any) ([]any, error) {
	if items, ok := raw.([]any); ok {
		return items, nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, model.Invalid(fmt.Sprintf("%T", raw), "list", "must be a list")
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// isAbsent reports whether raw counts as "no value": nil or the empty string
func isAbsent(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func toText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case decimal.Decimal:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", model.Invalid(fmt.Sprintf("%T", raw), "type", "must be text")
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, notInteger(raw)
		}
		return int64(v), nil
	case float32:
		return floatToInt(float64(v), raw)
	case float64:
		return floatToInt(v, raw)
	case decimal.Decimal:
		return decimalToInt(v, raw)
	case json.Number:
		return textToInt(v.String(), raw)
	case string:
		return textToInt(v, raw)
	case number:
		return textToInt(v.String(), raw)
	}
	return 0, notInteger(raw)
}

func textToInt(s string, raw any) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, notInteger(raw)
	}
	return decimalToInt(d, raw)
}

func floatToInt(v float64, raw any) (int64, error) {
	if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
		return 0, notInteger(raw)
	}
	return int64(v), nil
}

func decimalToInt(d decimal.Decimal, raw any) (int64, error) {
	if !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, notInteger(raw)
	}
	return d.IntPart(), nil
}

func notInteger(raw any) error {
	return model.Invalid(raw, "type", "must be an integer")
}

func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return textToDecimal(v.String(), raw)
	case string:
		return textToDecimal(v, raw)
	case number:
		return textToDecimal(v.String(), raw)
	}
	return decimal.Zero, model.Invalid(raw, "type", "must be a number")
}

func textToDecimal(s string, raw any) (decimal.Decimal, error) {
	d, err := dec.FromString(s)
	if err != nil {
		return decimal.Zero, model.Invalid(raw, "type", "must be a number")
	}
	return d, nil
}

func toDate(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return dateOf(v), nil
	case *time.Time:
		return dateOf(*v), nil
	case string:
		t, err := time.Parse(DateLayout, strings.TrimSpace(v))
		if err != nil {
			return time.Time{}, model.Invalid(v, "date", "must be a date in YYYY-MM-DD format")
		}
		return t, nil
	}
	return time.Time{}, model.Invalid(fmt.Sprintf("%T", raw), "date", "must be a date")
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt(list []int64, v int64) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
