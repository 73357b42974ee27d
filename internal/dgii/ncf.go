package dgii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// NCF series
const (
	SeriesB = "B"
	SeriesE = "E"
)

type seriesSpec struct {
	length int
	codes  []string
}

var series = map[string]seriesSpec{
	SeriesB: {
		length: 11,
		codes:  []string{"01", "02", "03", "04", "11", "12", "13", "14", "15", "16", "17"},
	},
	SeriesE: {
		length: 13,
		codes:  []string{"31", "32", "33", "34", "41", "43", "44", "45", "46", "47"},
	},
}

// NCF is a decoded fiscal receipt number
type NCF struct {
	Series   string
	Code     string
	Sequence string
}

// SplitNCF slices an NCF into series, type code and sequence without
// validating it.
func SplitNCF(ncf string) (string, string, string) {
	switch {
	case len(ncf) == 0:
		return "", "", ""
	case len(ncf) < 3:
		return ncf[:1], ncf[1:], ""
	}
	return ncf[:1], ncf[1:3], ncf[3:]
}

// ParseNCF validates ncf and returns its parts
func ParseNCF(ncf string) (NCF, error) {
	if _, err := ValidateNCF(ncf, ""); err != nil {
		return NCF{}, err
	}
	s, code, seq := SplitNCF(strings.TrimSpace(ncf))
	return NCF{Series: s, Code: code, Sequence: seq}, nil
}

// ValidateNCF checks series, type code, sequence and length. When only
// is not empty the NCF must belong to that series.
func ValidateNCF(ncf string, only string) (string, error) {
	ncf = strings.TrimSpace(ncf)
	s, code, seq := SplitNCF(ncf)
	if only != "" && s != only {
		return "", model.Invalid(ncf, "ncf_series", "series %q is not %q", s, only)
	}
	layout, ok := series[s]
	if !ok {
		return "", model.Invalid(ncf, "ncf_series", "series %q is not valid", s)
	}
	if seq == "" || !isDigits(seq) {
		return "", model.Invalid(ncf, "ncf_sequence", "sequence %q is not numeric", seq)
	}
	if !contains(layout.codes, code) {
		return "", model.Invalid(ncf, "ncf_type", "type %q is not valid for series %q", code, s)
	}
	if len(ncf) != layout.length {
		return "", model.Invalid(ncf, "ncf_length", "series %q requires %d characters, got %d", s, layout.length, len(ncf))
	}
	return ncf, nil
}

// Number returns the numeric sequence
func (n NCF) Number() int64 {
	v, _ := strconv.ParseInt(n.Sequence, 10, 64)
	return v
}

// DocumentType returns the e-CF type of an E-series NCF
func (n NCF) DocumentType() (model.DocumentType, error) {
	if n.Series != SeriesE {
		return 0, fmt.Errorf("series %q has no electronic document type", n.Series)
	}
	return model.ParseDocumentType(n.Code)
}

// SameKind reports whether both NCFs share series and type code
func (n NCF) SameKind(other NCF) bool {
	return n.Series == other.Series && n.Code == other.Code
}

func (n NCF) String() string {
	return n.Series + n.Code + n.Sequence
}

// DocumentTypeOf decodes the e-CF type code of an electronic NCF
func DocumentTypeOf(encf string) (model.DocumentType, error) {
	n, err := ParseNCF(encf)
	if err != nil {
		return 0, err
	}
	return n.DocumentType()
}

// CountSequence returns how many NCFs the inclusive range holds
func CountSequence(from, until string) (int64, error) {
	a, b, err := rangeEnds(from, until)
	if err != nil {
		return 0, err
	}
	return b.Number() - a.Number() + 1, nil
}

// NCFRange lists every NCF of the inclusive range
func NCFRange(from, until string) ([]string, error) {
	a, b, err := rangeEnds(from, until)
	if err != nil {
		return nil, err
	}
	width := len(a.Sequence)
	out := make([]string, 0, b.Number()-a.Number()+1)
	for n := a.Number(); n <= b.Number(); n++ {
		out = append(out, fmt.Sprintf("%s%s%0*d", a.Series, a.Code, width, n))
	}
	return out, nil
}

func rangeEnds(from, until string) (NCF, NCF, error) {
	a, err := ParseNCF(from)
	if err != nil {
		return NCF{}, NCF{}, err
	}
	b, err := ParseNCF(until)
	if err != nil {
		return NCF{}, NCF{}, err
	}
	if a.Series != b.Series {
		return NCF{}, NCF{}, model.Invalid(until, "ncf_range", "series differ: %s and %s", a.Series, b.Series)
	}
	if a.Code != b.Code {
		return NCF{}, NCF{}, model.Invalid(until, "ncf_range", "types differ: %s and %s", a.Code, b.Code)
	}
	if a.Number() > b.Number() {
		return NCF{}, NCF{}, model.Invalid(from, "ncf_range", "start %s is after end %s", from, until)
	}
	return a, b, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
