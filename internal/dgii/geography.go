package dgii

import (
	"sort"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// Province is a province code with its municipalities
type Province struct {
	Code           string
	Name           string
	Municipalities map[string]string
}

var municipalityIndex = func() map[string]string {
	idx := make(map[string]string)
	for code, p := range provinces {
		for m := range p.Municipalities {
			idx[m] = code
		}
	}
	return idx
}()

// Provinces returns every province sorted by code
func Provinces() []Province {
	out := make([]Province, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// LookupProvince returns the province with the given code
func LookupProvince(code string) (Province, bool) {
	p, ok := provinces[code]
	return p, ok
}

// ProvinceOf returns the province code a municipality belongs to
func ProvinceOf(municipality string) (string, error) {
	code, ok := municipalityIndex[municipality]
	if !ok {
		return "", model.Invalid(municipality, "municipality", "municipality %q does not exist", municipality)
	}
	return code, nil
}

// ValidateProvince checks the code against the province table
func ValidateProvince(code string) (string, error) {
	if _, ok := provinces[code]; !ok {
		return "", model.Invalid(code, "province", "province %q does not exist", code)
	}
	return code, nil
}

// ValidateMunicipality checks the code and, when province is not empty,
// that the municipality belongs to it.
func ValidateMunicipality(code, province string) (string, error) {
	owner, err := ProvinceOf(code)
	if err != nil {
		return "", err
	}
	if province != "" && province != owner {
		return "", model.Invalid(code, "municipality", "municipality %s does not belong to province %s", code, province)
	}
	return code, nil
}
