package dgii_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/model"
)

func TestNormalizeRNC(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
		wantErr  bool
	}{
		{"131-09912-4", 131099124, false},
		{"131099124", 131099124, false},
		{"001-1234567-8", 112345678, false},
		{"12345", 0, true},
		{"1234567890", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dgii.NormalizeRNC(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidIdentification(t *testing.T) {
	assert.True(t, dgii.ValidIdentification("131099124"))
	assert.True(t, dgii.ValidIdentification("00112345678"))
	assert.False(t, dgii.ValidIdentification("131-09912-4"))
	assert.False(t, dgii.ValidIdentification("1234567890"))
}

func TestFormatPhone(t *testing.T) {
	got, err := dgii.FormatPhone("(809) 555 1234")
	require.NoError(t, err)
	assert.Equal(t, "809-555-1234", got)

	got, err = dgii.FormatPhone("8095551234")
	require.NoError(t, err)
	assert.Equal(t, "809-555-1234", got)

	_, err = dgii.FormatPhone("555-1234")
	require.Error(t, err)

	_, err = dgii.FormatPhone("1-809-555-1234")
	require.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	_, err := dgii.ValidateEmail("ventas@empresa.com.do")
	require.NoError(t, err)

	_, err = dgii.ValidateEmail("ventas@empresa")
	require.Error(t, err)

	_, err = dgii.ValidateEmail("not an email")
	require.Error(t, err)
}

func TestValidateWebsite(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{"https://www.empresa.com.do", "empresa.com", false},
		{"http://empresa.com", "empresa", false},
		{"www.empresa.com", "empresa", false},
		{"https://mycompany.example.com", "mycompany.example", false},
		{"empresa.com/", "", true},
		{"https://empresa.com/contacto", "", true},
		{"empresa", "", true},
		{"ftp://empresa.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dgii.ValidateWebsite(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGeography(t *testing.T) {
	provinces := dgii.Provinces()
	require.Len(t, provinces, 32)
	assert.Equal(t, "010000", provinces[0].Code)
	assert.Equal(t, "320000", provinces[31].Code)

	p, ok := dgii.LookupProvince("320000")
	require.True(t, ok)
	assert.Equal(t, "PROVINCIA SANTO DOMINGO", p.Name)

	code, err := dgii.ProvinceOf("320101")
	require.NoError(t, err)
	assert.Equal(t, "320000", code)

	_, err = dgii.ValidateMunicipality("320101", "320000")
	require.NoError(t, err)

	_, err = dgii.ValidateMunicipality("320101", "")
	require.NoError(t, err)

	_, err = dgii.ValidateMunicipality("320101", "010000")
	require.Error(t, err)

	_, err = dgii.ValidateMunicipality("999999", "")
	require.Error(t, err)

	_, err = dgii.ValidateProvince("330000")
	require.Error(t, err)
}

func TestCatalog(t *testing.T) {
	assert.Len(t, dgii.UnitMeasures(), 56)

	u, ok := dgii.LookupUnitMeasure(43)
	require.True(t, ok)
	assert.Equal(t, "UND", u.Abbreviation)

	_, err := dgii.ValidateUnitMeasure(43)
	require.NoError(t, err)
	_, err = dgii.ValidateUnitMeasure(0)
	require.Error(t, err)
	_, err = dgii.ValidateUnitMeasure(57)
	require.Error(t, err)

	codes := dgii.CurrencyCodes()
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "EUR")
	assert.Len(t, codes, 14)

	assert.Equal(t, []int64{31, 32, 33, 34, 41, 43, 44, 45, 46, 47}, dgii.ElectronicTypeCodes())
}

func TestValidateIncomeType(t *testing.T) {
	v, ok, err := dgii.ValidateIncomeType(1, "E310000000001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok, err = dgii.ValidateIncomeType(9, "E410000000001")
	require.NoError(t, err)
	assert.False(t, ok, "income type does not apply to purchases")

	_, _, err = dgii.ValidateIncomeType(7, "E310000000001")
	require.Error(t, err)
}

func TestValidatePaymentAccountType(t *testing.T) {
	_, err := dgii.ValidatePaymentAccountType("CT", "E310000000001")
	require.NoError(t, err)

	_, err = dgii.ValidatePaymentAccountType("XX", "E310000000001")
	require.Error(t, err)

	_, err = dgii.ValidatePaymentAccountType("CT", "E340000000001")
	require.Error(t, err)

	_, err = dgii.ValidatePaymentAccountType("AH", "E430000000001")
	require.Error(t, err)
}

func TestValidateTaxAmountIndicator(t *testing.T) {
	_, ok, err := dgii.ValidateTaxAmountIndicator(0, "E430000000001")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := dgii.ValidateTaxAmountIndicator(1, "E310000000001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, _, err = dgii.ValidateTaxAmountIndicator(2, "E310000000001")
	require.Error(t, err)

	for _, encf := range []string{"E430000000001", "E460000000001", "E470000000001"} {
		_, _, err = dgii.ValidateTaxAmountIndicator(1, encf)
		require.Error(t, err, encf)
	}
}

func TestIndicators(t *testing.T) {
	_, err := dgii.ValidateBillingIndicator(4)
	require.NoError(t, err)
	_, err = dgii.ValidateBillingIndicator(5)
	require.Error(t, err)
	assert.Equal(t, int64(18), dgii.BillingRates[dgii.BillingRate1])
	assert.Equal(t, int64(16), dgii.BillingRates[dgii.BillingRate2])

	_, err = dgii.ValidatePercentage(decimal.NewFromInt(99))
	require.NoError(t, err)
	_, err = dgii.ValidatePercentage(decimal.NewFromInt(100))
	require.Error(t, err)
	_, err = dgii.ValidatePercentage(decimal.NewFromInt(-1))
	require.Error(t, err)

	_, err = dgii.ValidateAdditionalTaxType(6)
	require.NoError(t, err)
	_, err = dgii.ValidateAdditionalTaxType(40)
	require.Error(t, err)
}

func TestCreditNoteIndicator(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(dgii.CreditNoteIndicatorCurrent), dgii.CreditNoteIndicator(now.AddDate(0, 0, -10), now))
	assert.Equal(t, int64(dgii.CreditNoteIndicatorCurrent), dgii.CreditNoteIndicator(now.AddDate(0, 0, -30), now))
	assert.Equal(t, int64(dgii.CreditNoteIndicatorExpired), dgii.CreditNoteIndicator(now.AddDate(0, 0, -31), now))

	_, err := dgii.ValidateCreditNoteIndicator(1)
	require.NoError(t, err)
	_, err = dgii.ValidateCreditNoteIndicator(2)
	require.Error(t, err)
}

func TestCatalogEntries(t *testing.T) {
	assert.Equal(t, []string{
		"billing-indicators", "currencies", "document-types", "municipalities",
		"payment-methods", "provinces", "unit-measures",
	}, dgii.CatalogNames())

	billing, err := dgii.Catalog("billing-indicators")
	require.NoError(t, err)
	require.Len(t, billing, 5)
	assert.Equal(t, "1", billing[1].Code)
	require.NotNil(t, billing[1].Rate)
	assert.Equal(t, int64(18), *billing[1].Rate)

	types, err := dgii.Catalog("document-types")
	require.NoError(t, err)
	require.Len(t, types, 10)
	assert.Equal(t, "31", types[0].Code)

	municipalities, err := dgii.Catalog("municipalities")
	require.NoError(t, err)
	assert.Equal(t, "010100", municipalities[0].Code)
	assert.Equal(t, "010000", municipalities[0].Parent)

	units, err := dgii.Catalog("unit-measures")
	require.NoError(t, err)
	assert.Len(t, units, 56)

	_, err = dgii.Catalog("colors")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "choice", verr.Rule)
}
