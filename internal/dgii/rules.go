package dgii

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// Billing indicators
const (
	BillingNotBillable int64 = 0
	BillingRate1       int64 = 1
	BillingRate2       int64 = 2
	BillingRate3       int64 = 3
	BillingExempt      int64 = 4
)

// BillingRates maps a billing indicator to its ITBIS percentage
var BillingRates = map[int64]int64{
	BillingNotBillable: 0,
	BillingRate1:       18,
	BillingRate2:       16,
	BillingRate3:       0,
	BillingExempt:      0,
}

// Credit note indicator values and window
const (
	CreditNoteWindowDays       = 30
	CreditNoteIndicatorExpired = 1
	CreditNoteIndicatorCurrent = 0
)

// MaxAdditionalTaxType is the highest code of the additional tax table
const MaxAdditionalTaxType = 39

var maxPercentage = decimal.NewFromInt(99)

// ValidateBillingIndicator checks membership in the billing indicator table
func ValidateBillingIndicator(v int64) (int64, error) {
	if _, ok := BillingRates[v]; !ok {
		return 0, model.Invalid(v, "billing_indicator", "billing indicator %d is not valid", v)
	}
	return v, nil
}

// ValidatePercentage accepts values in [0, 99]
func ValidatePercentage(v decimal.Decimal) (decimal.Decimal, error) {
	if v.IsNegative() || v.GreaterThan(maxPercentage) {
		return decimal.Zero, model.Invalid(v.String(), "percentage", "percentage must be between 0 and 99")
	}
	return v, nil
}

// ValidateAdditionalTaxType accepts codes of the DGII additional tax table
func ValidateAdditionalTaxType(v int64) (int64, error) {
	if v < 1 || v > MaxAdditionalTaxType {
		return 0, model.Invalid(v, "tax_type", "additional tax type %d is not valid", v)
	}
	return v, nil
}

// ValidateIncomeType checks the income type for the document's NCF. The
// second result is false when the field does not apply to the NCF type
// (41, 43 and 47) and must be dropped.
func ValidateIncomeType(v int64, encf string) (int64, bool, error) {
	if ncfCodeIn(encf, "41", "43", "47") {
		slog.Warn("income type does not apply to document type", "income_type", v, "encf", encf)
		return 0, false, nil
	}
	if !containsInt(IncomeTypes, v) {
		return 0, false, model.Invalid(v, "income_type", "income type %d is not valid", v)
	}
	return v, true, nil
}

// ValidatePaymentAccountType rejects account types on 34 and 43 documents
func ValidatePaymentAccountType(v, encf string) (string, error) {
	if ncfCodeIn(encf, "34", "43") {
		return "", model.Invalid(v, "payment_account_type", "account type must be empty for NCF types 34 and 43")
	}
	if !contains(AccountTypes, v) {
		return "", model.Invalid(v, "payment_account_type", "account type %q is not valid", v)
	}
	return v, nil
}

// ValidateTaxAmountIndicator checks the "amounts include ITBIS" flag.
// Zero means absent and reports false.
func ValidateTaxAmountIndicator(v int64, encf string) (int64, bool, error) {
	if v == 0 {
		return 0, false, nil
	}
	if v != 1 {
		return 0, false, model.Invalid(v, "tax_amount_indicator", "indicator %d is not valid, must be 0 (excludes taxes) or 1 (includes taxes)", v)
	}
	if ncfCodeIn(encf, "43", "46", "47") {
		return 0, false, model.Invalid(v, "tax_amount_indicator", "NCF types 43, 46 and 47 do not declare whether amounts include taxes")
	}
	return v, true, nil
}

// ValidateCreditNoteIndicator accepts the two indicator values
func ValidateCreditNoteIndicator(v int64) (int64, error) {
	if v != CreditNoteIndicatorCurrent && v != CreditNoteIndicatorExpired {
		return 0, model.Invalid(v, "credit_note_indicator", "indicator %d is not valid", v)
	}
	return v, nil
}

// CreditNoteIndicator returns 1 when the affected document was issued
// more than CreditNoteWindowDays before now.
func CreditNoteIndicator(affected, now time.Time) int64 {
	limit := affected.AddDate(0, 0, CreditNoteWindowDays)
	if truncateDay(limit).Before(truncateDay(now)) {
		return CreditNoteIndicatorExpired
	}
	return CreditNoteIndicatorCurrent
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ncfCodeIn(encf string, codes ...string) bool {
	if encf == "" {
		return false
	}
	_, code, _ := SplitNCF(encf)
	return contains(codes, code)
}

func containsInt(list []int64, v int64) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
