package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/model"
)

func TestDocumentType(t *testing.T) {
	tests := []struct {
		code     model.DocumentType
		name     string
		buyerRNC bool
		exempt   bool
	}{
		{model.TypeFiscalInvoice, "fiscalInvoice", true, false},
		{model.TypeInvoice, "invoice", false, false},
		{model.TypeDebitNote, "debitNote", false, false},
		{model.TypeCreditNote, "creditNote", false, false},
		{model.TypePurchase, "purchase", true, false},
		{model.TypeMinorExpense, "minorExpense", false, true},
		{model.TypeSpecialRegime, "specialRegime", false, true},
		{model.TypeGubernamental, "gubernamental", true, false},
		{model.TypeExportSupport, "exportSupport", false, false},
		{model.TypePaymentAbroadSupport, "paymentAbroadSupport", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.code.Valid())
			assert.Equal(t, tt.name, tt.code.Name())
			assert.NotEmpty(t, tt.code.Description())
			assert.Equal(t, tt.buyerRNC, tt.code.RequiresBuyerRNC())
			assert.Equal(t, tt.exempt, tt.code.TaxExempt())
		})
	}

	assert.Len(t, model.DocumentTypes(), 10)
	assert.Equal(t, model.TypeFiscalInvoice, model.DocumentTypes()[0])
	assert.False(t, model.DocumentType(42).Valid())
	assert.Equal(t, "31", model.TypeFiscalInvoice.Code())
}

func TestParseDocumentType(t *testing.T) {
	dt, err := model.ParseDocumentType("34")
	require.NoError(t, err)
	assert.Equal(t, model.TypeCreditNote, dt)

	_, err = model.ParseDocumentType("35")
	require.Error(t, err)

	_, err = model.ParseDocumentType("abc")
	require.Error(t, err)
}

func TestStatuses(t *testing.T) {
	st, err := model.ParseStatus("FINISHED")
	require.NoError(t, err)
	assert.True(t, st.Terminal())
	assert.False(t, model.StatusToSend.Terminal())

	_, err = model.ParseStatus("DONE")
	require.Error(t, err)

	ls, err := model.ParseLegalStatus("ACCEPTED_WITH_OBSERVATIONS")
	require.NoError(t, err)
	assert.True(t, ls.Accepted())
	assert.False(t, model.LegalRejected.Accepted())

	joined, err := model.JoinStatuses(model.StatusRegistered, model.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, "REGISTERED,FAILED", joined)

	_, err = model.JoinStatuses(model.Status("bogus"))
	require.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	assert.True(t, model.EnvPreCertification.Valid())
	assert.True(t, model.EnvProduction.Valid())
	assert.False(t, model.Environment(0).Valid())
	assert.False(t, model.Environment(4).Valid())
	assert.Equal(t, "certification", model.EnvCertification.String())
	assert.Equal(t, model.Environment(2), model.EnvProduction)
}

func TestParseError(t *testing.T) {
	err := &model.ParseError{
		Source:  "invoice.json",
		Field:   "IdDoc",
		Message: "expected object",
	}

	require.Contains(t, err.Error(), "invoice.json")
	require.Contains(t, err.Error(), "IdDoc")
	require.Contains(t, err.Error(), "expected object")
}

func TestParseError_WithCause(t *testing.T) {
	cause := assert.AnError
	err := model.NewParseError("stdin", "", "invalid JSON", cause)

	require.Contains(t, err.Error(), "stdin")
	require.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := model.NewValidationError("rnc", "12345", "length", "must be 9 or 11 digits")

	require.Contains(t, err.Error(), "rnc")
	require.Contains(t, err.Error(), "12345")
	require.Contains(t, err.Error(), "9 or 11 digits")
}

func TestValidationError_In(t *testing.T) {
	base := model.Invalid("X", "choice", "not allowed")

	located := base.In("IdDoc", "encf")
	assert.Equal(t, "IdDoc", located.Form)
	assert.Equal(t, "encf", located.Field)
	assert.Empty(t, base.Form, "original must not change")

	nested := located.In("Invoice", "idDoc")
	assert.Equal(t, "Invoice", nested.Form)
	assert.Equal(t, "idDoc.encf", nested.Field)
	assert.Contains(t, nested.Error(), "Invoice.idDoc.encf")
}
