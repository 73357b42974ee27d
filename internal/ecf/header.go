package ecf

import (
	"log/slog"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// PaymentSchema is one row of the payment forms table
var PaymentSchema = form.MustSchema("Payment", []*form.Field{
	form.Int("paymentMethod", "FormaPago", form.Range(1, 8), form.IntChoices(dgii.PaymentMethods...)),
	form.Decimal("paymentAmount", "MontoPago"),
})

// IdDocSchema identifies the document: eNCF, payment conditions and period
var IdDocSchema = form.MustSchema("IdDoc", []*form.Field{
	form.NCF("encf", "eNCF", form.Required()),
	form.Date("sequenceDueDate", "FechaVencimientoSecuencia", form.Required()),
	form.Int("deferredDeliveryIndicator", "IndicadorEnvioDiferido", form.Range(0, 1)),
	form.Int("taxAmountIndicator", "IndicadorMontoGravado",
		form.Range(0, 1),
		form.Check(form.RuleWith("tax_amount_indicator", checkTaxAmountIndicator, "encf")),
	),
	form.Int("incomeType", "TipoIngresos",
		form.Required(),
		form.Range(1, 6),
		form.Check(form.RuleWith("income_type", checkIncomeType, "encf")),
	),
	form.Int("paymentType", "TipoPago",
		form.Required(),
		form.Range(1, 3),
		form.IntChoices(dgii.PaymentTypes...),
	),
	form.Date("paymentDeadline", "FechaLimitePago"),
	form.String("paymentTerm", "TerminoPago", form.MaxLength(15)),
	form.ListOf("paymentFormsTable", "TablaFormasPago", PaymentSchema, form.MaxLength(7)),
	form.String("paymentAccountType", "TipoCuentaPago",
		form.MaxLength(2),
		form.Check(form.RuleWith("payment_account_type", checkPaymentAccountType, "encf")),
	),
	form.String("paymentAccountNumber", "NumeroCuentaPago", form.MaxLength(28)),
	form.String("bankPayment", "BancoPago", form.MaxLength(75)),
	form.Date("dateFrom", "FechaDesde"),
	form.Date("dateUntil", "FechaHasta"),
	form.Int("totalPages", "TotalPaginas", form.Range(1, 999)),
}, form.WithValidate(validateIdDoc))

// CreditNoteIdDocSchema is the credit note header. It has no sequence due
// date nor payment conditions and carries the credit note indicator.
var CreditNoteIdDocSchema = IdDocSchema.MustExtend("CreditNoteIdDoc",
	[]string{
		"sequenceDueDate",
		"paymentTerm",
		"paymentFormsTable",
		"paymentAccountType",
		"paymentAccountNumber",
		"bankPayment",
	},
	[]*form.Field{
		form.Int("creditNoteIndicator", "IndicadorNotaCredito",
			form.Required(),
			form.Range(0, 1),
			form.Check(form.Rule("credit_note_indicator", dgii.ValidateCreditNoteIndicator)),
			form.Help("1 when the affected e-CF was issued more than 30 days before the note"),
		),
	},
	form.WithValidate(validateCreditNoteIdDoc),
)

func checkTaxAmountIndicator(v int64, ctx *form.Context) (int64, error) {
	out, ok, err := dgii.ValidateTaxAmountIndicator(v, ctx.String("encf"))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, form.ErrNotApplicable
	}
	return out, nil
}

func checkIncomeType(v int64, ctx *form.Context) (int64, error) {
	out, ok, err := dgii.ValidateIncomeType(v, ctx.String("encf"))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, form.ErrNotApplicable
	}
	return out, nil
}

func checkPaymentAccountType(v string, ctx *form.Context) (string, error) {
	return dgii.ValidatePaymentAccountType(v, ctx.String("encf"))
}

func validateIdDoc(f *form.Form) error {
	if f.Has("paymentDeadline") && f.Int("paymentType") != dgii.PaymentTypeCredit {
		return model.NewValidationError("paymentDeadline", f.Get("paymentDeadline"), "payment_deadline",
			"payment deadline is only allowed for credit payments")
	}
	if f.Has("dateFrom") && f.Has("dateUntil") && f.Date("dateFrom").After(f.Date("dateUntil")) {
		return model.NewValidationError("dateFrom", f.Get("dateFrom"), "period", "period starts after it ends")
	}
	return nil
}

func validateCreditNoteIdDoc(f *form.Form) error {
	if err := validateIdDoc(f); err != nil {
		return err
	}
	// The 30 day rule needs the affected document's date, which the
	// header does not carry; the indicator is accepted as declared.
	slog.Default().Warn("credit note indicator not verified",
		"encf", f.String("encf"),
		"indicator", f.Int("creditNoteIndicator"),
	)
	return nil
}
