package ecf

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// TotalsAdditionalTaxSchema is one row of <ImpuestosAdicionales> in totals
var TotalsAdditionalTaxSchema = form.MustSchema("TotalsAdditionalTax", []*form.Field{
	form.Int("taxType", "TipoImpuesto", form.Max(999), form.Check(form.Rule("tax_type", dgii.ValidateAdditionalTaxType))),
	form.Decimal("additionalTaxRate", "TasaImpuestoAdicional", form.MaxValue("999.99")),
	form.Decimal("selectiveTaxAmountSpecificConsumption", "MontoImpuestoSelectivoConsumoEspecifico"),
	form.Decimal("amountSelectiveConsumptionTaxAdvalorem", "MontoImpuestoSelectivoConsumoAdvalorem"),
	form.Decimal("otherAdditionalTaxes", "OtrosImpuestosAdicionales"),
})

// TotalsSchema is the <Totales> section. Its identities are checked on
// construction and again when serialized.
var TotalsSchema = form.MustSchema("Totals", []*form.Field{
	form.Decimal("totalTaxedAmount", "MontoGravadoTotal",
		form.Help("i1AmountTaxed + i2AmountTaxed + i3AmountTaxed")),
	form.Decimal("i1AmountTaxed", "MontoGravadoI1",
		form.Help("items billed at ITBIS rate 1 (18%), less discounts plus surcharges")),
	form.Decimal("i2AmountTaxed", "MontoGravadoI2",
		form.Help("items billed at ITBIS rate 2 (16%), less discounts plus surcharges")),
	form.Decimal("i3AmountTaxed", "MontoGravadoI3",
		form.Help("items billed at ITBIS rate 3 (0%), less discounts plus surcharges")),
	form.Decimal("exemptAmount", "MontoExento"),
	form.Int("itbisS1", "ITBIS1", form.Max(99), form.WithDefault(form.Literal(dgii.BillingRates[dgii.BillingRate1]))),
	form.Int("itbisS2", "ITBIS2", form.Max(99), form.WithDefault(form.Literal(dgii.BillingRates[dgii.BillingRate2]))),
	form.Int("itbisS3", "ITBIS3", form.Max(99), form.WithDefault(form.Literal(dgii.BillingRates[dgii.BillingRate3]))),
	form.Decimal("itbisTotal", "TotalITBIS"),
	form.Decimal("itbis1Total", "TotalITBIS1"),
	form.Decimal("itbis2Total", "TotalITBIS2"),
	form.Decimal("itbis3Total", "TotalITBIS3"),
	form.Decimal("additionalTaxAmount", "MontoImpuestoAdicional"),
	form.ListOf("additionalTaxes", "ImpuestosAdicionales", TotalsAdditionalTaxSchema, form.MaxLength(20)),
	form.Decimal("totalAmount", "MontoTotal", form.Required(),
		form.Help("totalTaxedAmount + exemptAmount + itbisTotal + additionalTaxAmount")),
	form.Decimal("nonBillableAmount", "MontoNoFacturable"),
	form.Decimal("amountPeriod", "MontoPeriodo"),
	form.Decimal("previousBalance", "SaldoAnterior"),
	form.Decimal("amountAdvancePayment", "MontoAvancePago"),
	form.Decimal("payValue", "ValorPagar"),
	form.Decimal("itbisTotalRetained", "TotalITBISRetenido"),
	form.Decimal("isrTotalRetention", "TotalISRRetencion"),
	form.Decimal("itbisTotalPerception", "TotalITBISPercepcion"),
	form.Decimal("isrTotalPerception", "TotalISRPercepcion"),
},
	form.WithValidate(validateTotals),
	form.WithHook("totalTaxedAmount", totalsHook(checkTotalTaxed)),
	form.WithHook("itbisTotal", totalsHook(checkItbisTotal)),
	form.WithHook("totalAmount", totalsHook(checkTotalAmount)),
)

func validateTotals(f *form.Form) error {
	for _, check := range []func(*form.Form) error{checkTotalTaxed, checkItbisTotal, checkTotalAmount} {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

func totalsHook(check func(*form.Form) error) form.Hook {
	return func(v any, f *form.Form) (any, error) {
		if err := check(f); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func sumOf(f *form.Form, names ...string) decimal.Decimal {
	values := make([]decimal.Decimal, len(names))
	for i, name := range names {
		values[i] = f.Decimal(name)
	}
	return dec.Sum(values)
}

func reconcile(f *form.Form, field string, expected decimal.Decimal, what string) error {
	got := f.Decimal(field)
	if !dec.Reconciles(got, expected) {
		return model.NewValidationError(field, got.String(), "reconciliation",
			field+" does not match "+what+" ("+expected.String()+")")
	}
	return nil
}

func checkTotalTaxed(f *form.Form) error {
	if !f.Has("totalTaxedAmount") {
		return nil
	}
	return reconcile(f, "totalTaxedAmount",
		sumOf(f, "i1AmountTaxed", "i2AmountTaxed", "i3AmountTaxed"),
		"the sum of taxed amounts per rate")
}

func checkItbisTotal(f *form.Form) error {
	if !f.Has("itbisTotal") {
		return nil
	}
	return reconcile(f, "itbisTotal",
		sumOf(f, "itbis1Total", "itbis2Total", "itbis3Total"),
		"the sum of ITBIS per rate")
}

func checkTotalAmount(f *form.Form) error {
	return reconcile(f, "totalAmount",
		sumOf(f, "totalTaxedAmount", "exemptAmount", "itbisTotal", "additionalTaxAmount"),
		"taxed + exempt + ITBIS + additional tax")
}

// AdditionalTaxOtherCurrencySchema is one row of <ImpuestosAdicionalesOtraMoneda>
var AdditionalTaxOtherCurrencySchema = form.MustSchema("AdditionalTaxOtherCurrency", []*form.Field{
	form.Int("taxTypeOtherCurrency", "TipoImpuestoOtraMoneda",
		form.Required(),
		form.Max(999),
		form.Check(form.Rule("tax_type", dgii.ValidateAdditionalTaxType)),
	),
	form.Decimal("additionalTaxRateOtherCurrency", "TasaImpuestoAdicionalOtraMoneda", form.MaxValue("999.99")),
	form.Decimal("selectiveTaxAmountSpecificConsumptionOtherCurrency", "MontoImpuestoSelectivoConsumoEspecificoOtraMoneda"),
	form.Decimal("amountSelectiveConsumptionTaxAdvaloremOtherCurrency", "MontoImpuestoSelectivoConsumoAdvaloremOtraMoneda"),
	form.Decimal("otherAdditionalTaxesOtherCurrency", "OtrosImpuestosAdicionalesOtraMoneda"),
})

// OtherCurrencySchema restates the totals in a foreign currency <OtraMoneda>
var OtherCurrencySchema = form.MustSchema("OtherCurrency", []*form.Field{
	form.String("currencyType", "TipoMoneda",
		form.Required(),
		form.MaxLength(3),
		form.Choices(dgii.CurrencyCodes()...),
	),
	form.Decimal("exchangeRate", "TipoCambio", form.Required(), form.Digits(7, 4)),
	form.Decimal("totalTaxedAmountOtherCurrency", "MontoGravadoTotalOtraMoneda"),
	form.Decimal("amountTaxed1OtherCurrency", "MontoGravado1OtraMoneda"),
	form.Decimal("amountTaxed2OtherCurrency", "MontoGravado2OtraMoneda"),
	form.Decimal("amountTaxed3OtherCurrency", "MontoGravado3OtraMoneda"),
	form.Decimal("exemptAmountOtherCurrency", "MontoExentoOtraMoneda"),
	form.Decimal("itbisTotalOtherCurrency", "TotalITBISOtraMoneda"),
	form.Decimal("itbis1TotalOtherCurrency", "TotalITBIS1OtraMoneda"),
	form.Decimal("itbis2TotalOtherCurrency", "TotalITBIS2OtraMoneda"),
	form.Decimal("itbis3TotalOtherCurrency", "TotalITBIS3OtraMoneda"),
	form.Decimal("additionalTaxAmountOtherCurrency", "MontoImpuestoAdicionalOtraMoneda"),
	form.ListOf("additionalTaxesOtherCurrency", "ImpuestosAdicionalesOtraMoneda", AdditionalTaxOtherCurrencySchema, form.MaxLength(20)),
	form.Decimal("totalAmountOtherCurrency", "MontoTotalOtraMoneda", form.Required()),
})
