package ecf

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// InformationReferenceSchema points to the document being modified <InformacionReferencia>
var InformationReferenceSchema = form.MustSchema("InformationReference", []*form.Field{
	form.NCF("ncfModified", "NCFModificado", form.Series("")),
	form.RNC("rncOtherTaxpayer", "RNCOtroContribuyente"),
	form.Date("ncfModifiedDate", "FechaNCFModificado"),
	form.Int("modificationCode", "CodigoModificacion",
		form.Range(1, 5),
		form.IntChoices(dgii.ModificationCodes...),
	),
	form.String("reasonForModification", "RazonModificacion", form.MaxLength(90)),
})

// PDFSchema selects the printed representation template
var PDFSchema = form.MustSchema("PDF", []*form.Field{
	form.String("type", "", form.MaxLength(7), form.WithDefault(form.Literal("generic"))),
	form.String("note", ""),
})

// ConfigSchema carries gateway options that are not part of the e-CF
var ConfigSchema = form.MustSchema("Config", []*form.Field{
	form.Nested("pdf", "", PDFSchema, form.WithDefault(form.Computed(func(*form.Context) (any, error) {
		return PDFSchema.New(nil)
	}))),
})

// InvoiceSchema is the electronic invoice accepted by every e-CF endpoint
var InvoiceSchema = form.MustSchema("Invoice", invoiceFields(IdDocSchema, false), form.WithValidate(validateInvoice))

// CreditNoteSchema is the e-CF 34. It uses the credit note header and must
// reference the modified document.
var CreditNoteSchema = form.MustSchema("CreditNote", invoiceFields(CreditNoteIdDocSchema, true), form.WithValidate(validateInvoice))

func invoiceFields(idDoc *form.Schema, referenced bool) []*form.Field {
	var refOpts []form.Option
	if referenced {
		refOpts = append(refOpts, form.Required())
	}
	return []*form.Field{
		form.String("companyId", "", form.Required()),
		form.Nested("idDoc", "IdDoc", idDoc, form.Required()),
		form.Nested("sender", "Emisor", SenderSchema, form.Required()),
		form.Nested("buyer", "Comprador", BuyerSchema, form.Required()),
		form.Nested("additionalInformation", "InformacionesAdicionales", AdditionalInformationSchema),
		form.Nested("transport", "Transporte", TransportSchema),
		form.Nested("totals", "Totales", TotalsSchema, form.Required()),
		form.Nested("otherCurrency", "OtraMoneda", OtherCurrencySchema),
		form.ListOf("itemDetails", "DetallesItem", ItemDetailSchema,
			form.Required(),
			form.MinLength(1),
			form.MaxLength(100),
		),
		form.ListOf("subtotals", "Subtotales", SubtotalSchema, form.MaxLength(20)),
		form.ListOf("discountsOrSurcharges", "DescuentosORecargos", DiscountOrSurchargeSchema, form.MaxLength(20)),
		form.ListOf("pagination", "Paginacion", PaginationSchema, form.MaxLength(100)),
		form.Nested("informationReference", "InformacionReferencia", InformationReferenceSchema, refOpts...),
		form.Nested("config", "", ConfigSchema, form.WithDefault(form.Computed(func(*form.Context) (any, error) {
			return ConfigSchema.New(nil)
		}))),
	}
}

// taxFields may not be populated on tax exempt document types
var taxFields = []string{
	"totalTaxedAmount",
	"i1AmountTaxed",
	"i2AmountTaxed",
	"i3AmountTaxed",
	"itbisTotal",
	"itbis1Total",
	"itbis2Total",
	"itbis3Total",
}

// rateAmounts pairs each per-rate total with the billing indicator of the
// items it sums.
var rateAmounts = []struct {
	field     string
	indicator int64
}{
	{"i1AmountTaxed", dgii.BillingRate1},
	{"i2AmountTaxed", dgii.BillingRate2},
	{"i3AmountTaxed", dgii.BillingRate3},
	{"exemptAmount", dgii.BillingExempt},
}

func validateInvoice(f *form.Form) error {
	encf := f.Form("idDoc").String("encf")
	docType, err := dgii.DocumentTypeOf(encf)
	if err != nil {
		return err
	}

	if docType.RequiresBuyerRNC() && !f.Form("buyer").Has("rnc") {
		return model.NewValidationError("buyer.rnc", nil, "buyer_rnc",
			fmt.Sprintf("buyer RNC is required for NCF type %s", docType.Code()))
	}

	totals := f.Form("totals")
	if docType.TaxExempt() {
		for _, name := range taxFields {
			if totals.Has(name) && !totals.Decimal(name).IsZero() {
				return model.NewValidationError("totals."+name, totals.Decimal(name).String(), "tax_exempt",
					fmt.Sprintf("NCF type %s does not carry ITBIS", docType.Code()))
			}
		}
	}

	items := f.Forms("itemDetails")
	for _, ra := range rateAmounts {
		if !totals.Has(ra.field) {
			continue
		}
		declared := totals.Decimal(ra.field)
		computed := ItemsAmount(items, ra.indicator)
		if !dec.Reconciles(declared, computed) {
			return model.NewValidationError("totals."+ra.field, declared.String(), "reconciliation",
				fmt.Sprintf("%s does not match the items billed with indicator %d (%s)", ra.field, ra.indicator, computed.String()))
		}
	}
	return nil
}

// ItemsAmount sums the item amounts of the lines billed with indicator
func ItemsAmount(items []*form.Form, indicator int64) decimal.Decimal {
	return dec.Sum(lo.FilterMap(items, func(item *form.Form, _ int) (decimal.Decimal, bool) {
		return item.Decimal("itemAmount"), item.Int("billingIndicator") == indicator
	}))
}
