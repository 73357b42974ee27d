package ecf

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/alanube-ecf/internal/decimal"
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// ItemCodeSchema is one code/value pair of <TablaCodigosItem>
var ItemCodeSchema = form.MustSchema("ItemCode", []*form.Field{
	form.String("codeType", "TipoCodigo", form.MaxLength(14)),
	form.String("itemCode", "CodigoItem", form.MaxLength(35)),
})

// RetentionSchema is the withholding data of an item <Retencion>
var RetentionSchema = form.MustSchema("Retention", []*form.Field{
	form.Int("indicatorAgentWithholdingPerception", "IndicadorAgenteRetencionoPercepcion",
		form.Range(1, 2),
		form.IntChoices(dgii.RetentionIndicators...),
	),
	form.Decimal("itbisAmountWithheld", "MontoITBISRetenido"),
	form.Decimal("isrAmountWithheld", "MontoISRRetenido"),
})

// SubquantitySchema is one row of <TablaSubcantidad>
var SubquantitySchema = form.MustSchema("Subquantity", []*form.Field{
	form.Decimal("subquantity", "Subcantidad", form.Digits(19, 3)),
	form.UnitMeasure("codeSubquantity", "CodigoSubcantidad"),
})

// SubDiscountSchema is one row of <TablaSubDescuento>
var SubDiscountSchema = form.MustSchema("SubDiscount", []*form.Field{
	form.String("subDiscountRate", "TipoSubDescuento", form.MaxLength(1), form.Choices(dgii.ValueTypes...)),
	form.Decimal("subDiscountPercentage", "SubDescuentoPorcentaje", form.MaxValue("999.99")),
	form.Decimal("subDiscountAmount", "MontoSubDescuento"),
})

// SubSurchargeSchema is one row of <TablaSubRecargo>
var SubSurchargeSchema = form.MustSchema("SubSurcharge", []*form.Field{
	form.String("subSurchargeType", "TipoSubRecargo", form.MaxLength(1), form.Choices(dgii.ValueTypes...)),
	form.Decimal("subSurchargePercentage", "SubRecargoPorcentaje", form.MaxValue("999.99")),
	form.Decimal("subSurchargeAmount", "MontoSubRecargo"),
})

// TaxSchema is an additional tax code of an item <TablaImpuestoAdicional>
var TaxSchema = form.MustSchema("Tax", []*form.Field{
	form.Int("taxType", "TipoImpuesto",
		form.Max(999),
		form.Check(form.Rule("tax_type", dgii.ValidateAdditionalTaxType)),
	),
	form.Decimal("additionalTaxRate", "TasaImpuestoAdicional", form.MaxValue("999.99")),
	form.Decimal("selectiveTaxAmountSpecificConsumption", "MontoImpuestoSelectivoConsumoEspecifico"),
	form.Decimal("amountSelectiveConsumptionTaxAdvalorem", "MontoImpuestoSelectivoConsumoAdvalorem"),
	form.Decimal("otherAdditionalTaxes", "OtrosImpuestosAdicionales"),
})

// OtherCurrencyDetailSchema restates an item's prices in a foreign currency
var OtherCurrencyDetailSchema = form.MustSchema("OtherCurrencyDetail", []*form.Field{
	form.Decimal("priceOtherCurrency", "PrecioOtraMoneda", form.Required()),
	form.Decimal("discountOtherCurrency", "DescuentoOtraMoneda"),
	form.Decimal("surchargeAnotherCurrency", "RecargoOtraMoneda"),
	form.Decimal("amountItemOtherCurrency", "MontoItemOtraMoneda", form.Required()),
})

var itemAmountInputs = []string{"unitPriceItem", "quantityItem", "discountAmount", "surchargeAmount"}

func lineAmount(v interface {
	Decimal(string) decimal.Decimal
}) decimal.Decimal {
	return dec.LineAmount(
		v.Decimal("unitPriceItem"),
		v.Decimal("quantityItem"),
		v.Decimal("discountAmount"),
		v.Decimal("surchargeAmount"),
	)
}

// ItemDetailSchema is one line of <DetallesItem>. The item amount defaults
// to price * quantity - discount + surcharge; a supplied amount must agree
// with it within the reconciliation margin.
var ItemDetailSchema = form.MustSchema("ItemDetail", []*form.Field{
	form.Int("lineNumber", "NumeroLinea", form.Required(), form.Range(1, 1000)),
	form.ListOf("itemCodeTable", "TablaCodigosItem", ItemCodeSchema, form.MaxLength(5)),
	form.Int("billingIndicator", "IndicadorFacturacion",
		form.Required(),
		form.Range(0, 4),
		form.Check(form.Rule("billing_indicator", dgii.ValidateBillingIndicator)),
	),
	form.Nested("retention", "Retencion", RetentionSchema),
	form.String("itemName", "NombreItem", form.Required(), form.MaxLength(80)),
	form.Int("goodServiceIndicator", "IndicadorBienoServicio",
		form.Required(),
		form.Range(1, 2),
		form.IntChoices(dgii.GoodServiceCodes...),
	),
	form.String("itemDescription", "DescripcionItem", form.MaxLength(1000)),
	form.Decimal("quantityItem", "CantidadItem", form.Required()),
	form.UnitMeasure("unitMeasure", "UnidadMedida"),
	form.Decimal("quantityReference", "CantidadReferencia"),
	form.UnitMeasure("referenceUnit", "UnidadReferencia"),
	form.ListOf("subquantityTable", "TablaSubcantidad", SubquantitySchema, form.MaxLength(5)),
	form.Decimal("degreesAlcohol", "GradosAlcohol", form.MaxValue("999.99")),
	form.Decimal("unitPriceReference", "PrecioUnitarioReferencia"),
	form.Date("elaborationDate", "FechaElaboracion"),
	form.Date("expirationDateItem", "FechaVencimientoItem"),
	form.Decimal("unitPriceItem", "PrecioUnitarioItem", form.Required(), form.Digits(20, 4)),
	form.Decimal("discountAmount", "DescuentoMonto"),
	form.ListOf("subDiscounts", "TablaSubDescuento", SubDiscountSchema, form.MaxLength(12)),
	form.Decimal("surchargeAmount", "RecargoMonto"),
	form.ListOf("subSurcharge", "TablaSubRecargo", SubSurchargeSchema, form.MaxLength(12)),
	form.ListOf("additionalTaxes", "TablaImpuestoAdicional", TaxSchema, form.MaxLength(2)),
	form.Nested("otherCurrencyDetail", "OtraMonedaDetalle", OtherCurrencyDetailSchema),
	form.Decimal("itemAmount", "MontoItem",
		form.WithDefault(form.Computed(func(ctx *form.Context) (any, error) {
			return lineAmount(ctx), nil
		}, itemAmountInputs...)),
		form.Check(form.RuleWith("item_amount", func(v decimal.Decimal, ctx *form.Context) (decimal.Decimal, error) {
			expected := lineAmount(ctx)
			if !dec.Reconciles(v, expected) {
				return v, ctx.Errorf("item_amount", "item amount %s does not match price * quantity - discount + surcharge (%s)",
					v.String(), expected.String())
			}
			return v, nil
		}, itemAmountInputs...)),
		form.Help("(unitPriceItem * quantityItem) - discountAmount + surchargeAmount"),
	),
})

// SubtotalSchema is one row of <Subtotales>. Its ITBIS and amount totals
// are computed from the other fields.
var SubtotalSchema = form.MustSchema("Subtotal", []*form.Field{
	form.Int("subTotalNumber", "NumeroSubTotal", form.Range(1, 20)),
	form.String("subtotalDescription", "DescripcionSubtotal", form.MaxLength(40)),
	form.Int("order", "Orden", form.Max(99)),
	form.Decimal("subTotalAmountTaxedTotal", "SubTotalMontoGravadoTotal"),
	form.Decimal("subTotalAmountTaxedI1", "SubTotalMontoGravadoI1"),
	form.Decimal("subTotalAmountTaxedI2", "SubTotalMontoGravadoI2"),
	form.Decimal("subTotalAmountTaxedI3", "SubTotalMontoGravadoI3"),
	form.Decimal("itbis1SubTotal", "SubTotaITBIS1"),
	form.Decimal("itbis2SubTotal", "SubTotaITBIS2"),
	form.Decimal("itbis3SubTotal", "SubTotaITBIS3"),
	form.Decimal("subTotalAdditionalTax", "SubTotalImpuestoAdicional"),
	form.Decimal("subTotalExempt", "SubTotalExento"),
	form.Decimal("itbisSubTotal", "SubTotaITBIS",
		form.ReadOnly(),
		form.WithDefault(form.Computed(func(ctx *form.Context) (any, error) {
			return dec.Sum([]decimal.Decimal{
				ctx.Decimal("itbis1SubTotal"),
				ctx.Decimal("itbis2SubTotal"),
				ctx.Decimal("itbis3SubTotal"),
			}), nil
		}, "itbis1SubTotal", "itbis2SubTotal", "itbis3SubTotal")),
	),
	form.Decimal("subTotalAmount", "MontoSubTotal",
		form.ReadOnly(),
		form.WithDefault(form.Computed(func(ctx *form.Context) (any, error) {
			return dec.Sum([]decimal.Decimal{
				ctx.Decimal("subTotalAmountTaxedTotal"),
				ctx.Decimal("itbisSubTotal"),
				ctx.Decimal("subTotalAdditionalTax"),
				ctx.Decimal("subTotalExempt"),
			}), nil
		}, "subTotalAmountTaxedTotal", "itbisSubTotal", "subTotalAdditionalTax", "subTotalExempt")),
	),
	form.Int("lines", "Lineas", form.Max(99)),
})

// DiscountOrSurchargeSchema is a global discount or surcharge <DescuentosORecargos>
var DiscountOrSurchargeSchema = form.MustSchema("DiscountOrSurcharge", []*form.Field{
	form.Int("lineNumber", "NumeroLinea", form.Range(1, 20)),
	form.String("fitType", "TipoAjuste",
		form.MinLength(1),
		form.MaxLength(1),
		form.Choices(dgii.AdjustmentTypes...),
	),
	form.Int("norma1007Indicator", "IndicadorNorma1007", form.Range(0, 1)),
	form.String("descriptionDiscountOrSurcharge", "DescripcionDescuentooRecargo", form.MaxLength(45)),
	form.String("typeValue", "TipoValor", form.MaxLength(1), form.Choices(dgii.ValueTypes...)),
	form.Decimal("discountValueOrSurcharge", "ValorDescuentooRecargo", form.MaxValue("999.99")),
	form.Decimal("discountAmountOrSurcharge", "MontoDescuentooRecargo"),
	form.Decimal("discountAmountOrSurchargeOtherCurrency", "MontoDescuentooRecargoOtraMoneda"),
	form.Int("indicatorBillingDiscountOrSurcharge", "IndicadorFacturacionDescuentooRecargo",
		form.Range(0, 4),
		form.Check(form.Rule("billing_indicator", dgii.ValidateBillingIndicator)),
	),
})

// SubtotalAdditionalTaxSchema is the additional tax subtotal of a page
var SubtotalAdditionalTaxSchema = form.MustSchema("SubtotalAdditionalTax", []*form.Field{
	form.Decimal("subtotalSelectiveTaxForSpecificConsumptionPage", "SubtotalImpuestoSelectivoConsumoEspecificoPagina"),
	form.Decimal("subtotalOtherTax", "SubtotalOtrosImpuesto"),
})

// PaginationSchema describes one page of the printed representation <Paginacion>
var PaginationSchema = form.MustSchema("Pagination", []*form.Field{
	form.Int("pageNo", "PaginaNo", form.Range(1, 100)),
	form.Int("noLineFrom", "NoLineaDesde", form.Range(1, 999)),
	form.Int("noLineUntil", "NoLineaHasta", form.Range(1, 999)),
	form.Decimal("subtotalAmountTaxedPage", "SubtotalMontoGravadoPagina"),
	form.Decimal("subtotalAmountTaxed1Page", "SubtotalMontoGravado1Pagina"),
	form.Decimal("subtotalAmountTaxed2Page", "SubtotalMontoGravado2Pagina"),
	form.Decimal("subtotalAmountTaxed3Page", "SubtotalMontoGravado3Pagina"),
	form.Decimal("exemptSubtotalPage", "SubtotalExentoPagina"),
	form.Decimal("itbisSubtotalPage", "SubtotalItbisPagina"),
	form.Decimal("itbis1SubtotalPage", "SubtotalItbis1Pagina"),
	form.Decimal("itbis2SubtotalPage", "SubtotalItbis2Pagina"),
	form.Decimal("itbis3SubtotalPage", "SubtotalItbis3Pagina"),
	form.Decimal("subtotalAdditionalTaxPage", "SubtotalImpuestoAdicionalPagina"),
	form.Nested("subtotalAdditionalTax", "SubtotalImpuestoAdicional", SubtotalAdditionalTaxSchema),
	form.Decimal("subtotalAmountPage", "MontoSubtotalPagina"),
	form.Decimal("subtotalNonBillableAmountPage", "SubtotalMontoNoFacturablePagina"),
}, form.WithValidate(func(f *form.Form) error {
	if f.Has("noLineFrom") && f.Has("noLineUntil") && f.Int("noLineFrom") > f.Int("noLineUntil") {
		return model.NewValidationError("noLineFrom", f.Int("noLineFrom"), "line_range",
			"first line of the page must not be after its last line")
	}
	return nil
}))
