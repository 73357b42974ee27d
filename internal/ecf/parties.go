package ecf

import (
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
)

// maxInternalNumber is the 20 digit bound of the issuer's internal numbers
const maxInternalNumber = "99999999999999999999"

// Province is declared before municipality so the municipality check can
// compare against it.
func provinceField() *form.Field {
	return form.String("province", "Provincia",
		form.Check(form.Rule("province", dgii.ValidateProvince)),
	)
}

func municipalityField() *form.Field {
	return form.String("municipality", "Municipio",
		form.Check(form.RuleWith("municipality", func(v string, ctx *form.Context) (string, error) {
			return dgii.ValidateMunicipality(v, ctx.String("province"))
		}, "province")),
	)
}

// SenderSchema is the issuer section <Emisor>
var SenderSchema = form.MustSchema("Sender", []*form.Field{
	form.RNC("rnc", "RNCEmisor", form.Required()),
	form.String("companyName", "RazonSocialEmisor", form.Required(), form.MaxLength(150)),
	form.String("tradename", "NombreComercial", form.MaxLength(150)),
	form.String("branchOffice", "Sucursal", form.MaxLength(20)),
	form.String("address", "DireccionEmisor", form.Required(), form.MaxLength(100)),
	provinceField(),
	municipalityField(),
	form.List("phoneNumber", "TablaTelefonoEmisor", form.Phone("phone", "TelefonoEmisor"), form.MaxLength(3)),
	form.Email("mail", "CorreoEmisor"),
	form.String("webSite", "WebSite",
		form.MaxLength(50),
		form.Check(form.Rule("website", dgii.ValidateWebsite)),
	),
	form.String("economicActivity", "ActividadEconomica", form.MaxLength(100)),
	form.String("sellerCode", "CodigoVendedor", form.MaxLength(60)),
	form.Int("internalInvoiceNumber", "NumeroFacturaInterna", form.MaxValue(maxInternalNumber)),
	form.Int("internalOrderNumber", "NumeroPedidoInterno", form.MaxValue(maxInternalNumber)),
	form.String("saleArea", "ZonaVenta", form.MaxLength(20)),
	form.String("saleRoute", "RutaVenta", form.MaxLength(20)),
	form.String("additionalInformationIssuer", "InformacionAdicionalEmisor", form.MaxLength(250)),
	form.Date("stampDate", "FechaEmision", form.Required()),
})

// BuyerSchema is the buyer section <Comprador>. The RNC is optional here;
// the document decides whether its type needs it.
var BuyerSchema = form.MustSchema("Buyer", []*form.Field{
	form.RNC("rnc", "RNCComprador"),
	form.String("companyName", "RazonSocialComprador", form.Required(), form.MaxLength(150)),
	form.String("contact", "ContactoComprador", form.MaxLength(80)),
	form.Email("mail", "CorreoComprador"),
	form.String("address", "DireccionComprador", form.MaxLength(100)),
	provinceField(),
	municipalityField(),
	form.Date("deliverDate", "FechaEntrega"),
	form.String("contactDelivery", "ContactoEntrega", form.MaxLength(100)),
	form.String("deliveryAddress", "DireccionEntrega", form.MaxLength(100)),
	form.Phone("additionalPhone", "TelefonoAdicional"),
	form.Date("purchaseOrderDate", "FechaOrdenCompra"),
	form.String("purchaseOrderNumber", "NumeroOrdenCompra", form.MaxLength(20)),
	form.String("internalCode", "CodigoInternoComprador", form.MaxLength(20)),
	form.String("responsibleForPayment", "ResponsablePago", form.MaxLength(20)),
	form.String("additionalInformation", "InformacionAdicionalComprador", form.MaxLength(150)),
})

// AdditionalInformationSchema carries shipping data <InformacionesAdicionales>
var AdditionalInformationSchema = form.MustSchema("AdditionalInformation", []*form.Field{
	form.Date("shippingDate", "FechaEmbarque"),
	form.String("shipmentNumber", "NumeroEmbarque", form.MaxLength(25)),
	form.String("containerNumber", "NumeroContenedor", form.MaxLength(100)),
	form.Int("referenceNumber", "NumeroReferencia"),
	form.Decimal("grossWeight", "PesoBruto"),
	form.Decimal("netWeight", "PesoNeto"),
	form.UnitMeasure("grossWeightUnit", "UnidadPesoBruto"),
	form.UnitMeasure("unitNetWeight", "UnidadPesoNeto"),
	form.Decimal("bulkQuantity", "CantidadBulto"),
	form.UnitMeasure("bulkUnit", "UnidadBulto"),
	form.Decimal("bulkVolume", "VolumenBulto"),
	form.UnitMeasure("unitVolume", "UnidadVolumen"),
})

// TransportSchema is the <Transporte> section
var TransportSchema = form.MustSchema("Transport", []*form.Field{
	form.String("driver", "Conductor", form.MaxLength(20)),
	form.Int("transportDocument", "DocumentoTransporte"),
	form.String("file", "Ficha", form.MaxLength(20)),
	form.String("licensePlate", "Placa", form.MaxLength(7)),
	form.String("transportationRoute", "RutaTransporte", form.MaxLength(20)),
	form.String("transportationZone", "ZonaTransporte", form.MaxLength(20)),
	form.Int("albaranNumber", "NumeroAlbaran"),
})
