package dgii

import (
	"sort"
	"strconv"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// UnitMeasure is an entry of the DGII unit of measure table
type UnitMeasure struct {
	Code         int64
	Abbreviation string
	Name         string
}

var unitMeasures = []UnitMeasure{
	{1, "BARR", "Barril"},
	{2, "BOL", "Bolsa"},
	{3, "BOT", "Bote"},
	{4, "BULTO", "Bultos"},
	{5, "BOTELLA", "Botella"},
	{6, "CAJ", "Caja"},
	{7, "CAJETILLA", "Cajetilla"},
	{8, "CM", "Centímetro"},
	{9, "CIL", "Cilindro"},
	{10, "CONJ", "Conjunto"},
	{11, "CONT", "Contenedor"},
	{12, "DÍA", "Día"},
	{13, "DOC", "Docena"},
	{14, "FARD", "Fardo"},
	{15, "GL", "Galones"},
	{16, "GRAD", "Grado"},
	{17, "GR", "Gramo"},
	{18, "GRAN", "Granel"},
	{19, "HOR", "Hora"},
	{20, "HUAC", "Huacal"},
	{21, "KG", "Kilogramo"},
	{22, "kWh", "Kilovatio Hora"},
	{23, "LB", "Libra"},
	{24, "LITRO", "Litro"},
	{25, "LOT", "Lote"},
	{26, "M", "Metro"},
	{27, "M2", "Metro Cuadrado"},
	{28, "M3", "Metro Cúbico"},
	{29, "MMBTU", "Millones de Unidades Térmicas"},
	{30, "MIN", "Minuto"},
	{31, "PAQ", "Paquete"},
	{32, "PAR", "Par"},
	{33, "PIE", "Pie"},
	{34, "PZA", "Pieza"},
	{35, "ROL", "Rollo"},
	{36, "SOBR", "Sobre"},
	{37, "SEG", "Segundo"},
	{38, "TANQUE", "Tanque"},
	{39, "TONE", "Tonelada"},
	{40, "TUB", "Tubo"},
	{41, "YD", "Yarda"},
	{42, "YD2", "Yarda Cuadrada"},
	{43, "UND", "Unidad"},
	{44, "EA", "Elemento"},
	{45, "MILLAR", "Millar"},
	{46, "SAC", "Saco"},
	{47, "LAT", "Lata"},
	{48, "DIS", "Display"},
	{49, "BID", "Bidón"},
	{50, "RAC", "Ración"},
	{51, "Q", "Quintal"},
	{52, "GRT", "Toneladas de registro bruto"},
	{53, "P2", "Pie cuadrado"},
	{54, "PAX", "Pasajero"},
	{55, "PULG", "Pulgadas"},
	{56, "STAY", "Parqueo barcos en muelle"},
}

var unitMeasureIndex = func() map[int64]UnitMeasure {
	idx := make(map[int64]UnitMeasure, len(unitMeasures))
	for _, u := range unitMeasures {
		idx[u.Code] = u
	}
	return idx
}()

// UnitMeasures returns the unit of measure table in code order
func UnitMeasures() []UnitMeasure {
	return append([]UnitMeasure(nil), unitMeasures...)
}

// LookupUnitMeasure returns the table entry for code
func LookupUnitMeasure(code int64) (UnitMeasure, bool) {
	u, ok := unitMeasureIndex[code]
	return u, ok
}

// ValidateUnitMeasure rejects codes missing from the table
func ValidateUnitMeasure(code int64) (int64, error) {
	if _, ok := unitMeasureIndex[code]; !ok {
		return 0, model.Invalid(code, "unit_measure", "unit of measure %d is not allowed", code)
	}
	return code, nil
}

// Currencies accepted in the other currency section
var currencies = map[string]string{
	"BRL": "Real Brasileño",
	"CAD": "Dólar Canadiense",
	"CHF": "Franco Suizo",
	"CHY": "Yuan Chino",
	"XDR": "Derecho Especial de Giro",
	"DKK": "Corona Danesa",
	"EUR": "Euro",
	"GBP": "Libra Esterlina",
	"JPY": "Yen Japonés",
	"NOK": "Corona Noruega",
	"SCP": "Libra Escocesa",
	"SEK": "Corona Sueca",
	"USD": "Dólar Estadounidense",
	"VEF": "Bolívar Fuerte Venezolano",
}

// CurrencyCodes returns the accepted currency codes sorted
func CurrencyCodes() []string {
	codes := make([]string, 0, len(currencies))
	for c := range currencies {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// CurrencyName returns the display name of a currency code
func CurrencyName(code string) (string, bool) {
	name, ok := currencies[code]
	return name, ok
}

// Payment types
const (
	PaymentTypeCash   int64 = 1
	PaymentTypeCredit int64 = 2
	PaymentTypeFree   int64 = 3
)

// Enumerations used as choice sets by the document schemas
var (
	PaymentMethods      = []int64{1, 2, 3, 4, 5, 6, 7, 8}
	PaymentTypes        = []int64{PaymentTypeCash, PaymentTypeCredit, PaymentTypeFree}
	IncomeTypes         = []int64{1, 2, 3, 4, 5, 6}
	ModificationCodes   = []int64{1, 2, 3, 4, 5}
	GoodServiceCodes    = []int64{1, 2}
	RetentionIndicators = []int64{1, 2}
	AccountTypes        = []string{"CT", "AH", "OT"}
	AdjustmentTypes     = []string{"D", "R"}
	ValueTypes          = []string{"%", "$"}
)

// Names of the payment methods, by code
var PaymentMethodNames = map[int64]string{
	1: "Efectivo",
	2: "Cheque/Transferencia/Depósito",
	3: "Tarjeta de Débito/Crédito",
	4: "Venta a Crédito",
	5: "Bonos o Certificados de regalo",
	6: "Permuta",
	7: "Nota de crédito",
	8: "Otras Formas de pago",
}

// ElectronicTypeCodes returns the e-CF type codes as integers
func ElectronicTypeCodes() []int64 {
	types := model.DocumentTypes()
	out := make([]int64, len(types))
	for i, t := range types {
		out[i] = int64(t)
	}
	return out
}

// CatalogEntry is one row of a DGII table as served to clients
type CatalogEntry struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	// Parent is the province of a municipality
	Parent string `json:"parent,omitempty"`
	// Rate is the ITBIS percentage of a billing indicator
	Rate *int64 `json:"rate,omitempty"`
}

var catalogs = map[string]func() []CatalogEntry{
	"billing-indicators": billingCatalog,
	"currencies":         currencyCatalog,
	"document-types":     documentTypeCatalog,
	"municipalities":     municipalityCatalog,
	"payment-methods":    paymentMethodCatalog,
	"provinces":          provinceCatalog,
	"unit-measures":      unitMeasureCatalog,
}

// CatalogNames lists the tables Catalog serves, sorted
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for n := range catalogs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Catalog returns a DGII table by name
func Catalog(name string) ([]CatalogEntry, error) {
	build, ok := catalogs[name]
	if !ok {
		return nil, model.Invalid(name, "choice", "unknown catalog %q", name)
	}
	return build(), nil
}

func billingCatalog() []CatalogEntry {
	names := map[int64]string{
		BillingNotBillable: "No facturable",
		BillingRate1:       "ITBIS 1 (18%)",
		BillingRate2:       "ITBIS 2 (16%)",
		BillingRate3:       "ITBIS 3 (0%)",
		BillingExempt:      "Exento",
	}
	out := make([]CatalogEntry, 0, len(names))
	for code := BillingNotBillable; code <= BillingExempt; code++ {
		rate := BillingRates[code]
		out = append(out, CatalogEntry{Code: strconv.FormatInt(code, 10), Name: names[code], Rate: &rate})
	}
	return out
}

func currencyCatalog() []CatalogEntry {
	codes := CurrencyCodes()
	out := make([]CatalogEntry, len(codes))
	for i, c := range codes {
		out[i] = CatalogEntry{Code: c, Name: currencies[c]}
	}
	return out
}

func documentTypeCatalog() []CatalogEntry {
	types := model.DocumentTypes()
	out := make([]CatalogEntry, len(types))
	for i, t := range types {
		out[i] = CatalogEntry{Code: t.Code(), Name: t.Description()}
	}
	return out
}

func paymentMethodCatalog() []CatalogEntry {
	out := make([]CatalogEntry, len(PaymentMethods))
	for i, m := range PaymentMethods {
		out[i] = CatalogEntry{Code: strconv.FormatInt(m, 10), Name: PaymentMethodNames[m]}
	}
	return out
}

func provinceCatalog() []CatalogEntry {
	provinces := Provinces()
	out := make([]CatalogEntry, len(provinces))
	for i, p := range provinces {
		out[i] = CatalogEntry{Code: p.Code, Name: p.Name}
	}
	return out
}

func municipalityCatalog() []CatalogEntry {
	var out []CatalogEntry
	for _, p := range Provinces() {
		for code, name := range p.Municipalities {
			out = append(out, CatalogEntry{Code: code, Name: name, Parent: p.Code})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func unitMeasureCatalog() []CatalogEntry {
	out := make([]CatalogEntry, len(unitMeasures))
	for i, u := range unitMeasures {
		out[i] = CatalogEntry{Code: strconv.FormatInt(u.Code, 10), Name: u.Name, Abbreviation: u.Abbreviation}
	}
	return out
}
