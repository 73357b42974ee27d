package ecf

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// Kind names the top level document schemas
type Kind string

// Document kinds
const (
	KindInvoice      Kind = "invoice"
	KindCreditNote   Kind = "credit-note"
	KindCancellation Kind = "cancellation"
)

// Kinds lists the supported document kinds
func Kinds() []Kind {
	return []Kind{KindInvoice, KindCreditNote, KindCancellation}
}

// ParseKind parses a kind name; "creditnote" and "credit_note" are accepted
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invoice":
		return KindInvoice, nil
	case "credit-note", "creditnote", "credit_note":
		return KindCreditNote, nil
	case "cancellation":
		return KindCancellation, nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

// Schema returns the top level schema of the kind
func (k Kind) Schema() *form.Schema {
	switch k {
	case KindInvoice:
		return InvoiceSchema
	case KindCreditNote:
		return CreditNoteSchema
	case KindCancellation:
		return CancellationSchema
	}
	return nil
}

// Document is a validated top level document ready to be submitted
type Document interface {
	Kind() Kind
	// Type is the e-CF type, zero for cancellations
	Type() model.DocumentType
	// Number is the eNCF, empty for cancellations
	Number() string
	Serialize(opts ...form.SerializeOption) (form.Data, error)
	JSON(opts ...form.SerializeOption) ([]byte, error)
}

// Invoice is a validated electronic invoice
type Invoice struct {
	*form.Form
}

// NewInvoice validates in against InvoiceSchema
func NewInvoice(in form.Values) (*Invoice, error) {
	f, err := InvoiceSchema.New(in)
	if err != nil {
		return nil, err
	}
	return &Invoice{Form: f}, nil
}

func (d *Invoice) Kind() Kind { return KindInvoice }

func (d *Invoice) Number() string {
	return d.Form.Form("idDoc").String("encf")
}

func (d *Invoice) Type() model.DocumentType {
	t, _ := dgii.DocumentTypeOf(d.Number())
	return t
}

// CompanyID returns the gateway company the document is issued for
func (d *Invoice) CompanyID() string {
	return d.String("companyId")
}

// CreditNote is a validated e-CF 34
type CreditNote struct {
	Invoice
}

// NewCreditNote validates in against CreditNoteSchema
func NewCreditNote(in form.Values) (*CreditNote, error) {
	f, err := CreditNoteSchema.New(in)
	if err != nil {
		return nil, err
	}
	return &CreditNote{Invoice{Form: f}}, nil
}

func (d *CreditNote) Kind() Kind { return KindCreditNote }

// Cancellation is a validated batch of voided NCF ranges
type Cancellation struct {
	*form.Form
}

// NewCancellation validates in against CancellationSchema
func NewCancellation(in form.Values) (*Cancellation, error) {
	f, err := CancellationSchema.New(in)
	if err != nil {
		return nil, err
	}
	return &Cancellation{Form: f}, nil
}

func (d *Cancellation) Kind() Kind               { return KindCancellation }
func (d *Cancellation) Type() model.DocumentType { return 0 }
func (d *Cancellation) Number() string           { return "" }

// Quantity is the declared number of voided e-NCF
func (d *Cancellation) Quantity() int64 {
	return d.Form.Form("header").Int("cancelledEncfQuantity")
}

// Ranges lists every range of every item
func (d *Cancellation) Ranges() []Range {
	var out []Range
	for _, item := range d.Forms("cancellations") {
		for _, r := range item.Forms("rangeCancelledEnfc") {
			out = append(out, Range{From: r.String("encfFrom"), Until: r.String("encfUntil")})
		}
	}
	return out
}

// Wrap types a form built from one of the top level schemas
func Wrap(f *form.Form) (Document, error) {
	switch {
	case f.Schema().Is(CreditNoteSchema):
		return &CreditNote{Invoice{Form: f}}, nil
	case f.Schema().Is(InvoiceSchema):
		return &Invoice{Form: f}, nil
	case f.Schema().Is(CancellationSchema):
		return &Cancellation{Form: f}, nil
	}
	return nil, fmt.Errorf("form %s is not a document", f.Name())
}

// Decode validates a raw JSON document of the given kind. Keys may be DGII
// or attribute names.
func Decode(kind Kind, data []byte) (Document, error) {
	schema := kind.Schema()
	if schema == nil {
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
	f, err := schema.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Wrap(f)
}

// DecodeAuto detects the kind of data and decodes it
func DecodeAuto(data []byte) (Document, error) {
	kind, err := Detect(data)
	if err != nil {
		return nil, err
	}
	return Decode(kind, data)
}

// Detect guesses the kind of a raw JSON document: a cancellation header
// means a cancellation, otherwise the eNCF type decides between credit
// note and invoice.
func Detect(data []byte) (Kind, error) {
	if !gjson.ValidBytes(data) {
		return "", model.NewParseError("json", "", "invalid document", nil)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return "", model.NewParseError("json", "", "expected an object", nil)
	}
	if doc.Get("Encabezado").Exists() || doc.Get("header").Exists() {
		return KindCancellation, nil
	}

	encf := firstOf(doc, "IdDoc.eNCF", "idDoc.encf", "IdDoc.encf", "idDoc.eNCF")
	if !encf.Exists() {
		return "", model.NewParseError("json", "IdDoc.eNCF", "cannot detect document kind", nil)
	}
	docType, err := dgii.DocumentTypeOf(encf.String())
	if err != nil {
		return "", model.NewParseError("json", "IdDoc.eNCF", "cannot detect document kind", err)
	}
	if docType == model.TypeCreditNote {
		return KindCreditNote, nil
	}
	return KindInvoice, nil
}

func firstOf(doc gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := doc.Get(p); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
