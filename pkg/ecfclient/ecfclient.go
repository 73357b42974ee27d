// Package ecfclient provides the public API for issuing Dominican
// electronic fiscal documents (e-CF) through the Alanube gateway.
//
// Documents are validated when they are built; a document that exists is
// ready to be submitted.
//
// Example usage:
//
//	client, err := ecfclient.NewClient(token, ecfclient.WithSandbox(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := ecfclient.DecodeDocument(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := ecfclient.NewSubmitter(client).Submit(ctx, doc)
package ecfclient

import (
	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/journal"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// Re-export document types
type (
	Document     = ecf.Document
	Invoice      = ecf.Invoice
	CreditNote   = ecf.CreditNote
	Cancellation = ecf.Cancellation
	Range        = ecf.Range
	Kind         = ecf.Kind
	Values       = form.Values
	Data         = form.Data
	DocumentType = model.DocumentType
	Status       = model.Status
	LegalStatus  = model.LegalStatus
	Environment  = model.Environment
)

// Re-export gateway types
type (
	Client           = alanube.Client
	ClientOption     = alanube.ClientOption
	DocumentResponse = alanube.DocumentResponse
	Endpoint         = alanube.Endpoint
)

// Re-export journal types
type (
	Entry = journal.Entry
	Store = journal.Store
)

// Re-export error types
type (
	ValidationError       = model.ValidationError
	ParseError            = model.ParseError
	APIError              = alanube.APIError
	UnexpectedStatusError = alanube.UnexpectedStatusError
)

// Re-export document kinds
const (
	KindInvoice      = ecf.KindInvoice
	KindCreditNote   = ecf.KindCreditNote
	KindCancellation = ecf.KindCancellation
)

// Re-export e-CF types
const (
	TypeFiscalInvoice        = model.TypeFiscalInvoice
	TypeInvoice              = model.TypeInvoice
	TypeDebitNote            = model.TypeDebitNote
	TypeCreditNote           = model.TypeCreditNote
	TypePurchase             = model.TypePurchase
	TypeMinorExpense         = model.TypeMinorExpense
	TypeSpecialRegime        = model.TypeSpecialRegime
	TypeGubernamental        = model.TypeGubernamental
	TypeExportSupport        = model.TypeExportSupport
	TypePaymentAbroadSupport = model.TypePaymentAbroadSupport
)

// Re-export gateway error kinds, for errors.Is
var (
	ErrInvalidRequest   = alanube.ErrInvalidRequest
	ErrNotFound         = alanube.ErrNotFound
	ErrServer           = alanube.ErrServer
	ErrAPI              = alanube.ErrAPI
	ErrUnexpectedStatus = alanube.ErrUnexpectedStatus
)

// NewClient creates a gateway client
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	return alanube.NewClient(token, opts...)
}

// WithSandbox points the client at the sandbox gateway
func WithSandbox(sandbox bool) ClientOption {
	return alanube.WithSandbox(sandbox)
}

// WithBaseURL overrides the gateway base URL
func WithBaseURL(url string) ClientOption {
	return alanube.WithBaseURL(url)
}

// NewInvoice validates an invoice of any e-CF type but 34
func NewInvoice(in Values) (*Invoice, error) {
	return ecf.NewInvoice(in)
}

// NewCreditNote validates an e-CF 34
func NewCreditNote(in Values) (*CreditNote, error) {
	return ecf.NewCreditNote(in)
}

// NewCancellation validates a cancellation
func NewCancellation(in Values) (*Cancellation, error) {
	return ecf.NewCancellation(in)
}

// NewSimpleCancellation builds a cancellation of whole NCF ranges
func NewSimpleCancellation(rnc string, ranges ...Range) (*Cancellation, error) {
	return ecf.NewSimpleCancellation(rnc, ranges...)
}

// Decode validates a raw JSON document of the given kind
func Decode(kind Kind, data []byte) (Document, error) {
	return ecf.Decode(kind, data)
}

// DecodeDocument detects the kind of a raw JSON document and validates it
func DecodeDocument(data []byte) (Document, error) {
	return ecf.DecodeAuto(data)
}
