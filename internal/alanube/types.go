package alanube

import (
	"github.com/tidwall/gjson"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// DGIIResponse is one message of DGII's answer
type DGIIResponse struct {
	Value string `json:"valor"`
	Code  int    `json:"codigo"`
}

// GovernmentResponse is DGII's answer relayed by the gateway
type GovernmentResponse struct {
	Value []DGIIResponse `json:"value"`
	Code  int            `json:"code"`
}

// DocumentResponse is the envelope returned for a submitted document or
// cancellation.
type DocumentResponse struct {
	ID                    string              `json:"id"`
	StampDate             string              `json:"stampDate"`
	Status                model.Status        `json:"status"`
	LegalStatus           model.LegalStatus   `json:"legalStatus,omitempty"`
	CompanyIdentification string              `json:"companyIdentification"`
	TrackID               string              `json:"trackId,omitempty"`
	DocumentNumber        string              `json:"documentNumber,omitempty"`
	Encf                  string              `json:"encf,omitempty"`
	SequenceConsumed      bool                `json:"sequenceConsumed,omitempty"`
	SignatureDate         string              `json:"signatureDate,omitempty"`
	SecurityCode          string              `json:"securityCode,omitempty"`
	DocumentStampURL      string              `json:"documentStampUrl,omitempty"`
	XML                   string              `json:"xml,omitempty"`
	PDF                   string              `json:"pdf,omitempty"`
	GovernmentResponse    *GovernmentResponse `json:"governmentResponse,omitempty"`
}

// Number returns the e-NCF of the document, whichever field carried it
func (r *DocumentResponse) Number() string {
	if r.DocumentNumber != "" {
		return r.DocumentNumber
	}
	return r.Encf
}

// Accepted reports whether DGII accepted the document
func (r *DocumentResponse) Accepted() bool {
	return r.LegalStatus.Accepted()
}

// Done reports whether the gateway finished processing
func (r *DocumentResponse) Done() bool {
	return r.Status.Terminal()
}

// Metadata is the paging block of list responses
type Metadata struct {
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// DocumentList is a page of issued documents
type DocumentList struct {
	Metadata  Metadata           `json:"metadata"`
	Documents []DocumentResponse `json:"documents"`
}

// ReceivedDocument is a document another taxpayer issued to the company
type ReceivedDocument struct {
	ID                   string `json:"id"`
	IssuerIdentification string `json:"issuerIdentification"`
	BuyerIdentification  string `json:"buyerIdentification"`
	DocumentType         string `json:"documentType"`
	DocumentNumber       string `json:"documentNumber"`
	DocumentStampDate    string `json:"documentStampDate"`
	SignatureDateTime    string `json:"signatureDateTime"`
	TotalAmount          string `json:"totalAmount"`
	Status               string `json:"status"`
	ErrorMsg             string `json:"errorMsg,omitempty"`
	CommercialResponse   string `json:"commercialResponse,omitempty"`
	Timestamp            string `json:"timestamp"`
}

// ReceivedDocumentList is a page of received documents
type ReceivedDocumentList struct {
	Metadata  Metadata           `json:"metadata"`
	Documents []ReceivedDocument `json:"documents"`
}

// Payload is a response body the client passes through without a fixed
// shape: company records, provider info, directory and DGII service status.
type Payload []byte

// Get reads a gjson path from the payload
func (p Payload) Get(path string) gjson.Result {
	return gjson.GetBytes(p, path)
}

// MarshalJSON embeds the payload verbatim
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}
