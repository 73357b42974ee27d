package alanube

import (
	"fmt"
	"net/url"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// Base URLs of the Dominican API
const (
	DefaultBaseURL = "https://api.alanube.co/dom/v1"
	SandboxBaseURL = "https://sandbox.alanube.co/dom/v1"
)

// Endpoint is a document resource path segment
type Endpoint string

// Document resources
const (
	EndpointFiscalInvoices        Endpoint = "fiscal-invoices"
	EndpointInvoices              Endpoint = "invoices"
	EndpointDebitNotes            Endpoint = "debit-notes"
	EndpointCreditNotes           Endpoint = "credit-notes"
	EndpointPurchases             Endpoint = "purchases"
	EndpointMinorExpenses         Endpoint = "minor-expenses"
	EndpointSpecialRegimes        Endpoint = "special-regimes"
	EndpointGubernamentals        Endpoint = "gubernamentals"
	EndpointExportSupports        Endpoint = "export-supports"
	EndpointPaymentAbroadSupports Endpoint = "payment-abroad-supports"
	EndpointCancellations         Endpoint = "cancellations"
)

const (
	pathCompany           = "company"
	pathDGIIStatus        = "check-dgii-status"
	pathProviderInfo      = "provider-info"
	pathDirectory         = "check-directory"
	pathReceivedDocuments = "received-documents"
)

var documentEndpoints = map[model.DocumentType]Endpoint{
	model.TypeFiscalInvoice:        EndpointFiscalInvoices,
	model.TypeInvoice:              EndpointInvoices,
	model.TypeDebitNote:            EndpointDebitNotes,
	model.TypeCreditNote:           EndpointCreditNotes,
	model.TypePurchase:             EndpointPurchases,
	model.TypeMinorExpense:         EndpointMinorExpenses,
	model.TypeSpecialRegime:        EndpointSpecialRegimes,
	model.TypeGubernamental:        EndpointGubernamentals,
	model.TypeExportSupport:        EndpointExportSupports,
	model.TypePaymentAbroadSupport: EndpointPaymentAbroadSupports,
}

// EndpointFor returns the resource documents of type t are sent to
func EndpointFor(t model.DocumentType) (Endpoint, error) {
	ep, ok := documentEndpoints[t]
	if !ok {
		return "", fmt.Errorf("no endpoint for document type %d", int(t))
	}
	return ep, nil
}

// ParseEndpoint accepts a resource name or an e-CF type code such as "31"
func ParseEndpoint(s string) (Endpoint, error) {
	if s == string(EndpointCancellations) {
		return EndpointCancellations, nil
	}
	for _, ep := range documentEndpoints {
		if string(ep) == s {
			return ep, nil
		}
	}
	t, err := model.ParseDocumentType(s)
	if err != nil {
		return "", fmt.Errorf("unknown endpoint %q", s)
	}
	return EndpointFor(t)
}

// statusPath is /{endpoint}/{id}, scoped to a company when one is given
func statusPath(ep Endpoint, id, companyID string) string {
	p := string(ep) + "/" + url.PathEscape(id)
	if companyID != "" {
		p += "/idCompany/" + url.PathEscape(companyID)
	}
	return p
}
