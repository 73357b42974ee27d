package model

import (
	"fmt"
	"sort"
	"strconv"
)

// DocumentType is the two-digit e-CF type code carried in an NCF
type DocumentType int

// Electronic fiscal document types
const (
	TypeFiscalInvoice        DocumentType = 31
	TypeInvoice              DocumentType = 32
	TypeDebitNote            DocumentType = 33
	TypeCreditNote           DocumentType = 34
	TypePurchase             DocumentType = 41
	TypeMinorExpense         DocumentType = 43
	TypeSpecialRegime        DocumentType = 44
	TypeGubernamental        DocumentType = 45
	TypeExportSupport        DocumentType = 46
	TypePaymentAbroadSupport DocumentType = 47
)

var documentTypeNames = map[DocumentType]string{
	TypeFiscalInvoice:        "fiscalInvoice",
	TypeInvoice:              "invoice",
	TypeDebitNote:            "debitNote",
	TypeCreditNote:           "creditNote",
	TypePurchase:             "purchase",
	TypeMinorExpense:         "minorExpense",
	TypeSpecialRegime:        "specialRegime",
	TypeGubernamental:        "gubernamental",
	TypeExportSupport:        "exportSupport",
	TypePaymentAbroadSupport: "paymentAbroadSupport",
}

var documentTypeDescriptions = map[DocumentType]string{
	TypeFiscalInvoice:        "Factura de Crédito Fiscal Electrónica",
	TypeInvoice:              "Factura de Consumo Electrónica",
	TypeDebitNote:            "Nota de Débito Electrónica",
	TypeCreditNote:           "Nota de Crédito Electrónica",
	TypePurchase:             "Compras Electrónico",
	TypeMinorExpense:         "Gastos Menores Electrónico",
	TypeSpecialRegime:        "Regímenes Especiales Electrónico",
	TypeGubernamental:        "Gubernamental Electrónico",
	TypeExportSupport:        "Comprobante de Exportaciones Electrónico",
	TypePaymentAbroadSupport: "Comprobante para Pagos al Exterior Electrónico",
}

// ParseDocumentType parses "31" or 31 style codes
func ParseDocumentType(s string) (DocumentType, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid document type %q: %w", s, err)
	}
	t := DocumentType(n)
	if !t.Valid() {
		return 0, fmt.Errorf("unknown document type %d", n)
	}
	return t, nil
}

// Valid reports whether t is one of the electronic document types
func (t DocumentType) Valid() bool {
	_, ok := documentTypeNames[t]
	return ok
}

// Name returns the gateway's name for the type, e.g. "fiscalInvoice"
func (t DocumentType) Name() string {
	return documentTypeNames[t]
}

// Description returns the DGII name of the type
func (t DocumentType) Description() string {
	return documentTypeDescriptions[t]
}

// Code returns the two-digit code as used inside an NCF
func (t DocumentType) Code() string {
	return fmt.Sprintf("%02d", int(t))
}

func (t DocumentType) String() string {
	if name := t.Name(); name != "" {
		return fmt.Sprintf("%d (%s)", int(t), name)
	}
	return strconv.Itoa(int(t))
}

// DocumentTypes returns all electronic document types in code order
func DocumentTypes() []DocumentType {
	types := make([]DocumentType, 0, len(documentTypeNames))
	for t := range documentTypeNames {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// RequiresBuyerRNC reports whether the buyer must be identified by RNC
func (t DocumentType) RequiresBuyerRNC() bool {
	switch t {
	case TypeFiscalInvoice, TypePurchase, TypeGubernamental:
		return true
	}
	return false
}

// TaxExempt reports whether the type may not carry ITBIS amounts
func (t DocumentType) TaxExempt() bool {
	switch t {
	case TypeMinorExpense, TypeSpecialRegime, TypePaymentAbroadSupport:
		return true
	}
	return false
}
