package signature

import (
	"crypto/x509"
	"strings"
	"time"
	"unicode"
)

// Document identifies the signed e-CF
type Document struct {
	// Root element name: ECF, ANECF, ACECF, ARECF or RFCE
	Root string `json:"root"`

	Encf      string `json:"encf,omitempty"`
	IssuerRNC string `json:"issuer_rnc,omitempty"`
	// DocumentType is the two digit e-CF type taken from the e-NCF
	DocumentType string `json:"document_type,omitempty"`
}

// VerificationResult is the outcome of every check run on a signed e-CF.
// Valid holds only when all of them pass and no error was recorded.
type VerificationResult struct {
	Valid bool `json:"valid"`

	SignatureFound bool `json:"signature_found"`
	SignatureValid bool `json:"signature_valid"`
	CertChainValid bool `json:"cert_chain_valid"`
	NotRevoked     bool `json:"not_revoked"`

	Document Document    `json:"document"`
	Signer   *SignerInfo `json:"signer,omitempty"`
	// SignedAt comes from FechaHoraFirma
	SignedAt   *time.Time      `json:"signed_at,omitempty"`
	Revocation *RevocationInfo `json:"revocation,omitempty"`

	CertChain []*x509.Certificate `json:"-"`

	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// SignerInfo describes the holder of the signing certificate
type SignerInfo struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	// SubjectSerial is the subject serialNumber attribute as written by the CA
	SubjectSerial string `json:"subject_serial,omitempty"`
	// Identification is the cédula or RNC found in SubjectSerial
	Identification string    `json:"identification,omitempty"`
	SerialNumber   string    `json:"serial_number"`
	Issuer         string    `json:"issuer"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidTo        time.Time `json:"valid_to"`
}

// RevocationInfo is the OCSP answer the revocation check relied on
type RevocationInfo struct {
	Status    string     `json:"status"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	Responder string     `json:"responder,omitempty"`
}

func NewVerificationResult() *VerificationResult {
	return &VerificationResult{
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}
}

func (r *VerificationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddError records a failed check; the result is no longer valid
func (r *VerificationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// SetSigner describes cert as the signer
func (r *VerificationResult) SetSigner(cert *x509.Certificate) {
	if cert == nil {
		return
	}

	r.Signer = &SignerInfo{
		Name:           cert.Subject.CommonName,
		Organization:   first(cert.Subject.Organization),
		SubjectSerial:  cert.Subject.SerialNumber,
		Identification: identification(cert.Subject.SerialNumber),
		SerialNumber:   cert.SerialNumber.String(),
		Issuer:         cert.Issuer.CommonName,
		ValidFrom:      cert.NotBefore,
		ValidTo:        cert.NotAfter,
	}
	if r.Signer.Issuer == "" {
		r.Signer.Issuer = first(cert.Issuer.Organization)
	}
}

// Identifies reports whether the signer's identification is rnc
func (s *SignerInfo) Identifies(rnc string) bool {
	return s != nil && s.Identification != "" && s.Identification == rnc
}

// ComputeValidity derives Valid from the individual checks
func (r *VerificationResult) ComputeValidity() {
	r.Valid = r.SignatureFound &&
		r.SignatureValid &&
		r.CertChainValid &&
		r.NotRevoked &&
		len(r.Errors) == 0
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// identification extracts a 9 digit RNC or 11 digit cédula from a subject
// serial such as "IDCDO-00112345678" or "RNC 131793916". Anything else
// yields "".
func identification(serial string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, serial)
	if len(digits) != 9 && len(digits) != 11 {
		return ""
	}
	return digits
}
