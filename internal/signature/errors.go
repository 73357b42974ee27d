package signature

import (
	"fmt"
	"strings"
)

// Error codes for e-CF signature verification
const (
	ErrCodeMalformed        = "MALFORMED_XML"
	ErrCodeUnknownDocument  = "UNKNOWN_DOCUMENT"
	ErrCodeNoSignature      = "NO_SIGNATURE"
	ErrCodeNoCertificate    = "NO_CERTIFICATE"
	ErrCodeInvalidSignature = "INVALID_SIGNATURE"
	ErrCodeCertExpired      = "CERT_EXPIRED"
	ErrCodeCertNotYetValid  = "CERT_NOT_YET_VALID"
	ErrCodeCertRevoked      = "CERT_REVOKED"
	ErrCodeChainInvalid     = "CHAIN_INVALID"
	ErrCodeOCSPUnavailable  = "OCSP_UNAVAILABLE"
)

// codeSpec is the part of the signature an error code is about and its
// message template
type codeSpec struct {
	field  string
	format string
}

var codes = map[string]codeSpec{
	ErrCodeMalformed:        {"", "document is not well-formed XML"},
	ErrCodeUnknownDocument:  {"", "unknown document root: %s"},
	ErrCodeNoSignature:      {"", "no signature found in document"},
	ErrCodeNoCertificate:    {"certificate", "no signing certificate in KeyInfo"},
	ErrCodeInvalidSignature: {"signature", "signature validation failed"},
	ErrCodeCertExpired:      {"certificate", "certificate expired: %s"},
	ErrCodeCertNotYetValid:  {"certificate", "certificate not yet valid: %s"},
	ErrCodeCertRevoked:      {"certificate", "certificate revoked at signing time: %s"},
	ErrCodeChainInvalid:     {"chain", "certificate chain validation failed"},
	ErrCodeOCSPUnavailable:  {"ocsp", "OCSP check unavailable"},
}

// SignatureError is a failed check of a signed DGII document. Encf names
// the document when it could be read.
type SignatureError struct {
	Code    string
	Field   string
	Message string
	Encf    string
	Cause   error
}

func (e *SignatureError) Error() string {
	var b strings.Builder
	b.WriteString("[" + e.Code + "] ")
	if e.Encf != "" {
		b.WriteString(e.Encf + " ")
	}
	if e.Field != "" {
		b.WriteString(e.Field + ": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, " (%v)", e.Cause)
	}
	return b.String()
}

func (e *SignatureError) Unwrap() error {
	return e.Cause
}

// Is matches another *SignatureError with the same code
func (e *SignatureError) Is(target error) bool {
	t, ok := target.(*SignatureError)
	return ok && t.Code == e.Code
}

// For returns a copy attributed to the document with the given e-NCF
func (e *SignatureError) For(encf string) *SignatureError {
	c := *e
	c.Encf = encf
	return &c
}

// NewSignatureError creates an error with a free-form message
func NewSignatureError(code, field, message string, cause error) *SignatureError {
	return &SignatureError{
		Code:    code,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

func newCoded(code string, cause error, args ...any) *SignatureError {
	spec := codes[code]
	msg := spec.format
	if len(args) > 0 {
		msg = fmt.Sprintf(spec.format, args...)
	}
	return NewSignatureError(code, spec.field, msg, cause)
}

// ErrMalformed is returned when the input is not well-formed XML
func ErrMalformed(cause error) *SignatureError {
	return newCoded(ErrCodeMalformed, cause)
}

// ErrUnknownDocument is returned for XML whose root is not a DGII document
func ErrUnknownDocument(root string) *SignatureError {
	return newCoded(ErrCodeUnknownDocument, nil, root)
}

func ErrNoSignature() *SignatureError {
	return newCoded(ErrCodeNoSignature, nil)
}

// ErrNoCertificate is returned when KeyInfo carries no X509 certificate
func ErrNoCertificate(cause error) *SignatureError {
	return newCoded(ErrCodeNoCertificate, cause)
}

func ErrInvalidSignature(cause error) *SignatureError {
	return newCoded(ErrCodeInvalidSignature, cause)
}

// ErrCertExpired means the certificate had expired at FechaHoraFirma
func ErrCertExpired(subject string) *SignatureError {
	return newCoded(ErrCodeCertExpired, nil, subject)
}

// ErrCertNotYetValid means FechaHoraFirma precedes the certificate
func ErrCertNotYetValid(subject string) *SignatureError {
	return newCoded(ErrCodeCertNotYetValid, nil, subject)
}

// ErrCertRevoked means the certificate authority revoked the certificate
// before the document was signed
func ErrCertRevoked(subject string) *SignatureError {
	return newCoded(ErrCodeCertRevoked, nil, subject)
}

func ErrChainInvalid(cause error) *SignatureError {
	return newCoded(ErrCodeChainInvalid, cause)
}

func ErrOCSPUnavailable(cause error) *SignatureError {
	return newCoded(ErrCodeOCSPUnavailable, cause)
}
