package signature_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/signature"
)

func TestVerificationResult_ComputeValidity(t *testing.T) {
	complete := func() *signature.VerificationResult {
		r := signature.NewVerificationResult()
		r.SignatureFound = true
		r.SignatureValid = true
		r.CertChainValid = true
		r.NotRevoked = true
		return r
	}

	r := complete()
	r.AddWarning("revocation check skipped")
	r.ComputeValidity()
	assert.True(t, r.Valid)

	tests := []struct {
		name   string
		mutate func(*signature.VerificationResult)
	}{
		{"no signature", func(r *signature.VerificationResult) { r.SignatureFound = false }},
		{"bad signature", func(r *signature.VerificationResult) { r.SignatureValid = false }},
		{"bad chain", func(r *signature.VerificationResult) { r.CertChainValid = false }},
		{"revoked", func(r *signature.VerificationResult) { r.NotRevoked = false }},
		{"error recorded", func(r *signature.VerificationResult) { r.AddError("certificate expired") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := complete()
			tt.mutate(r)
			r.ComputeValidity()
			assert.False(t, r.Valid)
		})
	}
}

func TestVerificationResult_SetSigner(t *testing.T) {
	cert := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject: pkix.Name{
			CommonName:   "REZONIA SRL",
			Organization: []string{"Rezonia"},
			SerialNumber: "131793916",
		},
		Issuer:    pkix.Name{Organization: []string{"Avansi"}},
		NotBefore: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	r := signature.NewVerificationResult()
	r.SetSigner(nil)
	assert.Nil(t, r.Signer)

	r.SetSigner(cert)
	require.NotNil(t, r.Signer)
	assert.Equal(t, "REZONIA SRL", r.Signer.Name)
	assert.Equal(t, "Rezonia", r.Signer.Organization)
	assert.Equal(t, "131793916", r.Signer.SubjectSerial)
	assert.Equal(t, "131793916", r.Signer.Identification)
	assert.Equal(t, "4242", r.Signer.SerialNumber)
	assert.Equal(t, "Avansi", r.Signer.Issuer)
	assert.True(t, r.Signer.Identifies("131793916"))
	assert.False(t, r.Signer.Identifies("101010101"))
}

func TestSignerIdentification(t *testing.T) {
	tests := []struct {
		serial   string
		expected string
	}{
		{"IDCDO-00112345678", "00112345678"},
		{"RNC 131-79391-6", "131793916"},
		{"131793916", "131793916"},
		{"PASSPORT X1234", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.serial, func(t *testing.T) {
			r := signature.NewVerificationResult()
			r.SetSigner(&x509.Certificate{
				SerialNumber: big.NewInt(1),
				Subject:      pkix.Name{CommonName: "FIRMANTE", SerialNumber: tt.serial},
			})
			assert.Equal(t, tt.expected, r.Signer.Identification)
			assert.False(t, r.Signer.Identifies(""))
		})
	}
}

func TestVerificationResult_JSON(t *testing.T) {
	signedAt := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	r := signature.NewVerificationResult()
	r.SignatureFound = true
	r.SignedAt = &signedAt
	r.Document = signature.Document{Root: "ECF", Encf: "E310000000001", IssuerRNC: "131793916", DocumentType: "31"}
	r.CertChain = []*x509.Certificate{{}}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"valid": false,
		"signature_found": true,
		"signature_valid": false,
		"cert_chain_valid": false,
		"not_revoked": false,
		"document": {"root": "ECF", "encf": "E310000000001", "issuer_rnc": "131793916", "document_type": "31"},
		"signed_at": "2025-01-15T10:30:00Z"
	}`, string(data))
}

func TestSignatureError(t *testing.T) {
	cause := errors.New("digest mismatch")
	err := signature.ErrInvalidSignature(cause)

	assert.Equal(t, "[INVALID_SIGNATURE] signature: signature validation failed (digest mismatch)", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("verify: %w", err)
	assert.ErrorIs(t, wrapped, signature.ErrInvalidSignature(nil))
	assert.NotErrorIs(t, wrapped, signature.ErrNoSignature())

	assert.Equal(t, "[NO_SIGNATURE] no signature found in document", signature.ErrNoSignature().Error())
	assert.Equal(t, "[UNKNOWN_DOCUMENT] unknown document root: Invoice", signature.ErrUnknownDocument("Invoice").Error())

	expired := signature.ErrCertExpired("REZONIA SRL")
	forDoc := expired.For("E310000000001")
	assert.Equal(t, "[CERT_EXPIRED] E310000000001 certificate: certificate expired: REZONIA SRL", forDoc.Error())
	assert.Empty(t, expired.Encf, "For copies")
	assert.ErrorIs(t, forDoc, signature.ErrCertExpired(""))
}
