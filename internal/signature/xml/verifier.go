package xml

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"time"

	dsig "github.com/russellhaering/goxmldsig"

	"github.com/rezonia/alanube-ecf/internal/signature"
	"github.com/rezonia/alanube-ecf/internal/signature/trust"
)

// Verifier checks the enveloped XMLDSig signature of DGII documents
type Verifier struct {
	trustStore *trust.TrustStore
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Verifier
type Option func(*Verifier)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithClock sets the time used when the document carries no signature time
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		if now != nil {
			v.now = now
		}
	}
}

// NewVerifier creates a verifier backed by ts
func NewVerifier(ts *trust.TrustStore, opts ...Option) *Verifier {
	v := &Verifier{
		trustStore: ts,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

var _ signature.Verifier = (*Verifier)(nil)

// Verify checks the signature value, the signing certificate's chain at
// the signature time and its revocation status. The error is non-nil when
// the document cannot be verified at all: malformed XML, an unknown root
// or a missing signature.
func (v *Verifier) Verify(ctx context.Context, data []byte) (*signature.VerificationResult, error) {
	result := signature.NewVerificationResult()

	ext, err := Extract(data)
	if ext == nil {
		result.AddError(err.Error())
		return result, err
	}
	result.Document = ext.Info
	result.SignedAt = ext.SignedAt
	if err != nil {
		result.AddError(err.Error())
		return result, err
	}
	result.SignatureFound = true

	cert, intermediates, err := certificates(ext)
	if err != nil {
		result.AddError(err.Error())
		result.ComputeValidity()
		return result, nil
	}
	result.SetSigner(cert)
	encf := ext.Info.Encf
	if rnc := ext.Info.IssuerRNC; rnc != "" && !result.Signer.Identifies(rnc) {
		result.AddWarning(fmt.Sprintf("signer %s is not identified by issuer RNC %s", result.Signer.Name, rnc))
	}

	at := v.now()
	if ext.SignedAt != nil {
		at = *ext.SignedAt
	} else {
		result.AddWarning("document has no signature time, certificate checked against current time")
	}

	switch {
	case at.Before(cert.NotBefore):
		result.AddError(signature.ErrCertNotYetValid(cert.Subject.CommonName).For(encf).Error())
	case at.After(cert.NotAfter):
		result.AddError(signature.ErrCertExpired(cert.Subject.CommonName).For(encf).Error())
	}

	vctx := dsig.NewDefaultValidationContext(&dsig.MemoryX509CertificateStore{
		Roots: []*x509.Certificate{cert},
	})
	// validity is reported above; this only checks digests and the signature value
	vctx.Clock = dsig.NewFakeClockAt(clamp(at, cert))
	if _, err := vctx.Validate(ext.Root); err != nil {
		result.AddError(signature.ErrInvalidSignature(err).For(encf).Error())
	} else {
		result.SignatureValid = true
	}

	chain, err := v.trustStore.VerifyChain(cert, intermediates, at)
	if err != nil {
		result.AddError(signature.ErrChainInvalid(err).For(encf).Error())
	} else {
		result.CertChain = chain
		result.CertChainValid = true
		v.checkRevocation(ctx, result, cert, chain, at, encf)
	}

	result.ComputeValidity()
	v.logger.Debug("verified e-CF signature",
		"root", ext.Info.Root,
		"encf", ext.Info.Encf,
		"valid", result.Valid,
		"errors", len(result.Errors))
	return result, nil
}

// checkRevocation judges the OCSP answer at the signature time: a
// certificate revoked after the document was signed still vouches for it.
func (v *Verifier) checkRevocation(ctx context.Context, result *signature.VerificationResult, cert *x509.Certificate, chain []*x509.Certificate, at time.Time, encf string) {
	if len(chain) < 2 {
		result.NotRevoked = true
		result.AddWarning("revocation check skipped: signing certificate is itself trusted")
		return
	}

	rev, err := v.trustStore.CheckRevocation(ctx, cert, chain[1])
	if rev != nil {
		result.Revocation = &signature.RevocationInfo{Status: rev.Status.String(), Responder: rev.Responder}
		if rev.Status == trust.StatusRevoked {
			revokedAt := rev.RevokedAt
			result.Revocation.RevokedAt = &revokedAt
		}
	}
	switch {
	case errors.Is(err, trust.ErrNoResponder):
		result.NotRevoked = true
		result.AddWarning("revocation not checked: certificate names no OCSP responder")
	case err != nil && v.trustStore.IsSoftFail():
		result.AddWarning(signature.ErrOCSPUnavailable(err).For(encf).Error())
		result.NotRevoked = true
	case err != nil:
		result.AddError(signature.ErrOCSPUnavailable(err).For(encf).Error())
	case rev.RevokedBy(at):
		result.AddError(signature.ErrCertRevoked(cert.Subject.CommonName).For(encf).Error())
	case rev.Status == trust.StatusRevoked:
		result.NotRevoked = true
		result.AddWarning(fmt.Sprintf("certificate revoked on %s, after the document was signed", rev.RevokedAt.Format(time.RFC3339)))
	default:
		result.NotRevoked = true
	}
}

func certificates(ext *Extraction) (*x509.Certificate, []*x509.Certificate, error) {
	ders, err := Certificates(ext.SignatureElement)
	if err != nil {
		return nil, nil, err
	}

	certs := make([]*x509.Certificate, 0, len(ders))
	for _, der := range ders {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, nil, signature.ErrNoCertificate(fmt.Errorf("failed to parse certificate: %w", err))
		}
		certs = append(certs, cert)
	}
	return certs[0], certs[1:], nil
}

// clamp moves t into the certificate's validity window
func clamp(t time.Time, cert *x509.Certificate) time.Time {
	if t.Before(cert.NotBefore) {
		return cert.NotBefore
	}
	if t.After(cert.NotAfter) {
		return cert.NotAfter
	}
	return t
}
