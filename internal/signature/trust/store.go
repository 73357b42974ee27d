// Package trust holds the certificate authorities accepted for e-CF
// signatures and checks signing certificates for revocation.
package trust

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// TrustStore manages trusted CA certificates and revocation checking
type TrustStore struct {
	roots       *x509.CertPool
	rootCerts   []*x509.Certificate
	ocsp        *OCSPChecker
	ocspTimeout time.Duration
	cacheTTL    time.Duration
	httpClient  *http.Client
	logger      *slog.Logger
	softFail    bool
}

// TrustStoreOption configures a TrustStore
type TrustStoreOption func(*TrustStore) error

// NewTrustStore creates a trust store. It starts empty: the certification
// authorities DGII accepts are loaded with WithCertsFromFile or
// WithCertsFromPEM.
func NewTrustStore(opts ...TrustStoreOption) (*TrustStore, error) {
	store := &TrustStore{
		roots:       x509.NewCertPool(),
		rootCerts:   make([]*x509.Certificate, 0),
		ocspTimeout: DefaultOCSPTimeout,
		cacheTTL:    DefaultOCSPCacheTTL,
		httpClient:  http.DefaultClient,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(store); err != nil {
			return nil, err
		}
	}
	store.ocsp = NewOCSPChecker(store.httpClient, NewRevocationCache(store.cacheTTL, nil), store.logger)
	return store, nil
}

// WithSoftFail enables soft-fail mode for OCSP checks
// When enabled, OCSP failures don't cause verification to fail
func WithSoftFail() TrustStoreOption {
	return func(s *TrustStore) error {
		s.softFail = true
		return nil
	}
}

// WithOCSPTimeout sets the timeout for OCSP requests
func WithOCSPTimeout(d time.Duration) TrustStoreOption {
	return func(s *TrustStore) error {
		s.ocspTimeout = d
		return nil
	}
}

// WithOCSPCacheTTL sets the TTL for OCSP cache entries
func WithOCSPCacheTTL(d time.Duration) TrustStoreOption {
	return func(s *TrustStore) error {
		s.cacheTTL = d
		return nil
	}
}

// WithHTTPClient sets the client used to reach OCSP responders
func WithHTTPClient(c *http.Client) TrustStoreOption {
	return func(s *TrustStore) error {
		if c != nil {
			s.httpClient = c
		}
		return nil
	}
}

// WithLogger sets the logger used for responder failures
func WithLogger(l *slog.Logger) TrustStoreOption {
	return func(s *TrustStore) error {
		if l != nil {
			s.logger = l
		}
		return nil
	}
}

// WithCertsFromFile adds CA certificates from a PEM file
func WithCertsFromFile(path string) TrustStoreOption {
	return func(s *TrustStore) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read trust store %s: %w", path, err)
		}
		if err := s.AddCertificatesFromPEM(data); err != nil {
			return fmt.Errorf("trust store %s: %w", path, err)
		}
		return nil
	}
}

// WithCertsFromPEM adds CA certificates from PEM data
func WithCertsFromPEM(data []byte) TrustStoreOption {
	return func(s *TrustStore) error {
		return s.AddCertificatesFromPEM(data)
	}
}

// AddCertificate adds a single certificate to the trust store
func (s *TrustStore) AddCertificate(cert *x509.Certificate) {
	if cert != nil {
		s.roots.AddCert(cert)
		s.rootCerts = append(s.rootCerts, cert)
	}
}

// AddCertificatesFromPEM parses and adds certificates from PEM data
func (s *TrustStore) AddCertificatesFromPEM(pemData []byte) error {
	var added int
	for {
		block, rest := pem.Decode(pemData)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return fmt.Errorf("failed to parse certificate: %w", err)
			}
			s.AddCertificate(cert)
			added++
		}
		pemData = rest
	}
	if added == 0 {
		return fmt.Errorf("no certificates found in PEM data")
	}
	return nil
}

// VerifyChain verifies the certificate chain against trusted roots at the
// given instant. A zero instant means now.
func (s *TrustStore) VerifyChain(cert *x509.Certificate, intermediates []*x509.Certificate, at time.Time) ([]*x509.Certificate, error) {
	if cert == nil {
		return nil, fmt.Errorf("certificate is nil")
	}
	if at.IsZero() {
		at = time.Now()
	}

	var interPool *x509.CertPool
	if len(intermediates) > 0 {
		interPool = x509.NewCertPool()
		for _, inter := range intermediates {
			interPool.AddCert(inter)
		}
	}

	chains, err := cert.Verify(x509.VerifyOptions{
		Roots:         s.roots,
		Intermediates: interPool,
		CurrentTime:   at,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	})
	if err != nil {
		return nil, fmt.Errorf("chain verification failed: %w", err)
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("no valid certificate chains found")
	}
	return chains[0], nil
}

// CheckRevocation asks the signing certificate's OCSP responders for its
// status. ErrNoResponder means the certificate authority publishes none.
func (s *TrustStore) CheckRevocation(ctx context.Context, cert *x509.Certificate, issuer *x509.Certificate) (*Revocation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.ocspTimeout)
	defer cancel()
	return s.ocsp.Check(ctx, cert, issuer)
}

// Roots returns the certificate pool
func (s *TrustStore) Roots() *x509.CertPool {
	return s.roots
}

// RootCerts returns the trusted certificates in insertion order
func (s *TrustStore) RootCerts() []*x509.Certificate {
	return s.rootCerts
}

// Len is the number of trusted certificates
func (s *TrustStore) Len() int {
	return len(s.rootCerts)
}

// IsSoftFail returns whether soft-fail mode is enabled
func (s *TrustStore) IsSoftFail() bool {
	return s.softFail
}
