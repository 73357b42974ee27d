package trust

import (
	"bytes"
	"context"
	"crypto"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/ocsp"
)

// Default OCSP configuration
const (
	DefaultOCSPTimeout  = 10 * time.Second
	DefaultOCSPCacheTTL = 1 * time.Hour

	maxOCSPResponseSize = 1 << 20
)

var (
	// ErrNoResponder is returned for certificates that name no OCSP responder
	ErrNoResponder = errors.New("certificate names no OCSP responder")
	// ErrStatusUnknown is returned when a responder does not know the certificate
	ErrStatusUnknown = errors.New("OCSP responder does not know the certificate")
)

// RevocationStatus is a responder's verdict on a signing certificate
type RevocationStatus int

// Revocation statuses
const (
	StatusGood RevocationStatus = iota
	StatusRevoked
)

func (s RevocationStatus) String() string {
	if s == StatusRevoked {
		return "revoked"
	}
	return "good"
}

// Revocation is the OCSP answer for one signing certificate
type Revocation struct {
	Status     RevocationStatus
	RevokedAt  time.Time
	Reason     int
	Responder  string
	ProducedAt time.Time
	NextUpdate time.Time
}

// RevokedBy reports whether the certificate was already revoked at t.
// e-CF signed before the revocation keep a valid signature.
func (r *Revocation) RevokedBy(t time.Time) bool {
	return r != nil && r.Status == StatusRevoked && !r.RevokedAt.After(t)
}

// ResponderError wraps the failure of one OCSP responder
type ResponderError struct {
	URL string
	Err error
}

func (e *ResponderError) Error() string {
	return fmt.Sprintf("OCSP responder %s: %v", e.URL, e.Err)
}

func (e *ResponderError) Unwrap() error {
	return e.Err
}

// RevocationCache keeps answers until the responder's next update or the
// TTL, whichever comes first.
type RevocationCache struct {
	mu      sync.Mutex
	entries map[string]cachedRevocation
	ttl     time.Duration
	now     func() time.Time
}

type cachedRevocation struct {
	rev     *Revocation
	expires time.Time
}

// NewRevocationCache creates a cache. A nil clock means time.Now.
func NewRevocationCache(ttl time.Duration, now func() time.Time) *RevocationCache {
	if now == nil {
		now = time.Now
	}
	return &RevocationCache{
		entries: make(map[string]cachedRevocation),
		ttl:     ttl,
		now:     now,
	}
}

// revocationKey identifies a certificate by its issuer's key and serial
// number, the same pair an OCSP CertID carries.
func revocationKey(cert, issuer *x509.Certificate) string {
	sum := sha256.Sum256(issuer.RawSubjectPublicKeyInfo)
	return hex.EncodeToString(sum[:8]) + ":" + cert.SerialNumber.Text(16)
}

// Get returns a live cached answer
func (c *RevocationCache) Get(cert, issuer *x509.Certificate) (*Revocation, bool) {
	if cert == nil || issuer == nil {
		return nil, false
	}
	key := revocationKey(cert, issuer)

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.rev, true
}

// Put stores an answer
func (c *RevocationCache) Put(cert, issuer *x509.Certificate, rev *Revocation) {
	if cert == nil || issuer == nil || rev == nil {
		return
	}
	expires := c.now().Add(c.ttl)
	if !rev.NextUpdate.IsZero() && rev.NextUpdate.Before(expires) {
		expires = rev.NextUpdate
	}

	c.mu.Lock()
	c.entries[revocationKey(cert, issuer)] = cachedRevocation{rev: rev, expires: expires}
	c.mu.Unlock()
}

// Len returns the number of cached answers, expired ones included
func (c *RevocationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// OCSPChecker asks the responders named in a signing certificate whether
// the certificate authority revoked it.
type OCSPChecker struct {
	client *http.Client
	cache  *RevocationCache
	logger *slog.Logger
}

// NewOCSPChecker creates a checker. Nil arguments fall back to
// http.DefaultClient, a one hour cache and slog.Default.
func NewOCSPChecker(client *http.Client, cache *RevocationCache, logger *slog.Logger) *OCSPChecker {
	if client == nil {
		client = http.DefaultClient
	}
	if cache == nil {
		cache = NewRevocationCache(DefaultOCSPCacheTTL, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OCSPChecker{client: client, cache: cache, logger: logger}
}

// Check returns the first definite answer among the certificate's
// responders, asked in order. Answers are cached.
func (c *OCSPChecker) Check(ctx context.Context, cert, issuer *x509.Certificate) (*Revocation, error) {
	if cert == nil || issuer == nil {
		return nil, errors.New("certificate or issuer is nil")
	}
	if rev, ok := c.cache.Get(cert, issuer); ok {
		c.logger.Debug("OCSP answer from cache", "serial", cert.SerialNumber.Text(16), "status", rev.Status)
		return rev, nil
	}
	if len(cert.OCSPServer) == 0 {
		return nil, ErrNoResponder
	}

	// RFC 5019 responders are only required to understand SHA-1 CertIDs
	req, err := ocsp.CreateRequest(cert, issuer, &ocsp.RequestOptions{Hash: crypto.SHA1})
	if err != nil {
		return nil, fmt.Errorf("failed to create OCSP request: %w", err)
	}

	var errs []error
	for _, url := range cert.OCSPServer {
		rev, err := c.ask(ctx, url, req, cert, issuer)
		if err != nil {
			c.logger.Warn("OCSP responder failed",
				"responder", url,
				"subject", cert.Subject.CommonName,
				"error", err)
			errs = append(errs, &ResponderError{URL: url, Err: err})
			continue
		}
		c.cache.Put(cert, issuer, rev)
		return rev, nil
	}
	return nil, errors.Join(errs...)
}

func (c *OCSPChecker) ask(ctx context.Context, url string, body []byte, cert, issuer *x509.Certificate) (*Revocation, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/ocsp-request")
	httpReq.Header.Set("Accept", "application/ocsp-response")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxOCSPResponseSize))
	if err != nil {
		return nil, err
	}
	answer, err := ocsp.ParseResponseForCert(raw, cert, issuer)
	if err != nil {
		return nil, err
	}

	rev := &Revocation{
		Responder:  url,
		ProducedAt: answer.ProducedAt,
		NextUpdate: answer.NextUpdate,
	}
	switch answer.Status {
	case ocsp.Good:
		rev.Status = StatusGood
	case ocsp.Revoked:
		rev.Status = StatusRevoked
		rev.RevokedAt = answer.RevokedAt
		rev.Reason = answer.RevocationReason
	default:
		return nil, ErrStatusUnknown
	}
	return rev, nil
}
