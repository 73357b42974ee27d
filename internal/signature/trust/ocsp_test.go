package trust_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ocsp"

	"github.com/rezonia/alanube-ecf/internal/signature/trust"
)

// responder answers every OCSP request with status for the requested serial
func responder(t *testing.T, ca issued, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req, err := ocsp.ParseRequest(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := ocsp.CreateResponse(ca.cert, ca.cert, ocsp.Response{
			Status:       status,
			SerialNumber: req.SerialNumber,
			ThisUpdate:   time.Now().Add(-time.Minute),
			NextUpdate:   time.Now().Add(time.Hour),
			RevokedAt:    time.Now().Add(-time.Minute),
		}, ca.key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/ocsp-response")
		_, _ = w.Write(resp)
	}))
}

func TestCheckRevocation_OCSP(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   trust.RevocationStatus
	}{
		{"good", ocsp.Good, trust.StatusGood},
		{"revoked", ocsp.Revoked, trust.StatusRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca := newCA(t, "Test CA")
			var hits atomic.Int32
			srv := responder(t, ca, tt.status, &hits)
			defer srv.Close()
			leaf := newLeaf(t, ca, 20, srv.URL)

			store, err := trust.NewTrustStore(trust.WithHTTPClient(srv.Client()))
			require.NoError(t, err)

			rev, err := store.CheckRevocation(context.Background(), leaf, ca.cert)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rev.Status)
			assert.Equal(t, srv.URL, rev.Responder)
			assert.Equal(t, tt.status == ocsp.Revoked, rev.RevokedBy(time.Now()))
			assert.False(t, rev.RevokedBy(time.Now().Add(-time.Hour)), "signed before the revocation")

			// cached
			again, err := store.CheckRevocation(context.Background(), leaf, ca.cert)
			require.NoError(t, err)
			assert.Equal(t, rev, again)
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestCheckRevocation_ResponderDown(t *testing.T) {
	ca := newCA(t, "Test CA")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	leaf := newLeaf(t, ca, 21, srv.URL)

	store, err := trust.NewTrustStore(trust.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	rev, err := store.CheckRevocation(context.Background(), leaf, ca.cert)
	assert.Nil(t, rev)

	var rerr *trust.ResponderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, srv.URL, rerr.URL)
}

func TestCheckRevocation_UnknownThenGood(t *testing.T) {
	ca := newCA(t, "Test CA")
	var unknownHits, goodHits atomic.Int32
	unknown := responder(t, ca, ocsp.Unknown, &unknownHits)
	defer unknown.Close()
	good := responder(t, ca, ocsp.Good, &goodHits)
	defer good.Close()
	leaf := newLeaf(t, ca, 22, unknown.URL, good.URL)

	store, err := trust.NewTrustStore()
	require.NoError(t, err)
	rev, err := store.CheckRevocation(context.Background(), leaf, ca.cert)
	require.NoError(t, err)
	assert.Equal(t, trust.StatusGood, rev.Status)
	assert.Equal(t, good.URL, rev.Responder)
	assert.Equal(t, int32(1), unknownHits.Load())

	only := newLeaf(t, ca, 23, unknown.URL)
	_, err = store.CheckRevocation(context.Background(), only, ca.cert)
	assert.ErrorIs(t, err, trust.ErrStatusUnknown)
}

func TestRevocationCache(t *testing.T) {
	ca := newCA(t, "Test CA")
	a, b := newLeaf(t, ca, 30, ""), newLeaf(t, ca, 31, "")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cache := trust.NewRevocationCache(time.Hour, clock)
	_, found := cache.Get(a, ca.cert)
	assert.False(t, found)

	cache.Put(a, ca.cert, &trust.Revocation{Status: trust.StatusGood})
	cache.Put(b, ca.cert, &trust.Revocation{Status: trust.StatusGood, NextUpdate: now.Add(10 * time.Minute)})
	cache.Put(nil, ca.cert, &trust.Revocation{})
	assert.Equal(t, 2, cache.Len())

	_, found = cache.Get(a, nil)
	assert.False(t, found)

	now = now.Add(11 * time.Minute)
	_, found = cache.Get(a, ca.cert)
	assert.True(t, found, "within the TTL")
	_, found = cache.Get(b, ca.cert)
	assert.False(t, found, "past the responder's next update")

	now = now.Add(time.Hour)
	_, found = cache.Get(a, ca.cert)
	assert.False(t, found, "past the TTL")
	assert.Equal(t, 0, cache.Len())
}

func TestRevocationCache_KeyedByIssuer(t *testing.T) {
	ca, other := newCA(t, "Test CA"), newCA(t, "Other CA")
	leaf := newLeaf(t, ca, 40, "")

	cache := trust.NewRevocationCache(time.Hour, nil)
	cache.Put(leaf, ca.cert, &trust.Revocation{Status: trust.StatusRevoked})

	rev, found := cache.Get(leaf, ca.cert)
	require.True(t, found)
	assert.Equal(t, trust.StatusRevoked, rev.Status)

	_, found = cache.Get(leaf, other.cert)
	assert.False(t, found)
}
