package trust_test

import (
	"context"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/signature/trust"
)

func TestNewTrustStore(t *testing.T) {
	store, err := trust.NewTrustStore()
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.False(t, store.IsSoftFail())

	store, err = trust.NewTrustStore(trust.WithSoftFail(), trust.WithOCSPTimeout(time.Second))
	require.NoError(t, err)
	assert.True(t, store.IsSoftFail())
}

func TestNewTrustStore_FromPEM(t *testing.T) {
	a, b := newCA(t, "CA A"), newCA(t, "CA B")

	store, err := trust.NewTrustStore(trust.WithCertsFromPEM(toPEM(a.cert, b.cert)))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "CA A", store.RootCerts()[0].Subject.CommonName)

	path := filepath.Join(t.TempDir(), "dgii-ca.pem")
	require.NoError(t, os.WriteFile(path, toPEM(a.cert), 0o600))
	store, err = trust.NewTrustStore(trust.WithCertsFromFile(path))
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestNewTrustStore_BadSources(t *testing.T) {
	_, err := trust.NewTrustStore(trust.WithCertsFromFile(filepath.Join(t.TempDir(), "missing.pem")))
	assert.Error(t, err)

	_, err = trust.NewTrustStore(trust.WithCertsFromPEM([]byte("not pem")))
	assert.Error(t, err)

	_, err = trust.NewTrustStore(trust.WithCertsFromPEM([]byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n")))
	assert.Error(t, err)
}

func TestVerifyChain(t *testing.T) {
	ca := newCA(t, "Test CA")
	leaf := newLeaf(t, ca, 10, "")

	store, err := trust.NewTrustStore()
	require.NoError(t, err)
	store.AddCertificate(ca.cert)

	chain, err := store.VerifyChain(leaf, nil, time.Time{})
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, ca.cert.Raw, chain[1].Raw)

	_, err = store.VerifyChain(leaf, nil, time.Now().Add(48*time.Hour))
	assert.Error(t, err, "leaf expired at that time")

	_, err = store.VerifyChain(nil, nil, time.Time{})
	assert.Error(t, err)
}

func TestVerifyChain_Intermediate(t *testing.T) {
	root := newCA(t, "Root CA")
	inter := newCA(t, "Issuing CA")
	// re-issue the intermediate under the root
	interCert := newIntermediate(t, root, inter)
	leaf := newLeaf(t, issued{cert: interCert, key: inter.key}, 11, "")

	store, err := trust.NewTrustStore()
	require.NoError(t, err)
	store.AddCertificate(root.cert)

	_, err = store.VerifyChain(leaf, nil, time.Time{})
	assert.Error(t, err)

	chain, err := store.VerifyChain(leaf, []*x509.Certificate{interCert}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, chain, 3)
}

func TestVerifyChain_Untrusted(t *testing.T) {
	leaf := newLeaf(t, newCA(t, "Other CA"), 12, "")

	store, err := trust.NewTrustStore(trust.WithCertsFromPEM(toPEM(newCA(t, "Test CA").cert)))
	require.NoError(t, err)

	_, err = store.VerifyChain(leaf, nil, time.Time{})
	assert.Error(t, err)
}

func TestCheckRevocation_NoResponder(t *testing.T) {
	ca := newCA(t, "Test CA")
	leaf := newLeaf(t, ca, 13, "")

	store, err := trust.NewTrustStore()
	require.NoError(t, err)

	rev, err := store.CheckRevocation(context.Background(), leaf, ca.cert)
	assert.ErrorIs(t, err, trust.ErrNoResponder)
	assert.Nil(t, rev)

	_, err = store.CheckRevocation(context.Background(), leaf, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, trust.ErrNoResponder)
}
