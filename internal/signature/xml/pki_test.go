package xml_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
	"github.com/stretchr/testify/require"
)

// testPKI is a CA and a signing certificate issued by it
type testPKI struct {
	ca      *x509.Certificate
	caKey   *rsa.PrivateKey
	leaf    *x509.Certificate
	leafDER []byte
	key     *rsa.PrivateKey
}

func (p *testPKI) GetKeyPair() (*rsa.PrivateKey, []byte, error) {
	return p.key, p.leafDER, nil
}

func newPKI(t *testing.T, notBefore, notAfter time.Time, ocspServers ...string) *testPKI {
	t.Helper()

	caKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	caTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Test Camara de Comercio CA", Organization: []string{"Test CA"}},
		NotBefore:             notBefore.Add(-time.Hour),
		NotAfter:              notAfter.Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTmpl, caTmpl, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	ca, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	leafTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject: pkix.Name{
			CommonName:   "REZONIA SRL",
			Organization: []string{"Rezonia"},
			SerialNumber: "131793916",
		},
		NotBefore:  notBefore,
		NotAfter:   notAfter,
		KeyUsage:   x509.KeyUsageDigitalSignature,
		OCSPServer: ocspServers,
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leafTmpl, ca, &key.PublicKey, caKey)
	require.NoError(t, err)
	leaf, err := x509.ParseCertificate(leafDER)
	require.NoError(t, err)

	return &testPKI{ca: ca, caKey: caKey, leaf: leaf, leafDER: leafDER, key: key}
}

func ecfElement(encf, signedAt string) *etree.Element {
	doc := etree.NewDocument()
	root := doc.CreateElement("ECF")
	header := root.CreateElement("Encabezado")
	header.CreateElement("Version").SetText("1.0")
	id := header.CreateElement("IdDoc")
	id.CreateElement("TipoeCF").SetText(encf[1:3])
	id.CreateElement("eNCF").SetText(encf)
	sender := header.CreateElement("Emisor")
	sender.CreateElement("RNCEmisor").SetText("131793916")
	sender.CreateElement("RazonSocialEmisor").SetText("Rezonia SRL")
	totals := header.CreateElement("Totales")
	totals.CreateElement("MontoTotal").SetText("1180.00")
	if signedAt != "" {
		root.CreateElement("FechaHoraFirma").SetText(signedAt)
	}
	return root
}

func sign(t *testing.T, p *testPKI, root *etree.Element) []byte {
	t.Helper()
	signed, err := dsig.NewDefaultSigningContext(p).SignEnveloped(root)
	require.NoError(t, err)

	doc := etree.NewDocument()
	doc.SetRoot(signed)
	data, err := doc.WriteToBytes()
	require.NoError(t, err)
	return data
}
