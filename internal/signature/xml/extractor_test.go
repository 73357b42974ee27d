package xml_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/signature"
	sigxml "github.com/rezonia/alanube-ecf/internal/signature/xml"
)

const dsSignature = `<ds:Signature xmlns:ds="http://www.w3.org/2000/09/xmldsig#"><ds:SignedInfo/></ds:Signature>`

func TestExtract_Roots(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		root     string
		encf     string
		rnc      string
		docType  string
		signedAt string
	}{
		{
			name: "e-CF",
			data: `<?xml version="1.0" encoding="utf-8"?>
<ECF>
	<Encabezado>
		<IdDoc><TipoeCF>32</TipoeCF><eNCF>E320000000010</eNCF></IdDoc>
		<Emisor><RNCEmisor>131793916</RNCEmisor></Emisor>
	</Encabezado>
	<FechaHoraFirma>15-01-2025 10:30:00</FechaHoraFirma>
	` + dsSignature + `
</ECF>`,
			root: "ECF", encf: "E320000000010", rnc: "131793916", docType: "32",
			signedAt: "2025-01-15T14:30:00Z",
		},
		{
			name: "cancellation",
			data: `<ANECF><Encabezado><Version>1.0</Version><RncEmisor>131793916</RncEmisor>` +
				`<FechaHoraAnulacioneNCF>20-02-2025 08:00:05</FechaHoraAnulacioneNCF></Encabezado>` +
				dsSignature + `</ANECF>`,
			root: "ANECF", rnc: "131793916", signedAt: "2025-02-20T12:00:05Z",
		},
		{
			name: "commercial approval",
			data: `<ACECF><DetalleAprobacionComercial><RNCEmisor>131793916</RNCEmisor><eNCF>E310000000003</eNCF>` +
				`<FechaHoraAprobacionComercial>01-03-2025 23:59:59</FechaHoraAprobacionComercial></DetalleAprobacionComercial>` +
				dsSignature + `</ACECF>`,
			root: "ACECF", encf: "E310000000003", rnc: "131793916", docType: "31",
			signedAt: "2025-03-02T03:59:59Z",
		},
		{
			name: "receipt acknowledgement",
			data: `<ARECF><DetalleAcusedeRecibo><RNCEmisor>131793916</RNCEmisor><eNCF>E340000000001</eNCF>` +
				`<FechaHoraAcuseRecibo>bad date</FechaHoraAcuseRecibo></DetalleAcusedeRecibo>` + dsSignature + `</ARECF>`,
			root: "ARECF", encf: "E340000000001", rnc: "131793916", docType: "34",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := sigxml.Extract([]byte(tt.data))
			require.NoError(t, err)
			require.NotNil(t, ext.SignatureElement)

			assert.Equal(t, tt.root, ext.Info.Root)
			assert.Equal(t, tt.encf, ext.Info.Encf)
			assert.Equal(t, tt.rnc, ext.Info.IssuerRNC)
			assert.Equal(t, tt.docType, ext.Info.DocumentType)
			if tt.signedAt == "" {
				assert.Nil(t, ext.SignedAt)
				return
			}
			require.NotNil(t, ext.SignedAt)
			assert.Equal(t, tt.signedAt, ext.SignedAt.UTC().Format(time.RFC3339))
		})
	}
}

func TestExtract_Failures(t *testing.T) {
	_, err := sigxml.Extract([]byte(`not xml`))
	assert.ErrorIs(t, err, signature.ErrMalformed(nil))

	_, err = sigxml.Extract([]byte(`<SInvoice/>`))
	assert.ErrorIs(t, err, signature.ErrUnknownDocument(""))

	ext, err := sigxml.Extract([]byte(`<RFCE><Encabezado><IdDoc><eNCF>E320000000001</eNCF></IdDoc></Encabezado></RFCE>`))
	assert.ErrorIs(t, err, signature.ErrNoSignature())
	require.NotNil(t, ext)
	assert.Equal(t, "E320000000001", ext.Info.Encf)
}

func TestCertificates(t *testing.T) {
	now := time.Now()
	pki := newPKI(t, now.Add(-time.Hour), now.Add(time.Hour))
	data := sign(t, pki, ecfElement("E310000000001", ""))

	ext, err := sigxml.Extract(data)
	require.NoError(t, err)

	ders, err := sigxml.Certificates(ext.SignatureElement)
	require.NoError(t, err)
	require.Len(t, ders, 1)
	assert.Equal(t, pki.leafDER, ders[0])

	ext, err = sigxml.Extract([]byte(`<ECF>` + dsSignature + `</ECF>`))
	require.NoError(t, err)
	_, err = sigxml.Certificates(ext.SignatureElement)
	assert.ErrorIs(t, err, signature.ErrNoCertificate(nil))
}

func TestParseSignatureTime(t *testing.T) {
	got, err := sigxml.ParseSignatureTime(" 31-12-2024 20:00:00 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got.UTC())

	_, err = sigxml.ParseSignatureTime("2024-12-31T20:00:00")
	assert.Error(t, err)
}

func TestLooksSigned(t *testing.T) {
	assert.True(t, sigxml.LooksSigned([]byte(`<ECF>`+dsSignature+`</ECF>`)))
	assert.True(t, sigxml.LooksSigned([]byte(`<?xml version="1.0"?><ECF><Signature/></ECF>`)))
	assert.False(t, sigxml.LooksSigned([]byte(`<ECF/>`)))
	assert.False(t, sigxml.LooksSigned([]byte(`%PDF-1.7`)))
}
