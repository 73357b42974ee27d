// Package xml reads DGII signed XML documents: the e-CF itself, the
// cancellation (ANECF), the commercial approval (ACECF), the receipt
// acknowledgement (ARECF) and the consumer invoice summary (RFCE).
package xml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/alanube-ecf/internal/signature"
)

// XMLDSigNamespace is the namespace of the Signature element
const XMLDSigNamespace = "http://www.w3.org/2000/09/xmldsig#"

// SignatureTimeLayout is the layout DGII uses for FechaHoraFirma
const SignatureTimeLayout = "02-01-2006 15:04:05"

// DGII stamps are in Santo Domingo time, which has no daylight saving
var santoDomingo = time.FixedZone("AST", -4*60*60)

// layout lists where each root keeps its identifying elements
type layout struct {
	encf     [][]string
	rnc      [][]string
	signedAt [][]string
}

var layouts = map[string]layout{
	"ECF": {
		encf:     [][]string{{"Encabezado", "IdDoc", "eNCF"}},
		rnc:      [][]string{{"Encabezado", "Emisor", "RNCEmisor"}},
		signedAt: [][]string{{"FechaHoraFirma"}},
	},
	"RFCE": {
		encf: [][]string{{"Encabezado", "IdDoc", "eNCF"}},
		rnc:  [][]string{{"Encabezado", "Emisor", "RNCEmisor"}},
	},
	"ANECF": {
		rnc:      [][]string{{"Encabezado", "RncEmisor"}, {"Encabezado", "RNCEmisor"}},
		signedAt: [][]string{{"Encabezado", "FechaHoraAnulacioneNCF"}},
	},
	"ACECF": {
		encf:     [][]string{{"DetalleAprobacionComercial", "eNCF"}},
		rnc:      [][]string{{"DetalleAprobacionComercial", "RNCEmisor"}},
		signedAt: [][]string{{"DetalleAprobacionComercial", "FechaHoraAprobacionComercial"}},
	},
	"ARECF": {
		encf:     [][]string{{"DetalleAcusedeRecibo", "eNCF"}},
		rnc:      [][]string{{"DetalleAcusedeRecibo", "RNCEmisor"}},
		signedAt: [][]string{{"DetalleAcusedeRecibo", "FechaHoraAcuseRecibo"}},
	},
}

// Extraction is a parsed, signed DGII document
type Extraction struct {
	Document *etree.Document
	// Root is the signed element; DGII signs the whole document
	Root             *etree.Element
	SignatureElement *etree.Element
	Info             signature.Document
	SignedAt         *time.Time
}

// Extract parses data and locates the signature and the identifying
// elements of the document
func Extract(data []byte) (*Extraction, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, signature.ErrMalformed(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, signature.ErrMalformed(fmt.Errorf("empty document"))
	}

	l, ok := layouts[root.Tag]
	if !ok {
		return nil, signature.ErrUnknownDocument(root.Tag)
	}

	out := &Extraction{
		Document: doc,
		Root:     root,
		Info: signature.Document{
			Root:      root.Tag,
			Encf:      firstText(root, l.encf),
			IssuerRNC: firstText(root, l.rnc),
		},
	}
	out.Info.DocumentType = documentType(out.Info.Encf)
	if raw := firstText(root, l.signedAt); raw != "" {
		if t, err := ParseSignatureTime(raw); err == nil {
			out.SignedAt = &t
		}
	}

	out.SignatureElement = childByTag(root, "Signature")
	if out.SignatureElement == nil {
		return out, signature.ErrNoSignature()
	}
	return out, nil
}

// ParseSignatureTime reads a DGII timestamp (dd-MM-yyyy HH:mm:ss)
func ParseSignatureTime(s string) (time.Time, error) {
	return time.ParseInLocation(SignatureTimeLayout, strings.TrimSpace(s), santoDomingo)
}

// Certificates decodes every X509Certificate in the signature's KeyInfo.
// The first one is the signing certificate.
func Certificates(sig *etree.Element) ([][]byte, error) {
	data := find(sig, []string{"KeyInfo", "X509Data"})
	if data == nil {
		return nil, signature.ErrNoCertificate(nil)
	}

	var out [][]byte
	for _, el := range data.ChildElements() {
		if el.Tag != "X509Certificate" {
			continue
		}
		text := strings.Join(strings.Fields(el.Text()), "")
		if text == "" {
			continue
		}
		der, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, signature.ErrNoCertificate(fmt.Errorf("failed to decode certificate: %w", err))
		}
		out = append(out, der)
	}
	if len(out) == 0 {
		return nil, signature.ErrNoCertificate(nil)
	}
	return out, nil
}

// LooksSigned is a cheap check for signed XML, without parsing
func LooksSigned(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("<")) {
		return false
	}
	return bytes.Contains(data, []byte("<Signature")) || bytes.Contains(data, []byte(":Signature"))
}

func documentType(encf string) string {
	if len(encf) == 13 && encf[0] == 'E' {
		return encf[1:3]
	}
	return ""
}

func firstText(root *etree.Element, paths [][]string) string {
	for _, p := range paths {
		if el := find(root, p); el != nil {
			if text := strings.TrimSpace(el.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// find walks direct children by local name, ignoring namespace prefixes
func find(el *etree.Element, path []string) *etree.Element {
	for _, tag := range path {
		if el = childByTag(el, tag); el == nil {
			return nil
		}
	}
	return el
}

func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
