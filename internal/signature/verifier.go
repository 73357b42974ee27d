// Package signature verifies the XMLDSig signature DGII requires on every
// e-CF XML.
package signature

import "context"

// Verifier checks the signature of a signed e-CF document
type Verifier interface {
	// Verify returns a result describing every check. The error is non-nil
	// when the document could not be verified at all; the result still
	// carries whatever was read.
	Verify(ctx context.Context, data []byte) (*VerificationResult, error)
}
