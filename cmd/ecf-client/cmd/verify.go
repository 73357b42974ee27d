package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/signature"
	"github.com/rezonia/alanube-ecf/internal/signature/trust"
	"github.com/rezonia/alanube-ecf/internal/signature/xml"
)

var (
	trustFiles []string
	softFail   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [files...]",
	Short: "Verify the signature of signed e-CF XML",
	Long: `Verify the XMLDSig signature of signed DGII documents (ECF, RFCE,
ANECF, ACECF, ARECF).

Verifies:
  - Signature validity (cryptographic verification)
  - Certificate chain, at the document's signature time, to the --trust roots
  - Certificate revocation (OCSP)
  - Signer information

Examples:
  ecf-client verify E310000000001.xml --trust dgii-ca.pem
  ecf-client verify signed/ --trust roots.pem --soft-fail -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringSliceVar(&trustFiles, "trust", nil, "PEM file of trusted root certificates (repeatable)")
	verifyCmd.Flags().BoolVar(&softFail, "soft-fail", false, "Treat unreachable OCSP responders as a warning")
}

// newTrustStore loads the --trust roots
func newTrustStore() (*trust.TrustStore, error) {
	if len(trustFiles) == 0 {
		return nil, errors.New("at least one --trust file is required")
	}
	opts := make([]trust.TrustStoreOption, 0, len(trustFiles)+2)
	opts = append(opts, trust.WithLogger(slog.Default()))
	for _, f := range trustFiles {
		opts = append(opts, trust.WithCertsFromFile(f))
	}
	if softFail {
		opts = append(opts, trust.WithSoftFail())
	}
	return trust.NewTrustStore(opts...)
}

// VerifyResult holds the result of verifying a single file
type VerifyResult struct {
	File string `json:"file"`
	*signature.VerificationResult
	Error string `json:"error,omitempty"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".xml")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to verify")
	}

	trustStore, err := newTrustStore()
	if err != nil {
		return fmt.Errorf("failed to create trust store: %w", err)
	}
	verifier := xml.NewVerifier(trustStore, xml.WithLogger(slog.Default()))

	results := make([]*VerifyResult, 0, len(files))
	allValid := true
	for _, file := range files {
		slog.Debug("verifying", "file", file)
		result := verifyFile(cmd.Context(), verifier, file)
		results = append(results, result)
		if result.VerificationResult == nil || !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printVerifyResult(r)
		}
	}

	if !allValid {
		return fmt.Errorf("verification failed for some files")
	}
	return nil
}

func verifyFile(ctx context.Context, verifier signature.Verifier, file string) *VerifyResult {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	result := &VerifyResult{File: file}
	data, err := os.ReadFile(file)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	vr, err := verifier.Verify(ctx, data)
	result.VerificationResult = vr
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func printVerifyResult(r *VerifyResult) {
	if r.VerificationResult == nil {
		fmt.Printf("✗ %s: %s\n", r.File, r.Error)
		return
	}

	if r.Valid {
		fmt.Printf("✓ %s: VALID\n", r.File)
	} else {
		fmt.Printf("✗ %s: INVALID\n", r.File)
	}
	if r.Error != "" {
		fmt.Printf("  ✗ %s\n", r.Error)
	}

	if r.Document.Encf != "" {
		fmt.Printf("  e-NCF:  %s (%s)\n", r.Document.Encf, r.Document.Root)
	}
	if r.Document.IssuerRNC != "" {
		fmt.Printf("  Issuer: %s\n", r.Document.IssuerRNC)
	}
	if r.Signer != nil {
		fmt.Printf("  Signer: %s\n", r.Signer.Name)
		if r.Signer.Identification != "" {
			fmt.Printf("  ID:     %s\n", r.Signer.Identification)
		}
		if r.Signer.Organization != "" {
			fmt.Printf("  Org:    %s\n", r.Signer.Organization)
		}
		if r.Signer.Issuer != "" {
			fmt.Printf("  CA:     %s\n", r.Signer.Issuer)
		}
	}
	if r.SignedAt != nil {
		fmt.Printf("  Signed: %s\n", r.SignedAt.Format(time.RFC3339))
	}

	if r.SignatureFound {
		fmt.Printf("  Signature:   %s\n", mark(r.SignatureValid))
		fmt.Printf("  Cert Chain:  %s\n", mark(r.CertChainValid))
		fmt.Printf("  Not Revoked: %s\n", mark(r.NotRevoked))
	}
	if r.Revocation != nil {
		fmt.Printf("  OCSP:   %s (%s)\n", r.Revocation.Status, r.Revocation.Responder)
	}

	for _, e := range r.Errors {
		fmt.Printf("  ✗ %s\n", e)
	}
	for _, w := range r.Warnings {
		fmt.Printf("  ⚠ %s\n", w)
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
