package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/representation"
)

var inspectPDF bool

var statusCmd = &cobra.Command{
	Use:   "status <type> <id>",
	Short: "Show the gateway status of a submitted document",
	Long: `Fetch a submitted document or cancellation from Alanube.

<type> is a resource name (invoices, credit-notes, cancellations, ...)
or an e-CF type code such as 31.

Examples:
  ecf-client status 31 01HQ8ZDOC
  ecf-client status cancellations 01HQ8ZCAN --company 01HQ8Z6W2K3V
  ecf-client status invoices 01HQ8ZDOC --inspect-pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&inspectPDF, "inspect-pdf", false, "Download and validate the printed representation")
}

// StatusResult is a gateway response with the optional representation check
type StatusResult struct {
	*alanube.DocumentResponse
	Representation *representation.Info `json:"representation,omitempty"`
	PDFError       string               `json:"pdf_error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	ep, err := alanube.ParseEndpoint(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	resp, err := client.Status(ctx, ep, args[1], companyID)
	if err != nil {
		return err
	}

	result := StatusResult{DocumentResponse: resp}
	if inspectPDF {
		if resp.PDF == "" {
			result.PDFError = "the gateway returned no representation"
		} else {
			inspector := representation.NewInspector(representation.WithLogger(slog.Default()))
			info, err := inspector.FetchAndInspect(ctx, resp.PDF)
			if err != nil {
				result.PDFError = err.Error()
			}
			result.Representation = info
		}
	}

	if outputFormat == "json" {
		return printJSON(result)
	}
	printResponse(resp)
	if result.Representation != nil {
		fmt.Printf("  PDF:          %d pages, %d bytes\n", result.Representation.Pages, result.Representation.Size)
	}
	if result.PDFError != "" {
		fmt.Printf("  ✗ PDF: %s\n", result.PDFError)
	}
	return nil
}

func printResponse(resp *alanube.DocumentResponse) {
	icon := "…"
	if resp.Done() {
		icon = "✗"
		if resp.Accepted() {
			icon = "✓"
		}
	}
	fmt.Printf("%s %s\n", icon, resp.ID)
	if n := resp.Number(); n != "" {
		fmt.Printf("  e-NCF:        %s\n", n)
	}
	fmt.Printf("  Status:       %s\n", resp.Status)
	if resp.LegalStatus != "" {
		fmt.Printf("  Legal status: %s\n", resp.LegalStatus)
	}
	if resp.SecurityCode != "" {
		fmt.Printf("  Security:     %s\n", resp.SecurityCode)
	}
	if resp.DocumentStampURL != "" {
		fmt.Printf("  Stamp URL:    %s\n", resp.DocumentStampURL)
	}
	if resp.GovernmentResponse != nil {
		for _, m := range resp.GovernmentResponse.Value {
			fmt.Printf("  DGII %d: %s\n", m.Code, m.Value)
		}
	}
}
