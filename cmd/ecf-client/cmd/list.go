package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/model"
)

var (
	listLimit       int
	listPage        int
	listStatus      []string
	listLegalStatus []string
	listIssuer      string
)

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List issued documents of one e-CF type",
	Long: `Page through the documents issued with one e-CF type.

Examples:
  ecf-client list 31 --limit 20
  ecf-client list invoices --status FINISHED --legal-status REJECTED`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var receivedCmd = &cobra.Command{
	Use:   "received",
	Short: "List documents other taxpayers issued to the company",
	Args:  cobra.NoArgs,
	RunE:  runReceived,
}

func init() {
	rootCmd.AddCommand(listCmd, receivedCmd)

	for _, c := range []*cobra.Command{listCmd, receivedCmd} {
		c.Flags().IntVar(&listLimit, "limit", 0, "Page size")
		c.Flags().IntVar(&listPage, "page", 0, "Page number")
	}
	listCmd.Flags().StringSliceVar(&listStatus, "status", nil, "Filter by gateway status")
	listCmd.Flags().StringSliceVar(&listLegalStatus, "legal-status", nil, "Filter by DGII legal status")
	receivedCmd.Flags().StringVar(&listIssuer, "issuer", "", "Filter by issuer RNC or cédula")
}

func runList(cmd *cobra.Command, args []string) error {
	docType, err := model.ParseDocumentType(args[0])
	if err != nil {
		ep, perr := alanube.ParseEndpoint(args[0])
		if perr != nil {
			return err
		}
		docType, err = typeOf(ep)
		if err != nil {
			return err
		}
	}

	opts := alanube.ListOptions{CompanyID: companyID, Limit: listLimit, Page: listPage}
	for _, s := range listStatus {
		st, err := model.ParseStatus(s)
		if err != nil {
			return err
		}
		opts.Status = append(opts.Status, st)
	}
	for _, s := range listLegalStatus {
		ls, err := model.ParseLegalStatus(s)
		if err != nil {
			return err
		}
		opts.LegalStatus = append(opts.LegalStatus, ls)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	list, err := client.ListDocuments(ctx, docType, opts)
	if err != nil {
		return err
	}
	if outputFormat == "json" {
		return printJSON(list)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tE-NCF\tSTATUS\tLEGAL STATUS\tSTAMP DATE")
	for _, d := range list.Documents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Number(), d.Status, d.LegalStatus, d.StampDate)
	}
	fmt.Fprintf(w, "page %d, %d-%d\n", list.Metadata.CurrentPage, list.Metadata.From, list.Metadata.To)
	return w.Flush()
}

func runReceived(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	list, err := client.ReceivedDocuments(ctx, alanube.ReceivedOptions{
		CompanyID:            companyID,
		Limit:                listLimit,
		Page:                 listPage,
		IssuerIdentification: listIssuer,
	})
	if err != nil {
		return err
	}
	if outputFormat == "json" {
		return printJSON(list)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tISSUER\tE-NCF\tTOTAL\tSTATUS")
	for _, d := range list.Documents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.IssuerIdentification, d.DocumentNumber, d.TotalAmount, d.Status)
	}
	return w.Flush()
}

// typeOf maps a resource name back to its e-CF type
func typeOf(ep alanube.Endpoint) (model.DocumentType, error) {
	for _, t := range model.DocumentTypes() {
		if candidate, err := alanube.EndpointFor(t); err == nil && candidate == ep {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%s is not a document type", ep)
}
