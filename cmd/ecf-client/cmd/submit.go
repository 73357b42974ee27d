package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/pkg/ecfclient"
)

var (
	submitConcurrency int
	submitTimeout     time.Duration
)

var submitCmd = &cobra.Command{
	Use:   "submit [files...]",
	Short: "Validate and submit e-CF documents",
	Long: `Validate JSON documents and submit the valid ones to Alanube.

Every file is validated first; nothing is sent when one fails. Documents
are then submitted concurrently and recorded in the journal (Redis when
--redis-url or ECF_REDIS_URL is set).

Examples:
  ecf-client submit invoice.json --sandbox
  ecf-client submit batch/ --concurrency 8 -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&documentKind, "kind", "auto", "Document kind (auto, invoice, credit-note, cancellation)")
	submitCmd.Flags().IntVar(&submitConcurrency, "concurrency", ecfclient.DefaultConcurrency, "Parallel gateway requests")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 5*time.Minute, "Timeout of the whole batch")
}

// SubmitResult holds the outcome of submitting a single file
type SubmitResult struct {
	File        string `json:"file"`
	Encf        string `json:"encf,omitempty"`
	ID          string `json:"id,omitempty"`
	Status      string `json:"status,omitempty"`
	LegalStatus string `json:"legal_status,omitempty"`
	Error       string `json:"error,omitempty"`
}

func runSubmit(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".json")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to submit")
	}

	docs := make([]ecf.Document, 0, len(files))
	for _, file := range files {
		doc, err := decodeFile(file, documentKind)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		docs = append(docs, doc)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), submitTimeout)
	defer cancel()

	submitter, closeJournal, err := newSubmitter(ctx, ecfclient.WithConcurrency(submitConcurrency))
	if err != nil {
		return err
	}
	defer closeJournal()

	results, batchErr := submitter.SubmitBatch(ctx, docs)

	out := make([]SubmitResult, len(results))
	for i, r := range results {
		out[i] = SubmitResult{File: files[r.Index], Encf: r.Document.Number()}
		if r.Response != nil {
			out[i].ID = r.Response.ID
			out[i].Status = string(r.Response.Status)
			out[i].LegalStatus = string(r.Response.LegalStatus)
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}

	if outputFormat == "json" {
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		for _, r := range out {
			if r.Error != "" {
				fmt.Printf("✗ %s: %s\n", r.File, r.Error)
				continue
			}
			fmt.Printf("✓ %s: %s %s (%s)\n", r.File, r.Encf, r.ID, r.Status)
		}
	}

	if batchErr != nil {
		return fmt.Errorf("submission failed for some files")
	}
	return nil
}
