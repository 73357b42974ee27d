package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/pkg/ecfclient"
)

var (
	cancelRNC  string
	cancelFile string
	dryRun     bool
)

var cancelCmd = &cobra.Command{
	Use:   "cancel [from:until...]",
	Short: "Void unused e-NCF ranges",
	Long: `Build a cancellation from e-NCF ranges, or read one from a JSON file,
and submit it. A range is FROM:UNTIL; a single e-NCF voids one sequence.
Each range becomes one cancellation item.

Examples:
  ecf-client cancel --rnc 131793916 E310000000001:E310000000010
  ecf-client cancel --rnc 131793916 E310000000011 E320000000005:E320000000007
  ecf-client cancel --file cancellation.json --dry-run`,
	RunE: runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)

	cancelCmd.Flags().StringVar(&cancelRNC, "rnc", "", "RNC of the issuer")
	cancelCmd.Flags().StringVar(&cancelFile, "file", "", "Cancellation JSON file")
	cancelCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the cancellation without submitting it")
}

func runCancel(cmd *cobra.Command, args []string) error {
	cancellation, err := buildCancellation(args)
	if err != nil {
		return err
	}

	if dryRun {
		data, err := cancellation.Serialize()
		if err != nil {
			return err
		}
		return printJSON(data)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	submitter, closeJournal, err := newSubmitter(ctx)
	if err != nil {
		return err
	}
	defer closeJournal()

	resp, err := submitter.Submit(ctx, cancellation)
	if err != nil && resp == nil {
		return err
	}

	if outputFormat == "json" {
		if perr := printJSON(resp); perr != nil {
			return perr
		}
	} else {
		printResponse(resp)
	}
	return err
}

func buildCancellation(args []string) (ecf.Document, error) {
	if cancelFile != "" {
		if len(args) > 0 {
			return nil, errors.New("ranges and --file are mutually exclusive")
		}
		return decodeFile(cancelFile, string(ecf.KindCancellation))
	}

	if cancelRNC == "" {
		return nil, errors.New("--rnc is required when ranges are given")
	}
	if len(args) == 0 {
		return nil, errors.New("at least one range is required")
	}

	ranges := make([]ecfclient.Range, 0, len(args))
	for _, arg := range args {
		from, until, ok := strings.Cut(arg, ":")
		if !ok {
			until = from
		}
		if from == "" || until == "" {
			return nil, fmt.Errorf("invalid range %q", arg)
		}
		ranges = append(ranges, ecfclient.Range{From: from, Until: until})
	}
	return ecfclient.NewSimpleCancellation(cancelRNC, ranges...)
}
