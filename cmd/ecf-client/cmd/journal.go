package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/journal"
)

var pendingOnly bool

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect and refresh the submission journal",
	Long: `The journal records every submitted document and its last known status.
It only persists between runs when a Redis URL is configured.

Examples:
  ecf-client journal list --pending
  ecf-client journal show E310000000001
  ecf-client journal refresh`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled documents",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <encf>",
	Short: "Show one journaled document",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalRefreshCmd = &cobra.Command{
	Use:   "refresh [encf]",
	Short: "Refresh one document, or every pending one, from the gateway",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJournalRefresh,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd, journalShowCmd, journalRefreshCmd)

	journalListCmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only documents the gateway has not finished")
}

func runJournalList(cmd *cobra.Command, args []string) error {
	store, closeJournal, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer closeJournal()

	entries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if pendingOnly {
		open := entries[:0]
		for _, e := range entries {
			if !e.Done() {
				open = append(open, e)
			}
		}
		entries = open
	}
	return printEntries(entries)
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	store, closeJournal, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer closeJournal()

	entry, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printEntries([]journal.Entry{entry})
}

func runJournalRefresh(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	submitter, closeJournal, err := newSubmitter(ctx)
	if err != nil {
		return err
	}
	defer closeJournal()

	if len(args) == 1 {
		entry, err := submitter.Refresh(ctx, args[0])
		if err != nil {
			return err
		}
		return printEntries([]journal.Entry{entry})
	}

	entries, err := submitter.RefreshPending(ctx)
	if err != nil {
		return err
	}
	return printEntries(entries)
}

func printEntries(entries []journal.Entry) error {
	if outputFormat == "json" {
		if entries == nil {
			entries = []journal.Entry{}
		}
		return printJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tKIND\tID\tSTATUS\tLEGAL STATUS\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Key, e.Kind, e.ID, e.Status, e.LegalStatus, e.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
