package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/model"
)

var environment int

var dgiiStatusCmd = &cobra.Command{
	Use:   "dgii-status",
	Short: "Check the availability of DGII services",
	Long: `Ask the gateway whether DGII services are up.

Environments: 1 pre-certification, 2 production, 3 certification.
Without --environment every environment is reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
			return client.CheckDGIIStatus(ctx, model.Environment(environment))
		})
	},
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "List the electronic issuers directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
			return client.CheckDirectory(ctx, companyID)
		})
	},
}

var providerCmd = &cobra.Command{
	Use:   "provider-info",
	Short: "Show the gateway's registration as electronic provider",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
			return client.ProviderInfo(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(dgiiStatusCmd, directoryCmd, providerCmd)

	dgiiStatusCmd.Flags().IntVar(&environment, "environment", 0, "DGII environment (1, 2, 3)")
}
