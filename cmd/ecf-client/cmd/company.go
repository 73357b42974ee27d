package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/form"
)

var companyCmd = &cobra.Command{
	Use:   "company [id]",
	Short: "Show, create or update the issuing company",
	Long: `Show a company registered in Alanube. Without an id, --company or
ALANUBE_COMPANY_ID is used, and without either the token's own company.

Examples:
  ecf-client company
  ecf-client company create company.json
  ecf-client company update 01HQ8Z6W2K3V changes.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompany,
}

var companyCreateCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Register a company from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyCreate,
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update <id> <file>",
	Short: "Update the fields given in a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompanyUpdate,
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(companyCreateCmd, companyUpdateCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	id := companyID
	if len(args) == 1 {
		id = args[0]
	}
	return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
		return client.Company(ctx, id)
	})
}

func runCompanyCreate(cmd *cobra.Command, args []string) error {
	body, err := readObject(args[0])
	if err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
		return client.CreateCompany(ctx, body)
	})
}

func runCompanyUpdate(cmd *cobra.Command, args []string) error {
	body, err := readObject(args[1])
	if err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, client *alanube.Client) (alanube.Payload, error) {
		return client.UpdateCompany(ctx, args[0], body)
	})
}

// readObject reads a JSON object file, keeping number literals intact
func readObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return form.DecodeObject(data)
}

// withClient runs a gateway query and prints the payload it returns
func withClient(cmd *cobra.Command, fn func(context.Context, *alanube.Client) (alanube.Payload, error)) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	payload, err := fn(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(payload)
}
