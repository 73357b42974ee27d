package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/server"
	"github.com/rezonia/alanube-ecf/internal/signature/xml"
	"github.com/rezonia/alanube-ecf/pkg/ecfclient"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server in front of the Alanube gateway.

The API provides endpoints for:
  - POST /api/v1/validate/:kind        - Validate a document (kind may be auto)
  - POST /api/v1/documents             - Submit an invoice or credit note
  - GET  /api/v1/documents/:type/:id   - Gateway status of a document
  - POST /api/v1/cancellations         - Submit a cancellation
  - GET  /api/v1/cancellations/:id     - Gateway status of a cancellation
  - GET  /api/v1/journal[/:encf]       - Submission journal (?refresh=true)
  - POST /api/v1/verify                - Verify a signed e-CF XML (needs --trust)
  - GET  /api/v1/catalog[/:name]       - DGII code tables
  - GET  /metrics                      - Prometheus metrics
  - GET  /health                       - Health check

Examples:
  ecf-client serve --sandbox
  ecf-client serve --address :9090 --trust dgii-ca.pem --redis-url redis://localhost:6379/0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
	serveCmd.Flags().StringSliceVar(&trustFiles, "trust", nil, "PEM file of trusted roots; enables /api/v1/verify")
	serveCmd.Flags().BoolVar(&softFail, "soft-fail", false, "Treat unreachable OCSP responders as a warning")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if token == "" {
		return fmt.Errorf("an API token is required (--token or ALANUBE_TOKEN)")
	}
	clientOpts := []ecfclient.ClientOption{
		ecfclient.WithSandbox(sandbox),
		alanube.WithLogger(slog.Default()),
		alanube.WithMetrics(alanube.NewMetrics(reg)),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, ecfclient.WithBaseURL(baseURL))
	}
	client, err := ecfclient.NewClient(token, clientOpts...)
	if err != nil {
		return err
	}

	store, closeJournal, err := openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeJournal()
	submitter := ecfclient.NewSubmitter(client,
		ecfclient.WithJournal(store),
		ecfclient.WithLogger(slog.Default()))

	opts := []server.Option{
		server.WithLogger(slog.Default()),
		server.WithGatherer(reg),
	}
	if len(trustFiles) > 0 {
		trustStore, err := newTrustStore()
		if err != nil {
			return fmt.Errorf("failed to create trust store: %w", err)
		}
		opts = append(opts, server.WithVerifier(xml.NewVerifier(trustStore, xml.WithLogger(slog.Default()))))
	} else {
		slog.Info("signature verification disabled (no --trust file)")
	}

	srv, err := server.NewServer(&server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}, client, submitter, opts...)
	if err != nil {
		return err
	}

	slog.Info("starting server", "address", serverAddr, "gateway", client.BaseURL())
	if err := srv.Run(ctx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
