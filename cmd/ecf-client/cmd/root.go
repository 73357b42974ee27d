package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/journal"
	"github.com/rezonia/alanube-ecf/pkg/ecfclient"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	logFormat    string
	outputFormat string
	envFile      string
	token        string
	baseURL      string
	sandbox      bool
	companyID    string
	redisURL     string
)

var rootCmd = &cobra.Command{
	Use:   "ecf-client",
	Short: "Validate and submit Dominican e-CF documents through Alanube",
	Long: `ecf-client validates DGII electronic fiscal documents (e-CF) and
submits them to the Alanube gateway.

Supports:
  - Invoices (31, 32, 33, 41, 43, 44, 45, 46, 47), credit notes (34)
  - Cancellation of unused e-NCF ranges
  - Status tracking with a local or Redis journal
  - XMLDSig verification of signed e-CF XML

Examples:
  # Validate documents without sending them
  ecf-client validate invoice.json

  # Submit to the sandbox
  ecf-client submit invoice.json --sandbox --token <token>

  # Void a range of unused sequences
  ecf-client cancel --rnc 131793916 E310000000001:E310000000010`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Alanube API token (env: ALANUBE_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Alanube API base URL (env: ALANUBE_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "Use the sandbox API (env: ALANUBE_SANDBOX)")
	rootCmd.PersistentFlags().StringVar(&companyID, "company", "", "Company id for multi-company accounts (env: ALANUBE_COMPANY_ID)")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", "", "Redis URL of the submission journal (env: ECF_REDIS_URL)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	setupLogger()

	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !rootCmd.PersistentFlags().Changed("env-file") {
			slog.Debug("no env file", "path", envFile)
		} else {
			slog.Warn("failed to load env file", "path", envFile, "error", err)
		}
	}

	if token == "" {
		token = os.Getenv("ALANUBE_TOKEN")
	}
	if baseURL == "" {
		baseURL = os.Getenv("ALANUBE_BASE_URL")
	}
	if !sandbox {
		if v := os.Getenv("ALANUBE_SANDBOX"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				slog.Warn("ignoring ALANUBE_SANDBOX", "value", v, "error", err)
			}
			sandbox = parsed
		}
	}
	if companyID == "" {
		companyID = os.Getenv("ALANUBE_COMPANY_ID")
	}
	if redisURL == "" {
		redisURL = os.Getenv("ECF_REDIS_URL")
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newClient() (*ecfclient.Client, error) {
	if token == "" {
		return nil, errors.New("an API token is required (--token or ALANUBE_TOKEN)")
	}
	opts := []ecfclient.ClientOption{
		ecfclient.WithSandbox(sandbox),
		alanube.WithLogger(slog.Default()),
	}
	if baseURL != "" {
		opts = append(opts, ecfclient.WithBaseURL(baseURL))
	}
	return ecfclient.NewClient(token, opts...)
}

// openJournal returns the Redis journal when one is configured, otherwise
// an in-memory store that lives as long as the command
func openJournal(ctx context.Context) (journal.Store, func(), error) {
	if redisURL == "" {
		return journal.NewMemoryStore(), func() {}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Debug("using redis journal", "addr", opts.Addr)
	return journal.NewRedisStore(client), func() { _ = client.Close() }, nil
}

func newSubmitter(ctx context.Context, opts ...ecfclient.SubmitterOption) (*ecfclient.Submitter, func(), error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	store, closeFn, err := openJournal(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]ecfclient.SubmitterOption{
		ecfclient.WithJournal(store),
		ecfclient.WithLogger(slog.Default()),
	}, opts...)
	return ecfclient.NewSubmitter(client, opts...), closeFn, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
