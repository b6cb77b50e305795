package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abdigaliarsen/api-gateway/internal/config"
	"github.com/abdigaliarsen/api-gateway/internal/forwarder"
	"github.com/abdigaliarsen/api-gateway/internal/gateway"
	"github.com/abdigaliarsen/api-gateway/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gateway HTTP server",
	Long: `Run the gateway HTTP server.

The listening port comes from, in increasing priority: the built-in
default (3000), the config file, the PORT environment variable, and the
--port flag.

Targets are not restricted: any URL the caller supplies is fetched,
including loopback and private addresses. Do not expose the gateway to
untrusted callers.`,
	RunE: runServe,
}

var (
	serveHost            string
	servePort            int
	serveUpstreamTimeout time.Duration
)

func addServeFlags(fs *pflag.FlagSet) {
	fs.StringVar(&serveHost, "host", "", "Host to bind (default all interfaces)")
	fs.IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to listen on")
	fs.DurationVar(&serveUpstreamTimeout, "upstream-timeout", 0, "Timeout for each outbound request (0 = none)")
}

func init() {
	addServeFlags(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("host") {
		cfg.Host = serveHost
	}
	if fs.Changed("port") {
		cfg.Port = servePort
	}
	if fs.Changed("upstream-timeout") {
		cfg.UpstreamTimeout.Duration = serveUpstreamTimeout
	}
	if fs.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if fs.Changed("json") {
		cfg.LogJSON = jsonOutput
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, os.Getenv)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.Setup(cfg.Verbose, cfg.LogJSON, os.Stderr)
	defer logging.Sync()

	fwd := forwarder.New(
		forwarder.NewClient(cfg.UpstreamTimeout.Duration),
		logging.Logger.Named("forwarder"),
	)

	server, err := gateway.NewServer(&gateway.Config{
		ListenAddr: cfg.Addr(),
		Forwarder:  fwd,
		Logger:     logging.Logger.Named("http"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logging.Banner(cfg.BaseURL())
	logging.Debug("configuration", "addr", cfg.Addr(), "upstream_timeout", cfg.UpstreamTimeout.Duration)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down gateway server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Warn("graceful shutdown incomplete", "error", err)
	}
	return <-errCh
}
