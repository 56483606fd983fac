package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/defund/qrgen/api"
	"github.com/defund/qrgen/config"
	"github.com/defund/qrgen/qrimage"
)

var version = "v0.1.0"

func main() {
	var configPath string
	var verify bool

	root := &cobra.Command{
		Use:          "qrgen",
		Short:        "Generate a white-on-transparent QR code PNG",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(configPath, verify)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.Flags().BoolVar(&verify, "verify", false, "Decode the written image and check it matches the content")

	// --- serve command -------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the QR image over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	})

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrgen %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and builds the logger. Logs go to stderr so stdout
// only carries the confirmation line.
func setup(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	if cfg.ContentOverridden() {
		log.Warn("encoding configured content instead of the built-in url", "content", cfg.Content, "default", qrimage.DefaultContent)
	}

	return cfg, log, nil
}

// runGenerate writes the QR image once and prints a confirmation.
func runGenerate(configPath string, verify bool) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}

	res, err := qrimage.NewGenerator(log).Save(cfg.Content, cfg.Output)
	if err != nil {
		return fmt.Errorf("generate qr image: %w", err)
	}

	if verify {
		if err := verifyImage(res.Image, cfg.Content); err != nil {
			return err
		}
		log.Info("qr image verified", "path", cfg.Output)
	}

	fmt.Printf("QR code with white pattern and transparent background generated and saved as '%s'.\n", cfg.Output)
	return nil
}

// verifyImage decodes img and checks it carries want.
func verifyImage(img image.Image, want string) error {
	text, err := qrimage.Scan(img)
	if err != nil {
		return fmt.Errorf("verify qr image: %w", err)
	}
	if text != want {
		return fmt.Errorf("verify qr image: decoded %q, want %q", text, want)
	}
	return nil
}

// runServe serves the QR image until SIGINT or SIGTERM.
func runServe(configPath string) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}

	// Fail fast on content that cannot be encoded.
	if _, err := qrimage.Encode(cfg.Content); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: api.NewRouter(&api.Server{
			Generator: qrimage.NewGenerator(log),
			Content:   cfg.Content,
			Log:       log,
			Version:   version,
			Started:   time.Now(),
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	}

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}
	return nil
}
