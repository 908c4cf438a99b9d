package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orenlab/fail2ban-api/pkg/api"
	"github.com/orenlab/fail2ban-api/pkg/config"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

var (
	configFile string
	host       string
	port       int
	logLevel   string
	clientPath string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fail2ban-api",
	Short: "HTTP API for fail2ban statistics",
	Long:  `A read-only HTTP API that exposes fail2ban service status, per-jail status and version as JSON by querying the local fail2ban-client`,
	Run:   runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().StringVar(&host, "host", "127.0.0.1", "Address to bind the API server to")
	rootCmd.Flags().IntVarP(&port, "port", "p", 8000, "API server port")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&clientPath, "client-path", "fail2ban-client", "fail2ban-client executable to invoke")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout for each fail2ban-client invocation")
}

func runServer(cmd *cobra.Command, args []string) {
	// Setup logging
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	// Load configuration; flags set explicitly override the file.
	cfg := config.Default()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Infof("Loaded configuration from %s", configFile)
	}

	if cmd.Flags().Changed("host") {
		cfg.API.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.API.Port = port
	}
	if cmd.Flags().Changed("client-path") {
		cfg.Fail2ban.ClientPath = clientPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Fail2ban.Timeout = timeout
	}
	cfg.API.LogLevel = logLevel

	client := fail2ban.NewClient(cfg.Fail2ban)

	server, err := api.NewAPIServer(cfg.API, client)
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	log.Infof("✓ API server started on http://%s:%d", cfg.API.Host, cfg.API.Port)

	// Wait for interrupt signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	<-sig
	log.Info("Shutting down...")

	if err := server.Stop(); err != nil {
		log.Errorf("Error stopping API server: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
