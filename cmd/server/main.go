package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ganot/gong-mcp/internal/config"
	"github.com/ganot/gong-mcp/internal/domain/call"
	"github.com/ganot/gong-mcp/internal/domain/user"
	"github.com/ganot/gong-mcp/internal/gong"
	"github.com/ganot/gong-mcp/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		mode string
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "gong-mcp",
		Short: "MCP server for the Gong conversation intelligence API",
		Long: `gong-mcp exposes Gong calls, transcripts and users as MCP resources
and tools. It serves over stdio by default, or streamable HTTP with --mode http.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			// Flags win over env/file settings when set explicitly.
			if cmd.Flags().Changed("mode") {
				cfg.Transport.Mode = mode
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			} else if cfg.Transport.Mode == "http" && runningInDocker() {
				// Inside a container the loopback default is unreachable
				// from the host; bind all interfaces instead.
				cfg.Server.Host = "0.0.0.0"
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "stdio", "Transport mode: stdio or http")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "HTTP listen host (when --mode http)")
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port (when --mode http)")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	creds := cfg.Credentials()
	if !creds.Configured() {
		logger.Warn("gong credentials not set, serving status resource only")
	}

	client := gong.NewClient(creds.BaseURL, creds.AccessKey, creds.AccessKeySecret, nil)
	callSvc := call.NewService(client, logger)
	userSvc := user.NewService(client, logger)

	mcpServer := mcp.NewServer(mcp.Config{
		Credentials: creds,
		Calls:       callSvc,
		Users:       userSvc,
		Logger:      logger,
		Version:     version,
	})

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(ctx, logger, mcpServer)
	}
	return runHTTPMode(logger, mcpServer, cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) error {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// runningInDocker reports whether the process appears to be inside a
// container, via the DOCKER_ENV escape hatch, the /.dockerenv marker, or a
// docker entry in the init cgroup.
func runningInDocker() bool {
	if os.Getenv("DOCKER_ENV") != "" {
		return true
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "docker")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
