package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/jetstream-ai/warden/internal/api"
	"github.com/jetstream-ai/warden/internal/extract"
	"github.com/jetstream-ai/warden/internal/guard"
	"github.com/jetstream-ai/warden/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Logger
	logger := mustBuildLogger(envOrDefault("WARDEN_LOG_LEVEL", "info"))
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Config from env
	httpPort := envOrDefault("WARDEN_HTTP_PORT", "8080")
	dataDir := envOrDefault("WARDEN_DATA_DIR", "./data")
	maxUpload := envOrDefaultInt("WARDEN_MAX_UPLOAD_BYTES", 0)
	remoteTimeoutMs := envOrDefaultInt("WARDEN_REMOTE_TIMEOUT_MS", 5000)
	piiEndpoint := os.Getenv("WARDEN_PII_ENDPOINT")
	secretsEndpoint := os.Getenv("WARDEN_SECRETS_ENDPOINT")

	logger.Info("starting warden server",
		zap.String("http_port", httpPort),
		zap.String("data_dir", dataDir),
	)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logger.Fatal("failed to create data dir", zap.Error(err))
	}

	// Validators — remote when an endpoint is configured, built-in otherwise.
	remoteTimeout := time.Duration(remoteTimeoutMs) * time.Millisecond
	var pii guard.Validator = guard.NewPIIValidator()
	if piiEndpoint != "" {
		remote, err := guard.NewRemoteValidator("pii", piiEndpoint, remoteTimeout, logger)
		if err != nil {
			logger.Error("failed to create remote pii validator, using built-in",
				zap.String("endpoint", piiEndpoint),
				zap.Error(err),
			)
		} else {
			pii = remote
		}
	}
	var secrets guard.Validator = guard.NewSecretsValidator()
	if secretsEndpoint != "" {
		remote, err := guard.NewRemoteValidator("secrets", secretsEndpoint, remoteTimeout, logger)
		if err != nil {
			logger.Error("failed to create remote secrets validator, using built-in",
				zap.String("endpoint", secretsEndpoint),
				zap.Error(err),
			)
		} else {
			secrets = remote
		}
	}

	deps := &api.Dependencies{
		Events:    store.NewEventStore(filepath.Join(dataDir, "events.json")),
		Approvals: store.NewApprovalStore(filepath.Join(dataDir, "approvals.json")),
		Guard:     guard.New(pii, secrets, logger),
		Extractor: extract.New(int64(maxUpload)),
		Logger:    logger,
	}

	httpServer := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Block until shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	logger.Info("warden server stopped")
}

func mustBuildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
