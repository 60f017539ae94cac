package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/web"
)

var (
	buildVersion = "N/A"
	buildCommit  = "N/A"
	buildDate    = "N/A"
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	configPath := parseFlags()

	appHost, appPort, gatewayURL, gatewayTimeoutSecond, logLevel, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(ctx, appHost, appPort, gatewayURL, gatewayTimeoutSecond, logLevel); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

func printBuildInfo() {
	fmt.Printf("Starting web client version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

func parseFlags() string {
	configPath := flag.String("c", "config.env", "path to .env config file")
	flag.Parse()
	return *configPath
}

func parseConfig(configPath string) (
	appHost, appPort string,
	gatewayURL string,
	gatewayTimeoutSecond int,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultVal string) string {
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		return defaultVal
	}

	appHost = getEnv("CLIENT_HOST", "localhost")
	appPort = getEnv("CLIENT_PORT", "5001")
	logLevel = getEnv("CLIENT_LOG_LEVEL", "info")

	gatewayURL = getEnv("GATEWAY_URL", "http://localhost:5000")
	if gatewayTimeoutSecond, err = strconv.Atoi(getEnv("GATEWAY_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	return
}

func run(ctx context.Context,
	appHost, appPort string,
	gatewayURL string,
	gatewayTimeoutSecond int,
	logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	defer logger.Sync()
	log := logger.Log

	gateway := web.NewClient(gatewayURL, time.Duration(gatewayTimeoutSecond)*time.Second)
	router := web.NewRouter(gateway, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: router,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("Web client listening on %s, gateway at %s", srv.Addr, gatewayURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
