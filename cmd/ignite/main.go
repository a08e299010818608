package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/container"
)

type flagConfig struct {
	configPath string
	listen     string
}

func main() {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		config.Logger.WithError(err).WithField("config_path", flags.configPath).Fatal("Failed to load config")
	}
	if flags.listen != "" {
		cfg.Listen = flags.listen
	}

	config.InitLogger(cfg.LogLevel, cfg.Env)
	config.Logger.WithFields(logrus.Fields{
		"listen":   cfg.Listen,
		"env":      cfg.Env,
		"storage":  cfg.Storage.Driver,
		"timezone": cfg.Timezone,
	}).Info("Starting Ignite Guild")

	c, err := container.New(cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build application")
	}

	inLambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	startJobs(c, inLambda)

	if inLambda {
		config.Logger.Info("Running as Lambda handler")
		lambda.StartWithOptions(
			httpadapter.New(c.Handler()).ProxyWithContext,
			lambda.WithEnableSIGTERM(func() {
				ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
				defer cancel()
				if err := c.Close(ctx); err != nil {
					config.Logger.WithError(err).Warn("Failed to close storage")
				}
			}),
		)
		return
	}

	if err := serve(cfg.Listen, c); err != nil {
		config.Logger.WithError(err).Fatal("Server stopped with error")
	}
}

// startJobs starts background jobs unless running under Lambda, where the
// process is frozen between invocations and cron cannot fire on time.
func startJobs(c *container.Container, inLambda bool) bool {
	if !inLambda {
		c.Start()
		return true
	}
	if c.Scheduler != nil {
		config.Logger.Warn("Reminder reset job is disabled in Lambda mode")
	}
	return false
}

func serve(addr string, c *container.Container) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			c.Close(context.Background())
			return err
		}
	case <-ctx.Done():
		config.Logger.Info("Signal received, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Warn("Graceful shutdown failed")
	}
	if err := c.Close(shutdownCtx); err != nil {
		config.Logger.WithError(err).Warn("Failed to close storage")
	}
	config.Logger.Info("Ignite Guild stopped")
	return nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "config.yaml", "Path to config file (optional)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")

	flag.Parse()
	return cfg
}
