package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"companydir/pkg/companies"
	"companydir/pkg/config"
	"companydir/pkg/logger"
)

// @title           Company Directory API
// @version         1.0
// @description     Read-only API over the company directory: listings, details and valuation insights

// @BasePath  /

// @schemes   http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}

	repo, closeStore, err := openStore(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := companies.NewCompanyHandler(companies.NewCompanyService(repo))
	router := newRouter(cfg, log, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- serve(srv, cfg, log)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

// serve blocks on HTTP or HTTPS depending on cfg.TLS.
func serve(srv *http.Server, cfg config.Config, log *zap.Logger) error {
	if !cfg.TLS.Enable {
		log.Info("listening", zap.String("addr", srv.Addr), zap.Bool("tls", false))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen (HTTP): %w", err)
		}
		return nil
	}

	tlsConfig, certFile, keyFile, err := buildTLSConfig(cfg)
	if err != nil {
		return fmt.Errorf("TLS setup error: %w", err)
	}
	srv.TLSConfig = tlsConfig

	log.Info("listening", zap.String("addr", srv.Addr), zap.Bool("tls", true))
	if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen (TLS): %w", err)
	}
	return nil
}
