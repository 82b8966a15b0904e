package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pantry/internal/api"
	"pantry/internal/config"
	"pantry/internal/monitoring"
	"pantry/internal/pantry"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pantry HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "API server port (overrides config)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	setGinMode(cfg.LogLevel)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	metricsCollector := monitoring.NewMetricsCollector()
	pantryAPI := api.NewPantryAPI(
		pantry.NewAnalyzer(catalog),
		pantry.NewInventory(catalog),
		metricsCollector,
		api.Options{
			JWTSecret:      cfg.Auth.JWTSecret,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
	)

	servers := []*http.Server{{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: pantryAPI.Router,
	}}
	if cfg.MetricsConfig.Enabled {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET(cfg.MetricsConfig.Path, gin.WrapH(metricsCollector.Handler()))
		servers = append(servers, &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.MetricsConfig.Port),
			Handler: metricsRouter,
		})
	}

	errCh := make(chan error, len(servers))
	for _, server := range servers {
		go func(server *http.Server) {
			log.Printf("Starting server on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("server %s: %w", server.Addr, err)
			}
		}(server)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		log.Println("Shutting down servers...")
	case serveErr = <-errCh:
		log.Printf("Server error: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, server := range servers {
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server %s shutdown error: %v", server.Addr, err)
		}
	}
	return serveErr
}

func setGinMode(level string) {
	switch level {
	case "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}
