package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery-service/config"
	"bakery-service/internal/api"
	"bakery-service/internal/models"
	"bakery-service/internal/service"
	"bakery-service/internal/session"
	"bakery-service/internal/store"
	"bakery-service/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting bakery service")

	tp, err := util.InitTracer("bakery-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	settings := models.SiteSettings{
		SiteName:       cfg.Site.Name,
		LogoURL:        cfg.Site.LogoURL,
		PrimaryColor:   cfg.Site.PrimaryColor,
		SecondaryColor: cfg.Site.SecondaryColor,
	}
	sessions := session.NewManager(func() store.AppState {
		return store.NewState(models.SeedProducts(), settings)
	})

	ids := service.UUIDGenerator{}
	checkoutService := service.NewCheckoutService(ids, nil)
	authService := service.NewAuthService(cfg.Admin.Email, cfg.Admin.Password)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(sessions, checkoutService, authService, ids, cfg.Checkout.ConfirmationSeconds)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
