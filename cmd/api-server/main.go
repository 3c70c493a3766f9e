package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"contenthub/internal/content"
	"contenthub/internal/podcast"
	"contenthub/internal/refresh"
	"contenthub/internal/source"
	"contenthub/internal/spotify"
	"contenthub/pkg/database"
	"contenthub/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	appCfg := utils.LoadAppConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	store := source.NewStore(appCfg.DataDir)
	snapshot := content.NewSnapshot(store)

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"db":       "ok",
			"podcasts": len(snapshot.Get()),
		})
	})

	api := router.Group("/api/v1")

	// Content read surface (public)
	contentSvc := content.NewService(store, snapshot)
	contentHandler := content.NewHandler(contentSvc)
	contentHandler.RegisterRoutes(api)

	// Durable podcasts + refresh pipeline
	podcastRepo := podcast.NewRepo(db)
	catalog := spotify.NewClient(appCfg.SpotifyClientID, appCfg.SpotifyClientSecret)
	pipeline := refresh.NewPipeline(catalog, podcastRepo)
	podcastHandler := podcast.NewHandler(podcastRepo, pipeline)
	podcastHandler.RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:    appCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", appCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}

	log.Println("server stopped")
}
