// Command refresh runs the podcast refresh pipeline once against the
// durable store, without going through the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"contenthub/internal/podcast"
	"contenthub/internal/refresh"
	"contenthub/internal/spotify"
	"contenthub/pkg/database"
	"contenthub/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := utils.LoadAppConfig()
	if cfg.SpotifyClientID == "" || cfg.SpotifyClientSecret == "" {
		log.Fatal("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	catalog := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	pipeline := refresh.NewPipeline(catalog, podcast.NewRepo(db))

	n, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatalf("refresh failed: %v", err)
	}

	log.Printf("%d items updated", n)
}
