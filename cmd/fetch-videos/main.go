// Command fetch-videos queries the video platform for lesson videos in each
// configured locale, canonicalizes the result and persists it as the videos
// source served by the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"contenthub/internal/canonical"
	"contenthub/internal/source"
	"contenthub/internal/youtube"
	"contenthub/pkg/models"
	"contenthub/pkg/utils"
)

func main() {
	var (
		query   = flag.String("query", "business", "search keyword")
		locales = flag.String("locales", "BR,US", "comma-separated region codes")
		limit   = flag.Int("limit", 10, "max results per locale")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := utils.LoadAppConfig()
	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	run := uuid.NewString()[:8]
	client := youtube.NewClient(cfg.YouTubeAPIKey)

	var videos []models.Video
	for _, locale := range strings.Split(*locales, ",") {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		found, err := client.SearchVideos(ctx, *query, locale, *limit)
		if err != nil {
			log.Fatalf("[fetch-videos] run %s: locale %s: %v", run, locale, err)
		}
		log.Printf("[fetch-videos] run %s: locale %s returned %d videos", run, locale, len(found))
		videos = append(videos, found...)
	}

	records, err := toRecords(videos)
	if err != nil {
		log.Fatalf("convert videos: %v", err)
	}
	records = canonical.Canonicalize(records)

	store := source.NewStore(cfg.DataDir)
	if err := store.Persist("videos", records); err != nil {
		log.Fatalf("persist videos: %v", err)
	}

	log.Printf("[fetch-videos] run %s: wrote %d videos to %s", run, len(records), cfg.DataDir)
}

func toRecords(videos []models.Video) ([]map[string]any, error) {
	b, err := json.Marshal(videos)
	if err != nil {
		return nil, err
	}
	var records []map[string]any
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}
