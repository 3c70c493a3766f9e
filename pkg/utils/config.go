package utils

import "os"

type AppConfig struct {
	HTTPAddr            string
	DataDir             string
	SpotifyClientID     string
	SpotifyClientSecret string
	YouTubeAPIKey       string
}

func LoadAppConfig() AppConfig {
	addr := os.Getenv("CONTENTHUB_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dataDir := os.Getenv("CONTENTHUB_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return AppConfig{
		HTTPAddr:            addr,
		DataDir:             dataDir,
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		YouTubeAPIKey:       os.Getenv("YOUTUBE_API_KEY"),
	}
}
