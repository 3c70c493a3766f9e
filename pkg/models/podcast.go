package models

import "time"

// Podcast is the nested source representation: a show that owns an ordered
// list of episodes. Episodes have no lifecycle of their own until they are
// flattened for serving.
type Podcast struct {
	Kind          Kind      `json:"kind,omitempty"`
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Publisher     string    `json:"publisher"`
	URL           string    `json:"url,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	Locale        string    `json:"locale,omitempty"`
	TotalEpisodes int       `json:"total_episodes,omitempty"`
	Episodes      []Episode `json:"episodes,omitempty"`
}

func (p Podcast) ItemID() string      { return p.ID }
func (p Podcast) ItemKind() Kind      { return KindPodcast }
func (p Podcast) SearchTitle() string { return p.Title }

// Episode is an episode as it appears nested inside its podcast.
type Episode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	DurationMS  int64    `json:"duration_ms"`
	URL         string   `json:"url,omitempty"`
	EmbedURL    string   `json:"embed_url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// FlatEpisode is the flattened, independently servable episode record. The
// podcast fields are a non-owning back-reference used only for lookup.
type FlatEpisode struct {
	Kind         Kind     `json:"kind"`
	PodcastID    string   `json:"podcast_id"`
	PodcastTitle string   `json:"podcast_title"`
	Publisher    string   `json:"publisher"`
	EpisodeID    string   `json:"episode_id"`
	EpisodeTitle string   `json:"episode_title"`
	Description  string   `json:"description"`
	ReleaseDate  string   `json:"release_date"`
	DurationMS   int64    `json:"duration_ms"`
	URL          string   `json:"url,omitempty"`
	EmbedURL     string   `json:"embed_url,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Categories   []string `json:"categories"`
}

func (e FlatEpisode) ItemID() string      { return e.EpisodeID }
func (e FlatEpisode) ItemKind() Kind      { return KindEpisode }
func (e FlatEpisode) SearchTitle() string { return e.EpisodeTitle }

// CatalogPodcast is a podcast row synchronized from the upstream catalog
// into the durable store by the refresh pipeline.
type CatalogPodcast struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Publisher     string    `json:"publisher"`
	URL           string    `json:"url,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Categories    []string  `json:"categories"`
	Locale        string    `json:"locale"`
	TotalEpisodes int       `json:"total_episodes"`
	UpdatedAt     time.Time `json:"updated_at"`
}
