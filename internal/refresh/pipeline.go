// Package refresh re-synchronizes the durable podcast collection from the
// upstream streaming catalog. It is caller-triggered (HTTP endpoint or the
// refresh command), never scheduled in-process.
package refresh

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"contenthub/internal/podcast"
	"contenthub/internal/spotify"
	"contenthub/pkg/models"
)

// Catalog is the upstream capability the pipeline consumes: an access
// credential plus the current top shows for a locale.
type Catalog interface {
	Token(ctx context.Context) (string, error)
	TopShows(ctx context.Context, token, locale string, limit int) ([]spotify.Show, error)
}

type Pipeline struct {
	Catalog  Catalog
	Repo     *podcast.Repo
	Locales  []string
	Limit    int
	Category string
}

func NewPipeline(catalog Catalog, repo *podcast.Repo) *Pipeline {
	return &Pipeline{
		Catalog:  catalog,
		Repo:     repo,
		Locales:  []string{"BR", "US"},
		Limit:    25,
		Category: "business",
	}
}

// Run fetches the top shows for every configured locale and replaces the
// stored podcast set with the result. Any token or locale fetch failure
// aborts before anything is written: the refresh is all-or-nothing, so the
// reported count is never a partial success dressed up as a complete one.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	run := uuid.NewString()[:8]
	log.Printf("[refresh] run %s: fetching top %d shows for locales %v", run, p.Limit, p.Locales)

	token, err := p.Catalog.Token(ctx)
	if err != nil {
		return 0, fmt.Errorf("access token: %w", err)
	}

	var rows []models.CatalogPodcast
	for _, locale := range p.Locales {
		shows, err := p.Catalog.TopShows(ctx, token, locale, p.Limit)
		if err != nil {
			return 0, fmt.Errorf("fetch top shows for %s: %w", locale, err)
		}
		for _, show := range shows {
			rows = append(rows, models.CatalogPodcast{
				ID:            show.ID,
				Title:         show.Name,
				Description:   show.Description,
				Publisher:     show.Publisher,
				URL:           show.URL,
				ImageURL:      show.ImageURL,
				Categories:    []string{p.Category},
				Locale:        locale,
				TotalEpisodes: show.TotalEpisodes,
			})
		}
		log.Printf("[refresh] run %s: locale %s returned %d shows", run, locale, len(shows))
	}

	if err := p.Repo.ReplaceAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("replace podcasts: %w", err)
	}

	log.Printf("[refresh] run %s: stored %d podcasts", run, len(rows))
	return len(rows), nil
}
