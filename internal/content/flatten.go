package content

import "contenthub/pkg/models"

// Flatten expands nested podcasts into independent episode records, one per
// episode, in podcast order then episode order. A podcast without episodes
// contributes nothing.
func Flatten(podcasts []models.Podcast) []models.Item {
	out := make([]models.Item, 0)
	for _, p := range podcasts {
		for _, e := range p.Episodes {
			out = append(out, PresentEpisode(p, e))
		}
	}
	return out
}
