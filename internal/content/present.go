package content

import "contenthub/pkg/models"

// PresentPodcast stamps the kind discriminator on a whole-podcast record.
func PresentPodcast(p models.Podcast) models.Podcast {
	p.Kind = models.KindPodcast
	return p
}

// PresentEpisode renames a nested episode into the flattened shape served
// to clients, carrying the parent podcast back-reference.
func PresentEpisode(p models.Podcast, e models.Episode) models.FlatEpisode {
	cats := e.Categories
	if cats == nil {
		cats = []string{}
	}
	return models.FlatEpisode{
		Kind:         models.KindEpisode,
		PodcastID:    p.ID,
		PodcastTitle: p.Title,
		Publisher:    p.Publisher,
		EpisodeID:    e.ID,
		EpisodeTitle: e.Title,
		Description:  e.Description,
		ReleaseDate:  e.ReleaseDate,
		DurationMS:   e.DurationMS,
		URL:          e.URL,
		EmbedURL:     e.EmbedURL,
		ImageURL:     e.ImageURL,
		Categories:   cats,
	}
}
