package content

import (
	"errors"
	"math/rand"
	"strings"

	"contenthub/internal/source"
	"contenthub/pkg/models"
)

var (
	ErrNotFound    = errors.New("content not found")
	ErrUnknownKind = errors.New("unknown content kind")
)

// Service unifies the five content kinds under one query surface. Podcasts
// come from the startup snapshot; the other kinds are re-read from their
// sources on every request.
type Service struct {
	Sources  *source.Store
	Podcasts *Snapshot
}

func NewService(store *source.Store, snap *Snapshot) *Service {
	return &Service{Sources: store, Podcasts: snap}
}

// Page is the paginated response envelope.
type Page struct {
	Type       models.Kind   `json:"type,omitempty"`
	Query      string        `json:"query,omitempty"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	Content    []models.Item `json:"content"`
}

// Collection returns the servable items of one kind. The podcast kind is
// the flattened episode view.
func (s *Service) Collection(kind models.Kind) ([]models.Item, error) {
	switch kind {
	case models.KindPodcast, models.KindEpisode:
		return Flatten(s.Podcasts.Get()), nil
	case models.KindVideo:
		return toItems(s.Sources.Videos()), nil
	case models.KindBook:
		return toItems(s.Sources.Books()), nil
	case models.KindArticle:
		return toItems(s.Sources.Articles()), nil
	case models.KindLibrary:
		return toItems(s.Sources.Library()), nil
	default:
		return nil, ErrUnknownKind
	}
}

// All merges every kind into one collection, in the fixed order podcasts
// (flattened), videos, books, articles, library entries.
func (s *Service) All() []models.Item {
	items := Flatten(s.Podcasts.Get())
	items = append(items, toItems(s.Sources.Videos())...)
	items = append(items, toItems(s.Sources.Books())...)
	items = append(items, toItems(s.Sources.Articles())...)
	items = append(items, toItems(s.Sources.Library())...)
	return items
}

// Paginate re-shuffles the whole candidate set and slices one page out of
// it. The shuffle happens on every call: there is no stable ordering across
// pages, and consecutive fetches may repeat or skip items. That is the
// intended behavior for the randomized browse surface.
func Paginate(items []models.Item, page, limit int) Page {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return slicePage(items, page, limit)
}

// Search filters by case-insensitive substring containment on each item's
// search title (episode_title for episodes, title for everything else).
// Results keep the natural concatenation order across kinds; unlike plain
// pagination they are not shuffled. An empty trimmed query matches
// everything.
func (s *Service) Search(query string, page, limit int) Page {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Item, 0)
	for _, it := range s.All() {
		if q == "" || strings.Contains(strings.ToLower(it.SearchTitle()), q) {
			matched = append(matched, it)
		}
	}

	p := slicePage(matched, page, limit)
	p.Query = query
	return p
}

// Lookup resolves an opaque identifier by trying each kind's collection in
// a fixed precedence order: whole podcast, podcast episode, video, book,
// article, library entry. First match wins. Linear scans are fine here:
// the collections are small and lookups are rare relative to list reads.
func (s *Service) Lookup(id string) (models.Item, error) {
	podcasts := s.Podcasts.Get()
	for _, p := range podcasts {
		if p.ID == id {
			return PresentPodcast(p), nil
		}
	}
	for _, p := range podcasts {
		for _, e := range p.Episodes {
			if e.ID == id {
				return PresentEpisode(p, e), nil
			}
		}
	}
	if it, err := findByID(toItems(s.Sources.Videos()), id); err == nil {
		return it, nil
	}
	if it, err := findByID(toItems(s.Sources.Books()), id); err == nil {
		return it, nil
	}
	if it, err := findByID(toItems(s.Sources.Articles()), id); err == nil {
		return it, nil
	}
	if it, err := findByID(toItems(s.Sources.Library()), id); err == nil {
		return it, nil
	}
	return nil, ErrNotFound
}

// PodcastOrEpisode resolves an identifier against the podcast snapshot
// only. A podcast id resolves to all of its flattened episodes, an episode
// id to a single flattened record.
func (s *Service) PodcastOrEpisode(id string) ([]models.Item, error) {
	podcasts := s.Podcasts.Get()
	for _, p := range podcasts {
		if p.ID == id {
			return Flatten([]models.Podcast{p}), nil
		}
	}
	for _, p := range podcasts {
		for _, e := range p.Episodes {
			if e.ID == id {
				return []models.Item{PresentEpisode(p, e)}, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *Service) Video(id string) (models.Item, error) {
	return findByID(toItems(s.Sources.Videos()), id)
}

func (s *Service) Book(id string) (models.Item, error) {
	return findByID(toItems(s.Sources.Books()), id)
}

func (s *Service) Article(id string) (models.Item, error) {
	return findByID(toItems(s.Sources.Articles()), id)
}

func slicePage(items []models.Item, page, limit int) Page {
	total := len(items)

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	content := make([]models.Item, 0, end-start)
	content = append(content, items[start:end]...)

	return Page{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		Content:    content,
	}
}

func findByID(items []models.Item, id string) (models.Item, error) {
	for _, it := range items {
		if it.ItemID() == id {
			return it, nil
		}
	}
	return nil, ErrNotFound
}

func toItems[T models.Item](in []T) []models.Item {
	out := make([]models.Item, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}
	return out
}
