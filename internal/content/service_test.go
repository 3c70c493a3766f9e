package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"contenthub/internal/source"
	"contenthub/pkg/models"
)

func writeSource(t *testing.T, dir, name string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), b, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixturePodcasts() []models.Podcast {
	return []models.Podcast{
		{
			ID:        "p1",
			Title:     "Growth Stories",
			Publisher: "Acme Media",
			Episodes: []models.Episode{
				{ID: "e1", Title: "Scaling Up", Description: "about scale", DurationMS: 1800000},
				{ID: "dup-1", Title: "Hiring Well", Description: "about hiring"},
			},
		},
		{
			ID:        "p2",
			Title:     "Founders Weekly",
			Publisher: "Indie Pub",
			Episodes: []models.Episode{
				{ID: "e3", Title: "Alpha Hour"},
			},
		},
		{
			ID:    "p3",
			Title: "Silent Feed",
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()

	writeSource(t, dir, "podcasts", fixturePodcasts())
	writeSource(t, dir, "videos", []models.Video{
		{ID: "dup-1", Title: "Alpha Lessons", Channel: "BizChannel"},
		{ID: "v2", Title: "Market Analysis Basics"},
	})
	writeSource(t, dir, "books", []models.Book{
		{ID: "b1", Title: "Alpha Reads"},
	})
	writeSource(t, dir, "articles", []models.Article{
		{ID: "a1", Title: "Alpha Notes"},
	})
	writeSource(t, dir, "library", []models.LibraryEntry{
		{ID: "l1", Title: "Alpha Links"},
	})

	store := source.NewStore(dir)
	return NewService(store, NewSnapshot(store))
}

func TestFlattenCountsEpisodes(t *testing.T) {
	podcasts := fixturePodcasts()

	items := Flatten(podcasts)

	want := 0
	for _, p := range podcasts {
		want += len(p.Episodes)
	}
	if len(items) != want {
		t.Fatalf("flatten produced %d items, want %d", len(items), want)
	}
}

func TestFlattenOrderAndBackReferences(t *testing.T) {
	items := Flatten(fixturePodcasts())

	first, ok := items[0].(models.FlatEpisode)
	if !ok {
		t.Fatalf("flatten produced %T, want FlatEpisode", items[0])
	}
	if first.EpisodeID != "e1" || first.PodcastID != "p1" {
		t.Errorf("wrong first record: episode %s, podcast %s", first.EpisodeID, first.PodcastID)
	}
	if first.Kind != models.KindEpisode {
		t.Errorf("flattened record kind = %s, want episode", first.Kind)
	}
	if first.PodcastTitle != "Growth Stories" || first.Publisher != "Acme Media" {
		t.Errorf("parent fields not copied: %+v", first)
	}
	if first.Categories == nil {
		t.Error("missing categories should default to an empty slice")
	}
}

func TestPaginateSliceLength(t *testing.T) {
	items := make([]models.Item, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, models.Video{ID: fmt.Sprintf("v%d", i), Title: "t"})
	}

	cases := []struct {
		page, limit, wantLen, wantPages int
	}{
		{1, 2, 2, 3},
		{3, 2, 1, 3},
		{1, 10, 5, 1},
		{2, 5, 0, 1},
	}
	for _, tc := range cases {
		p := Paginate(items, tc.page, tc.limit)
		if len(p.Content) != tc.wantLen {
			t.Errorf("page=%d limit=%d: got %d items, want %d", tc.page, tc.limit, len(p.Content), tc.wantLen)
		}
		if p.TotalPages != tc.wantPages {
			t.Errorf("page=%d limit=%d: totalPages=%d, want %d", tc.page, tc.limit, p.TotalPages, tc.wantPages)
		}
		if p.Total != 5 {
			t.Errorf("total=%d, want 5", p.Total)
		}
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	items := make([]models.Item, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, models.Video{ID: fmt.Sprintf("v%d", i), Title: "t"})
	}

	p := Paginate(items, 11, 10)

	if len(p.Content) != 0 {
		t.Errorf("out-of-range page returned %d items, want 0", len(p.Content))
	}
	if p.Content == nil {
		t.Error("content should be an empty slice, not nil")
	}
	if p.Total != 100 || p.TotalPages != 10 {
		t.Errorf("total=%d totalPages=%d, want 100/10", p.Total, p.TotalPages)
	}
}

func TestPaginateReturnsOnlyKnownItems(t *testing.T) {
	items := make([]models.Item, 0, 20)
	known := map[string]bool{}
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("v%d", i)
		known[id] = true
		items = append(items, models.Video{ID: id, Title: "t"})
	}

	// Ordering is intentionally random: assert membership only.
	p := Paginate(items, 2, 7)
	if len(p.Content) != 7 {
		t.Fatalf("got %d items, want 7", len(p.Content))
	}
	for _, it := range p.Content {
		if !known[it.ItemID()] {
			t.Errorf("unknown item %s in page", it.ItemID())
		}
	}
}

func TestSearchMatchesEpisodeTitleNotPodcastTitle(t *testing.T) {
	svc := newTestService(t)

	// "stories" appears only in a podcast title, which episodes do not
	// match against.
	p := svc.Search("stories", 1, 10)
	if p.Total != 0 {
		t.Errorf("podcast-title match leaked into results: total=%d", p.Total)
	}

	p = svc.Search("SCALING", 1, 10)
	if p.Total != 1 {
		t.Fatalf("case-insensitive episode match failed: total=%d", p.Total)
	}
	ep, ok := p.Content[0].(models.FlatEpisode)
	if !ok || ep.EpisodeID != "e1" {
		t.Errorf("wrong match: %+v", p.Content[0])
	}
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	svc := newTestService(t)

	p := svc.Search("   ", 1, 100)

	if p.Total != len(svc.All()) {
		t.Errorf("empty query total=%d, want %d", p.Total, len(svc.All()))
	}
}

func TestSearchKeepsConcatenationOrder(t *testing.T) {
	svc := newTestService(t)

	p := svc.Search("alpha", 1, 10)

	wantKinds := []models.Kind{
		models.KindEpisode,
		models.KindVideo,
		models.KindBook,
		models.KindArticle,
		models.KindLibrary,
	}
	if p.Total != len(wantKinds) {
		t.Fatalf("total=%d, want %d", p.Total, len(wantKinds))
	}
	for i, it := range p.Content {
		if it.ItemKind() != wantKinds[i] {
			t.Errorf("position %d: kind=%s, want %s", i, it.ItemKind(), wantKinds[i])
		}
	}
	if p.Query != "alpha" {
		t.Errorf("query not echoed: %q", p.Query)
	}
}

func TestLookupPrefersEpisodeOverVideo(t *testing.T) {
	svc := newTestService(t)

	// "dup-1" exists both as an episode and as a video; the episode wins.
	it, err := svc.Lookup("dup-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if it.ItemKind() != models.KindEpisode {
		t.Errorf("kind=%s, want episode", it.ItemKind())
	}
}

func TestLookupWholePodcast(t *testing.T) {
	svc := newTestService(t)

	it, err := svc.Lookup("p1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	p, ok := it.(models.Podcast)
	if !ok {
		t.Fatalf("got %T, want Podcast", it)
	}
	if p.Kind != models.KindPodcast {
		t.Errorf("kind discriminator not stamped: %q", p.Kind)
	}
}

func TestLookupMissingID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Lookup("missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestPodcastOrEpisodeResolution(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.PodcastOrEpisode("p1")
	if err != nil {
		t.Fatalf("podcast id lookup failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("podcast id should resolve to its %d episodes, got %d", 2, len(items))
	}

	items, err = svc.PodcastOrEpisode("e3")
	if err != nil {
		t.Fatalf("episode id lookup failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("episode id should resolve to 1 record, got %d", len(items))
	}

	if _, err := svc.PodcastOrEpisode("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCollectionUnknownKind(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Collection("garbage"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestBrokenSourceDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "podcasts", fixturePodcasts())
	writeSource(t, dir, "videos", []models.Video{{ID: "v1", Title: "Still Served"}})
	if err := os.WriteFile(filepath.Join(dir, "books.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := source.NewStore(dir)
	svc := NewService(store, NewSnapshot(store))

	books, err := svc.Collection(models.KindBook)
	if err != nil {
		t.Fatalf("broken source must not error on the read path: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("broken source returned %d items, want 0", len(books))
	}

	// Other kinds are unaffected.
	videos, _ := svc.Collection(models.KindVideo)
	if len(videos) != 1 {
		t.Errorf("healthy kind broken by sibling source: %d videos", len(videos))
	}
}
