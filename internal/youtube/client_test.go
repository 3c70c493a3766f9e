package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contenthub/pkg/models"
)

func TestSearchVideosParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("regionCode") != "BR" || q.Get("videoCategoryId") != "27" || q.Get("key") != "api-key" {
			t.Errorf("bad query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": {"videoId": "vid-1"},
					"snippet": {
						"title": "Business 101",
						"description": "intro",
						"channelTitle": "BizChannel",
						"thumbnails": {"high": {"url": "https://img/hi.jpg"}}
					}
				},
				{"id": {}, "snippet": {"title": "no video id"}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("api-key", WithBaseURL(srv.URL))

	videos, err := c.SearchVideos(context.Background(), "business", "BR", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1 (records without id dropped)", len(videos))
	}
	v := videos[0]
	if v.Kind != models.KindVideo || v.ID != "vid-1" || v.Channel != "BizChannel" {
		t.Errorf("bad video: %+v", v)
	}
	if v.EmbedURL != "https://www.youtube.com/embed/vid-1" {
		t.Errorf("embed url = %q", v.EmbedURL)
	}
	if v.Locale != "BR" {
		t.Errorf("locale = %q", v.Locale)
	}
	if len(v.Categories) != 1 || v.Categories[0] != "business" {
		t.Errorf("categories = %v", v.Categories)
	}
}

func TestSearchVideosUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("api-key", WithBaseURL(srv.URL))

	if _, err := c.SearchVideos(context.Background(), "business", "US", 10); err == nil {
		t.Error("expected error on upstream non-success")
	}
}
