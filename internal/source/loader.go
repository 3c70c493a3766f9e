package source

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"contenthub/pkg/models"
)

// Store reads named content collections from JSON files in a single
// directory. The typed readers are tolerant: a missing or corrupt source
// degrades to an empty collection with a diagnostic, so one broken kind
// never fails requests for the others.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

func (s *Store) read(name string, out any) error {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read source %q: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode source %q: %w", name, err)
	}
	return nil
}

func (s *Store) Podcasts() []models.Podcast {
	var out []models.Podcast
	if err := s.read("podcasts", &out); err != nil {
		log.Printf("[source] podcasts unavailable: %v", err)
		return nil
	}
	return out
}

func (s *Store) Videos() []models.Video {
	var out []models.Video
	if err := s.read("videos", &out); err != nil {
		log.Printf("[source] videos unavailable: %v", err)
		return nil
	}
	for i := range out {
		out[i].Kind = models.KindVideo
	}
	return out
}

func (s *Store) Books() []models.Book {
	var out []models.Book
	if err := s.read("books", &out); err != nil {
		log.Printf("[source] books unavailable: %v", err)
		return nil
	}
	for i := range out {
		out[i].Kind = models.KindBook
	}
	return out
}

func (s *Store) Articles() []models.Article {
	var out []models.Article
	if err := s.read("articles", &out); err != nil {
		log.Printf("[source] articles unavailable: %v", err)
		return nil
	}
	for i := range out {
		out[i].Kind = models.KindArticle
	}
	return out
}

func (s *Store) Library() []models.LibraryEntry {
	var out []models.LibraryEntry
	if err := s.read("library", &out); err != nil {
		log.Printf("[source] library unavailable: %v", err)
		return nil
	}
	for i := range out {
		out[i].Kind = models.KindLibrary
	}
	return out
}
