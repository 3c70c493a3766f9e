package models

// Video is a lesson video sourced from the video platform search.
type Video struct {
	Kind        Kind     `json:"kind,omitempty"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Channel     string   `json:"channel,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Locale      string   `json:"locale,omitempty"`
	EmbedURL    string   `json:"embed_url,omitempty"`
}

func (v Video) ItemID() string      { return v.ID }
func (v Video) ItemKind() Kind      { return KindVideo }
func (v Video) SearchTitle() string { return v.Title }

type Book struct {
	Kind        Kind     `json:"kind,omitempty"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author,omitempty"`
	URL         string   `json:"url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

func (b Book) ItemID() string      { return b.ID }
func (b Book) ItemKind() Kind      { return KindBook }
func (b Book) SearchTitle() string { return b.Title }

type Article struct {
	Kind        Kind     `json:"kind,omitempty"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author,omitempty"`
	URL         string   `json:"url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

func (a Article) ItemID() string      { return a.ID }
func (a Article) ItemKind() Kind      { return KindArticle }
func (a Article) SearchTitle() string { return a.Title }

// LibraryEntry is a curated external library link.
type LibraryEntry struct {
	Kind        Kind     `json:"kind,omitempty"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

func (l LibraryEntry) ItemID() string      { return l.ID }
func (l LibraryEntry) ItemKind() Kind      { return KindLibrary }
func (l LibraryEntry) SearchTitle() string { return l.Title }
