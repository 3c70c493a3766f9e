package models

// Kind tags a content record with the category it belongs to.
type Kind string

const (
	KindPodcast Kind = "podcast"
	KindEpisode Kind = "episode"
	KindVideo   Kind = "video"
	KindBook    Kind = "book"
	KindArticle Kind = "article"
	KindLibrary Kind = "library"
)

// Item is the uniform element of the merged content collection. Every
// served record, whatever its kind, resolves to one of these.
type Item interface {
	ItemID() string
	ItemKind() Kind
	// SearchTitle is the title field substring search matches against.
	SearchTitle() string
}
