package content

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"contenthub/pkg/models"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.byKind)
	rg.GET("/content/all", h.all)
	rg.GET("/content/search", h.search)
	rg.GET("/content/item/:id", h.item)
	rg.GET("/content/podcast/:id", h.podcastOrEpisode)
	rg.GET("/content/video/:id", h.video)
	rg.GET("/content/book/:id", h.book)
	rg.GET("/content/article/:id", h.article)
	rg.POST("/content/reload", h.reload)
}

func (h *Handler) byKind(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	kind := models.Kind(strings.TrimSpace(c.DefaultQuery("kind", string(models.KindPodcast))))
	items, err := h.Service.Collection(kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown kind %q", kind)})
		return
	}

	p := Paginate(items, page, limit)
	p.Type = kind
	c.JSON(http.StatusOK, p)
}

func (h *Handler) all(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Paginate(h.Service.All(), page, limit))
}

func (h *Handler) search(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Service.Search(c.Query("q"), page, limit))
}

func (h *Handler) item(c *gin.Context) {
	it, err := h.Service.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) podcastOrEpisode(c *gin.Context) {
	items, err := h.Service.PodcastOrEpisode(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "podcast or episode not found"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) video(c *gin.Context) {
	h.single(c, h.Service.Video, "video not found")
}

func (h *Handler) book(c *gin.Context) {
	h.single(c, h.Service.Book, "book not found")
}

func (h *Handler) article(c *gin.Context) {
	h.single(c, h.Service.Article, "article not found")
}

func (h *Handler) single(c *gin.Context, find func(string) (models.Item, error), msg string) {
	it, err := find(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) reload(c *gin.Context) {
	n := h.Service.Podcasts.Reload()
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("snapshot reloaded: %d podcasts", n)})
}

// pageParams validates page/limit before any lookup work. page must be a
// positive integer; limit must be positive and is clamped to 100.
func pageParams(c *gin.Context) (page, limit int, ok bool) {
	page, limit = 1, 10

	if s := strings.TrimSpace(c.Query("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer >= 1"})
			return 0, 0, false
		}
		page = n
	}

	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer >= 1"})
			return 0, 0, false
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}

	return page, limit, true
}
