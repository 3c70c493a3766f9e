package podcast

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Refresher runs the upstream catalog synchronization and reports how many
// shows were fetched.
type Refresher interface {
	Run(ctx context.Context) (int, error)
}

type Handler struct {
	Repo      *Repo
	Refresher Refresher
}

func NewHandler(repo *Repo, refresher Refresher) *Handler {
	return &Handler{Repo: repo, Refresher: refresher}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/podcasts", h.list)
	rg.GET("/podcasts/refresh", h.refresh)
}

func (h *Handler) list(c *gin.Context) {
	locale := strings.TrimSpace(c.Query("locale"))
	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.List(c.Request.Context(), locale, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) refresh(c *gin.Context) {
	n, err := h.Refresher.Run(c.Request.Context())
	if err != nil {
		log.Printf("[podcast] refresh failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%d items updated", n)})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
