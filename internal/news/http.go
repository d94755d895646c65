package news

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamada-kensetsu/corporate-backend/config"
	"github.com/yamada-kensetsu/corporate-backend/internal/cache"
)

const (
	recentLimit    = 5
	CacheKeyRecent = "news:recent"
)

type Store interface {
	Recent(ctx context.Context, limit int) ([]Item, error)
}

// Cache mirrors the catalog cache surface; nil disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
}

type Handler struct {
	store Store
	cache Cache
}

func NewHandler(store Store, cache Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// Register attaches news routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/recent", h.recent)
}

// WarmSources lists the cache entries the warmer keeps fresh for news.
func WarmSources(store Store) []cache.Source {
	return []cache.Source{
		{Key: CacheKeyRecent, Fetch: func(ctx context.Context) (any, error) {
			return store.Recent(ctx, recentLimit)
		}},
	}
}

func (h *Handler) recent(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		var cached []Item
		hit, err := h.cache.GetJSON(ctx, CacheKeyRecent, &cached)
		if err != nil {
			config.Log.WithError(err).Warn("news cache read failed")
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	items, err := h.store.Recent(ctx, recentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recent news"})
		return
	}
	if items == nil {
		items = []Item{}
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(ctx, CacheKeyRecent, items); err != nil {
			config.Log.WithError(err).Warn("news cache write failed")
		}
	}
	c.JSON(http.StatusOK, items)
}
