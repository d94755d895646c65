package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yamada-kensetsu/corporate-backend/config"
	"github.com/yamada-kensetsu/corporate-backend/internal/cache"
	"github.com/yamada-kensetsu/corporate-backend/internal/catalog/domain"
)

const (
	featuredLimit = 4
	recentLimit   = 3
)

// Cache keys for the fixed homepage views, shared with the warmer.
const (
	CacheKeyFeatured = "catalog:featured"
	CacheKeyRecent   = "catalog:recent"
)

// ProjectStore is the read surface the handlers need from storage.
type ProjectStore interface {
	List(ctx context.Context, f domain.ListFilter) ([]domain.Project, int, error)
	Featured(ctx context.Context, limit int) ([]domain.Project, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	Completed(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int) (*domain.Project, error)
}

// Cache is the optional read-through cache for the homepage views.
// A nil Cache means every read goes to storage.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
}

type Handler struct {
	store ProjectStore
	cache Cache
}

func NewHandler(store ProjectStore, cache Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// intQuery parses an integer query parameter. Malformed values are an
// error, not a silent zero: the caller gets a 400 naming the parameter.
func intQuery(c *gin.Context, name string) (value int, present bool, err error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s parameter", name)
	}
	return v, true, nil
}

func (h *Handler) list(c *gin.Context) {
	f := domain.ListFilter{
		Category: c.Query("category"),
		Region:   c.Query("region"),
	}

	var err error
	if f.Year, _, err = intQuery(c, "year"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if f.Page, _, err = intQuery(c, "page"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if f.PageSize, _, err = intQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	f = f.Normalize()
	projects, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	c.JSON(http.StatusOK, listResponse{
		Projects: projects,
		Pagination: paginationMeta{
			Total: total,
			Pages: domain.PageCount(total, f.PageSize),
			// The requested page is echoed back even when it is past
			// the last page; the client decides what to do with it.
			Current: f.Page,
		},
	})
}

func (h *Handler) featured(c *gin.Context) {
	h.cachedList(c, CacheKeyFeatured, "Failed to fetch featured projects", func(ctx context.Context) ([]domain.Project, error) {
		return h.store.Featured(ctx, featuredLimit)
	})
}

func (h *Handler) recent(c *gin.Context) {
	h.cachedList(c, CacheKeyRecent, "Failed to fetch recent projects", func(ctx context.Context) ([]domain.Project, error) {
		return h.store.Recent(ctx, recentLimit)
	})
}

func (h *Handler) byRegion(c *gin.Context) {
	projects, err := h.store.Completed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects by region"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return
	}

	p, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) categories(c *gin.Context) {
	out := make([]categoryInfo, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		out = append(out, categoryInfo{ID: string(cat), Label: cat.Label()})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) regions(c *gin.Context) {
	out := make([]categoryInfo, 0, len(domain.Regions()))
	for _, r := range domain.Regions() {
		out = append(out, categoryInfo{ID: string(r), Label: r.Label()})
	}
	c.JSON(http.StatusOK, out)
}

// WarmSources lists the cache entries the warmer keeps fresh for this
// package, with the same keys and limits the handlers serve.
func WarmSources(store ProjectStore) []cache.Source {
	return []cache.Source{
		{Key: CacheKeyFeatured, Fetch: func(ctx context.Context) (any, error) {
			return store.Featured(ctx, featuredLimit)
		}},
		{Key: CacheKeyRecent, Fetch: func(ctx context.Context) (any, error) {
			return store.Recent(ctx, recentLimit)
		}},
	}
}

// cachedList serves a fixed homepage view through the cache when one is
// configured. Cache failures are logged and fall back to storage; they
// never surface to the caller.
func (h *Handler) cachedList(c *gin.Context, key, failMsg string, fetch func(context.Context) ([]domain.Project, error)) {
	ctx := c.Request.Context()

	if h.cache != nil {
		var cached []domain.Project
		hit, err := h.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			config.Log.WithError(err).WithField("key", key).Warn("cache read failed")
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	projects, err := fetch(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": failMsg})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(ctx, key, projects); err != nil {
			config.Log.WithError(err).WithField("key", key).Warn("cache write failed")
		}
	}
	c.JSON(http.StatusOK, projects)
}
