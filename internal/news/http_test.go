package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	items []Item
	err   error
}

func (s *fakeStore) Recent(_ context.Context, limit int) ([]Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.items) > limit {
		return s.items[:limit], nil
	}
	return s.items, nil
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store, nil).Register(r.Group("/api/news"))
	return r
}

func seedNews(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			ID:      n - i,
			Title:   "お知らせ",
			Content: "本文",
			Date:    time.Date(2024, 6, 30-i, 0, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func TestRecentNews_AtMostFive(t *testing.T) {
	r := newRouter(&fakeStore{items: seedNews(8)})

	req := httptest.NewRequest(http.MethodGet, "/api/news/recent", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var items []Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Date.After(items[i-1].Date))
	}
}

func TestRecentNews_EmptyIsArray(t *testing.T) {
	r := newRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/news/recent", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestRecentNews_StorageError(t *testing.T) {
	r := newRouter(&fakeStore{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/news/recent", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch recent news")
}
