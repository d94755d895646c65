package contact

import (
	"bytes"
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
	created *Submission
	err     error
}

func (s *fakeStore) Create(_ context.Context, sub Submission) (*Submission, error) {
	if s.err != nil {
		return nil, s.err
	}
	sub.ID = 1
	sub.CreatedAt = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	s.created = &sub
	return &sub, nil
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store).Register(r.Group("/api/contact"))
	return r
}

func post(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubmit_Created(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := post(t, r, map[string]string{
		"name":    "山田太郎",
		"email":   "taro@example.com",
		"message": "お見積りをお願いします",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var sub Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	assert.Equal(t, 1, sub.ID)
	assert.Equal(t, "山田太郎", sub.Name)
	assert.Nil(t, sub.Company)

	require.NotNil(t, store.created)
	assert.Equal(t, "taro@example.com", store.created.Email)
}

func TestSubmit_MissingNameRejected(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := post(t, r, map[string]string{
		"email":   "a@b.com",
		"message": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Name, email and message are required")
	assert.Nil(t, store.created, "nothing must be persisted on a validation error")
}

func TestSubmit_MissingMessageRejected(t *testing.T) {
	r := newRouter(&fakeStore{})

	rr := post(t, r, map[string]string{
		"name":  "山田太郎",
		"email": "a@b.com",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_WhitespaceOnlyFieldRejected(t *testing.T) {
	r := newRouter(&fakeStore{})

	rr := post(t, r, map[string]string{
		"name":    "   ",
		"email":   "a@b.com",
		"message": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_MalformedEmailRejected(t *testing.T) {
	r := newRouter(&fakeStore{})

	rr := post(t, r, map[string]string{
		"name":    "山田太郎",
		"email":   "not-an-email",
		"message": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "valid email")
}

func TestSubmit_OptionalFieldsStored(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := post(t, r, map[string]string{
		"name":    "山田太郎",
		"email":   "taro@example.com",
		"company": "山田建材株式会社",
		"phone":   "0274-00-0000",
		"message": "折り返しお願いします",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, store.created)
	require.NotNil(t, store.created.Company)
	assert.Equal(t, "山田建材株式会社", *store.created.Company)
	require.NotNil(t, store.created.Phone)
	assert.Equal(t, "0274-00-0000", *store.created.Phone)
}

func TestSubmit_StorageError(t *testing.T) {
	r := newRouter(&fakeStore{err: errors.New("insert failed")})

	rr := post(t, r, map[string]string{
		"name":    "山田太郎",
		"email":   "taro@example.com",
		"message": "hi",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to submit contact form")
}

func TestSubmit_InvalidJSON(t *testing.T) {
	r := newRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
