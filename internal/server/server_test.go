package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, _ := newTestServerStore(t)
	return srv
}

func newTestServerStore(t *testing.T) (*Server, *store.SQLiteStore) {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "lessons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Put(context.Background(), store.PutParams{Name: "odds", Values: model.Sequence{1, 3, 5, 7, 9, 11, 13, 15}})
	require.NoError(t, err)

	return New(Options{Lessons: s, Seed: 1}), s
}

// brokenStore fails every read the way a corrupt or locked db file would.
type brokenStore struct{}

var errDisk = errors.New("disk I/O error")

func (brokenStore) Put(context.Context, store.PutParams) (*model.Lesson, error) { return nil, errDisk }
func (brokenStore) Get(context.Context, store.GetParams) ([]model.Lesson, error) {
	return nil, errDisk
}
func (brokenStore) List(context.Context, store.ListParams) ([]model.Lesson, error) {
	return nil, errDisk
}
func (brokenStore) Rm(context.Context, store.RmParams) error { return errDisk }
func (brokenStore) Touch(context.Context, string) error { return errDisk }
func (brokenStore) Close() error { return nil }

func do(t *testing.T, srv http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestSearch_Found(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/search", SearchRequest{List: "1,3,5,7,9,11,13,15", Target: "7"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Found)
	assert.Equal(t, 3, resp.Result.Index)
	assert.Equal(t, 1, resp.Result.Comparisons)
	assert.Equal(t, model.FinalState{Highlight: 3}, resp.Final)
}

func TestSearch_Lesson(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/search", SearchRequest{Lesson: "odds", Target: "2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Result.Found)
	assert.Equal(t, 3, resp.Result.Comparisons)
	assert.True(t, resp.Final.Excluded)
}

func TestSearch_UnknownLesson(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/search", SearchRequest{Lesson: "evens", Target: "2"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "lesson_not_found")
}

func TestSearch_LessonCountsUse(t *testing.T) {
	srv, s := newTestServerStore(t)
	ctx := context.Background()

	got, err := s.Get(ctx, store.GetParams{Name: "odds"})
	require.NoError(t, err)
	assert.Equal(t, 0, got[0].UseCount)

	rec := do(t, srv, http.MethodPost, "/api/search", SearchRequest{Lesson: "odds", Target: "7"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, srv, http.MethodGet, "/?lesson=odds&target=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got, err = s.Get(ctx, store.GetParams{Name: "odds"})
	require.NoError(t, err)
	assert.Equal(t, 2, got[0].UseCount)
	assert.NotNil(t, got[0].LastUsedAt)
}

func TestLessonStoreFailure(t *testing.T) {
	srv := New(Options{Lessons: brokenStore{}})

	rec := do(t, srv, http.MethodPost, "/api/search", SearchRequest{Lesson: "odds", Target: "2"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"internal"`)
	assert.NotContains(t, rec.Body.String(), "disk I/O")

	rec = do(t, srv, http.MethodGet, "/?lesson=odds&target=2", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not load lesson")
	assert.NotContains(t, rec.Body.String(), "disk I/O")
}

func TestAccessLogRecordsPanic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := New(Options{Logger: zap.New(core)})
	srv.mux.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := do(t, srv, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("request done").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/boom", fields["path"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status"])
}

func TestSearch_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		req  SearchRequest
		kind parse.Kind
	}{
		{SearchRequest{List: "", Target: "1"}, parse.EmptyInput},
		{SearchRequest{List: "1,2", Target: ""}, parse.MissingTarget},
		{SearchRequest{List: "1,x", Target: "1"}, parse.NotAnInteger},
		{SearchRequest{List: "[]", Target: "1"}, parse.EmptyList},
		{SearchRequest{List: "5,3,1", Target: "3"}, parse.NotSorted},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/search", tt.req)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.kind), resp.Error.Kind)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestSearch_BadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRandom(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/random?size=12", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	seq, err := parse.Sequence(resp["list"], parse.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, seq, 12)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/random?size=abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/random?size=500", nil).Code)
}

func TestPage(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
	assert.NotContains(t, rec.Body.String(), "Step-by-step")

	rec = do(t, srv, http.MethodGet, "/?list=1,3,5,7,9,11,13,15&target=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Target 7 found at index 3.")

	rec = do(t, srv, http.MethodGet, "/?lesson=odds&target=15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Target 15 found at index 7.")

	rec = do(t, srv, http.MethodGet, "/?list=5,3,1&target=3", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "sorted from smallest to biggest")
}

func TestLessons(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/lessons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lessons []model.Lesson
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lessons))
	require.Len(t, lessons, 1)
	assert.Equal(t, "odds", lessons[0].Name)

	rec = do(t, srv, http.MethodGet, "/api/lessons/odds", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/lessons/none", nil).Code)
}

func TestNoLessonDeck(t *testing.T) {
	srv := New(Options{})
	rec := do(t, srv, http.MethodGet, "/api/lessons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/lessons/odds", nil).Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, New(Options{}), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
