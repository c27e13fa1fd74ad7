package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/render"
	"github.com/rcliao/bsearch-viz/internal/sample"
	"github.com/rcliao/bsearch-viz/internal/search"
	"github.com/rcliao/bsearch-viz/internal/store"
)

// SearchRequest is the body of POST /api/search. Lesson, when set, replaces List.
type SearchRequest struct {
	List   string `json:"list"`
	Target string `json:"target"`
	Lesson string `json:"lesson,omitempty"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Result *model.Result    `json:"result"`
	Final  model.FinalState `json:"final"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

type handlers struct {
	opts Options
	log  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func newHandlers(opts Options) *handlers {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &handlers{opts: opts, log: opts.Logger, rng: rand.New(rand.NewSource(seed))}
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := render.Page{Form: true, List: q.Get("list"), Target: q.Get("target")}
	status := http.StatusOK

	if name := q.Get("lesson"); name != "" {
		list, err := h.lessonList(r, name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			p.Error = err.Error()
			status = http.StatusNotFound
		case err != nil:
			h.log.Error("get lesson", zap.String("name", name), zap.Error(err))
			p.Error = "could not load lesson"
			status = http.StatusInternalServerError
		default:
			p.List = list
		}
	}

	if p.Error == "" && (p.List != "" || p.Target != "") {
		seq, target, err := parse.Input(p.List, p.Target, h.opts.Parse)
		if err != nil {
			h.log.Debug("rejected input", zap.String("kind", string(parse.KindOf(err))), zap.Error(err))
			p.Error = err.Error()
			status = http.StatusUnprocessableEntity
		} else {
			p.Result = search.Run(seq, target)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := render.WriteHTML(w, p); err != nil {
		h.log.Error("write page", zap.Error(err))
	}
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
		return
	}

	if req.Lesson != "" {
		list, err := h.lessonList(r, req.Lesson)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lesson_not_found", err.Error())
			return
		}
		if err != nil {
			h.log.Error("get lesson", zap.String("name", req.Lesson), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal", "could not load lesson")
			return
		}
		req.List = list
	}

	seq, target, err := parse.Input(req.List, req.Target, h.opts.Parse)
	if err != nil {
		kind := parse.KindOf(err)
		h.log.Debug("rejected input", zap.String("kind", string(kind)), zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, string(kind), err.Error())
		return
	}

	res := search.Run(seq, target)
	writeJSON(w, http.StatusOK, SearchResponse{Result: res, Final: res.Final()})
}

func (h *handlers) random(w http.ResponseWriter, r *http.Request) {
	size := sample.DefaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "size must be an integer")
			return
		}
		size = n
	}

	h.mu.Lock()
	seq, err := sample.Sorted(h.rng, size)
	h.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"list": parse.Format(seq, h.opts.Parse)})
}

func (h *handlers) lessons(w http.ResponseWriter, r *http.Request) {
	if h.opts.Lessons == nil {
		writeJSON(w, http.StatusOK, []model.Lesson{})
		return
	}
	lessons, err := h.opts.Lessons.List(r.Context(), store.ListParams{Limit: 100})
	if err != nil {
		h.log.Error("list lessons", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "could not list lessons")
		return
	}
	if lessons == nil {
		lessons = []model.Lesson{}
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (h *handlers) lesson(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.opts.Lessons == nil {
		writeError(w, http.StatusNotFound, "lesson_not_found", "no lesson deck configured")
		return
	}
	got, err := h.opts.Lessons.Get(r.Context(), store.GetParams{Name: name})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lesson_not_found", err.Error())
			return
		}
		h.log.Error("get lesson", zap.String("name", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "could not load lesson")
		return
	}
	writeJSON(w, http.StatusOK, got[0])
}

// lessonList loads a lesson's values as list text and records the use.
// Unknown lessons, and any lesson when no deck is configured, wrap
// store.ErrNotFound.
func (h *handlers) lessonList(r *http.Request, name string) (string, error) {
	if h.opts.Lessons == nil {
		return "", fmt.Errorf("%w: no lesson deck configured", store.ErrNotFound)
	}
	got, err := h.opts.Lessons.Get(r.Context(), store.GetParams{Name: name})
	if err != nil {
		return "", err
	}
	if err := h.opts.Lessons.Touch(r.Context(), got[0].ID); err != nil {
		h.log.Warn("record lesson use", zap.String("name", name), zap.Error(err))
	}
	return parse.Format(got[0].Values, h.opts.Parse), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse{Error: ErrorBody{Kind: kind, Message: msg}})
}
