// Package server exposes the layout engine over HTTP for quick inspection.
//
// Routes:
//
//	GET /healthz
//	GET /eval?expr=50%25+%2B+4px&ref=200      -> {"value": 104}
//	GET /layout?rows=2&cols=1&width=640&height=480&margin=10
//	GET /preview.svg?rows=2&cols=1             -> SVG of the view rectangles
//
// Every request lays out a fresh grid on an in-memory canvas.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ByLCY/viewgrid/layout"
	canvasrenderer "github.com/ByLCY/viewgrid/renderer/canvas"
)

// maxCells bounds the grid size a single request may ask for.
const maxCells = 10000

type handler struct {
	logger *log.Logger
}

// New returns the HTTP handler. logger may be nil.
func New(logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/eval", h.eval)
	r.Get("/layout", h.layout)
	r.Get("/preview.svg", h.preview)
	return r
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (h *handler) eval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref, err := floatParam(q.Get("ref"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("ref: %w", err))
		return
	}
	value, err := layout.Evaluate(q.Get("expr"), ref)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if math.IsInf(value, 0) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("表达式 %q 的结果溢出", q.Get("expr")))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"value": value})
}

func (h *handler) layout(w http.ResponseWriter, r *http.Request) {
	m, err := h.gridFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, m.Snapshot())
}

func (h *handler) preview(w http.ResponseWriter, r *http.Request) {
	m, err := h.gridFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	data, err := canvasrenderer.NewRenderer(canvasrenderer.FormatSVG).Render(m.Snapshot())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (h *handler) gridFromQuery(r *http.Request) (*layout.Manager, error) {
	q := r.URL.Query()
	rows, err := intParam(q.Get("rows"), 1)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := intParam(q.Get("cols"), 1)
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}
	width, err := floatParam(q.Get("width"), 640)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := floatParam(q.Get("height"), 480)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if rows > 0 && cols > 0 && rows > maxCells/cols {
		return nil, fmt.Errorf("%w: 单个请求最多 %d 个单元格, got %dx%d", layout.ErrInvalidGrid, maxCells, rows, cols)
	}
	opts := layout.DefaultOptions()
	if opts.Margin, err = floatParam(q.Get("margin"), layout.DefaultMargin); err != nil {
		return nil, fmt.Errorf("margin: %w", err)
	}
	opts.NameTemplate = q.Get("name")
	opts.Logger = h.logger
	return layout.NewGrid(layout.NewManualCanvas(width, height), rows, cols, opts)
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// floatParam 解析有限浮点参数，Inf 与 NaN 视为非法。
func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("必须为有限数, got %q", s)
	}
	return v, nil
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Error: err.Error()}
	var exprErr *layout.ExprError
	if errors.As(err, &exprErr) {
		body.Kind = exprErr.Kind.Error()
	}
	writeJSON(w, status, body)
}

// writeJSON 先编码再写状态码，编码失败时返回 500 而不是空的 200。
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(errorBody{Error: fmt.Sprintf("编码响应失败: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
