// Package server exposes puzzle rendering over HTTP.
//
// Routes:
//
//	GET  /healthz              liveness probe
//	POST /api/render           render the puzzle in the request body
//	GET  /api/puzzles/{name}   render a puzzle from the puzzle directory
//
// Boards are returned as text/plain unless the client sends
// "Accept: application/json", in which case the cars and board rows are
// returned as JSON.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/edouardmenayde/rush-hour/internal/model"
	"github.com/edouardmenayde/rush-hour/internal/puzzle"
)

// maxBodyBytes caps the size of a puzzle posted to /api/render.
const maxBodyBytes = 1 << 20

// puzzleExtensions are tried in order when resolving a named puzzle.
var puzzleExtensions = []string{".txt", ".jsonc", ".json"}

// nameRegex restricts puzzle names to a single path element.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Options configures a Server.
type Options struct {
	// PuzzleDir is the directory named puzzles are read from.
	PuzzleDir string

	// Parse is applied to every puzzle the server reads.
	Parse puzzle.ParseOptions

	// Render is applied to every board the server returns. Colour is
	// always disabled over HTTP.
	Render puzzle.RenderOptions

	// Logger receives one entry per request. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// Server is the HTTP front end of the puzzle renderer.
type Server struct {
	opts   Options
	router *mux.Router
}

// New creates a Server and registers its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	opts.Render.Color = false

	s := &Server{
		opts:   opts,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/api/render", s.handleRender).Methods("POST")
	s.router.HandleFunc("/api/puzzles/{name}", s.handleGetPuzzle).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondParseError reports a puzzle that failed to parse, including the
// offending line when there is one.
func respondParseError(w http.ResponseWriter, status int, err error) {
	body := map[string]interface{}{"error": err.Error()}

	var lineErr *puzzle.LineError
	if errors.As(err, &lineErr) {
		body["line"] = lineErr.Line
		body["text"] = lineErr.Text
	}
	respondJSON(w, status, body)
}

func (s *Server) respondPuzzle(w http.ResponseWriter, r *http.Request, p *puzzle.Puzzle) {
	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, p.View())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, p.Render(s.opts.Render))
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// Handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := puzzle.FormatText
	if f := r.URL.Query().Get("format"); f != "" {
		parsed, err := puzzle.ParseFormat(f)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if parsed == puzzle.FormatJSONC {
			format = parsed
		}
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	p, err := puzzle.Decode(data, format, s.opts.Parse)
	if err != nil {
		respondParseError(w, http.StatusBadRequest, err)
		return
	}
	s.respondPuzzle(w, r, p)
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !nameRegex.MatchString(name) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid puzzle name %q", name))
		return
	}

	path, ok := s.resolvePuzzle(name)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("puzzle %q not found", name))
		return
	}

	p, _, err := puzzle.LoadFile(path, puzzle.FormatAuto, s.opts.Parse)
	if err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) && cliErr.Code == model.ExitMalformedPuzzle {
			respondParseError(w, http.StatusUnprocessableEntity, err)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondPuzzle(w, r, p)
}

// resolvePuzzle finds the file for a puzzle name, trying each known
// extension in turn.
func (s *Server) resolvePuzzle(name string) (string, bool) {
	for _, ext := range puzzleExtensions {
		path := filepath.Join(s.opts.PuzzleDir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Middleware

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.opts.Logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
