package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/paintmytown/iconsmith/internal/icon"
)

// Options contains the configurable settings for the preview server.
type Options struct {
	Port       int
	Host       string
	IconDir    string // directory holding the generated PNGs
	LiveReload bool
}

// Server serves the preview gallery and the generated icon files, and
// pushes reload notifications over WebSocket when the set changes.
type Server struct {
	options Options
	set     []icon.Entry
	hub     *Hub
	watcher *Watcher
	server  *http.Server
}

// New creates a preview Server for the given icon set.
func New(set []icon.Entry, opts Options) *Server {
	return &Server{
		options: opts,
		set:     set,
		hub:     NewHub(),
	}
}

// SetWatcher configures the file watcher for the server.
func (s *Server) SetWatcher(w *Watcher) {
	s.watcher = w
}

// NotifyReload sends a reload message to all connected preview clients.
func (s *Server) NotifyReload() {
	s.hub.Broadcast([]byte("reload"))
}

// Start starts the HTTP server and file watcher. It blocks until the
// provided context is cancelled or the server fails.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/__iconsmith/ws", s.hub.HandleWS)
	mux.HandleFunc("/icons/", s.handleIcon)
	mux.HandleFunc("/", s.handleGallery)

	addr := fmt.Sprintf("%s:%d", s.options.Host, s.options.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	if s.watcher != nil {
		go func() {
			if err := s.watcher.Start(); err != nil {
				fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
			}
		}()
	}

	fmt.Printf("Preview at http://%s:%d\n", s.options.Host, s.options.Port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server, watcher, and hub.
func (s *Server) Stop() error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	s.hub.Stop()
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleGallery serves the preview page.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	html, err := GalleryHTML(s.set, s.options.LiveReload, s.options.Port)
	if err != nil {
		http.Error(w, "rendering gallery", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = w.Write(html)
}

// handleIcon serves a generated PNG from the icon directory. Only filenames
// present in the set are served; anything else is a 404.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := path.Base(strings.TrimPrefix(r.URL.Path, "/icons/"))

	var known bool
	for _, e := range s.set {
		if e.Name == name {
			known = true
			break
		}
	}
	if !known {
		http.NotFound(w, r)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.options.IconDir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = w.Write(data)
}
