package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	"github.com/tendant/content-browser/pkg/contentbrowser/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	serverConfig, err := config.Load(config.WithEnv(""))
	if err != nil {
		logger.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	svc, err := serverConfig.BuildService(logger)
	if err != nil {
		logger.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	store, err := svc.GetStore(serverConfig.DefaultStorageBackend)
	if err != nil {
		logger.Error("Failed to resolve store", "err", err)
		os.Exit(1)
	}

	server := NewHTTPServer(svc, store, serverConfig, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: server.Routes(),
	}

	go func() {
		logger.Info("Content browser server starting",
			"port", serverConfig.Port,
			"env", serverConfig.Environment,
			"storage", serverConfig.DefaultStorageBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	logger.Info("Server exiting")
}

// HTTPServer serves the generated site and a small JSON API over it
type HTTPServer struct {
	service contentbrowser.Service
	store   contentbrowser.Store
	config  *config.ServerConfig
	logger  *slog.Logger
}

// NewHTTPServer creates a new HTTP server wrapper
func NewHTTPServer(service contentbrowser.Service, store contentbrowser.Store, serverConfig *config.ServerConfig, logger *slog.Logger) *HTTPServer {
	return &HTTPServer{
		service: service,
		store:   store,
		config:  serverConfig,
		logger:  logger,
	}
}

// Routes sets up the HTTP routes
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", s.handleListItems)
		r.Get("/items/{itemID}", s.handleGetItem)
	})

	r.Get("/*", s.handleSiteFile)

	return r
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":      "healthy",
		"environment": s.config.Environment,
		"storage":     s.config.DefaultStorageBackend,
	})
}

// loadManifest reads the item manifest written by the site build
func (s *HTTPServer) loadManifest(ctx context.Context) ([]*contentbrowser.ContentItem, error) {
	data, err := s.store.Get(ctx, "manifest.json")
	if err != nil {
		return nil, err
	}
	var items []*contentbrowser.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return items, nil
}

func (s *HTTPServer) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.loadManifest(r.Context())
	if errors.Is(err, contentbrowser.ErrObjectNotFound) {
		http.Error(w, "site has not been generated yet", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("Failed to load manifest", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render.JSON(w, r, items)
}

func (s *HTTPServer) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	items, err := s.loadManifest(r.Context())
	if errors.Is(err, contentbrowser.ErrObjectNotFound) {
		http.Error(w, "site has not been generated yet", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("Failed to load manifest", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		if item.ID == itemID {
			render.JSON(w, r, item)
			return
		}
	}
	http.Error(w, "item not found", http.StatusNotFound)
}

// handleSiteFile serves generated site files straight from the store
func (s *HTTPServer) handleSiteFile(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if key == "" || key == "." {
		key = "index.html"
	}

	data, err := s.store.Get(r.Context(), key)
	if errors.Is(err, contentbrowser.ErrObjectNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("Failed to read site file", "key", key, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
