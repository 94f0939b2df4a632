package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"carfit-backend/internal/catalog"
	"carfit-backend/internal/config"
	"carfit-backend/internal/gemini"
	"carfit-backend/internal/httpclient"
	"carfit-backend/internal/studio"
)

const serviceVersion = "0.2.0"

type server struct {
	cfg     config.Config
	backend gemini.Backend
	gem     *gemini.Client
	studio  *studio.Studio
	logger  *slog.Logger
	sem     chan struct{}
}

type apiError struct {
	Error string `json:"error"`
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg)

	backend := gemini.ResolveBackend(gemini.BackendOptions{
		APIKey:     cfg.GeminiAPIKey,
		Project:    cfg.GoogleCloudProject,
		Location:   cfg.GoogleCloudLocation,
		ImageModel: cfg.ImageModel,
		TextModel:  cfg.TextModel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gem *gemini.Client
	if backend.Mode != gemini.ModeNone {
		httpClient := httpclient.New(httpclient.Options{
			PreferIPv4: cfg.PreferIPv4,
			Timeout:    cfg.HTTPTimeout,
		})

		var err error
		gem, err = gemini.New(ctx, gemini.Options{
			Backend:    backend,
			HTTPClient: httpClient,
			Logger:     logger,
		})
		if err != nil {
			logger.Error("gemini init failed", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no gemini credentials configured, serving demo outcomes")
	}

	var generator studio.Generator
	if gem != nil {
		generator = gem
	}

	s := &server{
		cfg:     cfg,
		backend: backend,
		gem:     gem,
		studio: studio.New(studio.Options{
			Mode:         backend.Mode,
			Generator:    generator,
			DemoImageURL: cfg.DemoImageURL,
			Logger:       logger,
		}),
		logger: logger,
		sem:    make(chan struct{}, cfg.MaxConcurrent),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/parts", s.handleParts)
	mux.HandleFunc("/api/parts/", s.handlePartsByCategory)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/test-gemini", s.handleTestGemini)

	srv := &http.Server{
		Addr:              cfg.WebAddr,
		Handler:           withLogging(withCORS(mux), logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		logger.Info("web started", "addr", cfg.WebAddr, "backend_mode", string(backend.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "ok",
		"service":           "CarFit Backend",
		"version":           serviceVersion,
		"backend_mode":      string(s.backend.Mode),
		"gemini_configured": s.backend.Mode != gemini.ModeNone,
	})
}

func (s *server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": catalog.Categories(),
	})
}

func (s *server) handleParts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": catalog.Categories(),
		"parts":      catalog.Parts(),
	})
}

func (s *server) handlePartsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/parts/"), "/")

	category, ok := catalog.CategoryByID(categoryID)
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "category '" + categoryID + "' not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"parts":    catalog.PartsByCategory(category.ID),
	})
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}

	const maxBodyBytes = 25 << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req studio.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}

	switch {
	case strings.TrimSpace(req.CarImage) == "":
		writeJSON(w, http.StatusBadRequest, apiError{Error: "car_image is required"})
		return
	case strings.TrimSpace(req.PartImage) == "":
		writeJSON(w, http.StatusBadRequest, apiError{Error: "part_image is required"})
		return
	case strings.TrimSpace(req.PartName) == "":
		writeJSON(w, http.StatusBadRequest, apiError{Error: "part_name is required"})
		return
	}

	// The catalog is the authority on categories and descriptions: unknown
	// categories are corrected from the part name when possible, and an empty
	// description is backfilled the same way.
	if part, ok := catalog.PartByName(req.PartName); ok {
		if _, known := catalog.CategoryByID(req.PartCategory); !known {
			req.PartCategory = part.CategoryID
		}
		if strings.TrimSpace(req.PartDescription) == "" {
			req.PartDescription = part.Description
		}
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-r.Context().Done():
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	outcome := s.studio.Visualize(ctx, req)
	writeJSON(w, http.StatusOK, outcome)
}

func (s *server) handleTestGemini(w http.ResponseWriter, r *http.Request) {
	if s.gem == nil {
		writeJSON(w, http.StatusOK, apiError{Error: "no gemini credentials configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reply, err := s.gem.Ping(ctx)
	if err != nil {
		writeJSON(w, http.StatusOK, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"response": reply,
		"model":    s.backend.TextModel,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("http", "method", r.Method, "path", r.URL.Path, "dur_ms", time.Since(start).Milliseconds())
	})
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
