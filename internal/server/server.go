package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jpsantiago/aralplan/internal/api"
	"github.com/jpsantiago/aralplan/internal/config"
	"github.com/jpsantiago/aralplan/internal/generate"
	"github.com/jpsantiago/aralplan/internal/pdftext"
	"github.com/jpsantiago/aralplan/internal/providers"
	"github.com/jpsantiago/aralplan/internal/server/endpoints"
	"github.com/jpsantiago/aralplan/internal/state"
	"github.com/jpsantiago/aralplan/internal/svcctx"
	"github.com/jpsantiago/aralplan/internal/types"
)

// Server is the main aralplan HTTP server. It owns the in-memory plan store
// and the provider registry, and rebuilds the generator when the config file
// changes the active provider.
type Server struct {
	httpServer *http.Server
	store      *state.Store
	extractor  *pdftext.Extractor
	registry   *providers.Registry
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu        sync.RWMutex
	running   bool
	generator *generate.Client
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8787)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// SwaggerSpecPath overrides the path to swagger.json
	SwaggerSpecPath string
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8787"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	// Create provider registry
	registry := providers.NewRegistry()
	registry.SetLogger(cfg.Logger)

	s := &Server{
		store:     state.New(),
		extractor: &pdftext.Extractor{},
		registry:  registry,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	// If config manager provided, set up providers and hot reload
	if cfg.ConfigManager != nil {
		c := cfg.ConfigManager.Get()
		registry.Reload(c.ToProviderRegistryConfig())
		s.store.SetPrintInfo(printInfoFromConfig(c))
		s.rebuildGenerator(c)

		// Watch for config changes
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			registry.Reload(c.ToProviderRegistryConfig())
			s.rebuildGenerator(c)
			cfg.Logger.Info("provider registry reloaded from config")
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: cfg.SwaggerSpecPath}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation holds the request open for the full model call
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// printInfoFromConfig maps the configured DLL header block onto the store's
// print info, falling back to sample values for blank fields.
func printInfoFromConfig(c *config.Config) types.PrintInfo {
	info := state.DefaultPrintInfo()
	if c.PrintInfo.School != "" {
		info.School = c.PrintInfo.School
	}
	if c.PrintInfo.Teacher != "" {
		info.Teacher = c.PrintInfo.Teacher
	}
	if c.PrintInfo.GradeLevel != "" {
		info.GradeLevel = c.PrintInfo.GradeLevel
	}
	if c.PrintInfo.LearningArea != "" {
		info.LearningArea = c.PrintInfo.LearningArea
	}
	if c.PrintInfo.Quarter != "" {
		info.Quarter = c.PrintInfo.Quarter
	}
	return info
}

// rebuildGenerator resolves the active LLM provider from config and swaps in
// a fresh generation client. A config without a usable provider leaves the
// generator nil; the generate endpoint reports 503 until one is configured.
func (s *Server) rebuildGenerator(c *config.Config) {
	name, providerCfg, err := c.ActiveLLMProvider()
	if err != nil {
		s.logger.Warn("no usable LLM provider configured", "error", err)
		s.setGenerator(nil)
		return
	}

	llm, err := s.registry.GetLLM(name)
	if err != nil {
		s.logger.Warn("active LLM provider not registered", "provider", name, "error", err)
		s.setGenerator(nil)
		return
	}

	opts := []generate.Option{generate.WithLogger(s.logger)}
	if providerCfg.Model != "" {
		opts = append(opts, generate.WithModel(providerCfg.Model))
	}
	if c.Defaults.Temperature > 0 {
		opts = append(opts, generate.WithTemperature(c.Defaults.Temperature))
	}
	if c.Defaults.MaxTokens > 0 {
		opts = append(opts, generate.WithMaxTokens(c.Defaults.MaxTokens))
	}
	s.setGenerator(generate.New(llm, opts...))
	s.logger.Info("generation client ready", "provider", name, "model", providerCfg.Model)
}

func (s *Server) setGenerator(g *generate.Client) {
	s.mu.Lock()
	s.generator = g
	s.mu.Unlock()
}

// Generator returns the current generation client, or nil when no provider
// is configured.
func (s *Server) Generator() *generate.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}

// Start starts the HTTP server. It blocks until the context is cancelled or
// an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		Store:     s.store,
		Generator: s.generator,
		Extractor: s.extractor,
		Registry:  s.registry,
		Config:    s.configMgr,
		Logger:    s.logger,
	}
	s.mu.Unlock()

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Store returns the in-memory plan store.
func (s *Server) Store() *state.Store {
	return s.store
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Registry returns the provider registry.
func (s *Server) Registry() *providers.Registry {
	return s.registry
}

// withServices wraps a handler to enrich the request context with services.
// The generator is resolved per request so a config reload takes effect
// without restarting the server.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s.mu.RLock()
		services := s.services
		generator := s.generator
		s.mu.RUnlock()
		if services != nil {
			if services.Generator != generator {
				copied := *services
				copied.Generator = generator
				services = &copied
			}
			ctx = svcctx.WithServices(ctx, services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until Start has wired the services.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		ready := s.services != nil
		s.mu.RUnlock()
		if !ready {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
