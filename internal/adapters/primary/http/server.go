package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// HTTPLogger provides structured logging for the HTTP server
type HTTPLogger struct {
	component string
	verbose   bool
	level     entities.LogLevel
}

// NewHTTPLogger creates a new HTTP logger instance
func NewHTTPLogger(component string, verbose bool) *HTTPLogger {
	return &HTTPLogger{
		component: component,
		verbose:   verbose,
		level:     entities.LogLevelInfo,
	}
}

// NewHTTPLoggerWithLevel creates a new HTTP logger instance with specific level
func NewHTTPLoggerWithLevel(component string, verbose bool, level entities.LogLevel) *HTTPLogger {
	return &HTTPLogger{
		component: component,
		verbose:   verbose,
		level:     level,
	}
}

// shouldLog checks if the message should be logged based on level
func (l *HTTPLogger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}

	return levelMap[msgLevel] >= levelMap[l.level]
}

// Debug logs debug messages (only if debug level is enabled)
func (l *HTTPLogger) Debug(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelDebug) {
		log.Printf("[DEBUG] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Info logs informational messages
func (l *HTTPLogger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) {
		log.Printf("[INFO] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Warn logs warning messages
func (l *HTTPLogger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Error logs error messages (always logged)
func (l *HTTPLogger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// DraftingService produces a title and outline draft for a keyword
type DraftingService interface {
	Draft(ctx context.Context, keyword string) (*entities.OutlineDraft, error)
}

// GenerationService turns an edited title and outline into a stored artifact
type GenerationService interface {
	Generate(ctx context.Context, title, outline, templateID string) (*entities.Artifact, error)
}

// Server exposes the generation API over HTTP
type Server struct {
	server     *http.Server
	drafting   DraftingService
	generation GenerationService
	registry   ports.TemplateRegistry
	store      ports.ArtifactStore
	config     *entities.ServerConfig
	assetsDir  string
	logger     *HTTPLogger
	mu         sync.RWMutex
	running    bool
}

// NewServer creates a new HTTP server
// config must not be nil - use config.GetDefaultConfig().Server if needed
func NewServer(drafting DraftingService, generation GenerationService, registry ports.TemplateRegistry, store ports.ArtifactStore, config *entities.ServerConfig) *Server {
	if config == nil {
		panic("server config cannot be nil - provide a valid ServerConfig")
	}
	return &Server{
		drafting:   drafting,
		generation: generation,
		registry:   registry,
		store:      store,
		config:     config,
		logger:     NewHTTPLogger("server", false),
	}
}

// NewServerWithLogging creates a new HTTP server with logging configuration
func NewServerWithLogging(drafting DraftingService, generation GenerationService, registry ports.TemplateRegistry, store ports.ArtifactStore, config *entities.ServerConfig, loggingConfig *entities.LoggingConfig) *Server {
	s := NewServer(drafting, generation, registry, store, config)

	if loggingConfig != nil {
		s.logger = NewHTTPLoggerWithLevel("server", loggingConfig.Verbose, loggingConfig.GetLevel())
	}
	return s
}

// SetAssetsDir sets the directory the index page is served from; without one
// an embedded fallback page is used
func (s *Server) SetAssetsDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assetsDir = dir
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context, port int, host string) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}

	router := s.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.GetCORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	handler := c.Handler(router)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  s.config.GetReadTimeout(),
		WriteTimeout: s.config.GetWriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		s.logger.Info("HTTP server starting on %s:%d", host, port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return errors.New("server not running")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.GetShutdownTimeout())
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.running = false
	return nil
}

// IsRunning returns whether the server is currently running
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	// API endpoints
	router.HandleFunc("/api/templates", s.handleTemplates).Methods(http.MethodGet)
	router.HandleFunc("/api/outline", s.handleOutline).Methods(http.MethodPost)
	router.HandleFunc("/api/generate", s.handleGenerate).Methods(http.MethodPost)

	// Artifact download
	router.HandleFunc("/download/{filename}", s.handleDownload).Methods(http.MethodGet)

	// Liveness and frontend
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	// Apply middleware in order: security -> rate limiting -> request id -> logging -> recovery
	handler := securityHeadersMiddleware(router)
	handler = rateLimitMiddleware(handler)
	handler = requestIDMiddleware(handler)
	handler = createLoggingMiddleware(handler, s.logger)
	handler = createRecoveryMiddleware(handler, s.logger)

	return handler
}
