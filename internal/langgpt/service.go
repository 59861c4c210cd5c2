package langgpt

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/josephgoksu/langgpt-assistant/internal/logger"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
)

// Service is the single entry point for the three core operations. CLI, MCP
// and HTTP handlers are thin adapters over it.
//
// A Service is safe for concurrent use. The catalog can be swapped while
// requests are in flight; each request sees one catalog. Operations
// never return errors: a panic while building a response is logged and turned
// into the operation's fallback response with Success=false.
type Service struct {
	generator atomic.Pointer[Generator]
	analyzer  Analyzer
	optimizer Optimizer
	log       *slog.Logger
	observe   Observer
}

// Observer is notified after every operation. The HTTP server uses it to
// count outcomes.
type Observer func(op string, success bool, elapsed time.Duration)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for operation and panic logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithFoldCase makes the analyzer lowercase prompts before checking them.
func WithFoldCase(fold bool) Option {
	return func(s *Service) { s.analyzer.FoldCase = fold }
}

// WithObserver registers a callback run after every operation.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observe = o }
}

// NewService builds a service over catalog. A nil catalog is allowed; every
// Generate call then fails and returns the fallback response.
func NewService(catalog *prompts.Catalog, opts ...Option) *Service {
	s := &Service{log: slog.Default()}
	s.generator.Store(NewGenerator(catalog))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the service generates from.
func (s *Service) Catalog() *prompts.Catalog {
	return s.generator.Load().catalog
}

// SetCatalog replaces the catalog used by later Generate calls. catalog must
// not be nil.
func (s *Service) SetCatalog(catalog *prompts.Catalog) {
	s.generator.Store(NewGenerator(catalog))
	s.log.Info("role catalog replaced", "roles", len(catalog.Categories()))
}

// Operation names used in logs and metrics.
const (
	OpGenerate = "generate"
	OpAnalyze  = "analyze"
	OpOptimize = "optimize"
)

func (s *Service) finish(ctx context.Context, op string, success bool, start time.Time, attrs ...any) {
	elapsed := time.Since(start)
	if s.observe != nil {
		s.observe(op, success, elapsed)
	}
	attrs = append(attrs, "op", op, "success", success, "duration", elapsed)
	s.log.DebugContext(ctx, "operation finished", attrs...)
}

// Generate builds a role document for req.
func (s *Service) Generate(ctx context.Context, req models.GenerationRequest) (resp models.GenerationResponse) {
	start := time.Now()
	defer func() {
		s.finish(ctx, OpGenerate, resp.Success, start, "domain", req.Domain)
	}()
	defer logger.Recover(ctx, s.log, OpGenerate, func() { resp = failedGeneration() })

	gen := s.generator.Load()
	if cat, ok := gen.MatchedCategory(req.Domain); ok {
		s.log.DebugContext(ctx, "customizing catalog role", "category", cat)
	}
	return gen.Generate(req)
}

// Analyze scores and critiques req.Prompt.
func (s *Service) Analyze(ctx context.Context, req models.AnalysisRequest) (resp models.AnalysisResponse) {
	start := time.Now()
	defer func() {
		s.finish(ctx, OpAnalyze, resp.Success, start, "analysis_type", req.AnalysisType)
	}()
	defer logger.Recover(ctx, s.log, OpAnalyze, func() { resp = failedAnalysis() })

	return s.analyzer.Analyze(req)
}

// Optimize rewrites req.OriginalPrompt toward the requested goals.
func (s *Service) Optimize(ctx context.Context, req models.OptimizationRequest) (resp models.OptimizationResponse) {
	start := time.Now()
	defer func() {
		s.finish(ctx, OpOptimize, resp.Success, start, "goals", req.OptimizationGoals)
	}()
	defer logger.Recover(ctx, s.log, OpOptimize, func() { resp = failedOptimization(req.OriginalPrompt) })

	return s.optimizer.Optimize(req)
}
