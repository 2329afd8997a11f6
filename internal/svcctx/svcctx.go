// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jpsantiago/aralplan/internal/config"
	"github.com/jpsantiago/aralplan/internal/generate"
	"github.com/jpsantiago/aralplan/internal/pdftext"
	"github.com/jpsantiago/aralplan/internal/providers"
	"github.com/jpsantiago/aralplan/internal/state"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Store     *state.Store
	Generator *generate.Client
	Extractor *pdftext.Extractor
	Registry  *providers.Registry
	Config    *config.Manager
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// StoreFrom extracts the plan state store from context.
func StoreFrom(ctx context.Context) *state.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Store
	}
	return nil
}

// GeneratorFrom extracts the generation client from context.
func GeneratorFrom(ctx context.Context) *generate.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Generator
	}
	return nil
}

// ExtractorFrom extracts the PDF text extractor from context.
func ExtractorFrom(ctx context.Context) *pdftext.Extractor {
	if s := ServicesFrom(ctx); s != nil {
		return s.Extractor
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// LoggerFrom extracts the logger from context. Falls back to the default
// logger so callers can log unconditionally.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
