// Package stencil wires the template store, renderer, parser, and validator
// into the generation pipeline.
package stencil

import (
	"net/http"
	"time"

	"github.com/colonyops/stencil/internal/core/config"
	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/quality"
	"github.com/colonyops/stencil/internal/core/template"
	"github.com/colonyops/stencil/internal/core/validate"
)

// App is the central entry point for all stencil operations. Commands and
// tools consume App instead of cherry-picking raw dependencies.
type App struct {
	Generator *GenerateService
	Templates *template.Store
	Validator *validate.Validator
	History   *content.Store
	Config    *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, store *template.Store, proxy quality.Proxy) *App {
	validator := validate.New(cfg.Validation)
	history := content.NewStore()
	return &App{
		Generator: NewGenerateService(store, validator, proxy, history, time.Now),
		Templates: store,
		Validator: validator,
		History:   history,
		Config:    cfg,
	}
}

// Bootstrap builds a ready App from config: built-in templates, user
// template globs, and the review proxy when an endpoint is configured.
func Bootstrap(cfg *config.Config) (*App, error) {
	store := template.NewStore()
	if err := store.RegisterBuiltins(); err != nil {
		return nil, err
	}
	for _, pattern := range cfg.TemplateGlobs {
		if _, err := store.LoadGlob(pattern); err != nil {
			return nil, err
		}
	}

	var proxy quality.Proxy = quality.NopProxy{}
	if cfg.Quality.Endpoint != "" {
		client := &http.Client{Timeout: time.Duration(cfg.Quality.TimeoutSeconds) * time.Second}
		proxy = quality.NewHTTPProxy(cfg.Quality.Endpoint, client)
	}

	return NewApp(cfg, store, proxy), nil
}
