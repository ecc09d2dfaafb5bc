package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/stencil/internal/core/content"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if _, err := content.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if c.Quality.TimeoutSeconds < 1 {
		return fmt.Errorf("quality.timeout_seconds must be at least 1")
	}

	for i, pattern := range c.TemplateGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("template_globs[%d]: invalid pattern %q", i, pattern)
		}
	}

	w := c.Validation.Weights
	sum := w.Actionability + w.Length + w.Complexity + w.Estimates + w.Dependencies
	if sum != 0 && (sum < 0.999 || sum > 1.001) {
		return fmt.Errorf("validation.weights must sum to 1, got %.3f", sum)
	}

	return nil
}

// ValidateDeep performs comprehensive validation including endpoint syntax
// and glob base accessibility. This calls Validate() first for basic
// structural validation, then adds I/O checks.
func (c *Config) ValidateDeep() error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		criterio.Run("quality.endpoint", c.Quality.Endpoint, validEndpoint),
		criterio.Run("log_file", c.LogFile, isFileOrNotExist),
		c.validateGlobBases(),
	)
}

func validEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}

func isFileOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("exists but is a directory")
	}
	return nil
}

// validateGlobBases checks that the fixed prefix of each template glob
// points at an existing directory.
func (c *Config) validateGlobBases() error {
	var errs criterio.FieldErrorsBuilder

	for i, pattern := range c.TemplateGlobs {
		base, _ := doublestar.SplitPattern(pattern)
		if base == "." || base == "" {
			continue
		}
		info, err := os.Stat(filepath.Clean(base))
		if err != nil {
			errs = errs.Append(fmt.Sprintf("template_globs[%d]", i), fmt.Errorf("base directory not found: %s", base))
			continue
		}
		if !info.IsDir() {
			errs = errs.Append(fmt.Sprintf("template_globs[%d]", i), fmt.Errorf("base is not a directory: %s", base))
		}
	}

	return errs.ToError()
}
