package stencil

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/logging"
	"github.com/colonyops/stencil/internal/core/quality"
	"github.com/colonyops/stencil/internal/core/template"
	"github.com/colonyops/stencil/internal/core/todo"
	"github.com/colonyops/stencil/internal/core/validate"
)

// GenerateOptions configures a single generation run.
type GenerateOptions struct {
	TemplateID string
	Input      map[string]any
	// Format overrides the template's declared output format for the
	// returned body. Empty keeps the template's format.
	Format content.Format
}

// GenerateResult carries everything one run produced. Report is present
// even when the list failed validation; callers decide what a failed report
// means for them.
type GenerateResult struct {
	Content content.Generated
	List    *todo.List
	Report  *validate.Result
}

// GenerateService runs the full pipeline: resolve, render, review, parse,
// validate, serialize.
type GenerateService struct {
	store     *template.Store
	validator *validate.Validator
	proxy     quality.Proxy
	history   *content.Store
	now       func() time.Time
	log       zerolog.Logger
}

// NewGenerateService creates a GenerateService. The clock is injectable for
// reproducible content records.
func NewGenerateService(store *template.Store, validator *validate.Validator, proxy quality.Proxy, history *content.Store, now func() time.Time) *GenerateService {
	if proxy == nil {
		proxy = quality.NopProxy{}
	}
	if history == nil {
		history = content.NewStore()
	}
	return &GenerateService{
		store:     store,
		validator: validator,
		proxy:     proxy,
		history:   history,
		now:       now,
		log:       logging.Component("generate"),
	}
}

// Generate runs the pipeline for one template. Render, review, and parse
// failures abort the run; validation findings do not, they land in the
// report.
func (s *GenerateService) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	start := time.Now()
	ctx = logging.WithTemplateID(ctx, opts.TemplateID)

	resolved, err := s.store.Resolve(opts.TemplateID)
	if err != nil {
		return nil, err
	}
	def := resolved.Definition

	body, err := resolved.Render(opts.Input)
	if err != nil {
		return nil, err
	}

	decision, err := s.proxy.Review(ctx, def.ID, body)
	if err != nil {
		return nil, fmt.Errorf("quality review: %w", err)
	}
	switch decision.Verdict {
	case quality.VerdictReject:
		return nil, fmt.Errorf("%w: %s", quality.ErrRejected, decision.Reason)
	case quality.VerdictModify:
		s.log.Info().Str("template_id", def.ID).Str("reason", decision.Reason).Msg("output modified by review")
		body = decision.Body
	}

	srcFormat := content.FormatYAML
	if def.Output != nil && def.Output.Format != "" {
		srcFormat, err = content.ParseFormat(def.Output.Format)
		if err != nil {
			return nil, err
		}
	}

	list, err := parseBody(body, srcFormat)
	if err != nil {
		return nil, err
	}
	if def.Output != nil && len(def.Output.Required) > 0 && srcFormat == content.FormatYAML {
		if err := todo.RequireRootKeys([]byte(body), def.Output.Required); err != nil {
			return nil, err
		}
	}

	report := s.validator.ValidateList(list)

	outFormat := srcFormat
	if opts.Format != "" {
		outFormat = opts.Format
	}
	outBody := body
	if outFormat != srcFormat {
		outBody, err = content.EncodeList(list, outFormat)
		if err != nil {
			return nil, err
		}
	}

	gen := content.NewGenerated(def.ID, def.Version, outFormat, outBody, s.now)
	gen.Deterministic = def.IsDeterministic()
	gen.DurationMS = time.Since(start).Milliseconds()
	s.history.Save(gen)

	s.log.Info().
		Ctx(logging.WithContentID(ctx, gen.ID)).
		Str("format", string(outFormat)).
		Int("items", len(list.Todos)).
		Bool("valid", report.IsValid).
		Float64("score", report.QualityScore).
		Msg("content generated")

	return &GenerateResult{Content: gen, List: list, Report: report}, nil
}

// ValidateSource parses raw todo-list text in the given format and runs the
// validator over it.
func (s *GenerateService) ValidateSource(raw []byte, format content.Format) (*validate.Result, error) {
	list, err := parseBody(string(raw), format)
	if err != nil {
		return nil, err
	}
	return s.validator.ValidateList(list), nil
}

// parseBody decodes rendered output into a list. Only the structured
// formats can be parsed back.
func parseBody(body string, format content.Format) (*todo.List, error) {
	switch format {
	case content.FormatYAML:
		return todo.ParseYAML([]byte(body))
	case content.FormatJSON:
		return todo.ParseJSON([]byte(body))
	default:
		return nil, fmt.Errorf("%w: cannot parse %q output", content.ErrUnknownFormat, format)
	}
}
