package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts template_id and content_id from context and adds them
// to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if templateID := GetTemplateID(ctx); templateID != "" {
		e.Str("template_id", templateID)
	}

	if contentID := GetContentID(ctx); contentID != "" {
		e.Str("content_id", contentID)
	}
}
