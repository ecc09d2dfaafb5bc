package logging

import "context"

type contextKey string

const (
	templateIDKey contextKey = "template_id"
	contentIDKey  contextKey = "content_id"
)

// WithTemplateID adds the active template identifier to the context.
func WithTemplateID(ctx context.Context, templateID string) context.Context {
	return context.WithValue(ctx, templateIDKey, templateID)
}

// WithContentID adds the generated content identifier to the context.
func WithContentID(ctx context.Context, contentID string) context.Context {
	return context.WithValue(ctx, contentIDKey, contentID)
}

// GetTemplateID retrieves the template identifier from the context.
// Returns empty string if not present.
func GetTemplateID(ctx context.Context) string {
	if id, ok := ctx.Value(templateIDKey).(string); ok {
		return id
	}
	return ""
}

// GetContentID retrieves the content identifier from the context.
// Returns empty string if not present.
func GetContentID(ctx context.Context) string {
	if id, ok := ctx.Value(contentIDKey).(string); ok {
		return id
	}
	return ""
}
