package logs

import "context"

// Span identifies one unit of work, e.g. one evaluated input line.
type Span string

type spanKey struct{}

var SpanKey spanKey

// WithSpan returns a logger that carries the span of ctx, for code that logs without a context.
func WithSpan(ctx context.Context, logger Logger) Logger {
	v := ctx.Value(SpanKey)
	if v == nil {
		return logger
	}
	return logger.With("logs.span", v.(Span))
}
