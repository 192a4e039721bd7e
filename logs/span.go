package logs

// Span identifies one unit of work, such as a single program run
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
