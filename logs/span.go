package logs

type Span string

type spanKey struct{}

// SpanKey is the context key carrying the current Span.
var SpanKey spanKey

func SpanOf(ctx interface{ Value(any) any }) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
