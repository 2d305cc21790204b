package cayley

// Option configures a Build call via the functional-options pattern.
type Option func(*options)

type options struct {
	cancel            *CancelFlag
	listener          ProgressFunc
	sizeHint          int
	vertexGranularity int
	edgeGranularity   int
}

func defaultOptions() options {
	return options{
		vertexGranularity: 100,
		edgeGranularity:   1000,
	}
}

// WithCancelFlag associates a cooperative cancellation flag with the
// build; the builder samples it between vertex expansions and between
// generator applications within a vertex.
func WithCancelFlag(c *CancelFlag) Option {
	return func(o *options) { o.cancel = c }
}

// WithListener registers a synchronous progress listener.
func WithListener(fn ProgressFunc) Option {
	return func(o *options) { o.listener = fn }
}

// WithSizeHint preallocates the vertex hash map and vertex slice for
// expectedN vertices, avoiding rehashing/regrowth on large graphs.
func WithSizeHint(expectedN int) Option {
	return func(o *options) { o.sizeHint = expectedN }
}

// WithVertexGranularity overrides the default vertex-progress interval
// (100).
func WithVertexGranularity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.vertexGranularity = n
		}
	}
}

// WithEdgeGranularity overrides the default edge-progress interval
// (1000).
func WithEdgeGranularity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.edgeGranularity = n
		}
	}
}
