package notify

import "go.uber.org/zap"

// CopyMode selects how payloads are duplicated before each delivery.
// Duplication applies to the common aggregate types (map[string]any,
// map[string]string, []any, []byte); other payloads are passed through
// and should be treated as read-only by subscribers.
type CopyMode int

const (
	// CopyNone delivers the payload as-is. Subscribers share any
	// reference types with the producer.
	CopyNone CopyMode = iota

	// CopyShallow gives each subscriber a top-level copy. Nested mutable
	// values are still shared.
	CopyShallow

	// CopyDeep gives each subscriber a fully independent copy.
	CopyDeep
)

// Options holds options for New. The zero value is ready to use.
type Options struct {
	// Logger receives delivery diagnostics (failed deliveries, recovered
	// panics). Defaults to a nop logger. Returned errors are the
	// authoritative failure report; logging never replaces them.
	Logger *zap.Logger

	// CopyMode controls per-delivery payload duplication.
	// Defaults to CopyNone.
	CopyMode CopyMode
}

// withDefaults fills in defaults for any zero-value option.
func withDefaults(options Options) Options {
	opts := options
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}
