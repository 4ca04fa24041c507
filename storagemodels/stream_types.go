package storagemodels

import "time"

// StreamResult represents a single entity in a stream with metadata
type StreamResult struct {
	Entity Entity     // The entity as returned by the service
	Error  error      // Page-level error, if any
	Meta   StreamMeta // Metadata about this item
}

// StreamMeta contains metadata about a streamed item
type StreamMeta struct {
	Index      int64     // Item index in stream (0-based)
	PageNumber int       // Result page number (1-based)
	Timestamp  time.Time // When the item was received
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize int // Channel buffer size (default: 100)
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}
