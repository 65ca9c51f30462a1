package booktag

// Option configures behavior when opening audio files.
//
// Options use the functional options pattern:
//
//	file, err := booktag.Open("book.m4b",
//	    booktag.WithStrictOpen(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictOpen     bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	skipProperties bool // Skip the audio property probe
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictOpen treats any warning as a fatal error.
//
// By default, Open continues when it meets non-fatal issues like a
// failed audio property probe, collecting them in File.Warnings. With
// strict open enabled, the first warning becomes an error.
//
// Example:
//
//	file, err := booktag.Open("book.flac", booktag.WithStrictOpen())
//	// err != nil if ANY issue is encountered
func WithStrictOpen() Option {
	return func(o *openOptions) {
		o.strictOpen = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues are collected in
// File.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithoutProperties skips probing the audio stream.
//
// Open normally reads sample rate, channel count, bitrate and duration
// alongside the tags. Batch jobs that only touch metadata can skip the
// probe.
//
// Example:
//
//	file, err := booktag.Open("book.mp3", booktag.WithoutProperties())
//	// file.Properties is zero
func WithoutProperties() Option {
	return func(o *openOptions) {
		o.skipProperties = true
	}
}
