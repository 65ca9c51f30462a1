package types

// Container is the boundary to one format-native tag mapping.
//
// Implementations wrap whatever structure the owning codec library
// exposes: an ID3 frame map, an MP4 atom list, a Vorbis or APEv2
// comment map. Values keep their native shapes (frame structs, string
// lists, packed pairs, picture payloads); the translation mappings know
// how to read and build them.
//
// A container is exclusively owned by one translation call at a time.
// Persisting it afterwards is the codec adapter's (or the caller's)
// job; translation itself performs no I/O.
type Container interface {
	// Format identifies the tag dialect this container speaks.
	// Mapping dispatch keys on it; key names are never probed.
	Format() Format

	// Get returns the native value stored under key. Multi-valued
	// dialects return their whole value list as one value.
	Get(key string) (any, bool)

	// GetAll returns every native value stored under key, in storage
	// order. Needed for multi-valued tags and picture enumeration.
	GetAll(key string) []any

	// Set replaces the values under key. A value the dialect cannot
	// represent is rejected with a TagValueError; the container stays
	// unchanged in that case.
	Set(key string, value any) error

	// Delete removes all values under key. Absent keys are a no-op.
	Delete(key string)

	// Keys lists the native keys currently present.
	Keys() []string
}
