// Package registry wires tag dialects and codec backends to formats.
package registry

import (
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

// Dialect holds the two translation directions for one tag-container
// dialect. Several formats may share one dialect: FLAC, Ogg and Opus all
// speak Vorbis comments.
type Dialect struct {
	Read  *tagmap.Mapping
	Write *tagmap.Mapping
}

// Backend is an open audio file as one codec library presents it: the
// native tag container plus stream properties and persistence.
type Backend interface {
	// Container returns the file's native tag container.
	Container() types.Container

	// Properties returns the technical stream properties. A failed
	// probe is not fatal to tag access; callers surface it as a warning.
	Properties() (types.Properties, error)

	// Save persists the container back to the file.
	Save() error

	// Close releases any underlying file handle. Backends that read
	// everything up front return nil.
	Close() error
}

// OpenFunc opens the audio file at path through one codec backend.
type OpenFunc func(path string) (Backend, error)

// dialects maps formats to their translation tables.
var dialects = make(map[types.Format]*Dialect)

// openers maps formats to their codec backends.
var openers = make(map[types.Format]OpenFunc)

// Register registers the read and write mappings for a format.
// This is called by dialect packages during initialization (init functions).
func Register(format types.Format, read, write *tagmap.Mapping) {
	dialects[format] = &Dialect{Read: read, Write: write}
}

// Get returns the dialect for a given format.
// Returns nil if no dialect is registered for the format.
func Get(format types.Format) *Dialect {
	return dialects[format]
}

// RegisterOpener registers a codec backend for a format.
// This is called by backend packages during initialization (init functions).
func RegisterOpener(format types.Format, open OpenFunc) {
	openers[format] = open
}

// GetOpener returns the codec opener for a given format.
// Returns nil if no backend is registered for the format.
func GetOpener(format types.Format) OpenFunc {
	return openers[format]
}
