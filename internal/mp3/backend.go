package mp3

import (
	"fmt"
	"maps"
	"slices"

	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/simonhull/booktag/internal/types"
)

// Backend reads and writes MP3 tags through the id3v2 library. Parsed
// frames are materialized into a Frames dictionary on open and flushed
// back on save.
type Backend struct {
	path    string
	tag     *id3v2.Tag
	frames  *Frames
	version byte
}

// Open opens the MP3 file at path and parses its ID3v2 tag. Files
// without a tag open fine and get one on save.
func Open(path string) (*Backend, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open mp3: %w", err)
	}
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	return &Backend{path: path, tag: tag, frames: framesFromTag(tag)}, nil
}

// framesFromTag materializes every parsed frame, ID order fixed for
// reproducible key listings.
func framesFromTag(tag *id3v2.Tag) *Frames {
	dict := NewFrames()
	all := tag.AllFrames()
	for _, id := range slices.Sorted(maps.Keys(all)) {
		for _, frame := range all[id] {
			dict.put(frameKey(id, frame), frame)
		}
	}
	return dict
}

// Container implements registry.Backend.
func (b *Backend) Container() types.Container { return b.frames }

// Properties implements registry.Backend, probing the MPEG stream that
// follows the tag.
func (b *Backend) Properties() (types.Properties, error) {
	return readProperties(b.path)
}

// SetVersion selects the ID3v2 version written on save (3 or 4). The
// parsed file's version is kept when unset.
func (b *Backend) SetVersion(version byte) { b.version = version }

// Save implements registry.Backend, rebuilding the tag from the frame
// dictionary and writing it out.
func (b *Backend) Save() error {
	b.tag.DeleteAllFrames()
	if b.version != 0 {
		b.tag.SetVersion(b.version)
	}
	for _, key := range b.frames.Keys() {
		id := frameID(key)
		for _, frame := range b.frames.frames[key] {
			b.tag.AddFrame(id, frame)
		}
	}
	if err := b.tag.Save(); err != nil {
		return fmt.Errorf("save id3 tag: %w", err)
	}
	return nil
}

// Close implements registry.Backend.
func (b *Backend) Close() error { return b.tag.Close() }
