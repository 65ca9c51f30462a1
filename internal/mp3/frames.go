// Package mp3 implements the ID3v2 frame dialect and the MP3 file backend.
//
// Frame keys follow the usual frame-dictionary convention: bare frame IDs
// for text frames ("TIT2"), qualified "ID:description" slots for comment,
// picture and user-text frames ("COMM:description", "TXXX:Narrator").
package mp3

import (
	"fmt"
	"slices"
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/simonhull/booktag/internal/types"
)

// Frames is an in-memory ID3 frame dictionary. Values are the codec
// library's frame structs; a plain string set under a key is wrapped in a
// UTF-8 text frame.
type Frames struct {
	frames map[string][]id3v2.Framer
	order  []string
}

// NewFrames returns an empty frame dictionary.
func NewFrames() *Frames {
	return &Frames{frames: make(map[string][]id3v2.Framer)}
}

// Format implements types.Container.
func (f *Frames) Format() types.Format { return types.FormatMP3 }

// Get returns the first frame stored under key.
func (f *Frames) Get(key string) (any, bool) {
	frames, ok := f.frames[key]
	if !ok || len(frames) == 0 {
		return nil, false
	}
	return frames[0], true
}

// GetAll returns every frame under key, including qualified "key:..."
// slots: GetAll("APIC") yields the pictures of every description.
func (f *Frames) GetAll(key string) []any {
	var out []any
	for _, k := range f.order {
		if k != key && !strings.HasPrefix(k, key+":") {
			continue
		}
		for _, frame := range f.frames[k] {
			out = append(out, frame)
		}
	}
	return out
}

// Set stores a single frame under key, replacing whatever was there.
func (f *Frames) Set(key string, value any) error {
	var frame id3v2.Framer
	switch v := value.(type) {
	case string:
		frame = id3v2.TextFrame{Encoding: id3v2.EncodingUTF8, Text: v}
	case id3v2.Framer:
		frame = v
	default:
		return &types.TagValueError{Key: key, Reason: fmt.Sprintf("unsupported value type %T", value)}
	}
	if _, ok := f.frames[key]; !ok {
		f.order = append(f.order, key)
	}
	f.frames[key] = []id3v2.Framer{frame}
	return nil
}

// put appends a frame under key, used when materializing a parsed tag.
func (f *Frames) put(key string, frame id3v2.Framer) {
	if _, ok := f.frames[key]; !ok {
		f.order = append(f.order, key)
	}
	f.frames[key] = append(f.frames[key], frame)
}

// Delete removes key. Deleting an absent key is a no-op.
func (f *Frames) Delete(key string) {
	if _, ok := f.frames[key]; !ok {
		return
	}
	delete(f.frames, key)
	f.order = slices.DeleteFunc(f.order, func(k string) bool { return k == key })
}

// Keys lists keys in first-set order.
func (f *Frames) Keys() []string {
	return slices.Clone(f.order)
}

// frameKey derives the dictionary key for a parsed frame: description-
// qualified for comment, picture and user-text frames, the bare ID
// otherwise.
func frameKey(id string, frame id3v2.Framer) string {
	switch fr := frame.(type) {
	case id3v2.CommentFrame:
		return id + ":" + fr.Description
	case id3v2.PictureFrame:
		return id + ":" + fr.Description
	case id3v2.UserDefinedTextFrame:
		return id + ":" + fr.Description
	}
	return id
}

// frameID recovers the frame ID from a dictionary key.
func frameID(key string) string {
	if id, _, found := strings.Cut(key, ":"); found {
		return id
	}
	return key
}
