// Package types provides core data structures for audiobook metadata.
//
// This package defines the Metadata record, the Container boundary to
// format-native tag mappings, the Picture and Properties types, and the
// Format enumeration shared by every dialect package.
package types

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// TagName identifies one canonical metadata field.
//
// The set of names is closed: every field an audiobook record can carry
// is enumerated below, independent of any tag dialect. Dialect mappings
// translate between native keys (frame IDs, atom names, comment keys)
// and these names.
type TagName string

const (
	TagAlbum        TagName = "album"
	TagAlbumArtist  TagName = "albumartist"
	TagAlbumSort    TagName = "albumsort"
	TagArtist       TagName = "artist"
	TagComment      TagName = "comment"
	TagComposer     TagName = "composer"
	TagCover        TagName = "cover"
	TagDate         TagName = "date"
	TagDiscNumber   TagName = "discnumber"
	TagDiscTotal    TagName = "disctotal"
	TagGenre        TagName = "genre"
	TagGrouping     TagName = "grouping"
	TagLabel        TagName = "label"
	TagOriginalDate TagName = "originaldate"
	TagTitle        TagName = "title"
	TagTrackNumber  TagName = "tracknumber"
	TagTrackTotal   TagName = "tracktotal"
)

// TagNames returns every canonical tag name in stable order.
func TagNames() []TagName {
	return []TagName{
		TagAlbum, TagAlbumArtist, TagAlbumSort, TagArtist, TagComment,
		TagComposer, TagCover, TagDate, TagDiscNumber, TagDiscTotal,
		TagGenre, TagGrouping, TagLabel, TagOriginalDate, TagTitle,
		TagTrackNumber, TagTrackTotal,
	}
}

// Valid reports whether n is one of the canonical tag names.
func (n TagName) Valid() bool {
	_, ok := normalizers[n]
	return ok
}

// normalizer coerces a value into the canonical shape for one tag name.
// Returning (nil, nil) means "absent": the key is removed.
type normalizer func(value any) (any, error)

// normalizers assigns each tag name its value shape.
var normalizers = map[TagName]normalizer{
	TagAlbum:        normString,
	TagAlbumArtist:  normStringList,
	TagAlbumSort:    normString,
	TagArtist:       normStringList,
	TagComment:      normString,
	TagComposer:     normStringList,
	TagCover:        normPicture,
	TagDate:         normNaturalInt,
	TagDiscNumber:   normNaturalInt,
	TagDiscTotal:    normNaturalInt,
	TagGenre:        normStringList,
	TagGrouping:     normString,
	TagLabel:        normString,
	TagOriginalDate: normNaturalInt,
	TagTitle:        normString,
	TagTrackNumber:  normNaturalInt,
	TagTrackTotal:   normNaturalInt,
}

// Metadata is the canonical audiobook metadata record.
//
// Metadata maps canonical tag names to typed values. Every assignment
// passes through a per-name normalizer: string tags become trimmed
// strings, list tags become non-empty string slices, numeric tags become
// positive integers. Assigning an absent or empty value removes the key
// instead of storing a sentinel, so Has() answers "is this tag set"
// without further checks.
//
// A Metadata is constructed once per file read or edit session and is
// owned by the caller; it never aliases container state.
type Metadata struct {
	values map[TagName]any
}

// NewMetadata returns an empty metadata record.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[TagName]any)}
}

// Set assigns a canonical tag after normalization.
//
// Empty and absent values delete the tag. A value the normalizer cannot
// coerce (wrong type, negative number) is rejected with a TagValueError
// and leaves the record unchanged.
//
// Example:
//
//	md.Set(types.TagAlbum, "  The Martian ") // stored as "The Martian"
//	md.Set(types.TagTrackTotal, 0)           // removes tracktotal
func (m *Metadata) Set(name TagName, value any) error {
	norm, ok := normalizers[name]
	if !ok {
		return &TagValueError{Key: string(name), Reason: "unknown tag name"}
	}

	if value == nil {
		m.Delete(name)
		return nil
	}

	coerced, err := norm(value)
	if err != nil {
		return &TagValueError{Key: string(name), Reason: err.Error()}
	}
	if coerced == nil {
		m.Delete(name)
		return nil
	}

	if m.values == nil {
		m.values = make(map[TagName]any)
	}
	m.values[name] = coerced
	return nil
}

// Get retrieves the stored value for a tag name.
func (m *Metadata) Get(name TagName) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	value, ok := m.values[name]
	return value, ok
}

// GetAll returns the stored value as a slice of at most one element.
// Canonical tags hold a single value; the slice form mirrors the
// multi-valued access containers provide.
func (m *Metadata) GetAll(name TagName) []any {
	if value, ok := m.Get(name); ok {
		return []any{value}
	}
	return nil
}

// Delete removes a tag. Deleting an absent tag is a no-op.
func (m *Metadata) Delete(name TagName) {
	if m.values != nil {
		delete(m.values, name)
	}
}

// Has reports whether the tag is set.
func (m *Metadata) Has(name TagName) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of set tags.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// All returns an iterator over set tags in stable name order.
//
// Example:
//
//	for name, value := range md.All() {
//		fmt.Printf("%s: %v\n", name, value)
//	}
func (m *Metadata) All() iter.Seq2[TagName, any] {
	return func(yield func(TagName, any) bool) {
		if m == nil || m.values == nil {
			return
		}
		for _, name := range TagNames() {
			if value, ok := m.values[name]; ok {
				if !yield(name, value) {
					return
				}
			}
		}
	}
}

// Clone creates a deep copy of the record.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	clone := NewMetadata()
	for name, value := range m.values {
		switch v := value.(type) {
		case []string:
			clone.values[name] = slices.Clone(v)
		case *Picture:
			clone.values[name] = v.Clone()
		default:
			clone.values[name] = v
		}
	}
	return clone
}

// Equal reports whether two records hold the same tags and values.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	return maps.EqualFunc(m.values, other.values, valueEqual)
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		return ok && slices.Equal(av, bv)
	case *Picture:
		bv, ok := b.(*Picture)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// Typed accessors. Each returns the zero value when the tag is absent.

// Album returns the album title.
func (m *Metadata) Album() string { return m.stringValue(TagAlbum) }

// AlbumArtist returns the album artists.
func (m *Metadata) AlbumArtist() []string { return m.listValue(TagAlbumArtist) }

// AlbumSort returns the library sort key.
func (m *Metadata) AlbumSort() string { return m.stringValue(TagAlbumSort) }

// Artist returns the track artists.
func (m *Metadata) Artist() []string { return m.listValue(TagArtist) }

// Comment returns the free-form comment.
func (m *Metadata) Comment() string { return m.stringValue(TagComment) }

// Composer returns the composers.
func (m *Metadata) Composer() []string { return m.listValue(TagComposer) }

// Cover returns the canonical cover picture, or nil.
func (m *Metadata) Cover() *Picture {
	if value, ok := m.Get(TagCover); ok {
		if pic, ok := value.(*Picture); ok {
			return pic
		}
	}
	return nil
}

// Date returns the release year, 0 when unset.
func (m *Metadata) Date() int { return m.intValue(TagDate) }

// DiscNumber returns the disc number, 0 when unset.
func (m *Metadata) DiscNumber() int { return m.intValue(TagDiscNumber) }

// DiscTotal returns the disc count, 0 when unset.
func (m *Metadata) DiscTotal() int { return m.intValue(TagDiscTotal) }

// Genre returns the genres.
func (m *Metadata) Genre() []string { return m.listValue(TagGenre) }

// Grouping returns the content group (series for audiobooks).
func (m *Metadata) Grouping() string { return m.stringValue(TagGrouping) }

// Label returns the publisher label.
func (m *Metadata) Label() string { return m.stringValue(TagLabel) }

// OriginalDate returns the original release year, 0 when unset.
func (m *Metadata) OriginalDate() int { return m.intValue(TagOriginalDate) }

// Title returns the track title.
func (m *Metadata) Title() string { return m.stringValue(TagTitle) }

// TrackNumber returns the track number, 0 when unset.
func (m *Metadata) TrackNumber() int { return m.intValue(TagTrackNumber) }

// TrackTotal returns the track count, 0 when unset.
func (m *Metadata) TrackTotal() int { return m.intValue(TagTrackTotal) }

func (m *Metadata) stringValue(name TagName) string {
	if value, ok := m.Get(name); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func (m *Metadata) listValue(name TagName) []string {
	if value, ok := m.Get(name); ok {
		if list, ok := value.([]string); ok {
			return slices.Clone(list)
		}
	}
	return nil
}

func (m *Metadata) intValue(name TagName) int {
	if value, ok := m.Get(name); ok {
		if n, ok := value.(int); ok {
			return n
		}
	}
	return 0
}

// normString coerces to a trimmed non-empty string.
func normString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		return s, nil
	case []string:
		s := strings.TrimSpace(strings.Join(v, " "))
		if s == "" {
			return nil, nil
		}
		return s, nil
	default:
		return nil, fmt.Errorf("expected string, got %T", value)
	}
}

// normStringList coerces to a non-empty slice of trimmed strings.
func normStringList(value any) (any, error) {
	var items []string
	switch v := value.(type) {
	case string:
		items = []string{v}
	case []string:
		items = v
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}

	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) == 0 {
		return nil, nil
	}
	return cleaned, nil
}

// normNaturalInt coerces to a positive integer. Zero means unset and
// removes the tag; negative values are rejected.
func normNaturalInt(value any) (any, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("expected number, got %q", v)
		}
		n = parsed
	default:
		return nil, fmt.Errorf("expected number, got %T", value)
	}

	if n < 0 {
		return nil, fmt.Errorf("expected non-negative number, got %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	return n, nil
}

// normPicture accepts a cover picture with actual image data.
func normPicture(value any) (any, error) {
	pic, ok := value.(*Picture)
	if !ok {
		return nil, fmt.Errorf("expected picture, got %T", value)
	}
	if pic == nil || len(pic.Data) == 0 {
		return nil, nil
	}
	return pic, nil
}
