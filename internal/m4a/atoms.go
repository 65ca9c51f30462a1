// Package m4a implements the iTunes-style MP4 tag dialect shared by M4A
// and M4B audio.
//
// Tag atoms live in the ilst box and carry lists of values: text atoms
// hold strings, trkn and disk hold packed number/total pairs, covr holds
// image payloads with a format marker. In MP4, © is the single byte
// 0xA9, so "©nam" is "\xA9nam" in Go strings.
package m4a

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/simonhull/booktag/internal/types"
)

// Pair is a packed position value: a track or disc number plus the total
// count. A zero Total means the file does not state one.
type Pair struct {
	Number int
	Total  int
}

// CoverFormat is the data atom type code labeling a covr payload.
type CoverFormat uint32

const (
	CoverJPEG CoverFormat = 0x0D
	CoverPNG  CoverFormat = 0x0E
	CoverBMP  CoverFormat = 0x1B
)

// MIMEType maps the format code to a MIME type. Unknown codes fall back
// to JPEG, the most common payload.
func (f CoverFormat) MIMEType() string {
	switch f {
	case CoverPNG:
		return "image/png"
	case CoverBMP:
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}

// Cover is an embedded artwork payload with its format marker.
type Cover struct {
	Format CoverFormat
	Data   []byte
}

// Atoms is an in-memory MP4 tag container: a map from atom names to
// value lists. Atom names are case-sensitive; "aART" and "AART" are
// different tags.
type Atoms struct {
	format types.Format
	atoms  map[string][]any
	order  []string
}

// NewAtoms returns an empty tag container speaking the dialect for the
// given format.
func NewAtoms(format types.Format) *Atoms {
	return &Atoms{format: format, atoms: make(map[string][]any)}
}

// Format implements types.Container.
func (a *Atoms) Format() types.Format {
	return a.format
}

// Get returns every value under the atom as one []any.
func (a *Atoms) Get(key string) (any, bool) {
	values, ok := a.atoms[key]
	if !ok {
		return nil, false
	}
	return values, true
}

// GetAll returns one entry per stored value.
func (a *Atoms) GetAll(key string) []any {
	return slices.Clone(a.atoms[key])
}

// Set replaces the values under the atom. Accepted shapes are strings,
// integers, position pairs, cover payloads, and slices of those;
// anything else is rejected.
func (a *Atoms) Set(key string, value any) error {
	values, err := atomValues(key, value)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		a.Delete(key)
		return nil
	}
	if _, ok := a.atoms[key]; !ok {
		a.order = append(a.order, key)
	}
	a.atoms[key] = values
	return nil
}

// Delete implements types.Container.
func (a *Atoms) Delete(key string) {
	if _, ok := a.atoms[key]; !ok {
		return
	}
	delete(a.atoms, key)
	a.order = slices.DeleteFunc(a.order, func(s string) bool { return s == key })
}

// Keys lists the atom names in first-set order.
func (a *Atoms) Keys() []string {
	return slices.Clone(a.order)
}

// atomValues coerces a tag value into a list of atom values.
func atomValues(key string, value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			elem, err := atomValue(key, item)
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	default:
		elem, err := atomValue(key, value)
		if err != nil {
			return nil, err
		}
		return []any{elem}, nil
	}
}

func atomValue(key string, value any) (any, error) {
	switch v := value.(type) {
	case string, Pair, Cover:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return nil, &types.TagValueError{
			Key:    key,
			Reason: fmt.Sprintf("unsupported atom value type %T", value),
		}
	}
}
