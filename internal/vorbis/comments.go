// Package vorbis implements the Vorbis comment tag dialect.
//
// Vorbis comments are shared by FLAC, Ogg Vorbis and Opus files. The
// format is identical across codecs: UTF-8 "KEY=VALUE" fields with
// case-insensitive keys. Embedded pictures travel as base64-encoded FLAC
// picture blocks under the METADATA_BLOCK_PICTURE field.
package vorbis

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/booktag/internal/types"
)

// Comments is an in-memory Vorbis comment container: a case-insensitive
// multimap from field names to string values. Names are folded to
// lowercase on storage, mirroring how comment headers are compared.
type Comments struct {
	format types.Format
	fields map[string][]string
	order  []string
}

// NewComments returns an empty comment container speaking the dialect
// for the given format.
func NewComments(format types.Format) *Comments {
	return &Comments{format: format, fields: make(map[string][]string)}
}

// Format implements types.Container.
func (c *Comments) Format() types.Format {
	return c.format
}

// Get returns every value under the field as one []string.
func (c *Comments) Get(key string) (any, bool) {
	values, ok := c.fields[fold(key)]
	if !ok {
		return nil, false
	}
	return values, true
}

// GetAll returns one entry per stored value.
func (c *Comments) GetAll(key string) []any {
	values := c.fields[fold(key)]
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Set replaces the values under the field. Accepted shapes are strings,
// string slices and integers; anything else is rejected.
func (c *Comments) Set(key string, value any) error {
	values, err := commentValues(key, value)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		c.Delete(key)
		return nil
	}
	folded := fold(key)
	if _, ok := c.fields[folded]; !ok {
		c.order = append(c.order, folded)
	}
	c.fields[folded] = values
	return nil
}

// Add appends one value to the field, keeping earlier values. Backends
// use it while walking "KEY=VALUE" comment lists.
func (c *Comments) Add(key, value string) {
	folded := fold(key)
	if _, ok := c.fields[folded]; !ok {
		c.order = append(c.order, folded)
	}
	c.fields[folded] = append(c.fields[folded], value)
}

// Delete implements types.Container.
func (c *Comments) Delete(key string) {
	folded := fold(key)
	if _, ok := c.fields[folded]; !ok {
		return
	}
	delete(c.fields, folded)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == folded })
}

// Keys lists the folded field names in first-set order.
func (c *Comments) Keys() []string {
	return slices.Clone(c.order)
}

// All iterates fields and their values in first-set order.
func (c *Comments) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range c.order {
			if !yield(key, c.fields[key]) {
				return
			}
		}
	}
}

func fold(key string) string {
	return strings.ToLower(key)
}

// commentValues coerces a tag value into comment strings.
func commentValues(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case int:
		return []string{strconv.Itoa(v)}, nil
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			switch e := item.(type) {
			case string:
				out[i] = e
			case int:
				out[i] = strconv.Itoa(e)
			default:
				return nil, &types.TagValueError{
					Key:    key,
					Reason: fmt.Sprintf("expected string, got %T", item),
				}
			}
		}
		return out, nil
	default:
		return nil, &types.TagValueError{
			Key:    key,
			Reason: fmt.Sprintf("expected string, got %T", value),
		}
	}
}
