// Package ape implements the APEv2 tag dialect used by WavPack and
// Monkey's Audio files.
//
// APEv2 items hold UTF-8 text values or a raw binary payload. Item keys
// are compared case-insensitively but keep the spelling they were first
// written with. Embedded artwork travels in the "Cover Art (Front)"
// binary item as a description, a NUL, then the image bytes.
package ape

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/booktag/internal/types"
)

// Item is one APEv2 tag item. Text items carry Values; binary items
// carry Data.
type Item struct {
	Key    string
	Values []string
	Data   []byte
}

// Items is an in-memory APEv2 tag container.
type Items struct {
	format types.Format
	items  map[string]*Item
	order  []string
}

// NewItems returns an empty tag container speaking the dialect for the
// given format.
func NewItems(format types.Format) *Items {
	return &Items{format: format, items: make(map[string]*Item)}
}

// Format implements types.Container.
func (t *Items) Format() types.Format {
	return t.format
}

// Get returns a text item's whole value list, or a binary item's
// payload.
func (t *Items) Get(key string) (any, bool) {
	item, ok := t.items[fold(key)]
	if !ok {
		return nil, false
	}
	if item.Data != nil {
		return item.Data, true
	}
	return item.Values, true
}

// GetAll returns one entry per text value, or the single binary payload.
func (t *Items) GetAll(key string) []any {
	item, ok := t.items[fold(key)]
	if !ok {
		return nil
	}
	if item.Data != nil {
		return []any{item.Data}
	}
	out := make([]any, len(item.Values))
	for i, v := range item.Values {
		out[i] = v
	}
	return out
}

// Set replaces the item under the key. Strings, integers and slices of
// those become text items; []byte becomes a binary item. Anything else
// is rejected.
func (t *Items) Set(key string, value any) error {
	if data, ok := value.([]byte); ok {
		if len(data) == 0 {
			t.Delete(key)
			return nil
		}
		t.put(&Item{Key: key, Data: data})
		return nil
	}
	values, err := textValues(key, value)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		t.Delete(key)
		return nil
	}
	t.put(&Item{Key: key, Values: values})
	return nil
}

// put stores an item, keeping the spelling of an already present key.
func (t *Items) put(item *Item) {
	folded := fold(item.Key)
	if existing, ok := t.items[folded]; ok {
		item.Key = existing.Key
	} else {
		t.order = append(t.order, folded)
	}
	t.items[folded] = item
}

// Delete implements types.Container.
func (t *Items) Delete(key string) {
	folded := fold(key)
	if _, ok := t.items[folded]; !ok {
		return
	}
	delete(t.items, folded)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == folded })
}

// Keys lists item keys in first-set order, in their stored spelling.
func (t *Items) Keys() []string {
	out := make([]string, len(t.order))
	for i, folded := range t.order {
		out[i] = t.items[folded].Key
	}
	return out
}

func fold(key string) string {
	return strings.ToLower(key)
}

// textValues coerces a tag value into text item values.
func textValues(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
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
			Reason: fmt.Sprintf("expected string or []byte, got %T", value),
		}
	}
}
