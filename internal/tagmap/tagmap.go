// Package tagmap implements the translation layer between format-specific
// tag containers and the canonical metadata record.
//
// A Mapping is an ordered list of rules, one Mapping per tag dialect and
// direction. Each rule copies one logical field, passing the value through
// a chain of small filters. A filter marks a value unusable by returning
// ErrSkipTag; skipping is the normal "tag absent" path, never a failure.
// Mappings are built once at package init and are immutable afterwards, so
// they are safe to share across concurrent translations.
package tagmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSkipTag signals that a value is absent or unusable for its target.
// Rules absorb it; it never surfaces to callers of a Mapping.
var ErrSkipTag = errors.New("skip tag")

// Source is the read side of a rule: a tag container or a metadata record.
type Source interface {
	// Get returns the value stored under key, or false when absent.
	Get(key string) (any, bool)
	// GetAll returns every value stored under key. Multi-valued native
	// tags and embedded picture slots report one entry per value.
	GetAll(key string) []any
}

// Target is the write side of a rule.
type Target interface {
	// Set stores a value under key. An error reports that the target
	// rejected the value; the offending rule is skipped, translation
	// continues.
	Set(key string, value any) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
	// Keys lists every key currently present.
	Keys() []string
}

// Filter transforms one tag value on its way between containers.
type Filter interface {
	Apply(value any) (any, error)
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(value any) (any, error)

// Apply calls f.
func (f FilterFunc) Apply(value any) (any, error) { return f(value) }

// Chain is a fixed sequence of filters applied in order. The first skip
// aborts the chain.
type Chain []Filter

// Apply runs the value through every filter in order.
func (c Chain) Apply(value any) (any, error) {
	for _, f := range c {
		next, err := f.Apply(value)
		if err != nil {
			return nil, err
		}
		value = next
	}
	return value, nil
}

// stringify renders a scalar tag value as a string.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// intValue parses a scalar tag value as an integer.
func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// asList views a tag value as a slice of elements.
func asList(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{value}
	}
}
