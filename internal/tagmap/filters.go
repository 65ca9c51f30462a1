package tagmap

import (
	"regexp"
	"strings"

	"github.com/simonhull/booktag/internal/parsing"
)

// FirstItem yields the first element of a sequence and passes scalars
// through unchanged. An empty sequence skips.
type FirstItem struct{}

// Apply implements Filter.
func (FirstItem) Apply(value any) (any, error) {
	switch v := value.(type) {
	case []any, []string:
		items := asList(v)
		if len(items) == 0 {
			return nil, ErrSkipTag
		}
		return items[0], nil
	}
	return value, nil
}

// ToInt parses the value as an integer. Values that do not parse skip.
type ToInt struct {
	// NotZero turns a zero result into a skip.
	NotZero bool
	// Positive turns a negative result into a skip.
	Positive bool
}

// Apply implements Filter.
func (f ToInt) Apply(value any) (any, error) {
	n, ok := intValue(value)
	if !ok {
		return nil, ErrSkipTag
	}
	if f.NotZero && n == 0 {
		return nil, ErrSkipTag
	}
	if f.Positive && n < 0 {
		return nil, ErrSkipTag
	}
	return n, nil
}

// ToStr renders the value as a trimmed string, joining sequences with Sep.
// An empty result skips unless AllowEmpty is set.
type ToStr struct {
	// Sep joins sequence elements. Empty means a single space.
	Sep string
	// AllowEmpty passes an empty result through instead of skipping.
	AllowEmpty bool
}

// Apply implements Filter.
func (f ToStr) Apply(value any) (any, error) {
	if value == nil {
		if f.AllowEmpty {
			return "", nil
		}
		return nil, ErrSkipTag
	}
	sep := f.Sep
	if sep == "" {
		sep = " "
	}
	var s string
	switch v := value.(type) {
	case []any, []string:
		items := asList(v)
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = stringify(item)
		}
		s = strings.Join(parts, sep)
	default:
		s = stringify(value)
	}
	s = strings.TrimSpace(s)
	if s == "" && !f.AllowEmpty {
		return nil, ErrSkipTag
	}
	return s, nil
}

// ToList wraps scalars in a one-element sequence and drops empty elements.
// An empty result skips unless AllowEmpty is set.
type ToList struct {
	AllowEmpty bool
}

// Apply implements Filter.
func (f ToList) Apply(value any) (any, error) {
	var out []any
	for _, item := range asList(value) {
		if item == nil || item == "" {
			continue
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		if f.AllowEmpty {
			return []any{}, nil
		}
		return nil, ErrSkipTag
	}
	return out, nil
}

// Split cuts each element of the value on a set of separator substrings,
// trims the pieces, and drops empty ones. An empty result skips.
type Split struct {
	re *regexp.Regexp
}

// NewSplit builds a Split filter for the given separator substrings.
func NewSplit(separators ...string) Split {
	quoted := make([]string, len(separators))
	for i, s := range separators {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return Split{re: regexp.MustCompile(strings.Join(quoted, "|"))}
}

// Apply implements Filter.
func (f Split) Apply(value any) (any, error) {
	var out []string
	for _, item := range asList(value) {
		if item == nil {
			continue
		}
		for _, piece := range f.re.Split(stringify(item), -1) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				out = append(out, piece)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrSkipTag
	}
	return out, nil
}

// RStrip drops trailing zero or empty elements from a sequence, used when
// only the numerator of a "track/total" pair is known. A sequence with no
// remaining elements skips.
type RStrip struct{}

// Apply implements Filter.
func (RStrip) Apply(value any) (any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, ErrSkipTag
	}
	end := len(items)
	for end > 0 && isEmptyValue(items[end-1]) {
		end--
	}
	if end == 0 {
		return nil, ErrSkipTag
	}
	return items[:end], nil
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case int:
		return v == 0
	case string:
		return v == ""
	}
	return false
}

// Year extracts a four-digit year from a date-like value: a plain year, a
// timestamp string, or a sequence holding one. Skips when no positive year
// can be recovered.
type Year struct{}

// Apply implements Filter.
func (Year) Apply(value any) (any, error) {
	first, err := FirstItem{}.Apply(value)
	if err != nil {
		return nil, err
	}
	year, err := parsing.Year(first)
	if err != nil {
		return nil, ErrSkipTag
	}
	return year, nil
}
