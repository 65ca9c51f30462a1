package tagmap

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/rs/zerolog/log"
)

// Mapping is the complete translation table for one tag dialect and one
// direction: an ordered list of rules plus named groups of droppable
// native-key patterns.
//
// Mappings are assembled at package init and never mutated afterwards, so
// one instance is safely shared across concurrent translations.
type Mapping struct {
	rules  []Rule
	groups map[string][]*regexp.Regexp
	always []*regexp.Regexp
}

// New builds a Mapping running rules in declaration order. When two rules
// feed the same target key, the later one wins.
func New(rules ...Rule) *Mapping {
	return &Mapping{rules: rules, groups: make(map[string][]*regexp.Regexp)}
}

// WithGroup registers a named drop group. Patterns are regular expressions
// searched anywhere in a native key; anchoring is up to the pattern.
func (m *Mapping) WithGroup(name string, patterns ...string) *Mapping {
	m.groups[name] = compilePatterns(patterns)
	return m
}

// WithAlways registers the patterns removed on every write regardless of
// the caller's drop-group selection.
func (m *Mapping) WithAlways(patterns ...string) *Mapping {
	m.always = compilePatterns(patterns)
	return m
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Run executes every rule in declaration order. Rules absorb their own
// skips and rejected values; an error here is a translation fault, not a
// bad tag.
func (m *Mapping) Run(src Source, dst Target) error {
	for _, rule := range m.rules {
		if err := rule.Run(src, dst); err != nil {
			return err
		}
	}
	return nil
}

// Drop deletes every target key matching a pattern from the named groups
// or from the always-removed set. An unknown group name fails before
// anything is deleted.
func (m *Mapping) Drop(dst Target, groups ...string) error {
	patterns := slices.Clone(m.always)
	for _, name := range groups {
		group, ok := m.groups[name]
		if !ok {
			return fmt.Errorf("unknown drop group %q", name)
		}
		patterns = append(patterns, group...)
	}
	for _, key := range dst.Keys() {
		for _, re := range patterns {
			if re.MatchString(key) {
				log.Debug().Str("key", key).Msg("dropping tag")
				dst.Delete(key)
				break
			}
		}
	}
	return nil
}

// DropGroups lists the selectable drop group names in sorted order.
func (m *Mapping) DropGroups() []string {
	return slices.Sorted(maps.Keys(m.groups))
}
