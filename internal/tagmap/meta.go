package tagmap

import "github.com/simonhull/booktag/internal/types"

// MetaSource adapts a metadata record to the read side of a rule. Write
// mappings use it to pull canonical fields by name.
type MetaSource struct {
	Record *types.Metadata
}

// Get implements Source.
func (s MetaSource) Get(key string) (any, bool) {
	return s.Record.Get(types.TagName(key))
}

// GetAll implements Source.
func (s MetaSource) GetAll(key string) []any {
	return s.Record.GetAll(types.TagName(key))
}

// MetaTarget adapts a metadata record to the write side of a rule. Read
// mappings use it to store canonical fields, subject to the record's
// normalization: a value the record cannot coerce comes back as an error
// and the offending rule is skipped.
type MetaTarget struct {
	Record *types.Metadata
}

// Set implements Target.
func (t MetaTarget) Set(key string, value any) error {
	return t.Record.Set(types.TagName(key), value)
}

// Delete implements Target.
func (t MetaTarget) Delete(key string) {
	t.Record.Delete(types.TagName(key))
}

// Keys implements Target.
func (t MetaTarget) Keys() []string {
	keys := make([]string, 0, t.Record.Len())
	for name := range t.Record.All() {
		keys = append(keys, string(name))
	}
	return keys
}
