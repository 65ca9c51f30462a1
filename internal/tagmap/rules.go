package tagmap

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/simonhull/booktag/internal/types"
)

// Rule copies one logical field from a source to a target. Run absorbs
// skips and invalid target values; it only returns an error for faults
// translation cannot recover from.
type Rule interface {
	Run(src Source, dst Target) error
}

// MoveTag copies a single value from one key to another through a filter
// chain.
//
// On skip, read mappings leave the target untouched so an earlier rule
// feeding the same canonical field survives. Write mappings set
// DeleteOnSkip so a cleared canonical field removes the stale native tag.
type MoveTag struct {
	Source       string
	Target       string
	Filters      Chain
	DeleteOnSkip bool
}

// Move builds a MoveTag that leaves the target untouched on skip.
func Move(source, target string, filters ...Filter) Rule {
	return MoveTag{Source: source, Target: target, Filters: filters}
}

// MoveOrDrop builds a MoveTag that deletes the target key on skip.
func MoveOrDrop(source, target string, filters ...Filter) Rule {
	return MoveTag{Source: source, Target: target, Filters: filters, DeleteOnSkip: true}
}

// Run implements Rule.
func (r MoveTag) Run(src Source, dst Target) error {
	value, ok := src.Get(r.Source)
	if !ok || value == nil {
		r.skip(dst)
		return nil
	}
	out, err := r.Filters.Apply(value)
	if err != nil {
		if errors.Is(err, ErrSkipTag) {
			r.skip(dst)
			return nil
		}
		return err
	}
	if err := dst.Set(r.Target, out); err != nil {
		log.Warn().Str("key", r.Target).Err(err).Msg("target rejected tag value")
		r.skip(dst)
	}
	return nil
}

func (r MoveTag) skip(dst Target) {
	if r.DeleteOnSkip {
		dst.Delete(r.Target)
	}
}

// PairTag reads one packed position value, such as "3/12", and assigns its
// elements to two canonical fields independently. The filter chain is
// responsible for producing the element sequence; either element may be
// absent without affecting the other.
type PairTag struct {
	Source  string
	Targets [2]string
	Filters Chain
}

// Pair builds a PairTag.
func Pair(source, target0, target1 string, filters ...Filter) Rule {
	return PairTag{Source: source, Targets: [2]string{target0, target1}, Filters: filters}
}

// Run implements Rule.
func (r PairTag) Run(src Source, dst Target) error {
	value, ok := src.Get(r.Source)
	if !ok || value == nil {
		return nil
	}
	seq, err := r.Filters.Apply(value)
	if err != nil {
		if errors.Is(err, ErrSkipTag) {
			return nil
		}
		return err
	}
	items := asList(seq)
	for i, key := range r.Targets {
		if i >= len(items) {
			break
		}
		n, ok := intValue(items[i])
		if !ok {
			continue
		}
		if err := dst.Set(key, n); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("target rejected tag value")
		}
	}
	return nil
}

// ToPairTag synthesizes one packed position value from two canonical
// fields. A missing numerator skips the whole rule; a missing total
// defaults to zero and is left for the filter chain to strip or keep as
// the dialect requires.
type ToPairTag struct {
	Sources [2]string
	Target  string
	Filters Chain
}

// ToPair builds a ToPairTag.
func ToPair(source0, source1, target string, filters ...Filter) Rule {
	return ToPairTag{Sources: [2]string{source0, source1}, Target: target, Filters: filters}
}

// Run implements Rule.
func (r ToPairTag) Run(src Source, dst Target) error {
	pair := make([]any, 0, 2)
	for i, key := range r.Sources {
		n := 0
		if value, ok := src.Get(key); ok {
			if v, vok := intValue(value); vok && v > 0 {
				n = v
			}
		}
		if n == 0 && i == 0 {
			dst.Delete(r.Target)
			return nil
		}
		pair = append(pair, n)
	}
	out, err := r.Filters.Apply(pair)
	if err != nil {
		if errors.Is(err, ErrSkipTag) {
			dst.Delete(r.Target)
			return nil
		}
		return err
	}
	if err := dst.Set(r.Target, out); err != nil {
		log.Warn().Str("key", r.Target).Err(err).Msg("target rejected tag value")
		dst.Delete(r.Target)
	}
	return nil
}

// AlbumsortTag derives a library sort key from grouping, albumsort and
// album. Without a grouping there is nothing to sort by, and a single
// candidate would only duplicate the album title, so both cases skip.
type AlbumsortTag struct {
	Target  string
	Filters Chain
}

// Albumsort builds an AlbumsortTag.
func Albumsort(target string, filters ...Filter) Rule {
	return AlbumsortTag{Target: target, Filters: filters}
}

// Run implements Rule.
func (r AlbumsortTag) Run(src Source, dst Target) error {
	toStr := ToStr{}
	candidates := make([]any, 0, 3)
	for _, name := range []types.TagName{types.TagGrouping, types.TagAlbumSort, types.TagAlbum} {
		value, ok := src.Get(string(name))
		if ok {
			var err error
			value, err = toStr.Apply(value)
			if err == nil {
				candidates = append(candidates, value)
				continue
			}
		}
		if name == types.TagGrouping {
			return nil
		}
	}
	if len(candidates) <= 1 {
		return nil
	}
	joined, err := toStr.Apply(candidates)
	if err != nil {
		return nil
	}
	out, err := r.Filters.Apply(joined)
	if err != nil {
		if errors.Is(err, ErrSkipTag) {
			return nil
		}
		return err
	}
	if err := dst.Set(r.Target, out); err != nil {
		log.Warn().Str("key", r.Target).Err(err).Msg("target rejected tag value")
	}
	return nil
}
