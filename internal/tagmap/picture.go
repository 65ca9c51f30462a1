package tagmap

import (
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/simonhull/booktag/internal/artwork"
	"github.com/simonhull/booktag/internal/types"
)

// PictureOutTag adopts the best embedded picture as the canonical cover.
//
// The filter chain converts one native picture value into a *types.Picture
// carrying raw data and the declared classification. Candidates are ranked
// by cover priority, then tried in order until one decodes as an actual
// image; candidates that do not decode are dropped individually. When none
// decode the cover stays unset.
type PictureOutTag struct {
	Source  string
	Filters Chain
}

// PictureOut builds a PictureOutTag.
func PictureOut(source string, filters ...Filter) Rule {
	return PictureOutTag{Source: source, Filters: filters}
}

// Run implements Rule.
func (r PictureOutTag) Run(src Source, dst Target) error {
	var candidates []*types.Picture
	for _, frame := range src.GetAll(r.Source) {
		value, err := r.Filters.Apply(frame)
		if err != nil {
			if errors.Is(err, ErrSkipTag) {
				continue
			}
			return err
		}
		if pic, ok := value.(*types.Picture); ok && pic != nil {
			candidates = append(candidates, pic)
		}
	}
	slices.SortStableFunc(candidates, func(a, b *types.Picture) int {
		return b.Type.CoverWeight() - a.Type.CoverWeight()
	})
	for _, candidate := range candidates {
		pic, err := artwork.FromBytes(candidate.Data, candidate.Type, candidate.Description)
		if err != nil {
			log.Debug().Str("key", r.Source).Err(err).Msg("discarding undecodable picture")
			continue
		}
		if err := dst.Set(string(types.TagCover), pic); err != nil {
			log.Warn().Str("key", string(types.TagCover)).Err(err).Msg("target rejected tag value")
		}
		return nil
	}
	return nil
}

// PictureInTag embeds the canonical cover under a native picture key.
//
// Dialects that key picture slots by description accumulate duplicates,
// so every existing "key:description" slot is cleared before the new
// picture goes in. Without a canonical cover the rule does nothing and
// existing embedded art survives a no-change write.
type PictureInTag struct {
	Target  string
	Filters Chain
}

// PictureIn builds a PictureInTag.
func PictureIn(target string, filters ...Filter) Rule {
	return PictureInTag{Target: target, Filters: filters}
}

// Run implements Rule.
func (r PictureInTag) Run(src Source, dst Target) error {
	value, ok := src.Get(string(types.TagCover))
	if !ok || value == nil {
		return nil
	}
	out, err := r.Filters.Apply(value)
	if err != nil {
		if errors.Is(err, ErrSkipTag) {
			return nil
		}
		return err
	}
	prefix := r.Target + ":"
	for _, key := range dst.Keys() {
		if strings.HasPrefix(key, prefix) {
			dst.Delete(key)
		}
	}
	if err := dst.Set(r.Target, out); err != nil {
		log.Warn().Str("key", r.Target).Err(err).Msg("target rejected tag value")
	}
	return nil
}
