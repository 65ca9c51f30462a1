package m4a

import (
	"github.com/simonhull/booktag/internal/artwork"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

// PairOut unpacks a position pair into its number and total elements.
type PairOut struct{}

// Apply implements tagmap.Filter.
func (PairOut) Apply(value any) (any, error) {
	pair, ok := value.(Pair)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	return []any{pair.Number, pair.Total}, nil
}

// PairIn packs a number/total element list back into a position pair.
// The total stays in place even when zero; that is how the atom is
// written.
type PairIn struct{}

// Apply implements tagmap.Filter.
func (PairIn) Apply(value any) (any, error) {
	items, ok := value.([]any)
	if !ok || len(items) < 2 {
		return nil, tagmap.ErrSkipTag
	}
	number, nok := items[0].(int)
	total, tok := items[1].(int)
	if !nok || !tok {
		return nil, tagmap.ErrSkipTag
	}
	return Pair{Number: number, Total: total}, nil
}

// CoverDecode turns a covr payload into a picture.
type CoverDecode struct{}

// Apply implements tagmap.Filter.
func (CoverDecode) Apply(value any) (any, error) {
	cover, ok := value.(Cover)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	return &types.Picture{
		Type:     types.PictureFrontCover,
		MIMEType: cover.Format.MIMEType(),
		Data:     cover.Data,
	}, nil
}

// CoverEncode turns a picture into a covr payload. PNG data keeps its
// own format marker; everything else is labeled JPEG, the carrier
// default.
type CoverEncode struct{}

// Apply implements tagmap.Filter.
func (CoverEncode) Apply(value any) (any, error) {
	pic, ok := value.(*types.Picture)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	mime := pic.MIMEType
	if mime == "" {
		mime = artwork.Sniff(pic.Data)
	}
	format := CoverJPEG
	if mime == "image/png" {
		format = CoverPNG
	}
	return Cover{Format: format, Data: pic.Data}, nil
}
