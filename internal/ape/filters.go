package ape

import (
	"bytes"

	"github.com/simonhull/booktag/internal/parsing"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

// PositionOut parses an "n/total" item value into its two elements.
type PositionOut struct{}

// Apply implements tagmap.Filter.
func (PositionOut) Apply(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	num, total, err := parsing.ParsePair(s)
	if err != nil {
		return nil, tagmap.ErrSkipTag
	}
	return []any{num, total}, nil
}

// PositionIn renders a number/total element list as an "n/total" value.
// A zero total is omitted.
type PositionIn struct{}

// Apply implements tagmap.Filter.
func (PositionIn) Apply(value any) (any, error) {
	items, ok := value.([]any)
	if !ok || len(items) < 2 {
		return nil, tagmap.ErrSkipTag
	}
	num, nok := items[0].(int)
	total, tok := items[1].(int)
	if !nok || !tok {
		return nil, tagmap.ErrSkipTag
	}
	return parsing.FormatPair(num, total), nil
}

// CoverDecode turns a "Cover Art (Front)" payload into a picture.
type CoverDecode struct{}

// Apply implements tagmap.Filter.
func (CoverDecode) Apply(value any) (any, error) {
	payload, ok := value.([]byte)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	desc, data, found := bytes.Cut(payload, []byte{0})
	if !found {
		return nil, tagmap.ErrSkipTag
	}
	return &types.Picture{
		Type:        types.PictureFrontCover,
		Description: string(desc),
		Data:        data,
	}, nil
}

// CoverEncode turns a picture into a "Cover Art (Front)" payload.
type CoverEncode struct{}

// Apply implements tagmap.Filter.
func (CoverEncode) Apply(value any) (any, error) {
	pic, ok := value.(*types.Picture)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	desc := pic.Description
	if desc == "" {
		desc = "cover"
	}
	payload := make([]byte, 0, len(desc)+1+len(pic.Data))
	payload = append(payload, desc...)
	payload = append(payload, 0)
	payload = append(payload, pic.Data...)
	return payload, nil
}
