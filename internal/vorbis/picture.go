package vorbis

import (
	"encoding/base64"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/go-flac"

	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

// PictureDecode converts one METADATA_BLOCK_PICTURE value into a picture
// candidate. Values that are not valid base64 FLAC picture blocks skip.
type PictureDecode struct{}

// Apply implements tagmap.Filter.
func (PictureDecode) Apply(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, tagmap.ErrSkipTag
	}
	block, err := flacpicture.ParseFromMetaDataBlock(flac.MetaDataBlock{
		Type: flac.Picture,
		Data: raw,
	})
	if err != nil {
		return nil, tagmap.ErrSkipTag
	}
	return FromBlock(block), nil
}

// PictureEncode renders the canonical cover as one base64-encoded FLAC
// picture block, classified as a front cover.
type PictureEncode struct{}

// Apply implements tagmap.Filter.
func (PictureEncode) Apply(value any) (any, error) {
	pic, ok := value.(*types.Picture)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	block, err := ToBlock(pic)
	if err != nil {
		return nil, tagmap.ErrSkipTag
	}
	marshaled := block.Marshal()
	return base64.StdEncoding.EncodeToString(marshaled.Data), nil
}

// FromBlock converts a decoded FLAC picture block into a Picture.
func FromBlock(block *flacpicture.MetadataBlockPicture) *types.Picture {
	return &types.Picture{
		Type:        types.PictureType(block.PictureType),
		MIMEType:    block.MIME,
		Description: block.Description,
		Data:        block.ImageData,
		Width:       int(block.Width),
		Height:      int(block.Height),
	}
}

// ToBlock builds a front-cover FLAC picture block from a Picture.
func ToBlock(pic *types.Picture) (*flacpicture.MetadataBlockPicture, error) {
	block, err := flacpicture.NewFromImageData(
		flacpicture.PictureTypeFrontCover, pic.Description, pic.Data, pic.MIMEType)
	if err != nil {
		return nil, err
	}
	if pic.Width > 0 && pic.Height > 0 {
		block.Width = uint32(pic.Width)
		block.Height = uint32(pic.Height)
	}
	return block, nil
}
