package mp3

import (
	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/simonhull/booktag/internal/artwork"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

// PictureDecode converts an attached-picture frame into a picture
// candidate. Anything but a picture frame skips.
type PictureDecode struct{}

// Apply implements tagmap.Filter.
func (PictureDecode) Apply(value any) (any, error) {
	frame, ok := value.(id3v2.PictureFrame)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	return &types.Picture{
		Type:        types.PictureType(frame.PictureType),
		MIMEType:    frame.MimeType,
		Description: frame.Description,
		Data:        frame.Picture,
	}, nil
}

// PictureEncode renders the canonical cover as a front-cover picture
// frame, sniffing the MIME type from the image bytes when unset.
type PictureEncode struct{}

// Apply implements tagmap.Filter.
func (PictureEncode) Apply(value any) (any, error) {
	pic, ok := value.(*types.Picture)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	mime := pic.MIMEType
	if mime == "" {
		mime = artwork.Sniff(pic.Data)
	}
	if mime == "" {
		return nil, tagmap.ErrSkipTag
	}
	return id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: pic.Description,
		Picture:     pic.Data,
	}, nil
}
