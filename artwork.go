package booktag

import (
	"github.com/simonhull/booktag/internal/artwork"
	"github.com/simonhull/booktag/internal/types"
)

// Picture is re-exported from internal/types so the public API and the
// translation engine share one definition.
type Picture = types.Picture

// PictureType is re-exported from internal/types so the public API and
// the translation engine share one definition.
type PictureType = types.PictureType

// Re-export all picture type constants.
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// NewPicture builds a front-cover Picture from raw image bytes,
// sniffing the MIME type and decoding the dimensions. Bytes that do not
// decode as an image are rejected with a NotAnImageError.
//
// Example:
//
//	data, _ := os.ReadFile("cover.jpg")
//	pic, err := booktag.NewPicture(data)
//	if err != nil {
//		return err
//	}
//	md.Set(booktag.TagCover, pic)
func NewPicture(data []byte) (*Picture, error) {
	return artwork.FromBytes(data, types.PictureFrontCover, "")
}

// ScalePicture returns the picture scaled to fit within maxDim pixels
// on its longer side, re-encoded as JPEG. Pictures already within the
// bound come back unchanged.
func ScalePicture(pic *Picture, maxDim int) (*Picture, error) {
	return artwork.ScalePicture(pic, maxDim)
}
