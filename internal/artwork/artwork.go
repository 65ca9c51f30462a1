// Package artwork validates and prepares embedded cover images.
//
// Decoding goes through the standard image registry so that any picture a
// tag can carry (JPEG, PNG, GIF, WebP) resolves to a MIME type and pixel
// dimensions. Data that does not decode is reported as not an image; the
// translation layer treats that as "no usable picture", never as a failure.
package artwork

import (
	"bytes"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/simonhull/booktag/internal/types"
)

// Sniff detects the image MIME type from magic bytes. Returns "" when the
// data matches no known signature.
func Sniff(data []byte) string {
	if len(data) < 4 {
		return ""
	}

	// JPEG: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg"
	}

	// PNG: 89 50 4E 47
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}

	// GIF: 47 49 46
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		return "image/gif"
	}

	// BMP: 42 4D
	if data[0] == 0x42 && data[1] == 0x4D {
		return "image/bmp"
	}

	// WebP: RIFF....WEBP
	if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "image/webp"
	}

	return ""
}

// Decode probes image data and returns its MIME type and pixel dimensions
// without decoding the full pixel raster.
func Decode(data []byte) (mime string, width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, &types.NotAnImageError{Reason: err.Error()}
	}
	return "image/" + format, cfg.Width, cfg.Height, nil
}

// FromBytes builds a Picture from raw image data, filling in the MIME type
// and dimensions. Fails with NotAnImageError when the data does not decode.
func FromBytes(data []byte, pictureType types.PictureType, description string) (*types.Picture, error) {
	mime, width, height, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &types.Picture{
		Type:        pictureType,
		MIMEType:    mime,
		Description: description,
		Data:        data,
		Width:       width,
		Height:      height,
	}, nil
}
