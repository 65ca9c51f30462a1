package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"github.com/simonhull/booktag/internal/types"
)

const jpegQuality = 85

// Scale shrinks an image to fit within maxDim on its longest side,
// preserving aspect ratio. Images already within bounds are returned
// unchanged; scaled output is re-encoded as JPEG.
func Scale(data []byte, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("invalid max dimension %d", maxDim)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &types.NotAnImageError{Reason: err.Error()}
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return data, nil
	}

	return encodeJPEG(fit(img, maxDim))
}

// Thumbnail returns a JPEG rendition of the image no larger than maxDim
// on its longest side. Unlike Scale, the output is always re-encoded,
// so callers get JPEG bytes whatever format came in.
func Thumbnail(data []byte, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("invalid max dimension %d", maxDim)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &types.NotAnImageError{Reason: err.Error()}
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = fit(img, maxDim)
	}

	return encodeJPEG(img)
}

// fit scales an image down to maxDim on its longest side, preserving
// aspect ratio.
func fit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	var newW, newH int
	if srcW > srcH {
		newW = maxDim
		newH = srcH * maxDim / srcW
	} else {
		newH = maxDim
		newW = srcW * maxDim / srcH
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// ScalePicture applies Scale to a Picture's data, refreshing the MIME type
// and dimensions when the image was resized. The input is not modified.
func ScalePicture(pic *types.Picture, maxDim int) (*types.Picture, error) {
	scaled, err := Scale(pic.Data, maxDim)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(scaled, pic.Data) {
		return pic, nil
	}
	return FromBytes(scaled, pic.Type, pic.Description)
}
