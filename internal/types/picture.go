package types

import (
	"bytes"
	"fmt"
	"slices"
)

// Picture represents one embedded picture (cover art, liner images).
//
// Containers may hold several pictures; the canonical record keeps at
// most one, chosen by cover-priority ranking.
type Picture struct {
	// Type classifies the picture's purpose (front cover, media, ...)
	Type PictureType

	// MIME type of the image data
	MIMEType string // "image/jpeg", "image/png", "image/gif", "image/webp"

	// Description of the picture (optional)
	Description string

	// Image binary data
	Data []byte

	// Dimensions (if known, otherwise 0)
	Width  int // Pixels
	Height int // Pixels
}

// PictureType categorizes the purpose/content of an embedded picture.
//
// Values follow the ID3v2 APIC picture-type table, which FLAC picture
// blocks reuse. See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType int

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

// String returns a human-readable name for the picture type.
func (t PictureType) String() string {
	names := []string{
		"Other", "File icon", "Other file icon", "Front cover", "Back cover",
		"Leaflet page", "Media", "Lead artist", "Artist", "Conductor",
		"Band", "Composer", "Lyricist", "Recording location",
		"During recording", "During performance", "Video capture",
		"Bright colored fish", "Illustration", "Band logotype",
		"Publisher logotype",
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("PictureType(%d)", int(t))
}

// coverPriority orders picture types by how likely they are to be the
// picture a library view should show. Successive tiers weigh strictly
// lower; types not listed rank below all of these.
var coverPriority = []PictureType{
	PictureFrontCover,
	PictureBackCover,
	PictureOther,
	PictureLeaflet,
	PictureMedia,
	PictureLeadArtist,
	PictureArtist,
	PictureIllustration,
}

// CoverWeight returns the cover-selection weight for the picture type.
// Higher means preferred; unlisted types return 0.
func (t PictureType) CoverWeight() int {
	idx := slices.Index(coverPriority, t)
	if idx < 0 {
		return 0
	}
	return 100 - idx*10
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (p Picture) String() string {
	sizeStr := formatSize(len(p.Data))

	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}

	return fmt.Sprintf("%s (%s%s, %s)", p.Type, dims, mimeToFormat(p.MIMEType), sizeStr)
}

// Clone creates a deep copy of the picture.
func (p *Picture) Clone() *Picture {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Data = slices.Clone(p.Data)
	return &clone
}

// Equal reports whether two pictures carry the same image.
func (p *Picture) Equal(other *Picture) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Type == other.Type &&
		p.MIMEType == other.MIMEType &&
		p.Description == other.Description &&
		bytes.Equal(p.Data, other.Data)
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
