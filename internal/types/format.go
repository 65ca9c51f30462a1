package types

import (
	"io"
)

// Format identifies the physical audio container format.
//
// The format determines which tag dialect applies: MP3 carries ID3
// frames, M4A/M4B carry MP4 atoms, FLAC/Ogg/Opus carry Vorbis comments,
// WavPack and Monkey's Audio carry APEv2 items.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFLAC represents FLAC audio files.
	FormatFLAC
	// FormatMP3 represents MP3 audio files.
	FormatMP3
	// FormatM4A represents M4A audio files.
	FormatM4A
	// FormatM4B represents M4B audiobook files.
	FormatM4B
	// FormatOgg represents Ogg Vorbis audio files.
	FormatOgg
	// FormatOpus represents Opus audio files.
	FormatOpus
	// FormatWavPack represents WavPack audio files.
	FormatWavPack
	// FormatAPE represents Monkey's Audio files.
	FormatAPE
	// FormatWAV represents WAV audio files.
	FormatWAV
	// FormatAIFF represents AIFF audio files.
	FormatAIFF
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	case FormatM4A:
		return "M4A"
	case FormatM4B:
		return "M4B"
	case FormatOgg:
		return "Ogg Vorbis"
	case FormatOpus:
		return "Opus"
	case FormatWavPack:
		return "WavPack"
	case FormatAPE:
		return "Monkey's Audio"
	case FormatWAV:
		return "WAV"
	case FormatAIFF:
		return "AIFF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	case FormatM4A:
		return []string{".m4a", ".mp4", ".m4p"}
	case FormatM4B:
		return []string{".m4b"}
	case FormatOgg:
		return []string{".ogg", ".oga"}
	case FormatOpus:
		return []string{".opus"}
	case FormatWavPack:
		return []string{".wv"}
	case FormatAPE:
		return []string{".ape"}
	case FormatWAV:
		return []string{".wav"}
	case FormatAIFF:
		return []string{".aiff", ".aif"}
	default:
		return nil
	}
}

// DetectFormat determines the audio file format by examining magic bytes.
//
// Supported formats: FLAC, MP3, M4A, M4B, Ogg Vorbis, Opus, WavPack,
// Monkey's Audio, WAV, AIFF.
//
// Detection is based on file signatures at the beginning of the file and
// does not validate the entire file structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) { //nolint:gocyclo // Format detection requires checking multiple magic byte patterns
	// File must be at least 4 bytes for any meaningful detection
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	readAt := func(buf []byte, off int64) bool {
		if off+int64(len(buf)) > size {
			return false
		}
		_, err := r.ReadAt(buf, off)
		return err == nil
	}

	magic := make([]byte, 4)
	if !readAt(magic, 0) {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	// FLAC (fLaC)
	if string(magic) == "fLaC" {
		return FormatFLAC, nil
	}

	// ID3v2 tag (MP3)
	if string(magic[:3]) == "ID3" {
		return FormatMP3, nil
	}

	// MP3 frame sync (0xFFE or 0xFFF) catches files without ID3 tags
	if magic[0] == 0xFF && (magic[1]&0xE0) == 0xE0 {
		return FormatMP3, nil
	}

	// WavPack block header (wvpk)
	if string(magic) == "wvpk" {
		return FormatWavPack, nil
	}

	// Monkey's Audio (MAC followed by a space or version byte)
	if string(magic[:3]) == "MAC" {
		return FormatAPE, nil
	}

	// Ogg (OggS) - could be Vorbis or Opus
	if string(magic) == "OggS" {
		// Need to read into the first Ogg page to find the codec magic.
		// Ogg page header: 27 bytes fixed + segment table (variable).
		// Minimum needed: 27 (header) + 1 (segment table) + 8 (OpusHead)
		if size >= 36 {
			segCount := make([]byte, 1)
			if readAt(segCount, 26) {
				// First packet starts after 27 header bytes + segment table
				packetOffset := int64(27 + int(segCount[0]))
				codecMagic := make([]byte, 8)
				if readAt(codecMagic, packetOffset) && string(codecMagic) == "OpusHead" {
					return FormatOpus, nil
				}
			}
		}
		return FormatOgg, nil
	}

	// RIFF/WAV (RIFF....WAVE)
	if string(magic) == "RIFF" && size >= 12 {
		waveTag := make([]byte, 4)
		if readAt(waveTag, 8) && string(waveTag) == "WAVE" {
			return FormatWAV, nil
		}
	}

	// AIFF (FORM....AIFF)
	if string(magic) == "FORM" && size >= 12 {
		aiffTag := make([]byte, 4)
		if readAt(aiffTag, 8) {
			if string(aiffTag) == "AIFF" || string(aiffTag) == "AIFC" {
				return FormatAIFF, nil
			}
		}
	}

	// MP4 family: an ftyp atom within the first 8 bytes
	header := make([]byte, 12)
	if !readAt(header, 0) {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if string(header[4:8]) != "ftyp" {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "unsupported file format",
		}
	}

	atomSize := uint32(header[0])<<24 | uint32(header[1])<<16 | uint32(header[2])<<8 | uint32(header[3])
	// ftyp atom must hold size + type + brand + version
	if atomSize < 16 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "ftyp atom too small",
		}
	}

	switch string(header[8:12]) {
	case "M4B ":
		return FormatM4B, nil
	case "M4A ", "mp42", "isom":
		return FormatM4A, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file brand",
	}
}
