package booktag

import (
	"io"

	"github.com/simonhull/booktag/internal/types"
)

// Format is an alias to types.Format, re-exported from internal/types
// so the public API and the translation engine share one definition.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
	FormatM4A     = types.FormatM4A
	FormatM4B     = types.FormatM4B
	FormatOgg     = types.FormatOgg
	FormatOpus    = types.FormatOpus
	FormatWavPack = types.FormatWavPack
	FormatAPE     = types.FormatAPE
	FormatWAV     = types.FormatWAV
	FormatAIFF    = types.FormatAIFF
)

// DetectFormat identifies the container format of r by its magic bytes,
// falling back to the path extension when the leading bytes are ambiguous.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
