package mp3

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	binutil "github.com/simonhull/booktag/internal/binary"
	"github.com/simonhull/booktag/internal/types"
)

// MPEG1 Layer III bitrates in kbps.
var bitrates = [...]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}

// MPEG1 sample rates in Hz.
var sampleRates = [...]int{44100, 48000, 32000, 0}

// readProperties probes the MPEG stream for technical properties. The
// scan starts after the ID3v2 tag and walks forward byte by byte until a
// valid frame sync is found.
func readProperties(path string) (types.Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Properties{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return types.Properties{}, err
	}
	size := st.Size()
	sr := binutil.NewSafeReader(f, size, path)

	audioStart := tagEnd(sr)
	for offset := audioStart; offset < size-4; offset++ {
		header, ok := frameSyncAt(sr, offset)
		if !ok {
			continue
		}
		bitrate, sampleRate, channels := decodeFrameHeader(header)
		if bitrate == 0 || sampleRate == 0 {
			continue
		}
		props := types.Properties{
			SampleRate: sampleRate,
			Channels:   channels,
			Bitrate:    bitrate,
		}
		if duration, ok := vbrDuration(sr, offset, sampleRate); ok {
			props.Duration = duration
		} else {
			props.Duration = cbrDuration(bitrate, size-audioStart)
		}
		return props, nil
	}
	return types.Properties{}, fmt.Errorf("%s: no MPEG frame sync found", path)
}

// tagEnd reads the ID3v2 header to find where the audio stream starts.
// Files without a tag start at offset zero.
func tagEnd(sr *binutil.SafeReader) int64 {
	var header [10]byte
	if err := sr.ReadAt(header[:], 0, "ID3v2 header"); err != nil {
		return 0
	}
	if string(header[0:3]) != "ID3" {
		return 0
	}
	return 10 + int64(decodeSynchsafe(header[6:10]))
}

// decodeSynchsafe unpacks a 28-bit synchsafe integer from four bytes.
func decodeSynchsafe(b []byte) uint32 {
	return uint32(b[0])<<21 | uint32(b[1])<<14 | uint32(b[2])<<7 | uint32(b[3])
}

// frameSyncAt reads a candidate frame header at offset, accepting only
// MPEG1/MPEG2 Layer III frames.
func frameSyncAt(sr *binutil.SafeReader, offset int64) (uint32, bool) {
	var buf [4]byte
	if err := sr.ReadAt(buf[:], offset, "MPEG frame header"); err != nil {
		return 0, false
	}
	header := binary.BigEndian.Uint32(buf[:])

	// Frame sync is 11 set bits.
	if header&0xFFE00000 != 0xFFE00000 {
		return 0, false
	}
	version := (header >> 19) & 0x3
	layer := (header >> 17) & 0x3
	if version != 3 && version != 2 {
		return 0, false
	}
	if layer != 1 {
		return 0, false
	}
	return header, true
}

// decodeFrameHeader extracts bitrate (bps), sample rate (Hz) and channel
// count from a frame header.
func decodeFrameHeader(header uint32) (bitrate, sampleRate, channels int) {
	if idx := (header >> 12) & 0xF; int(idx) < len(bitrates) {
		bitrate = bitrates[idx] * 1000
	}
	if idx := (header >> 10) & 0x3; int(idx) < len(sampleRates) {
		sampleRate = sampleRates[idx]
	}
	if mode := (header >> 6) & 0x3; mode == 3 {
		channels = 1
	} else {
		channels = 2
	}
	return bitrate, sampleRate, channels
}

// vbrDuration reads the Xing or VBRI header carried by the first frame
// of a variable-bitrate stream; the frame count there gives an exact
// duration. MPEG1 side info puts both 36 bytes after the frame header.
func vbrDuration(sr *binutil.SafeReader, frameOffset int64, sampleRate int) (time.Duration, bool) {
	var buf [18]byte
	if err := sr.ReadAt(buf[:], frameOffset+36, "VBR header"); err != nil {
		return 0, false
	}
	switch string(buf[0:4]) {
	case "Xing", "Info":
		flags := binary.BigEndian.Uint32(buf[4:8])
		if flags&0x1 == 0 {
			return 0, false
		}
		return frameCountDuration(binary.BigEndian.Uint32(buf[8:12]), sampleRate), true
	case "VBRI":
		return frameCountDuration(binary.BigEndian.Uint32(buf[14:18]), sampleRate), true
	}
	return 0, false
}

// frameCountDuration converts an MPEG1 Layer III frame count to a
// duration; every frame carries 1152 samples.
func frameCountDuration(frames uint32, sampleRate int) time.Duration {
	samples := uint64(frames) * 1152
	seconds := float64(samples) / float64(sampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// cbrDuration estimates the duration of a constant-bitrate stream from
// its payload size.
func cbrDuration(bitrate int, audioSize int64) time.Duration {
	if bitrate == 0 {
		return 0
	}
	seconds := float64(audioSize*8) / float64(bitrate)
	return time.Duration(seconds * float64(time.Second))
}
