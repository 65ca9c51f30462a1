// Package flacfile opens FLAC files through the go-flac library and
// exposes their tags as a Vorbis comment container.
//
// Comment fields and picture blocks are materialized on open and
// rebuilt on save; every other metadata block passes through untouched.
// Pictures travel through the container as base64-encoded picture block
// bodies under the metadata_block_picture field, which is exactly how
// the comment dialect expects them.
package flacfile

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/types"
	"github.com/simonhull/booktag/internal/vorbis"
)

func init() {
	registry.RegisterOpener(types.FormatFLAC, func(path string) (registry.Backend, error) {
		return Open(path)
	})
}

// pictureField is the comment field carrying base64 picture block bodies.
const pictureField = "metadata_block_picture"

// Backend reads and writes FLAC metadata through the go-flac library.
type Backend struct {
	path     string
	file     *flac.File
	comments *vorbis.Comments
}

// Open parses the FLAC file at path and materializes its Vorbis comment
// and picture blocks into one comment container.
func Open(path string) (*Backend, error) {
	file, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("open flac: %w", err)
	}
	comments := vorbis.NewComments(types.FormatFLAC)
	for _, block := range file.Meta {
		switch block.Type {
		case flac.VorbisComment:
			parsed, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				return nil, fmt.Errorf("parse vorbis comment: %w", err)
			}
			for _, field := range parsed.Comments {
				key, value, found := strings.Cut(field, "=")
				if !found {
					continue
				}
				comments.Add(key, value)
			}
		case flac.Picture:
			comments.Add(pictureField, base64.StdEncoding.EncodeToString(block.Data))
		}
	}
	return &Backend{path: path, file: file, comments: comments}, nil
}

// Container implements registry.Backend.
func (b *Backend) Container() types.Container { return b.comments }

// Properties implements registry.Backend, reading the STREAMINFO block.
// The bitrate is an estimate from file size over duration.
func (b *Backend) Properties() (types.Properties, error) {
	for _, block := range b.file.Meta {
		if block.Type != flac.StreamInfo {
			continue
		}
		sampleRate, channels, totalSamples, err := parseStreamInfo(block.Data)
		if err != nil {
			return types.Properties{}, err
		}
		props := types.Properties{
			SampleRate: sampleRate,
			Channels:   channels,
			Lossless:   true,
		}
		if sampleRate > 0 && totalSamples > 0 {
			seconds := float64(totalSamples) / float64(sampleRate)
			props.Duration = time.Duration(seconds * float64(time.Second))
			if stat, err := os.Stat(b.path); err == nil {
				props.Bitrate = int(float64(stat.Size()) * 8 / seconds)
			}
		}
		return props, nil
	}
	return types.Properties{}, fmt.Errorf("%s: no STREAMINFO block", b.path)
}

// parseStreamInfo unpacks sample rate, channel count and total samples
// from a STREAMINFO block body. The three fields share one big-endian
// 64-bit word at byte 10: 20 bits rate, 3 bits channels-1, 5 bits
// depth-1, 36 bits sample count.
func parseStreamInfo(data []byte) (sampleRate, channels int, totalSamples int64, err error) {
	if len(data) < 18 {
		return 0, 0, 0, fmt.Errorf("STREAMINFO block too short: %d bytes", len(data))
	}
	packed := binary.BigEndian.Uint64(data[10:18])
	sampleRate = int((packed >> 44) & 0xFFFFF)
	channels = int((packed>>41)&0x7) + 1
	totalSamples = int64(packed & 0xFFFFFFFFF)
	return sampleRate, channels, totalSamples, nil
}

// Save implements registry.Backend, rebuilding the comment and picture
// blocks from the container and writing the file out. Field names are
// written in their conventional uppercase spelling.
func (b *Backend) Save() error {
	kept := make([]*flac.MetaDataBlock, 0, len(b.file.Meta)+2)
	for _, block := range b.file.Meta {
		if block.Type == flac.VorbisComment || block.Type == flac.Picture {
			continue
		}
		kept = append(kept, block)
	}

	comment := flacvorbis.New()
	for key, values := range b.comments.All() {
		if key == pictureField {
			continue
		}
		for _, value := range values {
			comment.Add(strings.ToUpper(key), value)
		}
	}
	commentBlock := comment.Marshal()
	kept = append(kept, &commentBlock)

	for _, value := range b.comments.GetAll(pictureField) {
		encoded, ok := value.(string)
		if !ok {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}
		kept = append(kept, &flac.MetaDataBlock{Type: flac.Picture, Data: raw})
	}

	b.file.Meta = kept
	if err := b.file.Save(b.path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

// Close implements registry.Backend. The whole file was read into
// memory at open, so there is no handle to release.
func (b *Backend) Close() error { return nil }
