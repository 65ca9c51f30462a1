// Package taglibfile opens audio files through TagLib and exposes their
// tags as a Vorbis comment container.
//
// TagLib normalizes every format it reads into Vorbis-style field
// names, so files opened here speak the comment dialect regardless of
// how the tags sit on disk. It backs the formats without a dedicated
// codec library: Ogg, Opus, MP4 audio, WavPack, Monkey's Audio, WAV
// and AIFF.
package taglibfile

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.senan.xyz/taglib"

	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/types"
	"github.com/simonhull/booktag/internal/vorbis"
)

func init() {
	for _, format := range []types.Format{
		types.FormatOgg,
		types.FormatOpus,
		types.FormatM4A,
		types.FormatM4B,
		types.FormatWavPack,
		types.FormatAPE,
		types.FormatWAV,
		types.FormatAIFF,
	} {
		registry.RegisterOpener(format, func(path string) (registry.Backend, error) {
			return Open(path, format)
		})
	}
}

// pictureField is the comment field carrying embedded pictures in the
// comment dialect. TagLib's property map cannot persist it.
const pictureField = "metadata_block_picture"

// Backend reads and writes tags through TagLib's property map.
type Backend struct {
	path     string
	format   types.Format
	comments *vorbis.Comments
}

// Open reads the tags of the audio file at path.
func Open(path string, format types.Format) (*Backend, error) {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", format, err)
	}
	comments := vorbis.NewComments(dialectFormat(format))
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		for _, value := range tags[key] {
			comments.Add(key, value)
		}
	}
	return &Backend{path: path, format: format, comments: comments}, nil
}

// dialectFormat picks the dialect a TagLib-opened container speaks.
// Ogg and Opus keep their own registration; formats whose native
// dialect is something else entirely still arrive normalized to
// comment fields, so they ride the Ogg registration. WAV and AIFF
// keep their own format, which has no dialect: their tags stay
// reachable raw, but canonical translation declines them.
func dialectFormat(format types.Format) types.Format {
	switch format {
	case types.FormatM4A, types.FormatM4B, types.FormatWavPack, types.FormatAPE:
		return types.FormatOgg
	}
	return format
}

// Container implements registry.Backend. The container rejects picture
// writes, which TagLib's property map cannot carry.
func (b *Backend) Container() types.Container {
	return Container{Comments: b.comments}
}

// Properties implements registry.Backend.
func (b *Backend) Properties() (types.Properties, error) {
	props, err := taglib.ReadProperties(b.path)
	if err != nil {
		return types.Properties{}, fmt.Errorf("read properties: %w", err)
	}
	return types.Properties{
		Duration:   props.Length,
		SampleRate: int(props.SampleRate),
		Channels:   int(props.Channels),
		Bitrate:    int(props.Bitrate) * 1000,
		Lossless:   lossless(b.format),
	}, nil
}

// lossless reports whether the format always carries lossless audio.
// MP4 audio is assumed lossy; ALAC inside M4A is rare enough in the
// wild that the property map gives no way to tell it apart.
func lossless(format types.Format) bool {
	switch format {
	case types.FormatWavPack, types.FormatAPE, types.FormatWAV, types.FormatAIFF:
		return true
	}
	return false
}

// Save implements registry.Backend, writing the container state back
// as the file's complete tag set.
func (b *Backend) Save() error {
	tags := make(map[string][]string)
	for key, values := range b.comments.All() {
		tags[strings.ToUpper(key)] = slices.Clone(values)
	}
	if err := taglib.WriteTags(b.path, tags, taglib.Clear|taglib.DiffBeforeWrite); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

// Close implements registry.Backend. Tag state lives in memory between
// open and save, so there is no handle to release.
func (b *Backend) Close() error { return nil }

// Container wraps the comment container for a TagLib-opened file.
// Picture fields read fine when the file carries them, but writes are
// rejected: the property map has no slot for embedded art, so accepting
// the value would silently drop it on save.
type Container struct {
	*vorbis.Comments
}

// Set implements types.Container.
func (c Container) Set(key string, value any) error {
	if strings.EqualFold(key, pictureField) {
		return &types.TagValueError{Key: key, Reason: "tag container cannot embed pictures"}
	}
	return c.Comments.Set(key, value)
}
