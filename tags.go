package booktag

import (
	"github.com/simonhull/booktag/internal/types"
)

// Metadata is re-exported from internal/types so the public API and the
// translation engine share one definition.
type Metadata = types.Metadata

// NewMetadata returns an empty canonical metadata record.
func NewMetadata() *Metadata {
	return types.NewMetadata()
}

// TagName is re-exported from internal/types so the public API and the
// translation engine share one definition.
type TagName = types.TagName

// Re-export all canonical tag names.
const (
	TagAlbum        = types.TagAlbum
	TagAlbumArtist  = types.TagAlbumArtist
	TagAlbumSort    = types.TagAlbumSort
	TagArtist       = types.TagArtist
	TagComment      = types.TagComment
	TagComposer     = types.TagComposer
	TagCover        = types.TagCover
	TagDate         = types.TagDate
	TagDiscNumber   = types.TagDiscNumber
	TagDiscTotal    = types.TagDiscTotal
	TagGenre        = types.TagGenre
	TagGrouping     = types.TagGrouping
	TagLabel        = types.TagLabel
	TagOriginalDate = types.TagOriginalDate
	TagTitle        = types.TagTitle
	TagTrackNumber  = types.TagTrackNumber
	TagTrackTotal   = types.TagTrackTotal
)

// TagNames returns every canonical tag name in stable order.
func TagNames() []TagName {
	return types.TagNames()
}

// Container is re-exported from internal/types so the public API and
// the translation engine share one definition.
type Container = types.Container
