package booktag

import (
	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"

	// Dialect packages register their translation tables at init.
	_ "github.com/simonhull/booktag/internal/ape"
	_ "github.com/simonhull/booktag/internal/m4a"
	_ "github.com/simonhull/booktag/internal/mp3"
	_ "github.com/simonhull/booktag/internal/vorbis"
)

// Read translates a tag container into a canonical metadata record.
//
// The container's format selects the dialect. Individual tags that are
// absent, empty, or malformed are skipped; an error means the format
// has no registered dialect or translation itself faulted.
//
// Example:
//
//	md, err := booktag.Read(container)
//	if err != nil {
//		return err
//	}
//	fmt.Println(md.Title(), md.Artist())
func Read(c Container) (*Metadata, error) {
	dialect := registry.Get(c.Format())
	if dialect == nil {
		return nil, &UnsupportedFormatError{
			Format: c.Format(),
			Reason: "no tag dialect registered",
		}
	}
	md := types.NewMetadata()
	if err := dialect.Read.Run(c, tagmap.MetaTarget{Record: md}); err != nil {
		return nil, err
	}
	return md, nil
}

// Write translates a canonical metadata record into a tag container.
//
// Named drop groups are removed from the container before the write
// rules run, together with the always-removed native keys of the
// dialect. An unknown format or an unknown group name fails before the
// container is touched.
//
// Canonical fields absent from the record clear their native targets,
// so writing a record read from the same file and edited in between
// behaves like an in-place retag.
//
// Example:
//
//	err := booktag.Write(md, container, "comment", "lyrics")
func Write(md *Metadata, c Container, dropGroups ...string) error {
	dialect := registry.Get(c.Format())
	if dialect == nil {
		return &UnsupportedFormatError{
			Format: c.Format(),
			Reason: "no tag dialect registered",
		}
	}
	if err := dialect.Write.Drop(c, dropGroups...); err != nil {
		return err
	}
	return dialect.Write.Run(tagmap.MetaSource{Record: md}, c)
}

// DropGroups lists the selectable drop group names for a format, sorted.
// Returns nil for formats without a registered dialect.
func DropGroups(format Format) []string {
	dialect := registry.Get(format)
	if dialect == nil {
		return nil
	}
	return dialect.Write.DropGroups()
}
