package vorbis

import (
	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

func init() {
	read := readMapping()
	write := writeMapping()
	for _, format := range []types.Format{types.FormatFLAC, types.FormatOgg, types.FormatOpus} {
		registry.Register(format, read, write)
	}
}

// readMapping translates comment fields into the canonical record.
// Legacy aliases run before their canonical spellings so the canonical
// field wins when a file carries both.
func readMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureOut("metadata_block_picture", PictureDecode{}),
		tagmap.Move("album", "album", tagmap.ToStr{}),
		tagmap.Move("date", "date", tagmap.Year{}),
		tagmap.Move("originaldate", "originaldate", tagmap.Year{}),
		tagmap.Move("grouping", "grouping", tagmap.ToStr{}),
		tagmap.Move("title", "title", tagmap.ToStr{}),
		tagmap.Move("artist", "artist", tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("albumartist", "albumartist", tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("composer", "composer", tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("genre", "genre", tagmap.NewSplit(",", "/")),
		tagmap.Move("organization", "label", tagmap.ToStr{}),
		tagmap.Move("label", "label", tagmap.ToStr{}),
		tagmap.Move("description", "comment", tagmap.ToStr{}),
		tagmap.Move("comment", "comment", tagmap.ToStr{}),
		tagmap.Move("tracknumber", "tracknumber", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
		tagmap.Move("totaltracks", "tracktotal", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
		tagmap.Move("tracktotal", "tracktotal", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
		tagmap.Move("discnumber", "discnumber", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
		tagmap.Move("totaldiscs", "disctotal", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
		tagmap.Move("disctotal", "disctotal", tagmap.FirstItem{}, tagmap.ToInt{NotZero: true}),
	)
}

// writeMapping translates the canonical record into comment fields.
// Only canonical spellings are written; position fields go out as plain
// numbers, never packed pairs.
func writeMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureIn("metadata_block_picture", PictureEncode{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("album", "album", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("date", "date", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("grouping", "grouping", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("title", "title", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("artist", "artist", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),
		tagmap.MoveOrDrop("albumartist", "albumartist", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),
		tagmap.MoveOrDrop("composer", "composer", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),
		tagmap.MoveOrDrop("genre", "genre", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),
		tagmap.MoveOrDrop("label", "label", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("comment", "comment", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.Albumsort("albumsort", tagmap.ToList{}),
		tagmap.MoveOrDrop("tracknumber", "tracknumber", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("tracktotal", "tracktotal", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("discnumber", "discnumber", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("disctotal", "disctotal", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
	).
		WithGroup("legal", "^copyright", "^license").
		WithGroup("lyrics", "^lyrics").
		WithGroup("rating", "^mrat", "^mood", "^rating").
		WithGroup("url", "^contact", "^website").
		WithAlways("^mrat", "^mood", "^rating")
}
