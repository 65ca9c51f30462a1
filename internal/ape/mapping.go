package ape

import (
	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

func init() {
	read := readMapping()
	write := writeMapping()
	for _, format := range []types.Format{types.FormatWavPack, types.FormatAPE} {
		registry.Register(format, read, write)
	}
}

// readMapping translates tag items into the canonical record. APEv2
// items are natively multi-valued, so credit lists pass through without
// separator splitting.
func readMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureOut("Cover Art (Front)", CoverDecode{}),
		tagmap.Move("Album", "album", tagmap.ToStr{}),
		tagmap.Move("Year", "date", tagmap.Year{}),
		tagmap.Move("Grouping", "grouping", tagmap.ToStr{}),
		tagmap.Move("Title", "title", tagmap.ToStr{}),
		tagmap.Move("Artist", "artist"),
		tagmap.Move("Album Artist", "albumartist"),
		tagmap.Move("Composer", "composer"),
		tagmap.Move("Genre", "genre"),
		tagmap.Move("Label", "label", tagmap.ToStr{}),
		tagmap.Move("Comment", "comment", tagmap.ToStr{}),
		tagmap.Pair("Track", "tracknumber", "tracktotal", tagmap.FirstItem{}, PositionOut{}),
		tagmap.Pair("Disc", "discnumber", "disctotal", tagmap.FirstItem{}, PositionOut{}),
	)
}

// writeMapping translates the canonical record into tag items. Position
// fields go out as "n/total" strings with a zero total omitted.
func writeMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureIn("Cover Art (Front)", CoverEncode{}),
		tagmap.MoveOrDrop("album", "Album", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("date", "Year", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("grouping", "Grouping", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("title", "Title", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("artist", "Artist", tagmap.ToList{}),
		tagmap.MoveOrDrop("albumartist", "Album Artist", tagmap.ToList{}),
		tagmap.MoveOrDrop("composer", "Composer", tagmap.ToList{}),
		tagmap.MoveOrDrop("genre", "Genre", tagmap.ToList{}),
		tagmap.MoveOrDrop("label", "Label", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("comment", "Comment", tagmap.ToStr{}, tagmap.ToList{}),
		tagmap.Albumsort("Albumsort", tagmap.ToList{}),
		tagmap.ToPair("tracknumber", "tracktotal", "Track", PositionIn{}, tagmap.ToList{}),
		tagmap.ToPair("discnumber", "disctotal", "Disc", PositionIn{}, tagmap.ToList{}),
	).
		WithGroup("legal", "^Copyright", "^LICENSE").
		WithGroup("lyrics", "^Lyrics").
		WithGroup("rating", "^Mood", "^Rating").
		WithGroup("url", "^Weblink").
		WithAlways("^Mood")
}
