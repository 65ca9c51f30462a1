package m4a

import (
	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

func init() {
	read := readMapping()
	write := writeMapping()
	for _, format := range []types.Format{types.FormatM4A, types.FormatM4B} {
		registry.Register(format, read, write)
	}
}

// readMapping translates tag atoms into the canonical record.
func readMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureOut("covr", CoverDecode{}),
		tagmap.Move("\xA9alb", "album", tagmap.ToStr{}), // ©alb
		tagmap.Move("\xA9day", "date", tagmap.Year{}),   // ©day
		tagmap.Move("\xA9grp", "grouping", tagmap.ToStr{}), // ©grp
		tagmap.Move("\xA9nam", "title", tagmap.ToStr{}),    // ©nam
		tagmap.Move("\xA9ART", "artist", tagmap.NewSplit(",", "&", "/")), // ©ART
		tagmap.Move("aART", "albumartist", tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("\xA9wrt", "composer", tagmap.NewSplit(",", "&", "/")), // ©wrt
		tagmap.Move("\xA9gen", "genre", tagmap.NewSplit(",", "/")),         // ©gen
		tagmap.Move("\xA9cmt", "comment", tagmap.ToStr{}),                  // ©cmt
		tagmap.Pair("trkn", "tracknumber", "tracktotal", tagmap.FirstItem{}, PairOut{}),
		tagmap.Pair("disk", "discnumber", "disctotal", tagmap.FirstItem{}, PairOut{}),
	)
}

// writeMapping translates the canonical record into tag atoms. Position
// fields go out as packed pairs; a missing total is written as zero
// rather than stripped.
func writeMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureIn("covr", CoverEncode{}, tagmap.ToList{}),
		tagmap.MoveOrDrop("album", "\xA9alb", tagmap.ToStr{}, tagmap.ToList{}), // ©alb
		tagmap.MoveOrDrop("date", "\xA9day", tagmap.ToInt{NotZero: true}, tagmap.ToStr{}, tagmap.ToList{}), // ©day
		tagmap.MoveOrDrop("grouping", "\xA9grp", tagmap.ToStr{}, tagmap.ToList{}), // ©grp
		tagmap.MoveOrDrop("title", "\xA9nam", tagmap.ToStr{}, tagmap.ToList{}),    // ©nam
		tagmap.MoveOrDrop("artist", "\xA9ART", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}), // ©ART
		tagmap.MoveOrDrop("albumartist", "aART", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),
		tagmap.MoveOrDrop("composer", "\xA9wrt", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}), // ©wrt
		tagmap.MoveOrDrop("genre", "\xA9gen", tagmap.ToStr{Sep: ", "}, tagmap.ToList{}),    // ©gen
		tagmap.MoveOrDrop("comment", "\xA9cmt", tagmap.ToStr{}, tagmap.ToList{}),           // ©cmt
		tagmap.Albumsort("soal", tagmap.ToList{}),
		tagmap.ToPair("tracknumber", "tracktotal", "trkn", PairIn{}, tagmap.ToList{}),
		tagmap.ToPair("discnumber", "disctotal", "disk", PairIn{}, tagmap.ToList{}),
	).
		WithGroup("comment", "^.cmt").
		WithGroup("legal", "^cprt", "LICENSE").
		WithGroup("lyrics", "^.lyr").
		WithGroup("rating", "MOOD").
		WithAlways("MOOD")
}
