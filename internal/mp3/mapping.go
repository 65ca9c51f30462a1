package mp3

import (
	"github.com/simonhull/booktag/internal/registry"
	"github.com/simonhull/booktag/internal/tagmap"
	"github.com/simonhull/booktag/internal/types"
)

func init() {
	registry.Register(types.FormatMP3, readMapping(), writeMapping())
	registry.RegisterOpener(types.FormatMP3, func(path string) (registry.Backend, error) {
		return Open(path)
	})
}

// readMapping translates ID3 frames into the canonical record. GRP1 is
// read first so TIT1 stays authoritative for grouping when a file
// carries both frames.
func readMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureOut("APIC", PictureDecode{}),
		tagmap.Move("TALB", "album", TextOut{}, tagmap.ToStr{}),
		tagmap.Move("TDRC", "date", TextOut{}, tagmap.Year{}),
		tagmap.Move("TDOR", "originaldate", TextOut{}, tagmap.Year{}),
		tagmap.Move("GRP1", "grouping", TextOut{}, tagmap.ToStr{}),
		tagmap.Move("TIT1", "grouping", TextOut{}, tagmap.ToStr{}),
		tagmap.Move("TIT2", "title", TextOut{}, tagmap.ToStr{}),
		tagmap.Move("TPE1", "artist", TextOut{}, tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("TPE2", "albumartist", TextOut{}, tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("TCOM", "composer", TextOut{}, tagmap.NewSplit(",", "&", "/")),
		tagmap.Move("TCON", "genre", TextOut{}, tagmap.NewSplit(",", "/")),
		tagmap.Move("TPUB", "label", TextOut{}, tagmap.ToStr{}),
		tagmap.Move("COMM:description", "comment", TextOut{}, tagmap.ToStr{}),
		tagmap.Pair("TRCK", "tracknumber", "tracktotal", TextOut{}, tagmap.FirstItem{}, tagmap.NewSplit("/")),
		tagmap.Pair("TPOS", "discnumber", "disctotal", TextOut{}, tagmap.FirstItem{}, tagmap.NewSplit("/")),
	)
}

// writeMapping translates the canonical record into ID3 frames. Grouping
// goes out twice, to the standard GRP1 frame and the legacy TIT1 slot.
func writeMapping() *tagmap.Mapping {
	return tagmap.New(
		tagmap.PictureIn("APIC", PictureEncode{}),
		tagmap.MoveOrDrop("album", "TALB", tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("date", "TDRC", tagmap.ToInt{NotZero: true, Positive: true}, tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("originaldate", "TDOR", tagmap.ToInt{NotZero: true, Positive: true}, tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("grouping", "GRP1", tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("grouping", "TIT1", tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("title", "TIT2", tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("artist", "TPE1", tagmap.ToStr{Sep: ", "}, TextIn{}),
		tagmap.MoveOrDrop("albumartist", "TPE2", tagmap.ToStr{Sep: ", "}, TextIn{}),
		tagmap.MoveOrDrop("composer", "TCOM", tagmap.ToStr{Sep: ", "}, TextIn{}),
		tagmap.MoveOrDrop("genre", "TCON", tagmap.ToStr{Sep: ", "}, TextIn{}),
		tagmap.MoveOrDrop("label", "TPUB", tagmap.ToStr{}, TextIn{}),
		tagmap.MoveOrDrop("comment", "COMM:description", tagmap.ToStr{}, CommentIn{Description: "description"}),
		tagmap.Albumsort("TSOA", TextIn{}),
		tagmap.ToPair("tracknumber", "tracktotal", "TRCK", tagmap.RStrip{}, tagmap.ToStr{Sep: "/"}, TextIn{}),
		tagmap.ToPair("discnumber", "disctotal", "TPOS", tagmap.RStrip{}, tagmap.ToStr{Sep: "/"}, TextIn{}),
	).
		WithGroup("comment", "^COMM").
		WithGroup("legal", "^TCOP", "^TOWN", "^TPRO").
		WithGroup("lyrics", "^USLT").
		WithGroup("rating", "^TMOO", "^PCNT", "^POPM").
		WithGroup("url", "^W[A-Z]{3}").
		WithGroup("user", "^TXXX").
		WithAlways("^TMOO", "^PCNT", "^POPM")
}
