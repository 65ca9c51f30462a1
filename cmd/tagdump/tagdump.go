package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/simonhull/booktag"
)

// Diagnostic tool: shows what booktag reads from an audio file, either as
// the translated canonical record or as the untranslated tag map.
func main() {
	raw := flag.Bool("raw", false, "dump the untranslated tag map instead of the canonical record")
	asJSON := flag.Bool("json", false, "print the canonical record as JSON")
	atoms := flag.Bool("atoms", false, "walk the MP4 box tree (M4A/M4B only)")
	verbose := flag.Bool("v", false, "log tags skipped or rejected during translation")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tagdump [-raw | -json | -atoms] [-v] <audiofile>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(booktag.Build())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	var err error
	switch {
	case *raw:
		err = dumpRaw(path)
	case *atoms:
		err = dumpAtoms(path)
	case *asJSON:
		err = dumpJSON(path)
	default:
		err = dumpText(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dumpRaw prints the on-disk tag map with no translation applied.
func dumpRaw(path string) error {
	tags, err := booktag.RawTags(path)
	if err != nil {
		return err
	}
	spew.Dump(tags)
	return nil
}

// dumpAtoms prints one line per MP4 box, indented by nesting depth.
// Useful for checking what an M4B actually stores when a tag reads back
// unexpectedly.
func dumpAtoms(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	walkBoxes(f, 0, stat.Size(), 0)
	return nil
}

// containerBoxes are the boxes whose payload is a list of child boxes.
var containerBoxes = map[string]bool{
	"moov": true,
	"trak": true,
	"mdia": true,
	"minf": true,
	"stbl": true,
	"udta": true,
	"meta": true,
	"ilst": true,
	"edts": true,
}

func walkBoxes(r io.ReaderAt, offset, end int64, depth int) {
	indent := strings.Repeat("  ", depth)

	for offset < end {
		header := make([]byte, 8)
		if _, err := r.ReadAt(header, offset); err != nil {
			return
		}

		size := int64(binary.BigEndian.Uint32(header[0:4]))
		name := string(header[4:8])

		headerSize := int64(8)
		if size == 1 {
			// 64-bit size follows the box name
			ext := make([]byte, 8)
			if _, err := r.ReadAt(ext, offset+8); err != nil {
				return
			}
			size = int64(binary.BigEndian.Uint64(ext))
			headerSize = 16
		}

		fmt.Printf("%s%s (%d bytes at %d)\n", indent, name, size, offset)

		if containerBoxes[name] {
			start := offset + headerSize
			if name == "meta" {
				start += 4 // version and flags precede the children
			}
			walkBoxes(r, start, offset+size, depth+1)
		}

		if size <= 0 {
			return
		}
		offset += size
	}
}

func dumpText(path string) error {
	file, err := booktag.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Printf("%s (%s)\n", file.Path, file.Format)
	if props := file.Properties.String(); props != "" {
		fmt.Printf("  %s\n", props)
	}
	fmt.Println()

	if file.Metadata.Len() == 0 {
		fmt.Println("  no tags")
	}
	for name, value := range file.Metadata.All() {
		fmt.Printf("  %-13s %s\n", string(name)+":", formatValue(value))
	}

	for _, w := range file.Warnings {
		fmt.Printf("\nwarning: %s\n", w)
	}
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, "; ")
	case *booktag.Picture:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func dumpJSON(path string) error {
	file, err := booktag.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	out := jsonFile{
		Path:   file.Path,
		Format: file.Format.String(),
		Tags:   make(map[string]any, file.Metadata.Len()),
	}
	for name, value := range file.Metadata.All() {
		if pic, ok := value.(*booktag.Picture); ok {
			out.Tags[string(name)] = jsonPicture{
				Type:        pic.Type.String(),
				MIMEType:    pic.MIMEType,
				Description: pic.Description,
				Width:       pic.Width,
				Height:      pic.Height,
				Size:        len(pic.Data),
			}
			continue
		}
		out.Tags[string(name)] = value
	}

	if file.Properties != (booktag.Properties{}) {
		out.Properties = &jsonProperties{
			Duration:   file.Properties.Duration.String(),
			SampleRate: file.Properties.SampleRate,
			Channels:   file.Properties.Channels,
			Bitrate:    file.Properties.Bitrate,
			Lossless:   file.Properties.Lossless,
		}
	}
	for _, w := range file.Warnings {
		out.Warnings = append(out.Warnings, w.String())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonFile struct {
	Path       string          `json:"path"`
	Format     string          `json:"format"`
	Tags       map[string]any  `json:"tags"`
	Properties *jsonProperties `json:"properties,omitempty"`
	Warnings   []string        `json:"warnings,omitempty"`
}

type jsonProperties struct {
	Duration   string `json:"duration"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
	Bitrate    int    `json:"bitrate"`
	Lossless   bool   `json:"lossless"`
}

type jsonPicture struct {
	Type        string `json:"type"`
	MIMEType    string `json:"mime_type"`
	Description string `json:"description,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Size        int    `json:"size"`
}
