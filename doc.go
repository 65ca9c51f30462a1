// Package booktag reads and writes audiobook metadata across formats.
//
// booktag translates between the native tags of each container (ID3
// frames, MP4 atoms, Vorbis comments, APEv2 items) and one canonical
// record, so callers tag an audiobook the same way whether it arrived
// as an MP3, an M4B, or a FLAC rip.
//
// # Quick Start
//
// Reading metadata from an audio file:
//
//	file, err := booktag.Open("book.m4b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Printf("%s - %s\n", file.Metadata.Artist(), file.Metadata.Title())
//	fmt.Printf("Duration: %s\n", file.Properties.Duration)
//
// Updating a field and writing it back:
//
//	file.Metadata.Set(booktag.TagAlbum, "The Lathe of Heaven")
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Supported Formats
//
//   - MP3: ID3v2.3 and ID3v2.4 frames, including chapter-less audiobooks
//   - M4A/M4B: iTunes metadata atoms and freeform tags
//   - FLAC: Vorbis comments and embedded picture blocks
//   - Ogg Vorbis / Opus: Vorbis comments with base64 picture payloads
//   - WavPack / Monkey's Audio: APEv2 items
//   - WAV / AIFF: format detection only; Open declines, no tag dialect
//
// # Philosophy
//
// booktag embodies three core principles:
//
// 1. One record: every format maps onto the same canonical field set.
// Code that sets an album artist never needs to know whether that lands
// in a TPE2 frame, an aART atom, or an ALBUMARTIST comment.
//
// 2. Translation is pure: converting between a container and the
// canonical record touches no files. Opening, probing, and saving are
// the only operations that perform I/O.
//
// 3. Fail before mutating: an unknown format or drop group stops a
// save before the container is touched, never after.
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[File]             - Entry point with Open()
//	  ├─ [Metadata]    - Canonical record, format-agnostic
//	  ├─ [Properties]  - Technical properties (duration, sample rate)
//	  └─ [Container]   - Native tags, reachable for raw access
//
// Each format registers a translation dialect (a pair of mapping
// tables) and a codec backend (the reader/writer for its container).
// Adding a format means writing those two pieces; the public API does
// not change.
//
// # Advanced Usage
//
// Discarding tag families while saving:
//
//	err := file.Save(booktag.WithDropGroups("legal", "url"))
//
// Processing a directory concurrently:
//
//	ctx := context.Background()
//	files, err := booktag.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
//
// Iterating over the canonical record:
//
//	for key, values := range file.Metadata.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
//
// # Error Handling
//
// booktag distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent opening entirely (file not found,
//     unsupported format, unreadable tags)
//   - Warnings indicate non-fatal issues (a properties probe that
//     failed on an otherwise readable file)
//
// Always check file.Warnings for issues encountered during opening:
//
//	if len(file.Warnings) > 0 {
//		for _, w := range file.Warnings {
//			log.Printf("Warning: %s", w)
//		}
//	}
//
// Use WithStrictOpen to turn warnings into errors, or WithIgnoreWarnings
// to drop them.
package booktag
