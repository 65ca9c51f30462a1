package booktag

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/booktag/internal/registry"

	// Codec backends register their openers at init.
	_ "github.com/simonhull/booktag/internal/flacfile"
	_ "github.com/simonhull/booktag/internal/taglibfile"
)

// File is an opened audio file: its canonical metadata, audio stream
// properties, and the native tag container behind them.
//
// Editing goes through Metadata; Save translates the record back into
// the native container and persists it. The container itself stays
// reachable through Container for diagnostics and raw access.
//
// Always call Close when done:
//
//	file, err := booktag.Open("book.m4b")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the audio file
	Path string

	// Detected format (FLAC, MP3, M4B, ...)
	Format Format

	// Canonical metadata translated from the native tags
	Metadata *Metadata

	// Audio stream properties
	Properties Properties

	// Warnings encountered while opening (non-fatal issues)
	Warnings []Warning

	backend registry.Backend
}

// Open opens an audio file and translates its tags.
//
// The format is sniffed from magic bytes, never the extension. A codec
// backend materializes the native tag container, and the format's
// dialect translates it into File.Metadata. Individual bad tags are
// skipped during translation; a failed audio property probe becomes a
// warning, not an error.
//
// Options customize the behavior:
//
//	file, err := booktag.Open("book.m4b",
//	    booktag.WithStrictOpen(),
//	)
//
// Example:
//
//	file, err := booktag.Open("book.flac")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	fmt.Printf("%s - %s\n", file.Metadata.Artist(), file.Metadata.Title())
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	format, err := detectPath(path)
	if err != nil {
		return nil, err
	}

	open := registry.GetOpener(format)
	if open == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Format: format,
			Reason: fmt.Sprintf("no codec backend for %s", format),
		}
	}
	backend, err := open(path)
	if err != nil {
		return nil, err
	}

	md, err := Read(backend.Container())
	if err != nil {
		backend.Close()
		return nil, err
	}

	file := &File{
		Path:     path,
		Format:   format,
		Metadata: md,
		backend:  backend,
	}

	if !options.skipProperties {
		props, err := backend.Properties()
		if err != nil {
			file.Warnings = append(file.Warnings, Warning{
				Stage:   "properties",
				Message: err.Error(),
			})
		} else {
			file.Properties = props
		}
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}
	if options.strictOpen && len(file.Warnings) > 0 {
		backend.Close()
		return nil, fmt.Errorf("strict open failed: %s", file.Warnings[0].Message)
	}

	return file, nil
}

// detectPath sniffs the format of the file at path.
func detectPath(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return FormatUnknown, fmt.Errorf("stat file: %w", err)
	}
	return DetectFormat(f, stat.Size(), path)
}

// Container returns the file's native tag container: ID3 frames, MP4
// atoms, or comment fields, depending on the format. Mutating it
// directly bypasses translation; Save still persists whatever state
// the container holds.
func (f *File) Container() Container {
	return f.backend.Container()
}

// DropGroups lists the drop group names Save accepts for this file,
// sorted.
//
// The valid names come from the dialect of the opened container, which
// is not always the file format's own: backends that normalize tags
// into comment fields save through the comment dialect.
func (f *File) DropGroups() []string {
	return DropGroups(f.backend.Container().Format())
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	return f.backend.Close()
}

// OpenContext opens a file with context support for cancellation.
//
// A single open is synchronous; the context is checked once before any
// I/O starts. Cancellation between files is OpenMany's job.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	file, err := booktag.OpenContext(ctx, "book.flac")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple audio files concurrently.
//
// Files are opened in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened files are closed
// and an error naming the failing path is returned.
//
// Example:
//
//	files, err := booktag.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}

// ReadFile opens the file at path and returns just its canonical
// metadata. The audio stream is not probed.
func ReadFile(path string) (*Metadata, error) {
	f, err := Open(path, WithoutProperties())
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Metadata, nil
}

// RawTags reads the file's tags as the untranslated key/value map the
// format stores on disk. Useful for diagnostics and for inspecting
// tags the canonical record has no field for.
func RawTags(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read raw tags: %w", err)
	}
	return m.Raw(), nil
}
