package booktag

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/booktag/internal/registry"
)

// Save translates the file's metadata back into its native container
// and persists it in place.
//
// The write runs through the format's dialect: canonical fields map to
// native tags, fields absent from Metadata clear their targets, and
// any drop groups named in the options are removed first.
//
// Options customize the behavior:
//
//	err := file.Save(
//	    booktag.WithDropGroups("comment"),
//	    booktag.WithBackup(".bak"),
//	)
func (f *File) Save(opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.backupSuffix != "" {
		if err := copyFile(f.Path, f.Path+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(f.Path); err == nil {
			origInfo = info
		}
	}

	if err := f.writeThrough(f.backend, options); err != nil {
		return err
	}

	if origInfo != nil {
		_ = os.Chtimes(f.Path, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if err := f.validateWrittenFile(f.Path); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// SaveAs writes the file, with the current metadata applied, to a new
// location. The original file is copied first and retagged at the
// destination, so it is left untouched.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error {
	if outputPath == f.Path {
		return f.Save(opts...)
	}

	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(outputPath); err == nil {
			if err := copyFile(outputPath, outputPath+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := copyFile(f.Path, outputPath); err != nil {
		return fmt.Errorf("copy to output: %w", err)
	}

	open := registry.GetOpener(f.Format)
	if open == nil {
		return &UnsupportedFormatError{
			Path:   outputPath,
			Format: f.Format,
			Reason: fmt.Sprintf("no codec backend for %s", f.Format),
		}
	}
	backend, err := open(outputPath)
	if err != nil {
		return err
	}
	if err := f.writeThrough(backend, options); err != nil {
		backend.Close()
		return err
	}
	if err := backend.Close(); err != nil {
		return err
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// writeThrough runs the write mapping into the backend's container and
// persists it.
func (f *File) writeThrough(backend registry.Backend, options *saveOptions) error {
	if options.id3Version != 0 {
		if v, ok := backend.(interface{ SetVersion(byte) }); ok {
			v.SetVersion(options.id3Version)
		}
	}
	if err := Write(f.Metadata, backend.Container(), options.dropGroups...); err != nil {
		return err
	}
	if err := backend.Save(); err != nil {
		return fmt.Errorf("save %s: %w", f.Format, err)
	}
	return nil
}

// validateWrittenFile re-opens the written file and compares the fields
// that survive translation byte for byte. Joined credit lists are split
// back apart on read, so they stay out of the comparison.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer written.Close()

	if got, want := written.Metadata.Title(), f.Metadata.Title(); got != want {
		return fmt.Errorf("title mismatch: got %q, want %q", got, want)
	}
	if got, want := written.Metadata.Album(), f.Metadata.Album(); got != want {
		return fmt.Errorf("album mismatch: got %q, want %q", got, want)
	}
	if got, want := written.Metadata.Date(), f.Metadata.Date(); got != want {
		return fmt.Errorf("date mismatch: got %d, want %d", got, want)
	}
	return nil
}

// WriteFile replaces the canonical metadata of the file at path and
// saves it.
//
// Example:
//
//	md := booktag.NewMetadata()
//	md.Set(booktag.TagTitle, "Chapter 1")
//	md.Set(booktag.TagArtist, []string{"Ursula K. Le Guin"})
//	err := booktag.WriteFile("book.flac", md)
func WriteFile(path string, md *Metadata, opts ...SaveOption) error {
	f, err := Open(path, WithoutProperties())
	if err != nil {
		return err
	}
	defer f.Close()

	f.Metadata = md
	return f.Save(opts...)
}

// copyFile copies src to dst, replacing dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
