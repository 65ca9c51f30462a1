package booktag

// SaveOption configures behavior when saving audio files.
//
// Options use the functional options pattern:
//
//	err := file.Save(
//	    booktag.WithDropGroups("comment", "lyrics"),
//	    booktag.WithBackup(".bak"),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	dropGroups      []string // Named tag groups removed before writing
	id3Version      byte     // ID3v2 version for MP3 targets (3 or 4)
	backupSuffix    string   // Suffix for backup file (e.g. ".bak")
	validate        bool     // Re-read after write to verify
	preserveModTime bool     // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithDropGroups removes the named tag groups from the file before the
// write rules run.
//
// Each dialect defines its own groups ("comment", "legal", "lyrics",
// "rating", "url", ...) covering native tags the canonical record has
// no field for. Naming an unknown group fails the save before the file
// is touched. File.DropGroups lists the valid names for an opened
// file; DropGroups lists them per dialect format.
//
// Example:
//
//	err := file.Save(booktag.WithDropGroups("comment", "rating"))
func WithDropGroups(groups ...string) SaveOption {
	return func(o *saveOptions) {
		o.dropGroups = append(o.dropGroups, groups...)
	}
}

// WithID3Version selects the ID3v2 version written to MP3 files: 3 for
// ID3v2.3, 4 for ID3v2.4. The file's existing version is kept when
// unset. Formats other than MP3 ignore the option.
//
// Example:
//
//	err := file.Save(booktag.WithID3Version(3))
func WithID3Version(version byte) SaveOption {
	return func(o *saveOptions) {
		o.id3Version = version
	}
}

// WithBackup copies the original file before saving.
//
// The backup gets the given suffix appended to the original filename:
// WithBackup(".bak") preserves "book.mp3" as "book.mp3.bak" before the
// save touches it. An existing backup is overwritten.
//
// Example:
//
//	err := file.Save(booktag.WithBackup(".bak"))
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the file is re-opened and the fields that survive
// translation byte for byte are compared. This adds a full reparse per
// save; use it for critical operations.
//
// Example:
//
//	err := file.Save(booktag.WithValidation())
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time. This option
// restores the original timestamp after the write, useful when other
// tools sort or sync by modification date.
//
// Example:
//
//	err := file.Save(booktag.WithPreserveModTime())
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
