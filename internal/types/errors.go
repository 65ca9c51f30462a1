package types

import "fmt"

// UnsupportedFormatError is returned when no tag dialect is registered
// for a container's format, or when a file's format cannot be detected.
type UnsupportedFormatError struct {
	Path   string
	Format Format
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("unsupported format %s: %s", e.Format, e.Reason)
}

// TagValueError is returned by containers that reject a value on Set.
//
// The translation engine treats it as a local failure: the offending
// rule is skipped and translation continues for the remaining tags.
type TagValueError struct {
	Key    string
	Reason string
}

func (e *TagValueError) Error() string {
	return fmt.Sprintf("tag %q: %s", e.Key, e.Reason)
}

// NotAnImageError is returned when embedded picture bytes cannot be
// decoded. During cover selection it disqualifies one candidate, never
// the whole operation.
type NotAnImageError struct {
	Reason string
}

func (e *NotAnImageError) Error() string {
	return fmt.Sprintf("not an image: %s", e.Reason)
}

// Warning represents a non-fatal issue encountered while reading or
// writing tags.
//
// Warnings indicate problems that don't prevent translation but may
// point at unusual data: an undecodable embedded picture, a malformed
// track pair, a value the target container refused.
//
// Warnings are collected in File.Warnings.
type Warning struct {
	// Stage where the warning occurred: "read", "write", "artwork".
	Stage string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
