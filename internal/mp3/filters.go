package mp3

import (
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"

	"github.com/simonhull/booktag/internal/tagmap"
)

// TextOut unwraps a frame to its text payload. Text frames holding
// several NUL-separated values come out as a string list. Frames with no
// text payload skip.
type TextOut struct{}

// Apply implements tagmap.Filter.
func (TextOut) Apply(value any) (any, error) {
	switch frame := value.(type) {
	case id3v2.TextFrame:
		return splitText(frame.Text), nil
	case id3v2.CommentFrame:
		return frame.Text, nil
	case id3v2.UserDefinedTextFrame:
		return frame.Value, nil
	}
	return nil, tagmap.ErrSkipTag
}

func splitText(text string) any {
	text = strings.TrimRight(text, "\x00")
	if strings.Contains(text, "\x00") {
		return strings.Split(text, "\x00")
	}
	return text
}

// TextIn wraps a normalized string in a UTF-8 text frame.
type TextIn struct{}

// Apply implements tagmap.Filter.
func (TextIn) Apply(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	return id3v2.TextFrame{Encoding: id3v2.EncodingUTF8, Text: s}, nil
}

// CommentIn wraps a normalized string in a comment frame under the
// given description slot.
type CommentIn struct {
	Description string
	Language    string
}

// Apply implements tagmap.Filter.
func (f CommentIn) Apply(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, tagmap.ErrSkipTag
	}
	language := f.Language
	if language == "" {
		language = "eng"
	}
	return id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    language,
		Description: f.Description,
		Text:        s,
	}, nil
}
