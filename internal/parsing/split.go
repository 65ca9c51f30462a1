package parsing

import "strings"

// SplitAny splits s on any of the separator runes, trims whitespace from
// each piece, and drops empty pieces. Used for multi-artist credits like
// "Neil Gaiman & Terry Pratchett" or "Author 1, Author 2".
func SplitAny(s, separators string) []string {
	pieces := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
