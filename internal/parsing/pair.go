// Package parsing provides small text helpers shared by the tag dialects:
// slash-separated position pairs, year extraction from date-like values,
// and multi-separator splitting of credit lists.
package parsing

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair parses a position string like "3/12" or "5" into its number
// and total. A missing total parses as 0. Whitespace around either member
// is tolerated.
func ParsePair(s string) (num, total int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty pair")
	}

	numPart, totalPart, hasTotal := strings.Cut(s, "/")

	num, err = strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair number %q", numPart)
	}
	if num < 0 {
		return 0, 0, fmt.Errorf("negative pair number %d", num)
	}

	if hasTotal {
		totalPart = strings.TrimSpace(totalPart)
		if totalPart != "" {
			total, err = strconv.Atoi(totalPart)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid pair total %q", totalPart)
			}
			if total < 0 {
				return 0, 0, fmt.Errorf("negative pair total %d", total)
			}
		}
	}

	return num, total, nil
}

// FormatPair renders a position pair back to its string form. A zero total
// is omitted: FormatPair(5, 0) is "5", never "5/0".
func FormatPair(num, total int) string {
	if total == 0 {
		return strconv.Itoa(num)
	}
	return strconv.Itoa(num) + "/" + strconv.Itoa(total)
}
