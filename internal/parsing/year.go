package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// Year extracts a four-digit year from a date value as stored in tags.
//
// Accepts plain years ("2011"), timestamp strings in any common layout
// ("2011-05-03", "May 3, 2011", "03/05/2011"), and integers. Returns an
// error when no year can be recovered.
func Year(value any) (int, error) {
	switch v := value.(type) {
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("year out of range: %d", v)
		}
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, fmt.Errorf("empty date")
		}
		// Fast path: the whole value is already a year
		if year, err := strconv.Atoi(s); err == nil {
			if year <= 0 {
				return 0, fmt.Errorf("year out of range: %d", year)
			}
			return year, nil
		}
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return 0, fmt.Errorf("unparseable date %q", s)
		}
		return t.Year(), nil
	default:
		return 0, fmt.Errorf("unexpected date type %T", value)
	}
}
