package types

import (
	"fmt"
	"time"
)

// Properties represents technical audio properties.
//
// Properties are read from the codec layer and are informational only;
// tag translation never depends on them.
type Properties struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
	Bitrate    int // bits per second
	Lossless   bool
}

// String returns a human-readable representation of the properties.
// Example output: "44.1kHz stereo 320kbps, 1h2m3s".
func (p Properties) String() string {
	parts := make([]string, 0, 4)

	if p.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(p.SampleRate)/1000))
	}
	if channels := channelDescription(p.Channels); channels != "" {
		parts = append(parts, channels)
	}
	if p.Lossless {
		parts = append(parts, "lossless")
	} else if p.Bitrate > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", p.Bitrate/1000))
	}

	out := join(parts, " ")
	if p.Duration > 0 {
		if out != "" {
			out += ", "
		}
		out += p.Duration.Round(time.Second).String()
	}
	return out
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 4:
		return "quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// join concatenates strings with a separator, skipping empty strings.
func join(parts []string, sep string) string {
	var result string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += part
	}
	return result
}
