package types

import (
	"testing"
	"time"
)

func TestProperties_String(t *testing.T) {
	tests := []struct {
		name  string
		props Properties
		want  string
	}{
		{
			name: "lossy with bitrate",
			props: Properties{
				Duration:   1*time.Hour + 2*time.Minute + 3*time.Second,
				SampleRate: 44100,
				Channels:   2,
				Bitrate:    320000,
			},
			want: "44.1kHz stereo 320kbps, 1h2m3s",
		},
		{
			name: "lossless",
			props: Properties{
				Duration:   2*time.Minute + 5*time.Second,
				SampleRate: 44100,
				Channels:   2,
				Lossless:   true,
			},
			want: "44.1kHz stereo lossless, 2m5s",
		},
		{
			name: "mono",
			props: Properties{
				SampleRate: 48000,
				Channels:   1,
			},
			want: "48.0kHz mono",
		},
		{
			name: "5.1 surround",
			props: Properties{
				SampleRate: 48000,
				Channels:   6,
				Bitrate:    640000,
			},
			want: "48.0kHz 5.1 640kbps",
		},
		{
			name:  "duration only",
			props: Properties{Duration: 45 * time.Minute},
			want:  "45m0s",
		},
		{
			name:  "empty",
			props: Properties{},
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.props.String()
			if got != tc.want {
				t.Errorf("Properties.String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChannelDescription(t *testing.T) {
	tests := []struct {
		channels int
		want     string
	}{
		{0, ""},
		{1, "mono"},
		{2, "stereo"},
		{4, "quad"},
		{6, "5.1"},
		{8, "7.1"},
		{3, "3ch"},
		{10, "10ch"},
	}

	for _, tc := range tests {
		got := channelDescription(tc.channels)
		if got != tc.want {
			t.Errorf("channelDescription(%d) = %q, want %q", tc.channels, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b", "c"}, "a b c"},
		{[]string{"a", "", "c"}, "a c"},
		{[]string{"", ""}, ""},
	}

	for _, tc := range tests {
		got := join(tc.parts, " ")
		if got != tc.want {
			t.Errorf("join(%v) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}
