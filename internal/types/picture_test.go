package types

import (
	"strings"
	"testing"
)

func TestPictureType_CoverWeight(t *testing.T) {
	tests := []struct {
		ptype PictureType
		want  int
	}{
		{PictureFrontCover, 100},
		{PictureBackCover, 90},
		{PictureOther, 80},
		{PictureLeaflet, 70},
		{PictureMedia, 60},
		{PictureLeadArtist, 50},
		{PictureArtist, 40},
		{PictureIllustration, 30},
		{PictureConductor, 0},
		{PictureBrightFish, 0},
		{PicturePublisherLogotype, 0},
	}

	for _, tc := range tests {
		t.Run(tc.ptype.String(), func(t *testing.T) {
			if got := tc.ptype.CoverWeight(); got != tc.want {
				t.Errorf("CoverWeight(%s) = %d, want %d", tc.ptype, got, tc.want)
			}
		})
	}
}

func TestPictureType_CoverWeight_StrictlyDecreasing(t *testing.T) {
	prev := PictureFrontCover.CoverWeight() + 1
	for _, ptype := range coverPriority {
		w := ptype.CoverWeight()
		if w >= prev {
			t.Errorf("CoverWeight(%s) = %d, want below %d", ptype, w, prev)
		}
		if w <= 0 {
			t.Errorf("CoverWeight(%s) = %d, want positive for ranked types", ptype, w)
		}
		prev = w
	}
}

func TestPicture_String(t *testing.T) {
	pic := Picture{
		Type:     PictureFrontCover,
		MIMEType: "image/jpeg",
		Data:     make([]byte, 2048),
		Width:    1200,
		Height:   1200,
	}

	got := pic.String()
	for _, want := range []string{"Front cover", "1200x1200", "JPEG", "2KB"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestPicture_CloneAndEqual(t *testing.T) {
	pic := &Picture{Type: PictureFrontCover, MIMEType: "image/png", Data: []byte{1, 2, 3}}

	clone := pic.Clone()
	if !pic.Equal(clone) {
		t.Fatal("clone not equal to original")
	}

	clone.Data[0] = 9
	if pic.Data[0] != 1 {
		t.Error("mutating clone data affected original")
	}
	if pic.Equal(clone) {
		t.Error("Equal() = true after clone mutation, want false")
	}

	var nilPic *Picture
	if nilPic.Clone() != nil {
		t.Error("Clone() of nil should return nil")
	}
	if pic.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
}
