package types

import (
	"errors"
	"slices"
	"testing"
)

func TestMetadata_Set_Strings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		unset bool
	}{
		{"plain", "The Martian", "The Martian", false},
		{"trimmed", "  The Martian ", "The Martian", false},
		{"empty removes", "", "", true},
		{"whitespace removes", "   ", "", true},
		{"list joined", []string{"The", "Martian"}, "The Martian", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			md := NewMetadata()
			if err := md.Set(TagAlbum, tc.value); err != nil {
				t.Fatalf("Set(album, %v) error = %v", tc.value, err)
			}
			if md.Has(TagAlbum) == tc.unset {
				t.Fatalf("Has(album) = %v, want %v", md.Has(TagAlbum), !tc.unset)
			}
			if got := md.Album(); got != tc.want {
				t.Errorf("Album() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMetadata_Set_Lists(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"scalar wrapped", "Andy Weir", []string{"Andy Weir"}},
		{"list kept", []string{"Andy Weir", "R.C. Bray"}, []string{"Andy Weir", "R.C. Bray"}},
		{"empties dropped", []string{" Andy Weir ", "", "  "}, []string{"Andy Weir"}},
		{"all empty removes", []string{"", " "}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			md := NewMetadata()
			if err := md.Set(TagArtist, tc.value); err != nil {
				t.Fatalf("Set(artist, %v) error = %v", tc.value, err)
			}
			if got := md.Artist(); !slices.Equal(got, tc.want) {
				t.Errorf("Artist() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMetadata_Set_Numbers(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"positive", 7, 7, false},
		{"numeric string", "12", 12, false},
		{"zero removes", 0, 0, false},
		{"empty string removes", " ", 0, false},
		{"negative rejected", -1, 0, true},
		{"garbage rejected", "twelve", 0, true},
		{"wrong type rejected", 3.5, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			md := NewMetadata()
			err := md.Set(TagTrackNumber, tc.value)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Set(tracknumber, %v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
			if tc.wantErr {
				var tagErr *TagValueError
				if !errors.As(err, &tagErr) {
					t.Errorf("error = %T, want *TagValueError", err)
				}
			}
			if got := md.TrackNumber(); got != tc.want {
				t.Errorf("TrackNumber() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMetadata_Set_RejectedValueLeavesRecord(t *testing.T) {
	md := NewMetadata()
	if err := md.Set(TagTrackNumber, 3); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	if err := md.Set(TagTrackNumber, -5); err == nil {
		t.Fatal("Set(tracknumber, -5) error = nil, want TagValueError")
	}

	if got := md.TrackNumber(); got != 3 {
		t.Errorf("TrackNumber() after rejected Set = %d, want 3", got)
	}
}

func TestMetadata_Set_Cover(t *testing.T) {
	md := NewMetadata()
	pic := &Picture{Type: PictureFrontCover, MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}}

	if err := md.Set(TagCover, pic); err != nil {
		t.Fatalf("Set(cover) error = %v", err)
	}
	if got := md.Cover(); !got.Equal(pic) {
		t.Errorf("Cover() = %v, want %v", got, pic)
	}

	// Empty picture data removes the tag
	if err := md.Set(TagCover, &Picture{}); err != nil {
		t.Fatalf("Set(cover, empty) error = %v", err)
	}
	if md.Has(TagCover) {
		t.Error("Has(cover) = true after setting empty picture, want false")
	}
}

func TestMetadata_Set_UnknownName(t *testing.T) {
	md := NewMetadata()
	if err := md.Set(TagName("lyrics"), "la la"); err == nil {
		t.Error("Set(unknown name) error = nil, want TagValueError")
	}
}

func TestMetadata_Set_NilDeletes(t *testing.T) {
	md := NewMetadata()
	if err := md.Set(TagTitle, "Chapter 1"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := md.Set(TagTitle, nil); err != nil {
		t.Fatalf("Set(title, nil) error = %v", err)
	}
	if md.Has(TagTitle) {
		t.Error("Has(title) = true after Set(nil), want false")
	}
}

func TestMetadata_Delete(t *testing.T) {
	md := NewMetadata()
	if err := md.Set(TagGenre, "Audiobook"); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	md.Delete(TagGenre)
	if md.Has(TagGenre) {
		t.Error("Has(genre) = true after Delete, want false")
	}

	// Deleting an absent tag is a no-op
	md.Delete(TagGenre)
}

func TestMetadata_All_StableOrder(t *testing.T) {
	md := NewMetadata()
	for _, set := range []struct {
		name  TagName
		value any
	}{
		{TagTitle, "Chapter 1"},
		{TagAlbum, "The Martian"},
		{TagTrackNumber, 3},
	} {
		if err := md.Set(set.name, set.value); err != nil {
			t.Fatalf("Set(%s) error = %v", set.name, err)
		}
	}

	var order []TagName
	for name := range md.All() {
		order = append(order, name)
	}

	want := []TagName{TagAlbum, TagTitle, TagTrackNumber}
	if !slices.Equal(order, want) {
		t.Errorf("All() order = %v, want %v", order, want)
	}
}

func TestMetadata_Len(t *testing.T) {
	md := NewMetadata()
	if md.Len() != 0 {
		t.Errorf("Len() = %d, want 0", md.Len())
	}

	if err := md.Set(TagAlbum, "The Martian"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := md.Set(TagTrackNumber, 1); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	if md.Len() != 2 {
		t.Errorf("Len() = %d, want 2", md.Len())
	}
}

func TestMetadata_Clone(t *testing.T) {
	original := NewMetadata()
	if err := original.Set(TagArtist, []string{"Andy Weir"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := original.Set(TagCover, &Picture{MIMEType: "image/png", Data: []byte{1, 2}}); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	clone := original.Clone()
	if !clone.Equal(original) {
		t.Fatal("clone not equal to original")
	}

	// Deep copy: mutating the clone leaves the original alone
	clone.Artist()[0] = "Modified"
	clone.Cover().Data[0] = 9
	if err := clone.Set(TagArtist, "Someone Else"); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	if got := original.Artist(); got[0] != "Andy Weir" {
		t.Errorf("original artist = %v after clone mutation, want [Andy Weir]", got)
	}
	if original.Cover().Data[0] != 1 {
		t.Error("original cover mutated through clone")
	}
}

func TestMetadata_Equal(t *testing.T) {
	build := func(artist string, track int) *Metadata {
		md := NewMetadata()
		if err := md.Set(TagArtist, artist); err != nil {
			t.Fatalf("Set error = %v", err)
		}
		if err := md.Set(TagTrackNumber, track); err != nil {
			t.Fatalf("Set error = %v", err)
		}
		return md
	}

	tests := []struct {
		name string
		a, b *Metadata
		want bool
	}{
		{"equal", build("Andy Weir", 3), build("Andy Weir", 3), true},
		{"different artist", build("Andy Weir", 3), build("R.C. Bray", 3), false},
		{"different track", build("Andy Weir", 3), build("Andy Weir", 4), false},
		{"empty equal", NewMetadata(), NewMetadata(), true},
		{"nil vs empty", nil, NewMetadata(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTagName_Valid(t *testing.T) {
	for _, name := range TagNames() {
		if !name.Valid() {
			t.Errorf("Valid(%s) = false, want true", name)
		}
	}
	if TagName("lyrics").Valid() {
		t.Error("Valid(lyrics) = true, want false")
	}
}
