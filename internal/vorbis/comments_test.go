package vorbis

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/simonhull/booktag/internal/types"
)

func TestComments_CaseInsensitive(t *testing.T) {
	c := NewComments(types.FormatFLAC)
	if err := c.Set("TITLE", "Consider Phlebas"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	for _, key := range []string{"title", "TITLE", "Title"} {
		got, ok := c.Get(key)
		if !ok {
			t.Fatalf("Get(%q) missing", key)
		}
		if want := []string{"Consider Phlebas"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestComments_MultiValue(t *testing.T) {
	c := NewComments(types.FormatOgg)
	c.Add("artist", "Banks")
	c.Add("ARTIST", "Iain")

	got, ok := c.Get("artist")
	if !ok {
		t.Fatal("Get(artist) missing")
	}
	if want := []string{"Banks", "Iain"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Get(artist) = %v, want %v", got, want)
	}

	all := c.GetAll("artist")
	if len(all) != 2 || all[0] != "Banks" || all[1] != "Iain" {
		t.Errorf("GetAll(artist) = %v, want [Banks Iain]", all)
	}
}

func TestComments_SetReplaces(t *testing.T) {
	c := NewComments(types.FormatOgg)
	c.Add("genre", "Fantasy")
	c.Add("genre", "SciFi")

	if err := c.Set("GENRE", "Audiobook"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	got, _ := c.Get("genre")
	if want := []string{"Audiobook"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Get(genre) = %v, want %v", got, want)
	}
}

func TestComments_ValueShapes(t *testing.T) {
	c := NewComments(types.FormatFLAC)

	if err := c.Set("tracknumber", 7); err != nil {
		t.Fatalf("Set(int) unexpected error: %v", err)
	}
	if got, _ := c.Get("tracknumber"); !reflect.DeepEqual(got, []string{"7"}) {
		t.Errorf("Get(tracknumber) = %v, want [7]", got)
	}

	if err := c.Set("artist", []any{"Banks", 2}); err != nil {
		t.Fatalf("Set([]any) unexpected error: %v", err)
	}
	if got, _ := c.Get("artist"); !reflect.DeepEqual(got, []string{"Banks", "2"}) {
		t.Errorf("Get(artist) = %v, want [Banks 2]", got)
	}
}

func TestComments_RejectsBadValue(t *testing.T) {
	c := NewComments(types.FormatFLAC)
	c.Add("album", "Keep Me")

	err := c.Set("album", &types.Picture{Data: []byte{1}})
	var tagErr *types.TagValueError
	if !errors.As(err, &tagErr) {
		t.Fatalf("Set() error = %v, want *types.TagValueError", err)
	}
	if got, _ := c.Get("album"); !reflect.DeepEqual(got, []string{"Keep Me"}) {
		t.Errorf("Get(album) = %v after rejected Set, want [Keep Me]", got)
	}
}

func TestComments_SetEmptyDeletes(t *testing.T) {
	c := NewComments(types.FormatFLAC)
	c.Add("album", "Title")

	if err := c.Set("album", []string{}); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if _, ok := c.Get("album"); ok {
		t.Error("album still present after empty Set, want deleted")
	}
}

func TestComments_KeysInFirstSetOrder(t *testing.T) {
	c := NewComments(types.FormatOgg)
	c.Add("TITLE", "a")
	c.Add("artist", "b")
	c.Add("album", "c")
	c.Add("Artist", "d")

	want := []string{"title", "artist", "album"}
	if got := c.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	c.Delete("ARTIST")
	want = []string{"title", "album"}
	if got := c.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() after delete = %v, want %v", got, want)
	}
}

func TestComments_All(t *testing.T) {
	c := NewComments(types.FormatOgg)
	c.Add("title", "a")
	c.Add("artist", "b")
	c.Add("artist", "c")

	got := make(map[string][]string)
	for key, values := range c.All() {
		got[key] = values
	}
	want := map[string][]string{"title": {"a"}, "artist": {"b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestComments_Format(t *testing.T) {
	for _, format := range []types.Format{types.FormatFLAC, types.FormatOgg, types.FormatOpus} {
		if got := NewComments(format).Format(); got != format {
			t.Errorf("Format() = %v, want %v", got, format)
		}
	}
}
