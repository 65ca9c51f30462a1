package tagmap

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/simonhull/booktag/internal/types"
)

// pngData encodes a blank PNG of the given dimensions.
func pngData(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func coverOf(t *testing.T, dst *memContainer) *types.Picture {
	t.Helper()
	value, ok := dst.Get("cover")
	if !ok {
		t.Fatal("cover not set")
	}
	pic, ok := value.(*types.Picture)
	if !ok {
		t.Fatalf("cover = %T, want *types.Picture", value)
	}
	return pic
}

func TestPictureOut_PrefersFrontCover(t *testing.T) {
	src := newMemContainer()
	src.put("APIC",
		&types.Picture{Type: types.PictureBackCover, Data: pngData(t, 4, 4)},
		&types.Picture{Type: types.PictureFrontCover, Data: pngData(t, 8, 8)},
	)
	dst := newMemContainer()

	rule := PictureOut("APIC")
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	pic := coverOf(t, dst)
	if pic.Type != types.PictureFrontCover {
		t.Errorf("cover type = %v, want %v", pic.Type, types.PictureFrontCover)
	}
	if pic.Width != 8 || pic.Height != 8 {
		t.Errorf("cover dimensions = %dx%d, want 8x8", pic.Width, pic.Height)
	}
	if pic.MIMEType != "image/png" {
		t.Errorf("cover MIME = %q, want image/png", pic.MIMEType)
	}
}

func TestPictureOut_RankingIgnoresOrder(t *testing.T) {
	front := &types.Picture{Type: types.PictureFrontCover, Data: pngData(t, 8, 8)}
	back := &types.Picture{Type: types.PictureBackCover, Data: pngData(t, 4, 4)}

	tests := []struct {
		name       string
		candidates []any
	}{
		{"front listed first", []any{front, back}},
		{"front listed last", []any{back, front}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := newMemContainer()
			src.put("APIC", tc.candidates...)
			dst := newMemContainer()

			if err := PictureOut("APIC").Run(src, dst); err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if pic := coverOf(t, dst); pic.Type != types.PictureFrontCover {
				t.Errorf("cover type = %v, want %v", pic.Type, types.PictureFrontCover)
			}
		})
	}
}

func TestPictureOut_SkipsUndecodableCandidate(t *testing.T) {
	src := newMemContainer()
	src.put("APIC",
		&types.Picture{Type: types.PictureFrontCover, Data: []byte("not an image")},
		&types.Picture{Type: types.PictureBackCover, Data: pngData(t, 4, 4)},
	)
	dst := newMemContainer()

	rule := PictureOut("APIC")
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if pic := coverOf(t, dst); pic.Type != types.PictureBackCover {
		t.Errorf("cover type = %v, want %v", pic.Type, types.PictureBackCover)
	}
}

func TestPictureOut_NoUsablePictureLeavesCoverUnset(t *testing.T) {
	src := newMemContainer()
	src.put("APIC", &types.Picture{Type: types.PictureFrontCover, Data: []byte("garbage")})
	dst := newMemContainer()

	rule := PictureOut("APIC")
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if _, ok := dst.Get("cover"); ok {
		t.Error("cover set from garbage, want unset")
	}
}

func TestPictureOut_FilterConvertsNativeValue(t *testing.T) {
	src := newMemContainer()
	src.put("covr", pngData(t, 6, 6))
	dst := newMemContainer()

	decode := FilterFunc(func(value any) (any, error) {
		data, ok := value.([]byte)
		if !ok {
			return nil, ErrSkipTag
		}
		return &types.Picture{Type: types.PictureFrontCover, Data: data}, nil
	})
	rule := PictureOut("covr", decode)
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if pic := coverOf(t, dst); pic.Width != 6 {
		t.Errorf("cover width = %d, want 6", pic.Width)
	}
}

func TestPictureIn_NoCoverPreservesExisting(t *testing.T) {
	src := newMemContainer()
	dst := newMemContainer()
	dst.put("APIC:old", "existing picture")

	rule := PictureIn("APIC")
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if _, ok := dst.Get("APIC:old"); !ok {
		t.Error("existing picture removed on no-cover write")
	}
}

func TestPictureIn_ClearsDescriptionSlots(t *testing.T) {
	src := newMemContainer()
	cover := &types.Picture{Type: types.PictureFrontCover, Data: pngData(t, 4, 4)}
	src.put("cover", cover)
	dst := newMemContainer()
	dst.put("APIC:a", "slot a")
	dst.put("APIC:b", "slot b")
	dst.put("TALB", "unrelated")

	rule := PictureIn("APIC")
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	for _, key := range []string{"APIC:a", "APIC:b"} {
		if _, ok := dst.Get(key); ok {
			t.Errorf("%s still present, want cleared", key)
		}
	}
	if _, ok := dst.Get("TALB"); !ok {
		t.Error("unrelated key removed")
	}
	if got := dst.value(t, "APIC"); got != cover {
		t.Errorf("APIC = %v, want the canonical cover", got)
	}
}

func TestPictureIn_FilterEncodes(t *testing.T) {
	src := newMemContainer()
	src.put("cover", &types.Picture{Type: types.PictureFrontCover, Data: []byte{1, 2}})
	dst := newMemContainer()

	encode := FilterFunc(func(value any) (any, error) {
		pic, ok := value.(*types.Picture)
		if !ok {
			return nil, ErrSkipTag
		}
		return pic.Data, nil
	})
	rule := PictureIn("covr", encode)
	if err := rule.Run(src, dst); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	got, ok := dst.value(t, "covr").([]byte)
	if !ok || !bytes.Equal(got, []byte{1, 2}) {
		t.Errorf("covr = %v, want raw image bytes", got)
	}
}
