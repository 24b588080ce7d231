package ktximage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/ktx"
)

// patternImage builds a deterministic opaque image.
func patternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8((x*7 + y*3) & 0xff),  //nolint:gosec // bounded by mask
				G: uint8((x*13 + y*5) & 0xff), //nolint:gosec // bounded by mask
				B: 90,
				A: 255,
			})
		}
	}

	return img
}

func solidImage(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}

	return img
}

func TestEncodeDecodeBGRA8(t *testing.T) {
	t.Parallel()

	img := patternImage(8, 8)
	k, err := Encode(img, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	h := k.Header()
	if h.GLFormat != ktx.GLFormatBGRA || h.GLInternalFormat != ktx.InternalFormatRGBA8 {
		t.Fatalf("unexpected format %s", h)
	}
	if h.Levels() < 1 || h.Levels() > 4 {
		t.Fatalf("levels = %d, want 1..4", h.Levels())
	}
	if w, ok := k.KeyValues().GetString(ktx.KeyWriter); !ok || w != Writer {
		t.Fatalf("writer = %q, %v", w, ok)
	}

	got, err := Decode(k, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gotNRGBA, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", got)
	}
	if !bytes.Equal(gotNRGBA.Pix, img.Pix) {
		t.Fatalf("pixel mismatch")
	}

	last := h.Levels() - 1
	small, err := Decode(k, last)
	if err != nil {
		t.Fatalf("Decode level %d: %v", last, err)
	}
	if small.Bounds().Dx() != int(h.LevelWidth(last)) || small.Bounds().Dy() != int(h.LevelHeight(last)) {
		t.Fatalf("level %d is %v, want %dx%d", last, small.Bounds(), h.LevelWidth(last), h.LevelHeight(last))
	}
}

func TestEncodeCompressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format bcn.Format
		want   ktx.GLInternalFormat
	}{
		{name: "dxt1", format: bcn.FormatDXT1, want: ktx.InternalFormatCompressedRGBS3TCDXT1},
		{name: "dxt5", format: bcn.FormatDXT5, want: ktx.InternalFormatCompressedRGBAS3TCDXT5},
		{name: "bc4", format: bcn.FormatBC4, want: ktx.InternalFormatCompressedRedRGTC1},
		{name: "bc5", format: bcn.FormatBC5, want: ktx.InternalFormatCompressedRGRGTC2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			k, err := Encode(patternImage(16, 16), &EncodeOptions{
				Format:        tc.format,
				MaxMipMaps:    2,
				EncodeOptions: &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast},
			})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			h := k.Header()
			if h.GLInternalFormat != tc.want || !h.IsCompressed() {
				t.Fatalf("unexpected header %s", h)
			}
			if len(k.Mips()) != 2 {
				t.Fatalf("got %d levels, want 2", len(k.Mips()))
			}

			img, err := Decode(k, 1)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
				t.Fatalf("level 1 is %v, want 8x8", img.Bounds())
			}
		})
	}
}

func TestEncodeCubemap(t *testing.T) {
	t.Parallel()

	faces := make([]image.Image, ktx.NumCubeMapFaces)
	for i := range faces {
		faces[i] = solidImage(4, color.NRGBA{R: uint8(i * 40), G: 10, B: 200, A: 255}) //nolint:gosec // bounded
	}

	k, err := EncodeCubemap(faces, &EncodeOptions{Format: bcn.FormatRGBA8})
	if err != nil {
		t.Fatalf("EncodeCubemap: %v", err)
	}
	if !k.Header().IsCubemap() || k.Header().Levels() > 3 {
		t.Fatalf("unexpected header %s", k.Header())
	}

	for i := range faces {
		got, err := DecodeImage(k, 0, 0, uint32(i), nil)
		if err != nil {
			t.Fatalf("DecodeImage face %d: %v", i, err)
		}
		gotNRGBA, ok := got.(*image.NRGBA)
		if !ok {
			t.Fatalf("expected *image.NRGBA, got %T", got)
		}
		if !bytes.Equal(gotNRGBA.Pix, faces[i].(*image.NRGBA).Pix) {
			t.Fatalf("face %d pixel mismatch", i)
		}
	}

	if _, err := EncodeCubemap(faces[:5], nil); !errors.Is(err, ErrInvalidFaces) {
		t.Fatalf("expected %v, got %v", ErrInvalidFaces, err)
	}
	bad := append([]image.Image(nil), faces...)
	bad[3] = solidImage(8, color.NRGBA{A: 255})
	if _, err := EncodeCubemap(bad, nil); !errors.Is(err, ErrInvalidFaces) {
		t.Fatalf("expected %v, got %v", ErrInvalidFaces, err)
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	for format := range glFormats {
		h, err := HeaderFor(format, 4, 4, 1)
		if err != nil {
			t.Fatalf("HeaderFor(%v): %v", format, err)
		}
		got, err := FormatOf(h)
		if err != nil {
			t.Fatalf("FormatOf(%v): %v", format, err)
		}
		if got != format {
			t.Fatalf("FormatOf(HeaderFor(%v)) = %v", format, got)
		}
	}

	dxt1Alpha := ktx.Header{GLInternalFormat: ktx.InternalFormatCompressedRGBAS3TCDXT1}
	if got, err := FormatOf(dxt1Alpha); err != nil || got != bcn.FormatDXT1 {
		t.Fatalf("FormatOf(RGBA DXT1) = %v, %v", got, err)
	}

	if _, err := FormatOf(ktx.Header{GLInternalFormat: ktx.InternalFormatCompressedRGBABPTCUnorm}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected %v, got %v", ErrUnsupportedFormat, err)
	}
	if _, err := HeaderFor(bcn.FormatUnknown, 4, 4, 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected %v, got %v", ErrUnsupportedFormat, err)
	}
}

func TestEncodeKeepsWriter(t *testing.T) {
	t.Parallel()

	kvs := ktx.KeyValues{ktx.NewStringKeyValue(ktx.KeyWriter, "custom")}
	k, err := Encode(patternImage(4, 4), &EncodeOptions{KeyValues: kvs, MaxMipMaps: 1})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(k.KeyValues()) != 1 {
		t.Fatalf("got %d key-values, want 1", len(k.KeyValues()))
	}
	if w, _ := k.KeyValues().GetString(ktx.KeyWriter); w != "custom" {
		t.Fatalf("writer = %q, want custom", w)
	}
}

func TestDecodeFileLZ4(t *testing.T) {
	t.Parallel()

	img := patternImage(8, 4)
	k, err := Encode(img, &EncodeOptions{Format: bcn.FormatBGRA8, MaxMipMaps: 1})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "image.ktx")
	if err := ktx.WriteFile(path, k, &ktx.WriteOptions{Compress: true}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if !bytes.Equal(got.(*image.NRGBA).Pix, img.Pix) {
		t.Fatalf("pixel mismatch")
	}
}

func TestDecodeRejectsVolume(t *testing.T) {
	t.Parallel()

	h, err := HeaderFor(bcn.FormatRGBA8, 2, 2, 1)
	if err != nil {
		t.Fatalf("HeaderFor: %v", err)
	}
	h.PixelDepth = 2
	k, err := ktx.Create(h, nil, [][]byte{make([]byte, h.ImageSize(0))})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := Decode(k, 0); !errors.Is(err, ErrUnsupportedTexture) {
		t.Fatalf("expected %v, got %v", ErrUnsupportedTexture, err)
	}
}
