package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/bcn"

	"github.com/woozymasta/ktx"
)

func writeTestPNG(t *testing.T, path string, size int, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestParseKeyValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		key     string
		value   string
		wantErr bool
	}{
		{raw: "author=me", key: "author", value: "me"},
		{raw: "empty=", key: "empty", value: ""},
		{raw: "expr=a=b", key: "expr", value: "a=b"},
		{raw: "novalue", wantErr: true},
		{raw: "=value", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			kv, err := parseKeyValue(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseKeyValue: %v", err)
			}
			if kv.Key != tc.key || kv.String() != tc.value {
				t.Fatalf("got %q=%q, want %q=%q", kv.Key, kv.String(), tc.key, tc.value)
			}
		})
	}
}

func TestEncodeOptions(t *testing.T) {
	t.Parallel()

	p := packSettings{
		format:      "DXT5",
		maxMipMaps:  2,
		fast:        true,
		orientation: "S=r,T=d",
		keyValues:   []string{"a=1"},
	}
	opts, err := p.encodeOptions()
	if err != nil {
		t.Fatalf("encodeOptions: %v", err)
	}
	if opts.Format != bcn.FormatDXT5 || opts.MaxMipMaps != 2 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.EncodeOptions == nil || opts.EncodeOptions.QualityLevel != bcn.QualityLevelFast {
		t.Fatalf("fast quality not applied")
	}
	if v, ok := opts.KeyValues.GetString(ktx.KeyOrientation); !ok || v != "S=r,T=d" {
		t.Fatalf("orientation = %q, %v", v, ok)
	}
	if v, ok := opts.KeyValues.GetString("a"); !ok || v != "1" {
		t.Fatalf("a = %q, %v", v, ok)
	}

	if _, err := (packSettings{format: "astc"}).encodeOptions(); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if _, err := (packSettings{format: "bgra8", maxMipMaps: -1}).encodeOptions(); err == nil {
		t.Fatalf("expected negative mips error")
	}
}

func TestPackUnpack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	writeTestPNG(t, input, 8, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	output := filepath.Join(dir, "out.ktx")
	p := packSettings{output: output, format: "bgra8", maxMipMaps: 2, lz4: true, writer: "ktxtool test"}
	if err := runPack(p, []string{input}); err != nil {
		t.Fatalf("runPack: %v", err)
	}

	k, err := ktx.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if w, _ := k.KeyValues().GetString(ktx.KeyWriter); w != "ktxtool test" {
		t.Fatalf("writer = %q", w)
	}
	if err := validateFile(output, false); err != nil {
		t.Fatalf("validateFile: %v", err)
	}

	paths, err := runUnpack(output, filepath.Join(dir, "png"), -1)
	if err != nil {
		t.Fatalf("runUnpack: %v", err)
	}
	if len(paths) != len(k.Mips()) {
		t.Fatalf("wrote %d images, want %d", len(paths), len(k.Mips()))
	}
	if filepath.Base(paths[0]) != "out_mip0.png" {
		t.Fatalf("unexpected name %q", paths[0])
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Fatalf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}

	if _, err := runUnpack(output, dir, 9); err == nil {
		t.Fatalf("expected level range error")
	}
}

func TestPackCube(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputs := make([]string, ktx.NumCubeMapFaces)
	for i := range inputs {
		inputs[i] = filepath.Join(dir, "face"+string(rune('0'+i))+".png")
		writeTestPNG(t, inputs[i], 4, color.NRGBA{R: uint8(i * 30), A: 255}) //nolint:gosec // bounded
	}

	output := filepath.Join(dir, "cube.ktx")
	if err := runPack(packSettings{output: output, format: "rgba8", maxMipMaps: 1, cube: true}, inputs); err != nil {
		t.Fatalf("runPack: %v", err)
	}

	paths, err := runUnpack(output, dir, 0)
	if err != nil {
		t.Fatalf("runUnpack: %v", err)
	}
	if len(paths) != ktx.NumCubeMapFaces || filepath.Base(paths[5]) != "cube_mip0_face5.png" {
		t.Fatalf("unexpected outputs %v", paths)
	}

	if err := runPack(packSettings{output: output, format: "rgba8", cube: true}, inputs[:2]); err == nil {
		t.Fatalf("expected face count error")
	}
}
