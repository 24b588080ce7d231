package ktx

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadFile(t *testing.T) {
	t.Parallel()

	h := withLevels(rgba8Header(32, 32), 6)
	kvs := KeyValues{NewStringKeyValue(KeyWriter, "ktx test")}
	k, err := Create(h, kvs, levelImages(h))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name string
		opts *WriteOptions
		lz4  bool
	}{
		{name: "plain", opts: nil},
		{name: "lz4", opts: &WriteOptions{Compress: true}, lz4: true},
		{name: "lz4-high", opts: &WriteOptions{Compress: true, HighCompression: true}, lz4: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "texture.ktx")
			if err := WriteFile(path, k, tc.opts); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if isLZ4Frame(raw) != tc.lz4 {
				t.Fatalf("LZ4 frame = %v, want %v", isLZ4Frame(raw), tc.lz4)
			}
			if !tc.lz4 && !bytes.Equal(raw, k.Bytes()) {
				t.Fatalf("plain file differs from encoded container")
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !bytes.Equal(got.Bytes(), k.Bytes()) {
				t.Fatalf("decoded container differs")
			}

			hdr, err := ReadFileHeader(path)
			if err != nil {
				t.Fatalf("ReadFileHeader: %v", err)
			}
			if hdr != k.Header() {
				t.Fatalf("header mismatch:\n got %+v\nwant %+v", hdr, k.Header())
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer func() { _ = f.Close() }()

			decoded, err := Decode(f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if v, ok := decoded.KeyValues().GetString(KeyWriter); !ok || v != "ktx test" {
				t.Fatalf("writer = %q, %v", v, ok)
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := ReadFile(filepath.Join(dir, "missing.ktx")); !errors.Is(err, ErrOpenFile) {
		t.Fatalf("expected %v, got %v", ErrOpenFile, err)
	}
	if _, err := ReadFileHeader(filepath.Join(dir, "missing.ktx")); !errors.Is(err, ErrOpenFile) {
		t.Fatalf("expected %v, got %v", ErrOpenFile, err)
	}

	short := filepath.Join(dir, "short.ktx")
	if err := os.WriteFile(short, Identifier[:], 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadFile(short); !errors.Is(err, ErrTruncatedData) {
		t.Fatalf("expected %v, got %v", ErrTruncatedData, err)
	}
	if _, err := ReadFileHeader(short); !errors.Is(err, ErrTruncatedData) {
		t.Fatalf("expected %v, got %v", ErrTruncatedData, err)
	}

	// A valid magic followed by garbage is a broken frame.
	broken := filepath.Join(dir, "broken.ktx.lz4")
	if err := os.WriteFile(broken, []byte{0x04, 0x22, 0x4D, 0x18, 0xff, 0xff, 0xff}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadFile(broken); !errors.Is(err, ErrLZ4Frame) {
		t.Fatalf("expected %v, got %v", ErrLZ4Frame, err)
	}
}

func TestDecodeHeaderPlain(t *testing.T) {
	t.Parallel()

	data, _ := serializeOrFatal(t, withFaces(rgba8Header(16, 16), 6), nil)
	h, err := DecodeHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if !h.IsCubemap() || h.PixelWidth != 16 {
		t.Fatalf("unexpected header %+v", h)
	}

	if _, err := DecodeHeader(bytes.NewReader(data[:10])); !errors.Is(err, ErrTruncatedData) {
		t.Fatalf("expected %v, got %v", ErrTruncatedData, err)
	}
}

func TestWriteFileFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	k, err := Create(rgba8Header(4, 4), nil, levelImages(rgba8Header(4, 4)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, "missing", "texture.ktx"), k, nil); !errors.Is(err, ErrCreateFile) {
		t.Fatalf("expected %v, got %v", ErrCreateFile, err)
	}

	// A non-empty directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "texture.ktx")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := WriteFile(path, k, &WriteOptions{Compress: true}); !errors.Is(err, ErrWriteData) {
		t.Fatalf("expected %v, got %v", ErrWriteData, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "texture.ktx" || !entries[0].IsDir() {
		t.Fatalf("unexpected directory contents after failed write: %v", entries)
	}
}

func TestWriteFileReplacesExisting(t *testing.T) {
	t.Parallel()

	k, err := Create(rgba8Header(4, 4), nil, levelImages(rgba8Header(4, 4)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	path := filepath.Join(t.TempDir(), "texture.ktx")
	if err := os.WriteFile(path, []byte("stale contents"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, k, nil); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(raw, k.Bytes()) {
		t.Fatalf("file holds %d bytes, want the %d-byte container", len(raw), k.Size())
	}
}

func TestInflateLimit(t *testing.T) {
	t.Parallel()

	var frame bytes.Buffer
	if err := writeLZ4(&frame, bytes.Repeat([]byte{0xab}, 4096), false); err != nil {
		t.Fatalf("writeLZ4: %v", err)
	}

	out, err := inflateLimit(frame.Bytes(), 4096)
	if err != nil {
		t.Fatalf("inflate at limit: %v", err)
	}
	if len(out) != 4096 {
		t.Fatalf("inflated %d bytes, want 4096", len(out))
	}

	// A small frame expanding past the cap is rejected.
	if _, err := inflateLimit(frame.Bytes(), 4095); !errors.Is(err, ErrLZ4Frame) || !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected %v wrapped in %v, got %v", ErrSizeOverflow, ErrLZ4Frame, err)
	}

	plain := []byte("not a frame")
	if got, err := inflateLimit(plain, 1); err != nil || !bytes.Equal(got, plain) {
		t.Fatalf("plain data changed: %q, %v", got, err)
	}
}
