package ktx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

// WriteOptions configures file output.
type WriteOptions struct {
	// Compress wraps the container in an LZ4 frame.
	Compress bool
	// HighCompression selects the slowest, densest LZ4 level. Only used with Compress.
	HighCompression bool
}

// StorageSize returns the encoded size of a container with the given header
// and metadata, with image sizes derived from the header geometry.
func StorageSize(h Header, kvs KeyValues) (int, error) {
	total := uint64(HeaderSize) + kvs.Size()
	for level := range h.Levels() {
		l, err := h.layout(level)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
		}
		if l.image == 0 {
			return 0, fmt.Errorf("%w: %w: internal format %#x", ErrInvalidGeometry, ErrUnsupportedFormat,
				uint32(h.GLInternalFormat))
		}

		var ok bool
		if total, ok = addU64(total, l.image); ok {
			total, ok = addU64(total, 4+padding4(l.image))
		}
		if !ok {
			return 0, fmt.Errorf("%w: level %d", ErrSizeOverflow, level)
		}
	}

	return intFromU64(total)
}

// prepareWrite validates the inputs and returns the finalized header and the
// encoded size.
func prepareWrite(h Header, kvs KeyValues, images [][]byte) (Header, uint64, error) {
	for i, kv := range kvs {
		if err := kv.validate(); err != nil {
			return Header{}, 0, fmt.Errorf("key-value %d: %w", i, err)
		}
		if kv.entrySize() > maxUint32 {
			return Header{}, 0, fmt.Errorf("%w: key-value %d: %w", ErrInvalidKeyValue, i, ErrSizeOverflow)
		}
	}

	kvSize := kvs.Size()
	if kvSize > maxUint32 {
		return Header{}, 0, fmt.Errorf("%w: key-value block of %d bytes", ErrSizeOverflow, kvSize)
	}
	h.BytesOfKeyValueData = uint32(kvSize)

	if err := h.Validate(); err != nil {
		return Header{}, 0, err
	}

	if uint64(len(images)) != uint64(h.Levels()) {
		return Header{}, 0, fmt.Errorf("%w: %d images for %d levels", ErrInvalidGeometry, len(images), h.Levels())
	}

	total := uint64(HeaderSize) + kvSize
	for i, img := range images {
		level := uint32(i)
		want := h.ImageSize(level)
		if want == 0 {
			return Header{}, 0, fmt.Errorf("%w: %w: internal format %#x", ErrInvalidGeometry, ErrUnsupportedFormat,
				uint32(h.GLInternalFormat))
		}
		if uint64(len(img)) != want {
			return Header{}, 0, fmt.Errorf("%w: level %d: expected %d bytes, got %d",
				ErrInvalidGeometry, level, want, len(img))
		}
		if h.storedImageSize(level) > maxUint32 {
			return Header{}, 0, fmt.Errorf("%w: level %d: %d bytes", ErrSizeOverflow, level, want)
		}

		total += 4 + align4(want)
	}

	return h, total, nil
}

// Serialize encodes a header, ordered metadata and one image per level into
// a new buffer. Each image must hold exactly h.ImageSize(level) bytes laid
// out in file order (array elements, faces with cube padding, depth slices,
// rows). BytesOfKeyValueData is computed from kvs.
func Serialize(h Header, kvs KeyValues, images [][]byte) ([]byte, error) {
	h, total, err := prepareWrite(h, kvs, images)
	if err != nil {
		return nil, err
	}

	size, err := intFromU64(total)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, size)
	writeInto(dst, h, kvs, images)

	return dst, nil
}

// WriteInto encodes a container into dst and returns the number of bytes
// written. dst must be at least as large as the encoded container.
func WriteInto(dst []byte, h Header, kvs KeyValues, images [][]byte) (int, error) {
	h, total, err := prepareWrite(h, kvs, images)
	if err != nil {
		return 0, err
	}
	if uint64(len(dst)) < total {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, total, len(dst))
	}

	return writeInto(dst, h, kvs, images), nil
}

// writeInto encodes inputs already checked by prepareWrite into dst.
func writeInto(dst []byte, h Header, kvs KeyValues, images [][]byte) int {
	encodeHeader(dst, h)
	off := HeaderSize
	off += writeKeyValues(dst[off:], kvs)

	for i, img := range images {
		level := uint32(i)
		binary.LittleEndian.PutUint32(dst[off:], uint32(h.storedImageSize(level)))
		off += 4
		off += copy(dst[off:], img)
		for range padding4(uint64(len(img))) {
			dst[off] = 0
			off++
		}
	}

	Logger().Debug("ktx: serialized container",
		"header", h.String(),
		"key_values", len(kvs),
		"bytes", off,
	)

	return off
}

// Create serializes the inputs and parses the result into a container.
func Create(h Header, kvs KeyValues, images [][]byte) (*KTX, error) {
	data, err := Serialize(h, kvs, images)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// WriteTo writes the encoded container to w.
func (k *KTX) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(k.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrWriteData, err)
	}

	return int64(n), nil
}

// WriteFile writes the container to path, optionally as an LZ4 frame.
// Output goes to a temporary file in the same directory that replaces path
// only once fully written, so a failed write leaves path untouched.
// Nil opts writes the plain container.
func WriteFile(path string, k *KTX, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if opts.Compress {
		if err := writeLZ4(bw, k.Bytes(), opts.HighCompression); err != nil {
			return err
		}
	} else if _, err := k.WriteTo(bw); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteData, path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteData, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteData, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteData, path, err)
	}
	committed = true

	Logger().Debug("ktx: wrote file", "path", path, "bytes", k.Size(), "lz4", opts.Compress)
	return nil
}

// writeLZ4 writes data as a single LZ4 frame.
func writeLZ4(w io.Writer, data []byte, high bool) error {
	zw := lz4.NewWriter(w)
	if high {
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return fmt.Errorf("%w: %v", ErrLZ4Frame, err)
		}
	}
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrLZ4Frame, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrLZ4Frame, err)
	}

	return nil
}
