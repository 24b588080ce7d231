package ktx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// lz4FrameMagic starts every LZ4 frame.
const lz4FrameMagic uint32 = 0x184D2204

// isLZ4Frame reports whether b starts with an LZ4 frame magic number.
func isLZ4Frame(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b) == lz4FrameMagic
}

// MaxInflatedSize caps the decompressed size of an LZ4-framed container.
const MaxInflatedSize = 4 << 30

// inflate returns data unchanged unless it is an LZ4 frame.
func inflate(data []byte) ([]byte, error) {
	return inflateLimit(data, MaxInflatedSize)
}

// inflateLimit inflates an LZ4 frame of at most limit decompressed bytes.
func inflateLimit(data []byte, limit int64) ([]byte, error) {
	if !isLZ4Frame(data) {
		return data, nil
	}

	zr := lz4.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLZ4Frame, err)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %w: frame inflates past %d bytes", ErrLZ4Frame, ErrSizeOverflow, limit)
	}

	Logger().Debug("ktx: inflated LZ4 frame", "compressed", len(data), "bytes", len(out))
	return out, nil
}

// Decode reads a whole container from r. LZ4-framed input is inflated.
func Decode(r io.Reader) (*KTX, error) {
	return DecodeWithOptions(r, nil)
}

// DecodeWithOptions reads a whole container from r with the given options.
func DecodeWithOptions(r io.Reader, opts *ReadOptions) (*KTX, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	data, err = inflate(data)
	if err != nil {
		return nil, err
	}

	return ReadWithOptions(WrapStorage(data), opts)
}

// DecodeHeader reads and validates only the header from r.
// LZ4-framed input is inflated on the fly.
func DecodeHeader(r io.Reader) (Header, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(4); err == nil && isLZ4Frame(magic) {
		r = lz4.NewReader(br)
	} else {
		r = br
	}

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Header{}, fmt.Errorf("%w: header: %v", ErrTruncatedData, err)
		}
		return Header{}, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	return CheckHeader(buf)
}

// ReadFile reads and parses a KTX file, plain or LZ4-framed.
func ReadFile(path string) (*KTX, error) {
	return ReadFileWithOptions(path, nil)
}

// ReadFileWithOptions reads and parses a KTX file with the given options.
// Nil opts uses defaults.
func ReadFileWithOptions(path string, opts *ReadOptions) (*KTX, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}

	data, err = inflate(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	k, err := ReadWithOptions(WrapStorage(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return k, nil
}

// ReadFileHeader reads only the header of a KTX file.
func ReadFileHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeHeader(f)
}
