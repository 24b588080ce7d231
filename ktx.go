package ktx

import (
	"encoding/binary"
	"fmt"
)

// Mip describes one stored mip level.
type Mip struct {
	// ImageSize is the value of the level's imageSize field. For non-array
	// cubemaps it is the size of one face, otherwise the size of the level.
	// Use Len for the byte length of the whole level.
	ImageSize uint32
	// Offset is the position of the level's first pixel byte in Storage.
	Offset int
	// Data views the complete level: every array element, face and depth
	// slice, cube padding between faces included, mip padding excluded.
	Data []byte
}

// Len returns the byte length of the complete level, all faces included.
func (m Mip) Len() int { return len(m.Data) }

// KTX is a parsed container. It is immutable and safe for concurrent reads.
type KTX struct {
	storage   *Storage
	header    Header
	keyValues KeyValues
	mips      []Mip
}

// ReadOptions configures container parsing.
type ReadOptions struct {
	// DisableGeometryCheck accepts levels whose declared size differs from
	// the size derived from the header format and dimensions. Sizes are still
	// bounds checked.
	DisableGeometryCheck bool
}

// CheckHeader validates the identifier, sentinel and structure of the header
// at the start of data and returns a copy of it.
func CheckHeader(data []byte) (Header, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return Header{}, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Parse reads a container directly from data without copying it.
// The returned KTX borrows data, which must not be modified afterwards.
func Parse(data []byte) (*KTX, error) {
	return ReadWithOptions(WrapStorage(data), nil)
}

// Read parses a container from storage.
func Read(s *Storage) (*KTX, error) {
	return ReadWithOptions(s, nil)
}

// ReadWithOptions parses a container from storage with the given options.
// Nil opts uses defaults.
func ReadWithOptions(s *Storage, opts *ReadOptions) (*KTX, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}

	data := s.Bytes()
	h, err := CheckHeader(data)
	if err != nil {
		return nil, err
	}

	off := uint64(HeaderSize)
	total := uint64(len(data))

	kvLen := uint64(h.BytesOfKeyValueData)
	if kvLen > total-off {
		return nil, fmt.Errorf("%w: key-value block of %d bytes at %d, buffer has %d",
			ErrTruncatedData, kvLen, off, total)
	}

	kvs, err := parseKeyValues(data[off : off+kvLen])
	if err != nil {
		return nil, err
	}
	off += kvLen

	mips, off, err := walkLevels(h, data, off, opts)
	if err != nil {
		return nil, err
	}

	log := Logger()
	if off < total {
		log.Debug("ktx: trailing bytes after last level", "bytes", total-off)
	}
	log.Debug("ktx: parsed container",
		"header", h.String(),
		"key_values", len(kvs),
		"bytes", total,
	)

	return &KTX{storage: s, header: h, keyValues: kvs, mips: mips}, nil
}

// walkLevels records one Mip per level starting at off and returns the
// offset following the last level's padding.
func walkLevels(h Header, data []byte, off uint64, opts *ReadOptions) ([]Mip, uint64, error) {
	total := uint64(len(data))
	levels := h.Levels()
	mips := make([]Mip, 0, levels)

	for level := range levels {
		if total-off < 4 {
			return nil, 0, fmt.Errorf("%w: level %d: imageSize field at %d, buffer has %d",
				ErrTruncatedData, level, off, total)
		}

		stored := binary.LittleEndian.Uint32(data[off:])
		off += 4

		extent := h.levelExtent(stored)
		pad := padding4(extent)
		if extent > total-off || pad > total-off-extent {
			return nil, 0, fmt.Errorf("%w: level %d: %d bytes plus %d padding at %d, buffer has %d",
				ErrTruncatedData, level, extent, pad, off, total)
		}

		if !opts.DisableGeometryCheck {
			if want := h.ImageSize(level); want != 0 && want != extent {
				return nil, 0, fmt.Errorf("%w: level %d: declared %d bytes, header geometry gives %d",
					ErrInvalidGeometry, level, extent, want)
			}
		}

		start, err := intFromU64(off)
		if err != nil {
			return nil, 0, err
		}
		mips = append(mips, Mip{
			ImageSize: stored,
			Offset:    start,
			Data:      data[off : off+extent : off+extent],
		})

		off += extent + pad
	}

	return mips, off, nil
}

// Header returns a copy of the container header.
func (k *KTX) Header() Header { return k.header }

// KeyValues returns the metadata entries in file order.
// Values alias the container storage and must not be modified.
func (k *KTX) KeyValues() KeyValues { return k.keyValues }

// Mips returns one descriptor per stored level.
func (k *KTX) Mips() []Mip { return k.mips }

// Storage returns the storage backing the container.
func (k *KTX) Storage() *Storage { return k.storage }

// Bytes returns the encoded container. The slice must be treated as read-only.
func (k *KTX) Bytes() []byte { return k.storage.Bytes() }

// Size returns the encoded container size.
func (k *KTX) Size() int { return k.storage.Size() }

// Mip returns the descriptor of a level.
func (k *KTX) Mip(level uint32) (Mip, error) {
	if level >= uint32(len(k.mips)) {
		return Mip{}, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, level, len(k.mips))
	}

	return k.mips[level], nil
}

// Image returns the bytes of one face of one array element at a level,
// depth slices included. Sub-element boundaries are derived from the
// header, so the format must have known image sizes.
func (k *KTX) Image(level, layer, face uint32) ([]byte, error) {
	h := k.header
	m, err := k.Mip(level)
	if err != nil {
		return nil, err
	}
	if layer >= h.ArrayElements() {
		return nil, fmt.Errorf("%w: array element %d of %d", ErrLevelOutOfRange, layer, h.ArrayElements())
	}
	if face >= h.Faces() {
		return nil, fmt.Errorf("%w: face %d of %d", ErrLevelOutOfRange, face, h.Faces())
	}

	l, err := h.layout(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	if l.face == 0 {
		return nil, fmt.Errorf("%w: internal format %#x", ErrUnsupportedFormat, uint32(h.GLInternalFormat))
	}

	// faceOff never exceeds the element size, so only the layer terms can wrap.
	faceOff := uint64(face) * (l.face + l.cubePad)
	start, ok := mulU64(uint64(layer), l.element)
	if ok {
		start, ok = addU64(start, faceOff)
	}
	end, endOK := addU64(start, l.face)
	if !ok || !endOK || end > uint64(len(m.Data)) {
		return nil, fmt.Errorf("%w: level %d: face %d of element %d lies outside %d bytes",
			ErrInvalidGeometry, level, face, layer, len(m.Data))
	}

	return m.Data[start:end:end], nil
}
