package ktx

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// IdentifierLength is the size of the file identifier.
	IdentifierLength = 12
	// HeaderSize is the encoded header size: identifier plus 13 uint32 fields.
	HeaderSize = IdentifierLength + 13*4

	// EndianTest is the endianness sentinel as written by this package.
	EndianTest uint32 = 0x04030201
	// ReverseEndianTest is the sentinel as seen in a byte-swapped file.
	ReverseEndianTest uint32 = 0x01020304
)

// Identifier is the KTX 1.1 file identifier: «KTX 11»\r\n\x1A\n.
var Identifier = [IdentifierLength]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}

// Header holds the scalar KTX header fields in file order. The identifier and
// endianness sentinel are constant and therefore not part of the value.
//
// Fields keep their raw stored values; zero counts and dimensions are
// normalized by the accessor methods only.
type Header struct {
	GLType                GLType               `json:"gl_type" yaml:"gl_type"`
	GLTypeSize            uint32               `json:"gl_type_size" yaml:"gl_type_size"`
	GLFormat              GLFormat             `json:"gl_format" yaml:"gl_format"`
	GLInternalFormat      GLInternalFormat     `json:"gl_internal_format" yaml:"gl_internal_format"`
	GLBaseInternalFormat  GLBaseInternalFormat `json:"gl_base_internal_format" yaml:"gl_base_internal_format"`
	PixelWidth            uint32               `json:"pixel_width" yaml:"pixel_width"`
	PixelHeight           uint32               `json:"pixel_height" yaml:"pixel_height"`
	PixelDepth            uint32               `json:"pixel_depth" yaml:"pixel_depth"`
	NumberOfArrayElements uint32               `json:"number_of_array_elements" yaml:"number_of_array_elements"`
	NumberOfFaces         uint32               `json:"number_of_faces" yaml:"number_of_faces"`
	NumberOfMipmapLevels  uint32               `json:"number_of_mipmap_levels" yaml:"number_of_mipmap_levels"`
	BytesOfKeyValueData   uint32               `json:"bytes_of_key_value_data" yaml:"bytes_of_key_value_data"`
}

func (h Header) String() string {
	return fmt.Sprintf("KTX %dx%dx%d internal=%#x levels=%d faces=%d layers=%d",
		h.PixelWidth, h.Height(), h.Depth(), uint32(h.GLInternalFormat),
		h.Levels(), h.Faces(), h.ArrayElements())
}

// Height returns the effective pixel height at level 0.
func (h Header) Height() uint32 { return atLeastOne(h.PixelHeight) }

// Depth returns the effective pixel depth at level 0.
func (h Header) Depth() uint32 { return atLeastOne(h.PixelDepth) }

// ArrayElements returns the effective number of array elements.
func (h Header) ArrayElements() uint32 { return atLeastOne(h.NumberOfArrayElements) }

// Faces returns the effective number of faces.
func (h Header) Faces() uint32 { return atLeastOne(h.NumberOfFaces) }

// Levels returns the effective number of mip levels.
func (h Header) Levels() uint32 { return atLeastOne(h.NumberOfMipmapLevels) }

// IsCompressed reports whether the header describes block-compressed data.
func (h Header) IsCompressed() bool {
	return h.GLType == GLTypeCompressed || h.GLFormat == GLFormatCompressed
}

// IsCubemap reports whether the texture stores six faces.
func (h Header) IsCubemap() bool { return h.NumberOfFaces == NumCubeMapFaces }

// IsArray reports whether the texture is an array texture.
func (h Header) IsArray() bool { return h.NumberOfArrayElements > 0 }

// MaxDimension returns the largest level 0 dimension.
func (h Header) MaxDimension() uint32 {
	return max(h.PixelWidth, h.PixelHeight, h.PixelDepth)
}

// MaxLevel returns how many mip levels the dimensions allow.
func (h Header) MaxLevel() uint32 {
	return maxLevelCount(h.MaxDimension())
}

// LevelWidth returns the pixel width of a mip level.
func (h Header) LevelWidth(level uint32) uint32 { return mipDimension(h.PixelWidth, level) }

// LevelHeight returns the pixel height of a mip level.
func (h Header) LevelHeight(level uint32) uint32 { return mipDimension(h.Height(), level) }

// LevelDepth returns the pixel depth of a mip level.
func (h Header) LevelDepth(level uint32) uint32 { return mipDimension(h.Depth(), level) }

// PixelSize returns bytes per pixel for uncompressed formats and bytes per
// block for compressed ones. Zero means the format is unknown or the size
// does not fit in 32 bits.
func (h Header) PixelSize() uint32 {
	size, err := h.pixelSize()
	if err != nil {
		return 0
	}

	return uint32(size)
}

func (h Header) pixelSize() (uint64, error) {
	if h.IsCompressed() {
		return uint64(compressedBlocks[h.GLInternalFormat].Bytes), nil
	}

	size := uncompressedPixelSize(h.GLType, h.GLTypeSize, h.GLFormat)
	if size > maxUint32 {
		return 0, fmt.Errorf("%w: pixel size %d", ErrSizeOverflow, size)
	}

	return size, nil
}

// BlockDimensions returns the texel footprint of one storage unit:
// 1x1 for uncompressed formats, the block size for compressed ones.
func (h Header) BlockDimensions() (width, height uint32) {
	if !h.IsCompressed() {
		return 1, 1
	}

	b, ok := compressedBlocks[h.GLInternalFormat]
	if !ok {
		return 0, 0
	}

	return b.Width, b.Height
}

// levelLayout holds the byte sizes of one mip level.
type levelLayout struct {
	row     uint64
	rows    uint64
	face    uint64
	cubePad uint64
	element uint64
	image   uint64
}

// layout computes the sizes of a level, failing with ErrSizeOverflow when
// any of them does not fit in 64 bits. On failure the sizes computed before
// the overflowing one are still set. Unknown formats yield a zero layout.
func (h Header) layout(level uint32) (levelLayout, error) {
	pixel, err := h.pixelSize()
	if err != nil || pixel == 0 {
		return levelLayout{}, err
	}

	var l levelLayout
	if h.IsCompressed() {
		bw, bh := h.BlockDimensions()
		l.row = ceilDiv(h.LevelWidth(level), bw) * pixel
		l.rows = ceilDiv(h.LevelHeight(level), bh)
	} else {
		l.row = align4(uint64(h.LevelWidth(level)) * pixel)
		l.rows = uint64(h.LevelHeight(level))
	}

	area, ok := mulU64(l.row, l.rows)
	if !ok {
		return l, h.overflow(level, "face")
	}
	face, ok := mulU64(area, uint64(h.LevelDepth(level)))
	if !ok {
		return l, h.overflow(level, "face")
	}
	l.face = face

	faces := uint64(h.Faces())
	if faces > 1 {
		l.cubePad = padding4(face)
	}
	element, ok := mulU64(faces, face)
	if ok {
		element, ok = addU64(element, (faces-1)*l.cubePad)
	}
	if !ok {
		return l, h.overflow(level, "element")
	}
	l.element = element

	image, ok := mulU64(uint64(h.ArrayElements()), element)
	if !ok {
		return l, h.overflow(level, "image")
	}
	l.image = image

	return l, nil
}

func (h Header) overflow(level uint32, what string) error {
	return fmt.Errorf("%w: level %d %s size of %dx%dx%d texture", ErrSizeOverflow,
		level, what, h.PixelWidth, h.Height(), h.Depth())
}

// mustLayout returns the sizes of a level that fit; overflowing ones are 0.
func (h Header) mustLayout(level uint32) levelLayout {
	l, _ := h.layout(level)
	return l
}

// RowSize returns the bytes of one row (or row of blocks) at a level.
// Uncompressed rows honor a GL_UNPACK_ALIGNMENT of 4.
func (h Header) RowSize(level uint32) uint64 { return h.mustLayout(level).row }

// RowCount returns the number of rows (or rows of blocks) at a level.
func (h Header) RowCount(level uint32) uint64 {
	if !h.IsCompressed() {
		return uint64(h.LevelHeight(level))
	}

	_, bh := h.BlockDimensions()
	if bh == 0 {
		return 0
	}

	return ceilDiv(h.LevelHeight(level), bh)
}

// FaceSize returns the bytes of one face of one array element at a level,
// across all depth slices and without cube padding.
func (h Header) FaceSize(level uint32) uint64 { return h.mustLayout(level).face }

// CubePadding returns the padding stored between faces at a level.
func (h Header) CubePadding(level uint32) uint64 { return h.mustLayout(level).cubePad }

// ElementSize returns the bytes of one array element at a level: all faces
// with padding between them.
func (h Header) ElementSize(level uint32) uint64 { return h.mustLayout(level).element }

// ImageSize returns the bytes of one complete mip level across all array
// elements and faces, in file traversal order. Sizes that overflow report 0;
// Validate rejects such headers.
func (h Header) ImageSize(level uint32) uint64 { return h.mustLayout(level).image }

// nonArrayCubemap reports the layout where the stored imageSize covers one face.
func (h Header) nonArrayCubemap() bool {
	return h.IsCubemap() && !h.IsArray()
}

// storedImageSize returns the value written to a level's imageSize field.
func (h Header) storedImageSize(level uint32) uint64 {
	if h.nonArrayCubemap() {
		return h.FaceSize(level)
	}

	return h.ImageSize(level)
}

// levelExtent expands a stored imageSize field to the level's byte extent.
func (h Header) levelExtent(stored uint32) uint64 {
	if !h.nonArrayCubemap() {
		return uint64(stored)
	}

	faces := uint64(h.Faces())
	return faces*uint64(stored) + (faces-1)*padding4(uint64(stored))
}

// Validate checks the structural rules of the header.
func (h Header) Validate() error {
	if h.NumberOfFaces != 0 && h.NumberOfFaces != 1 && h.NumberOfFaces != NumCubeMapFaces {
		return fmt.Errorf("%w: %w: %d", ErrMalformedHeader, ErrInvalidFaceCount, h.NumberOfFaces)
	}
	if h.PixelWidth == 0 {
		return fmt.Errorf("%w: %w: zero width", ErrMalformedHeader, ErrInvalidDimensions)
	}
	if h.PixelDepth > 0 && h.PixelHeight == 0 {
		return fmt.Errorf("%w: %w: depth %d without height", ErrMalformedHeader, ErrInvalidDimensions, h.PixelDepth)
	}
	if h.IsCubemap() && (h.PixelWidth != h.PixelHeight || h.PixelDepth > 0) {
		return fmt.Errorf("%w: %w: cubemap faces must be square and 2D, got %dx%dx%d",
			ErrMalformedHeader, ErrInvalidDimensions, h.PixelWidth, h.PixelHeight, h.PixelDepth)
	}
	if h.Levels() > h.MaxLevel() {
		return fmt.Errorf("%w: %w: %d levels for max dimension %d (limit %d)",
			ErrMalformedHeader, ErrTooManyLevels, h.Levels(), h.MaxDimension(), h.MaxLevel())
	}
	for level := range h.Levels() {
		if _, err := h.layout(level); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedHeader, err)
		}
	}

	return nil
}

// encodeHeader writes the identifier, sentinel and fields into dst[:HeaderSize].
func encodeHeader(dst []byte, h Header) {
	copy(dst[:IdentifierLength], Identifier[:])

	fields := [13]uint32{
		EndianTest,
		uint32(h.GLType),
		h.GLTypeSize,
		uint32(h.GLFormat),
		uint32(h.GLInternalFormat),
		uint32(h.GLBaseInternalFormat),
		h.PixelWidth,
		h.PixelHeight,
		h.PixelDepth,
		h.NumberOfArrayElements,
		h.NumberOfFaces,
		h.NumberOfMipmapLevels,
		h.BytesOfKeyValueData,
	}

	off := IdentifierLength
	for _, v := range fields {
		binary.LittleEndian.PutUint32(dst[off:], v)
		off += 4
	}
}

// decodeHeader checks the identifier and sentinel, then decodes the fields.
// The result is a copy; it does not alias data.
func decodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedData, HeaderSize, len(data))
	}
	if !bytes.Equal(data[:IdentifierLength], Identifier[:]) {
		return Header{}, fmt.Errorf("%w: %w: % x", ErrMalformedHeader, ErrBadIdentifier, data[:IdentifierLength])
	}

	switch endian := binary.LittleEndian.Uint32(data[IdentifierLength:]); endian {
	case EndianTest:
	case ReverseEndianTest:
		return Header{}, fmt.Errorf("%w: %w", ErrMalformedHeader, ErrReverseEndian)
	default:
		return Header{}, fmt.Errorf("%w: %w: %#08x", ErrMalformedHeader, ErrBadEndianness, endian)
	}

	var fields [12]uint32
	off := IdentifierLength + 4
	for i := range fields {
		fields[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}

	return Header{
		GLType:                GLType(fields[0]),
		GLTypeSize:            fields[1],
		GLFormat:              GLFormat(fields[2]),
		GLInternalFormat:      GLInternalFormat(fields[3]),
		GLBaseInternalFormat:  GLBaseInternalFormat(fields[4]),
		PixelWidth:            fields[5],
		PixelHeight:           fields[6],
		PixelDepth:            fields[7],
		NumberOfArrayElements: fields[8],
		NumberOfFaces:         fields[9],
		NumberOfMipmapLevels:  fields[10],
		BytesOfKeyValueData:   fields[11],
	}, nil
}
