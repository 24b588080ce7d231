package ktx

// BlockInfo describes the storage unit of a compressed internal format.
// Generic formats have a zero Bytes value: their layout is driver-defined
// and image sizes cannot be derived from the header.
type BlockInfo struct {
	Width  uint32
	Height uint32
	Bytes  uint32
}

// compressedBlocks maps every known compressed internal format to its block.
var compressedBlocks = map[GLInternalFormat]BlockInfo{
	InternalFormatCompressedRed:       {Width: 4, Height: 4},
	InternalFormatCompressedRG:        {Width: 4, Height: 4},
	InternalFormatCompressedRGB:       {Width: 4, Height: 4},
	InternalFormatCompressedRGBA:      {Width: 4, Height: 4},
	InternalFormatCompressedSRGB:      {Width: 4, Height: 4},
	InternalFormatCompressedSRGBAlpha: {Width: 4, Height: 4},

	InternalFormatCompressedRGBS3TCDXT1:  {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRGBAS3TCDXT1: {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRGBAS3TCDXT3: {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedRGBAS3TCDXT5: {Width: 4, Height: 4, Bytes: 16},

	InternalFormatCompressedRedRGTC1:       {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedSignedRedRGTC1: {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRGRGTC2:        {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedSignedRGRGTC2:  {Width: 4, Height: 4, Bytes: 16},

	InternalFormatCompressedRGBABPTCUnorm:        {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedSRGBAlphaBPTCUnorm:   {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedRGBBPTCSignedFloat:   {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedRGBBPTCUnsignedFloat: {Width: 4, Height: 4, Bytes: 16},

	InternalFormatCompressedRGB8ETC2:                    {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedSRGB8ETC2:                   {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRGB8PunchthroughAlpha1ETC2:  {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedSRGB8PunchthroughAlpha1ETC2: {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRGBA8ETC2EAC:                {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedSRGB8Alpha8ETC2EAC:          {Width: 4, Height: 4, Bytes: 16},

	InternalFormatCompressedR11EAC:        {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedSignedR11EAC:  {Width: 4, Height: 4, Bytes: 8},
	InternalFormatCompressedRG11EAC:       {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedSignedRG11EAC: {Width: 4, Height: 4, Bytes: 16},

	InternalFormatCompressedRGBAASTC4x4:   {Width: 4, Height: 4, Bytes: 16},
	InternalFormatCompressedRGBAASTC5x4:   {Width: 5, Height: 4, Bytes: 16},
	InternalFormatCompressedRGBAASTC5x5:   {Width: 5, Height: 5, Bytes: 16},
	InternalFormatCompressedRGBAASTC6x5:   {Width: 6, Height: 5, Bytes: 16},
	InternalFormatCompressedRGBAASTC6x6:   {Width: 6, Height: 6, Bytes: 16},
	InternalFormatCompressedRGBAASTC8x5:   {Width: 8, Height: 5, Bytes: 16},
	InternalFormatCompressedRGBAASTC8x6:   {Width: 8, Height: 6, Bytes: 16},
	InternalFormatCompressedRGBAASTC8x8:   {Width: 8, Height: 8, Bytes: 16},
	InternalFormatCompressedRGBAASTC10x5:  {Width: 10, Height: 5, Bytes: 16},
	InternalFormatCompressedRGBAASTC10x6:  {Width: 10, Height: 6, Bytes: 16},
	InternalFormatCompressedRGBAASTC10x8:  {Width: 10, Height: 8, Bytes: 16},
	InternalFormatCompressedRGBAASTC10x10: {Width: 10, Height: 10, Bytes: 16},
	InternalFormatCompressedRGBAASTC12x10: {Width: 12, Height: 10, Bytes: 16},
	InternalFormatCompressedRGBAASTC12x12: {Width: 12, Height: 12, Bytes: 16},
}

// CompressedBlock returns the block layout of a compressed internal format.
func CompressedBlock(f GLInternalFormat) (BlockInfo, bool) {
	b, ok := compressedBlocks[f]
	return b, ok
}

// packedTypeSizes holds the whole-pixel size of packed GL types, where
// glTypeSize describes the packed word rather than one component.
var packedTypeSizes = map[GLType]uint32{
	GLTypeUnsignedByte332:          1,
	GLTypeUnsignedByte233Rev:       1,
	GLTypeUnsignedShort565:         2,
	GLTypeUnsignedShort565Rev:      2,
	GLTypeUnsignedShort4444:        2,
	GLTypeUnsignedShort4444Rev:     2,
	GLTypeUnsignedShort5551:        2,
	GLTypeUnsignedShort1555Rev:     2,
	GLTypeUnsignedInt8888:          4,
	GLTypeUnsignedInt8888Rev:       4,
	GLTypeUnsignedInt1010102:       4,
	GLTypeUnsignedInt2101010Rev:    4,
	GLTypeUnsignedInt248:           4,
	GLTypeUnsignedInt10F11F11FRev:  4,
	GLTypeUnsignedInt5999Rev:       4,
	GLTypeFloat32UnsignedInt248Rev: 8,
}

// typeSizes is the natural component size of scalar GL types. It is used when
// a header leaves glTypeSize at zero.
var typeSizes = map[GLType]uint32{
	GLTypeByte:          1,
	GLTypeUnsignedByte:  1,
	GLTypeShort:         2,
	GLTypeUnsignedShort: 2,
	GLTypeHalfFloat:     2,
	GLTypeInt:           4,
	GLTypeUnsignedInt:   4,
	GLTypeFloat:         4,
}

// componentCount returns the number of components a GL format carries.
func componentCount(f GLFormat) uint32 {
	switch f {
	case GLFormatRed, GLFormatGreen, GLFormatBlue, GLFormatAlpha, GLFormatLuminance,
		GLFormatRedInteger, GLFormatGreenInteger, GLFormatBlueInteger,
		GLFormatStencilIndex, GLFormatDepthComponent:
		return 1
	case GLFormatRG, GLFormatRGInteger, GLFormatLuminanceAlpha, GLFormatDepthStencil:
		return 2
	case GLFormatRGB, GLFormatBGR, GLFormatRGBInteger, GLFormatBGRInteger:
		return 3
	case GLFormatRGBA, GLFormatBGRA, GLFormatRGBAInteger, GLFormatBGRAInteger:
		return 4
	default:
		return 0
	}
}

// uncompressedPixelSize returns bytes per pixel, or 0 for unknown formats.
func uncompressedPixelSize(t GLType, typeSize uint32, f GLFormat) uint64 {
	if size, ok := packedTypeSizes[t]; ok {
		return uint64(size)
	}

	if typeSize == 0 {
		typeSize = typeSizes[t]
	}

	return uint64(componentCount(f)) * uint64(typeSize)
}
