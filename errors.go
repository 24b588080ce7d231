package ktx

import "errors"

// Failure classes. Parse failures wrap ErrMalformedHeader or ErrTruncatedData,
// or ErrInvalidGeometry when a declared level size disagrees with the header.
// Serialize failures caused by image data wrap ErrInvalidGeometry.
var (
	// ErrMalformedHeader indicates the header or key-value block violates the format.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncatedData indicates declared sizes run past the end of the buffer.
	ErrTruncatedData = errors.New("truncated data")
	// ErrInvalidGeometry indicates image data disagrees with header geometry.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

var (
	// ErrBadIdentifier indicates the 12-byte file identifier does not match.
	ErrBadIdentifier = errors.New("bad identifier")
	// ErrBadEndianness indicates an unknown endianness sentinel.
	ErrBadEndianness = errors.New("bad endianness sentinel")
	// ErrReverseEndian indicates a byte-swapped file, which is not supported.
	ErrReverseEndian = errors.New("reverse endian files are not supported")
	// ErrInvalidFaceCount indicates numberOfFaces is neither 1 nor 6.
	ErrInvalidFaceCount = errors.New("invalid number of faces")
	// ErrInvalidDimensions indicates pixel dimensions are inconsistent.
	ErrInvalidDimensions = errors.New("invalid pixel dimensions")
	// ErrTooManyLevels indicates more mip levels than the dimensions allow.
	ErrTooManyLevels = errors.New("too many mipmap levels")
	// ErrMalformedKeyValue indicates a key-value entry without a NUL-terminated key.
	ErrMalformedKeyValue = errors.New("malformed key-value entry")
	// ErrInvalidKeyValue indicates a key-value pair that cannot be serialized.
	ErrInvalidKeyValue = errors.New("invalid key-value pair")
	// ErrUnsupportedFormat indicates a GL format whose image sizes cannot be derived.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrLevelOutOfRange indicates a level, layer or face index outside the texture.
	ErrLevelOutOfRange = errors.New("index out of range")
	// ErrBufferTooSmall indicates the destination buffer cannot hold the container.
	ErrBufferTooSmall = errors.New("destination buffer too small")
	// ErrOpenFile indicates KTX file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrReadData indicates reading container bytes failed.
	ErrReadData = errors.New("reading data failed")
	// ErrWriteData indicates writing container bytes failed.
	ErrWriteData = errors.New("writing data failed")
	// ErrLZ4Frame indicates LZ4 frame encode or decode failed.
	ErrLZ4Frame = errors.New("LZ4 frame failed")
)
