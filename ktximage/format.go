// Package ktximage converts between image.Image values and KTX containers
// using the BCn codecs of github.com/woozymasta/bcn.
package ktximage

import (
	"errors"
	"fmt"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/ktx"
)

var (
	// ErrUnsupportedFormat indicates a format bcn cannot encode or decode.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrUnsupportedTexture indicates a texture shape that has no image form.
	ErrUnsupportedTexture = errors.New("unsupported texture shape")
	// ErrInvalidFaces indicates cubemap faces of the wrong count or size.
	ErrInvalidFaces = errors.New("invalid cubemap faces")
	// ErrEncodeMipmap indicates bcn failed to encode a mip level.
	ErrEncodeMipmap = errors.New("encode mipmap failed")
	// ErrDecodeImage indicates bcn failed to decode pixel data.
	ErrDecodeImage = errors.New("decode image failed")
)

// glFormat is the GL header triple of one bcn format.
type glFormat struct {
	typ      ktx.GLType
	format   ktx.GLFormat
	internal ktx.GLInternalFormat
	base     ktx.GLBaseInternalFormat
}

var glFormats = map[bcn.Format]glFormat{
	bcn.FormatRGBA8: {
		ktx.GLTypeUnsignedByte, ktx.GLFormatRGBA,
		ktx.InternalFormatRGBA8, ktx.BaseInternalFormatRGBA,
	},
	bcn.FormatBGRA8: {
		ktx.GLTypeUnsignedByte, ktx.GLFormatBGRA,
		ktx.InternalFormatRGBA8, ktx.BaseInternalFormatRGBA,
	},
	bcn.FormatDXT1: {
		ktx.GLTypeCompressed, ktx.GLFormatCompressed,
		ktx.InternalFormatCompressedRGBS3TCDXT1, ktx.BaseInternalFormatRGB,
	},
	bcn.FormatDXT3: {
		ktx.GLTypeCompressed, ktx.GLFormatCompressed,
		ktx.InternalFormatCompressedRGBAS3TCDXT3, ktx.BaseInternalFormatRGBA,
	},
	bcn.FormatDXT5: {
		ktx.GLTypeCompressed, ktx.GLFormatCompressed,
		ktx.InternalFormatCompressedRGBAS3TCDXT5, ktx.BaseInternalFormatRGBA,
	},
	bcn.FormatBC4: {
		ktx.GLTypeCompressed, ktx.GLFormatCompressed,
		ktx.InternalFormatCompressedRedRGTC1, ktx.BaseInternalFormatRed,
	},
	bcn.FormatBC5: {
		ktx.GLTypeCompressed, ktx.GLFormatCompressed,
		ktx.InternalFormatCompressedRGRGTC2, ktx.BaseInternalFormatRG,
	},
}

// HeaderFor returns the header of a 2D texture in the given bcn format.
// BytesOfKeyValueData is left for the writer to fill in.
func HeaderFor(format bcn.Format, width, height, levels uint32) (ktx.Header, error) {
	gl, ok := glFormats[format]
	if !ok {
		return ktx.Header{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	return ktx.Header{
		GLType:               gl.typ,
		GLTypeSize:           1,
		GLFormat:             gl.format,
		GLInternalFormat:     gl.internal,
		GLBaseInternalFormat: gl.base,
		PixelWidth:           width,
		PixelHeight:          height,
		NumberOfMipmapLevels: levels,
	}, nil
}

// FormatOf returns the bcn format able to decode the container pixels.
func FormatOf(h ktx.Header) (bcn.Format, error) {
	switch h.GLInternalFormat {
	case ktx.InternalFormatRGBA8:
		if h.GLType == ktx.GLTypeUnsignedByte && h.GLFormat == ktx.GLFormatRGBA {
			return bcn.FormatRGBA8, nil
		}
		if h.GLType == ktx.GLTypeUnsignedByte && h.GLFormat == ktx.GLFormatBGRA {
			return bcn.FormatBGRA8, nil
		}
	case ktx.InternalFormatCompressedRGBS3TCDXT1, ktx.InternalFormatCompressedRGBAS3TCDXT1:
		return bcn.FormatDXT1, nil
	case ktx.InternalFormatCompressedRGBAS3TCDXT3:
		return bcn.FormatDXT3, nil
	case ktx.InternalFormatCompressedRGBAS3TCDXT5:
		return bcn.FormatDXT5, nil
	case ktx.InternalFormatCompressedRedRGTC1:
		return bcn.FormatBC4, nil
	case ktx.InternalFormatCompressedRGRGTC2:
		return bcn.FormatBC5, nil
	}

	return bcn.FormatUnknown, fmt.Errorf("%w: internal format %#x, format %#x, type %#x", ErrUnsupportedFormat,
		uint32(h.GLInternalFormat), uint32(h.GLFormat), uint32(h.GLType))
}
