package ktximage

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/ktx"
)

// Writer is the KTXwriter value added when the caller supplies none.
const Writer = "github.com/woozymasta/ktx/ktximage"

// EncodeOptions configures image encoding.
type EncodeOptions struct {
	// Format is the pixel format. Zero value is bcn.FormatUnknown, which selects BGRA8.
	Format bcn.Format
	// MaxMipMaps limits the mip chain. 0 keeps the full chain down to 1x1.
	MaxMipMaps int
	// EncodeOptions is passed to bcn for every level. Nil uses bcn defaults.
	EncodeOptions *bcn.EncodeOptions
	// KeyValues are stored in the container in order.
	KeyValues ktx.KeyValues
}

// Encode builds a 2D KTX container from img with a generated mip chain.
// Nil opts uses BGRA8 with a full mip chain.
func Encode(img image.Image, opts *EncodeOptions) (*ktx.KTX, error) {
	if opts == nil {
		opts = &EncodeOptions{}
	}

	h, err := baseHeader(img, opts)
	if err != nil {
		return nil, err
	}

	images, err := encodeChain(img, h, opts)
	if err != nil {
		return nil, err
	}
	h.NumberOfMipmapLevels = uint32(len(images))

	return ktx.Create(h, keyValues(opts), images)
}

// EncodeCubemap builds a cubemap container from six square faces of equal
// size, ordered +X, -X, +Y, -Y, +Z, -Z.
func EncodeCubemap(faces []image.Image, opts *EncodeOptions) (*ktx.KTX, error) {
	if opts == nil {
		opts = &EncodeOptions{}
	}
	if len(faces) != ktx.NumCubeMapFaces {
		return nil, fmt.Errorf("%w: got %d faces", ErrInvalidFaces, len(faces))
	}

	size := faces[0].Bounds().Size()
	if size.X != size.Y {
		return nil, fmt.Errorf("%w: faces are %dx%d", ErrInvalidFaces, size.X, size.Y)
	}
	for i, f := range faces[1:] {
		if f.Bounds().Size() != size {
			return nil, fmt.Errorf("%w: face %d is %v, want %v", ErrInvalidFaces, i+1, f.Bounds().Size(), size)
		}
	}

	h, err := baseHeader(faces[0], opts)
	if err != nil {
		return nil, err
	}
	h.NumberOfFaces = ktx.NumCubeMapFaces

	var images [][]byte
	for i, face := range faces {
		chain, err := encodeChain(face, h, opts)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if i == 0 {
			h.NumberOfMipmapLevels = uint32(len(chain))
			images = make([][]byte, len(chain))
		}
		if len(chain) != len(images) {
			return nil, fmt.Errorf("%w: face %d has %d levels, want %d", ErrEncodeMipmap, i, len(chain), len(images))
		}

		for level, data := range chain {
			if i > 0 {
				images[level] = append(images[level], make([]byte, h.CubePadding(uint32(level)))...)
			}
			images[level] = append(images[level], data...)
		}
	}

	return ktx.Create(h, keyValues(opts), images)
}

// baseHeader returns the header for img with the mip count limited by opts.
func baseHeader(img image.Image, opts *EncodeOptions) (ktx.Header, error) {
	format := opts.Format
	if format == bcn.FormatUnknown {
		format = bcn.FormatBGRA8
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ktx.Header{}, fmt.Errorf("%w: empty image %v", ErrUnsupportedTexture, b)
	}
	if uint64(b.Dx()) > uint64(^uint32(0)) || uint64(b.Dy()) > uint64(^uint32(0)) {
		return ktx.Header{}, fmt.Errorf("%w: image %v", ktx.ErrSizeOverflow, b)
	}

	h, err := HeaderFor(format, uint32(b.Dx()), uint32(b.Dy()), 1)
	if err != nil {
		return ktx.Header{}, err
	}

	levels := h.MaxLevel()
	if opts.MaxMipMaps > 0 && uint64(opts.MaxMipMaps) < uint64(levels) {
		levels = uint32(opts.MaxMipMaps)
	}
	h.NumberOfMipmapLevels = levels

	return h, nil
}

// encodeChain encodes the mip chain of img. It returns at most one payload
// per header level; bcn may stop the chain earlier.
func encodeChain(img image.Image, h ktx.Header, opts *EncodeOptions) ([][]byte, error) {
	format, err := FormatOf(h)
	if err != nil {
		return nil, err
	}

	mips := bcn.GenerateMipmaps(img, false)
	if len(mips) == 0 {
		return nil, fmt.Errorf("%w: no mipmaps generated", ErrEncodeMipmap)
	}
	if uint64(len(mips)) > uint64(h.Levels()) {
		mips = mips[:h.Levels()]
	}

	payloads := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format, opts.EncodeOptions)
		if err != nil {
			return nil, fmt.Errorf("%w: mipmap %d: %v", ErrEncodeMipmap, i, err)
		}
		payloads[i] = data
	}

	ktx.Logger().Debug("ktximage: encoded mip chain",
		"format", format,
		"width", h.PixelWidth,
		"height", h.PixelHeight,
		"levels", len(payloads),
	)

	return payloads, nil
}

// keyValues returns the caller metadata with a KTXwriter entry ensured.
func keyValues(opts *EncodeOptions) ktx.KeyValues {
	if _, ok := opts.KeyValues.Get(ktx.KeyWriter); ok {
		return opts.KeyValues
	}

	kvs := make(ktx.KeyValues, 0, len(opts.KeyValues)+1)
	kvs = append(kvs, opts.KeyValues...)
	return append(kvs, ktx.NewStringKeyValue(ktx.KeyWriter, Writer))
}
