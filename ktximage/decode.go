package ktximage

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/ktx"
)

// Decode returns the image of a level of a 2D container.
func Decode(k *ktx.KTX, level uint32) (image.Image, error) {
	return DecodeImage(k, level, 0, 0, nil)
}

// DecodeImage returns the image of one face of one array element at a
// level. Nil decOpts uses bcn defaults.
func DecodeImage(k *ktx.KTX, level, layer, face uint32, decOpts *bcn.DecodeOptions) (image.Image, error) {
	h := k.Header()
	if h.PixelDepth > 0 {
		return nil, fmt.Errorf("%w: 3D texture", ErrUnsupportedTexture)
	}

	format, err := FormatOf(h)
	if err != nil {
		return nil, err
	}

	data, err := k.Image(level, layer, face)
	if err != nil {
		return nil, err
	}

	width := int(h.LevelWidth(level))
	height := int(h.LevelHeight(level))
	img, err := bcn.DecodeImageWithOptions(data, width, height, format, decOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: level %d: %v", ErrDecodeImage, level, err)
	}

	return img, nil
}

// DecodeFile reads a KTX file, plain or LZ4-framed, and decodes its base level.
func DecodeFile(path string) (image.Image, error) {
	k, err := ktx.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(k, 0)
}
