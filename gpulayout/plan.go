// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx

// Package gpulayout describes how a parsed KTX container maps onto a GPU
// texture: format, dimension, extent and one data view per mip level and
// array layer, ready for a queue texture write.
package gpulayout

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/woozymasta/ktx"
)

var (
	// ErrUnsupportedFormat indicates a GL format without a GPU texture format.
	ErrUnsupportedFormat = errors.New("no GPU texture format")
	// ErrUnsupportedLayout indicates a texture shape GPU textures cannot express.
	ErrUnsupportedLayout = errors.New("unsupported texture layout")
)

// DefaultUsage is the usage of textures uploaded from a container.
const DefaultUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// Layer is one array layer of one mip level. For cubemaps each face is a
// layer: layer index = element*6 + face.
type Layer struct {
	// Origin is the destination of the write inside the texture.
	Origin gputypes.Origin3D
	// Data holds the layer bytes in container row layout.
	Data []byte
}

// Level describes one mip level.
type Level struct {
	Level uint32
	// Size is the extent of one layer of this level.
	Size gputypes.Extent3D
	// BytesPerRow is the stride between rows, or between block rows for
	// compressed formats.
	BytesPerRow uint32
	// RowsPerImage is the number of rows (or block rows) in one depth slice.
	RowsPerImage uint32
	Layers       []Layer
}

// Plan is the full upload description of a container.
type Plan struct {
	Format        gputypes.TextureFormat
	Dimension     gputypes.TextureDimension
	ViewDimension gputypes.TextureViewDimension
	// Size is the base level extent. DepthOrArrayLayers is the depth of 3D
	// textures and the layer count otherwise.
	Size          gputypes.Extent3D
	MipLevelCount uint32
	Usage         gputypes.TextureUsage
	Levels        []Level
}

// TextureFormat maps the container format to a GPU texture format.
func TextureFormat(h ktx.Header) (gputypes.TextureFormat, error) {
	switch h.GLInternalFormat {
	case ktx.InternalFormatRGBA8:
		if h.GLFormat == ktx.GLFormatBGRA {
			return gputypes.TextureFormatBGRA8Unorm, nil
		}
		return gputypes.TextureFormatRGBA8Unorm, nil
	case ktx.InternalFormatSRGB8Alpha8:
		if h.GLFormat == ktx.GLFormatBGRA {
			return gputypes.TextureFormatBGRA8UnormSrgb, nil
		}
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	case ktx.InternalFormatR8:
		return gputypes.TextureFormatR8Unorm, nil
	case ktx.InternalFormatR32F:
		return gputypes.TextureFormatR32Float, nil
	case ktx.InternalFormatRG32F:
		return gputypes.TextureFormatRG32Float, nil
	case ktx.InternalFormatRGBA32F:
		return gputypes.TextureFormatRGBA32Float, nil
	case ktx.InternalFormatDepth24Stencil8:
		return gputypes.TextureFormatDepth24PlusStencil8, nil
	default:
		return gputypes.TextureFormatUndefined, fmt.Errorf("%w: internal format %#x, format %#x",
			ErrUnsupportedFormat, uint32(h.GLInternalFormat), uint32(h.GLFormat))
	}
}

// Dimensions returns the texture and default view dimensions of a header.
func Dimensions(h ktx.Header) (gputypes.TextureDimension, gputypes.TextureViewDimension, error) {
	switch {
	case h.PixelDepth > 0:
		if h.IsArray() {
			return 0, 0, fmt.Errorf("%w: 3D array texture", ErrUnsupportedLayout)
		}
		return gputypes.TextureDimension3D, gputypes.TextureViewDimension3D, nil
	case h.PixelHeight == 0:
		if h.IsArray() {
			return 0, 0, fmt.Errorf("%w: 1D array texture", ErrUnsupportedLayout)
		}
		return gputypes.TextureDimension1D, gputypes.TextureViewDimension1D, nil
	case h.IsCubemap() && h.IsArray():
		return gputypes.TextureDimension2D, gputypes.TextureViewDimensionCubeArray, nil
	case h.IsCubemap():
		return gputypes.TextureDimension2D, gputypes.TextureViewDimensionCube, nil
	case h.IsArray():
		return gputypes.TextureDimension2D, gputypes.TextureViewDimension2DArray, nil
	default:
		return gputypes.TextureDimension2D, gputypes.TextureViewDimension2D, nil
	}
}

// Build derives the upload plan of a parsed container.
func Build(k *ktx.KTX) (*Plan, error) {
	h := k.Header()

	format, err := TextureFormat(h)
	if err != nil {
		return nil, err
	}
	dim, view, err := Dimensions(h)
	if err != nil {
		return nil, err
	}

	if uint64(h.ArrayElements())*uint64(h.Faces()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d array elements of %d faces", ErrUnsupportedLayout, h.ArrayElements(), h.Faces())
	}
	layers := h.ArrayElements() * h.Faces()
	depthOrLayers := layers
	if dim == gputypes.TextureDimension3D {
		depthOrLayers = h.Depth()
	}

	p := &Plan{
		Format:        format,
		Dimension:     dim,
		ViewDimension: view,
		Size: gputypes.Extent3D{
			Width:              h.PixelWidth,
			Height:             h.Height(),
			DepthOrArrayLayers: depthOrLayers,
		},
		MipLevelCount: h.Levels(),
		Usage:         DefaultUsage,
		Levels:        make([]Level, 0, h.Levels()),
	}

	for level := range h.Levels() {
		if h.RowSize(level) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: level %d row of %d bytes", ErrUnsupportedLayout, level, h.RowSize(level))
		}
		lv := Level{
			Level: level,
			Size: gputypes.Extent3D{
				Width:              h.LevelWidth(level),
				Height:             h.LevelHeight(level),
				DepthOrArrayLayers: h.LevelDepth(level),
			},
			BytesPerRow:  uint32(h.RowSize(level)),
			RowsPerImage: uint32(h.RowCount(level)),
			Layers:       make([]Layer, 0, layers),
		}

		for element := range h.ArrayElements() {
			for face := range h.Faces() {
				data, err := k.Image(level, element, face)
				if err != nil {
					return nil, fmt.Errorf("level %d layer %d face %d: %w", level, element, face, err)
				}
				lv.Layers = append(lv.Layers, Layer{
					Origin: gputypes.Origin3D{Z: element*h.Faces() + face},
					Data:   data,
				})
			}
		}

		p.Levels = append(p.Levels, lv)
	}

	ktx.Logger().Debug("gpulayout: built upload plan",
		"format", p.Format,
		"levels", len(p.Levels),
		"layers", layers,
	)

	return p, nil
}

// LayerCount returns the number of array layers in each level.
func (p *Plan) LayerCount() uint32 {
	if len(p.Levels) == 0 {
		return 0
	}

	return uint32(len(p.Levels[0].Layers))
}
