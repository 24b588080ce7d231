package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/woozymasta/bcn"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/woozymasta/ktx"
	"github.com/woozymasta/ktx/ktximage"
)

// packSettings holds pack flag values after config defaults are applied.
type packSettings struct {
	output      string
	format      string
	maxMipMaps  int
	fast        bool
	lz4         bool
	high        bool
	cube        bool
	orientation string
	writer      string
	keyValues   []string
}

var pack packSettings

// formats maps pack format names to bcn formats.
var formats = map[string]bcn.Format{
	"rgba8": bcn.FormatRGBA8,
	"bgra8": bcn.FormatBGRA8,
	"dxt1":  bcn.FormatDXT1,
	"bc1":   bcn.FormatDXT1,
	"dxt3":  bcn.FormatDXT3,
	"bc2":   bcn.FormatDXT3,
	"dxt5":  bcn.FormatDXT5,
	"bc3":   bcn.FormatDXT5,
	"bc4":   bcn.FormatBC4,
	"bc5":   bcn.FormatBC5,
}

func packCmd() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     "Encode images into a KTX texture",
		ArgsUsage: "IMAGE... (six images with --cube: +X -X +Y -Y +Z -Z)",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output KTX path",
				Required:    true,
				Destination: &pack.output,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "pixel format (rgba8, bgra8, dxt1, dxt3, dxt5, bc4, bc5)",
				Value:       "bgra8",
				Destination: &pack.format,
			},
			&cli.IntFlag{
				Name:        "mips",
				Usage:       "maximum mip levels (0 = full chain)",
				Destination: &pack.maxMipMaps,
			},
			&cli.BoolFlag{Name: "fast", Usage: "use the fastest BCn encoder quality", Destination: &pack.fast},
			&cli.BoolFlag{Name: "lz4", Usage: "wrap the output in an LZ4 frame", Destination: &pack.lz4},
			&cli.BoolFlag{Name: "high", Usage: "use the densest LZ4 level (with --lz4)", Destination: &pack.high},
			&cli.BoolFlag{Name: "cube", Usage: "build a cubemap from six face images", Destination: &pack.cube},
			&cli.StringFlag{
				Name:        "orientation",
				Usage:       "KTXorientation value, e.g. S=r,T=d",
				Destination: &pack.orientation,
			},
			&cli.StringFlag{
				Name:        "writer",
				Usage:       "KTXwriter value",
				Destination: &pack.writer,
			},
			&cli.StringSliceFlag{
				Name:        "kv",
				Usage:       "extra key=value metadata (repeatable)",
				Destination: &pack.keyValues,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			cfg, err := setup(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			applyPackConfig(c, cfg, &pack)

			if err := runPack(pack, c.Args().Slice()); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return nil
		},
	}
}

func runPack(p packSettings, inputs []string) error {
	opts, err := p.encodeOptions()
	if err != nil {
		return err
	}

	var k *ktx.KTX
	switch {
	case p.cube:
		if len(inputs) != ktx.NumCubeMapFaces {
			return fmt.Errorf("--cube needs %d images, got %d", ktx.NumCubeMapFaces, len(inputs))
		}
		faces := make([]image.Image, len(inputs))
		for i, in := range inputs {
			if faces[i], err = loadImage(in); err != nil {
				return err
			}
		}
		k, err = ktximage.EncodeCubemap(faces, opts)
	case len(inputs) == 1:
		var img image.Image
		if img, err = loadImage(inputs[0]); err != nil {
			return err
		}
		k, err = ktximage.Encode(img, opts)
	default:
		return fmt.Errorf("expected one input image, got %d", len(inputs))
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := ktx.WriteFile(p.output, k, &ktx.WriteOptions{Compress: p.lz4, HighCompression: p.high}); err != nil {
		return err
	}

	ktx.Logger().Info("packed texture",
		"output", p.output,
		"header", k.Header().String(),
		"bytes", k.Size(),
		"lz4", p.lz4,
	)
	return nil
}

// encodeOptions translates pack settings to encoder options.
func (p packSettings) encodeOptions() (*ktximage.EncodeOptions, error) {
	format, ok := formats[strings.ToLower(p.format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", p.format)
	}
	if p.maxMipMaps < 0 {
		return nil, fmt.Errorf("--mips must not be negative, got %d", p.maxMipMaps)
	}

	opts := &ktximage.EncodeOptions{
		Format:     format,
		MaxMipMaps: p.maxMipMaps,
	}
	if p.fast {
		opts.EncodeOptions = &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast}
	}

	if p.orientation != "" {
		opts.KeyValues = append(opts.KeyValues, ktx.NewStringKeyValue(ktx.KeyOrientation, p.orientation))
	}
	if p.writer != "" {
		opts.KeyValues = append(opts.KeyValues, ktx.NewStringKeyValue(ktx.KeyWriter, p.writer))
	}
	for _, raw := range p.keyValues {
		kv, err := parseKeyValue(raw)
		if err != nil {
			return nil, err
		}
		opts.KeyValues = append(opts.KeyValues, kv)
	}

	return opts, nil
}

// parseKeyValue parses a key=value flag into a NUL-terminated string entry.
func parseKeyValue(raw string) (ktx.KeyValue, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return ktx.KeyValue{}, fmt.Errorf("invalid key-value %q (expected key=value)", raw)
	}

	return ktx.NewStringKeyValue(key, value), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, name, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	ktx.Logger().Debug("loaded image", "path", path, "format", name, "bounds", img.Bounds().String())
	return img, nil
}
