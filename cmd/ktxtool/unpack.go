package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/ktx"
	"github.com/woozymasta/ktx/ktximage"
)

var (
	unpackDir   string
	unpackLevel int
)

func unpackCmd() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Decode KTX levels to PNG images",
		ArgsUsage: "FILE",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output directory",
				Value:       ".",
				Destination: &unpackDir,
			},
			&cli.IntFlag{
				Name:        "level",
				Usage:       "mip level to decode (-1 = all)",
				Value:       -1,
				Destination: &unpackLevel,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			if _, err := setup(c); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if c.NArg() != 1 {
				return cli.Exit("error: exactly one KTX file is required", 1)
			}

			paths, err := runUnpack(c.Args().First(), unpackDir, unpackLevel)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}
}

// runUnpack writes one PNG per selected level, array element and face and
// returns the written paths.
func runUnpack(input, dir string, level int) ([]string, error) {
	k, err := ktx.ReadFile(input)
	if err != nil {
		return nil, err
	}

	h := k.Header()
	first, last := uint32(0), h.Levels()-1
	if level >= 0 {
		if uint64(level) >= uint64(h.Levels()) {
			return nil, fmt.Errorf("level %d out of range (%d levels)", level, h.Levels())
		}
		first, last = uint32(level), uint32(level)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	var written []string
	for l := first; l <= last; l++ {
		for layer := range h.ArrayElements() {
			for face := range h.Faces() {
				img, err := ktximage.DecodeImage(k, l, layer, face, nil)
				if err != nil {
					return written, err
				}

				path := filepath.Join(dir, imageName(base, h, l, layer, face))
				if err := writePNG(path, img); err != nil {
					return written, err
				}
				written = append(written, path)
			}
		}
	}

	return written, nil
}

// imageName names an output image, adding layer and face only when present.
func imageName(base string, h ktx.Header, level, layer, face uint32) string {
	name := fmt.Sprintf("%s_mip%d", base, level)
	if h.IsArray() {
		name += fmt.Sprintf("_layer%d", layer)
	}
	if h.IsCubemap() {
		name += fmt.Sprintf("_face%d", face)
	}
	return name + ".png"
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
