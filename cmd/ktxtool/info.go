package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/ktx"
)

var infoFormat string

// infoReport is the machine-readable description of one container.
type infoReport struct {
	Path      string        `json:"path" yaml:"path"`
	Bytes     int           `json:"bytes" yaml:"bytes"`
	Header    ktx.Header    `json:"header" yaml:"header"`
	KeyValues []kvReport    `json:"key_values" yaml:"key_values"`
	Levels    []levelReport `json:"levels" yaml:"levels"`
}

type kvReport struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	// Binary marks Value as hex-encoded.
	Binary bool `json:"binary,omitempty" yaml:"binary,omitempty"`
}

type levelReport struct {
	Level     uint32 `json:"level" yaml:"level"`
	Width     uint32 `json:"width" yaml:"width"`
	Height    uint32 `json:"height" yaml:"height"`
	Depth     uint32 `json:"depth" yaml:"depth"`
	ImageSize uint32 `json:"image_size" yaml:"image_size"`
	Offset    int    `json:"offset" yaml:"offset"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
}

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the header, metadata and level layout of KTX files",
		ArgsUsage: "FILE...",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "output-format",
				Aliases:     []string{"f"},
				Usage:       "output format (text, json, yaml)",
				Value:       "text",
				Destination: &infoFormat,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			if _, err := setup(c); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if c.NArg() == 0 {
				return cli.Exit("error: at least one KTX file is required", 1)
			}

			for _, path := range c.Args().Slice() {
				k, err := ktx.ReadFileWithOptions(path, &ktx.ReadOptions{DisableGeometryCheck: true})
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				if err := writeInfo(os.Stdout, buildReport(path, k), infoFormat); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
			}

			return nil
		},
	}
}

func buildReport(path string, k *ktx.KTX) infoReport {
	h := k.Header()
	r := infoReport{
		Path:      path,
		Bytes:     k.Size(),
		Header:    h,
		KeyValues: make([]kvReport, 0, len(k.KeyValues())),
		Levels:    make([]levelReport, 0, len(k.Mips())),
	}

	for _, kv := range k.KeyValues() {
		r.KeyValues = append(r.KeyValues, describeKeyValue(kv))
	}
	for i, m := range k.Mips() {
		level := uint32(i)
		r.Levels = append(r.Levels, levelReport{
			Level:     level,
			Width:     h.LevelWidth(level),
			Height:    h.LevelHeight(level),
			Depth:     h.LevelDepth(level),
			ImageSize: m.ImageSize,
			Offset:    m.Offset,
			Bytes:     m.Len(),
		})
	}

	return r
}

// describeKeyValue renders text values as strings and anything else as hex.
func describeKeyValue(kv ktx.KeyValue) kvReport {
	text := kv.String()
	if utf8.ValidString(text) && !strings.ContainsRune(text, 0) {
		return kvReport{Key: kv.Key, Value: text}
	}

	return kvReport{Key: kv.Key, Value: hex.EncodeToString(kv.Value), Binary: true}
}

func writeInfo(w io.Writer, r infoReport, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "", "text":
		return writeInfoText(w, r)
	default:
		return fmt.Errorf("unknown output format %q (expected text, json or yaml)", format)
	}
}

func writeInfoText(w io.Writer, r infoReport) error {
	h := r.Header
	var b strings.Builder

	fmt.Fprintf(&b, "KTX: %s (%s)\n", r.Path, formatBytes(uint64(r.Bytes)))
	fmt.Fprintf(&b, "  glType:               %#x\n", uint32(h.GLType))
	fmt.Fprintf(&b, "  glTypeSize:           %d\n", h.GLTypeSize)
	fmt.Fprintf(&b, "  glFormat:             %#x\n", uint32(h.GLFormat))
	fmt.Fprintf(&b, "  glInternalFormat:     %#x\n", uint32(h.GLInternalFormat))
	fmt.Fprintf(&b, "  glBaseInternalFormat: %#x\n", uint32(h.GLBaseInternalFormat))
	fmt.Fprintf(&b, "  size:                 %dx%dx%d\n", h.PixelWidth, h.PixelHeight, h.PixelDepth)
	fmt.Fprintf(&b, "  arrayElements:        %d\n", h.NumberOfArrayElements)
	fmt.Fprintf(&b, "  faces:                %d\n", h.NumberOfFaces)
	fmt.Fprintf(&b, "  mipmapLevels:         %d\n", h.NumberOfMipmapLevels)
	fmt.Fprintf(&b, "  keyValueBytes:        %d\n", h.BytesOfKeyValueData)

	if len(r.KeyValues) > 0 {
		b.WriteString("Key-values:\n")
		for _, kv := range r.KeyValues {
			suffix := ""
			if kv.Binary {
				suffix = " (hex)"
			}
			fmt.Fprintf(&b, "  %s = %s%s\n", kv.Key, kv.Value, suffix)
		}
	}

	b.WriteString("Levels:\n")
	for _, l := range r.Levels {
		fmt.Fprintf(&b, "  %2d  %5dx%-5d depth %-3d imageSize %-9d offset %-9d %s\n",
			l.Level, l.Width, l.Height, l.Depth, l.ImageSize, l.Offset, formatBytes(uint64(l.Bytes)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
