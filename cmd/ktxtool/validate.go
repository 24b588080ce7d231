package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/ktx"
)

var lenient bool

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check that KTX files are well formed",
		ArgsUsage: "FILE...",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:        "lenient",
				Usage:       "accept level sizes that disagree with the header geometry",
				Destination: &lenient,
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

			failed := 0
			for _, path := range c.Args().Slice() {
				if err := validateFile(path, lenient); err != nil {
					fmt.Printf("FAIL %s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Printf("ok   %s\n", path)
			}

			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d files failed validation", failed, c.NArg()), 1)
			}
			return nil
		},
	}
}

// validateFile parses path and, unless lenient, checks every level against
// the header geometry.
func validateFile(path string, lenient bool) error {
	_, err := ktx.ReadFileWithOptions(path, &ktx.ReadOptions{DisableGeometryCheck: lenient})
	return err
}
