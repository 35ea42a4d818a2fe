package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fathomcg/fathom/pkg/inspect"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "fathom",
		Usage: "The Fathom code generator",
		Commands: []*cli.Command{
			{
				Name:  "types",
				Usage: "Inspect the IR value type encoding",
				Commands: []*cli.Command{
					{
						Name:  "dump",
						Usage: "Print the table of predefined value types",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "vectors",
								Usage: "include example SIMD vector rows",
							},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							logger := slog.Default()

							config := inspect.Config{
								Vectors: c.Bool("vectors"),
							}

							inspector, err := inspect.New(logger, config)
							if err != nil {
								return fmt.Errorf("failed to initialize inspector: %w", err)
							}

							return inspector.DumpTable(os.Stdout)
						},
					},
					{
						Name:      "describe",
						Usage:     "Decode a single encoded type byte",
						ArgsUsage: "<byte>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().Len() != 1 {
								return fmt.Errorf("must provide exactly one type byte as argument")
							}

							arg := c.Args().First()
							raw, err := strconv.ParseUint(arg, 0, 8)
							if err != nil {
								return fmt.Errorf("invalid type byte %q: %w", arg, err)
							}

							logger := slog.Default()

							inspector, err := inspect.New(logger, inspect.Config{})
							if err != nil {
								return fmt.Errorf("failed to initialize inspector: %w", err)
							}

							return inspector.Describe(os.Stdout, uint8(raw))
						},
					},
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}
