// Package inspect renders diagnostic views of the Fathom IR type encoding:
// the table of predefined value types and the decoding of single encoded
// bytes. It is tooling around the encoding; the encoding itself lives in
// pkg/ir/types.
package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/fathomcg/fathom/pkg/ir/types"
)

type Config struct {
	// Vectors adds example SIMD vector rows to the type table.
	Vectors bool
}

func (c *Config) Validate(logger *slog.Logger) error {
	return nil
}

type Inspector struct {
	logger *slog.Logger
	Config Config
}

func New(logger *slog.Logger, config Config) (*Inspector, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate inspector config: %w", err)
	}

	return &Inspector{
		logger: logger,
		Config: config,
	}, nil
}

// DumpTable writes the predefined scalar types, one per row, with their
// encoded byte and derived widths. With Config.Vectors it appends a few
// representative vector rows.
func (i *Inspector) DumpTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BYTE\tTYPE\tLANE BITS\tLANES\tBITS")
	for _, typ := range types.Scalars() {
		writeRow(tw, typ)
	}

	if i.Config.Vectors {
		for _, typ := range []types.Type{
			types.I8.By(16),
			types.I32.By(4),
			types.F32.By(4),
			types.F64.By(2),
			types.B1.By(8),
		} {
			writeRow(tw, typ)
		}
	}

	err := tw.Flush()
	if err != nil {
		return fmt.Errorf("failed to write type table: %w", err)
	}

	i.logger.Debug("dumped type table", "vectors", i.Config.Vectors)

	return nil
}

// Describe decodes one encoded type byte and writes its derived properties.
// An undecodable byte is a user-input error here, not a caller bug.
func (i *Inspector) Describe(w io.Writer, raw uint8) error {
	typ, ok := types.FromRaw(raw)
	if !ok {
		return fmt.Errorf("invalid type byte 0x%02x", raw)
	}

	i.logger.Debug("describing type", "byte", raw, "type", typ.String())

	fmt.Fprintf(w, "type:       %s\n", typ)
	fmt.Fprintf(w, "byte:       0x%02x\n", typ.Raw())
	fmt.Fprintf(w, "lane type:  %s\n", typ.LaneType())
	fmt.Fprintf(w, "lane bits:  %d\n", typ.LaneBits())
	fmt.Fprintf(w, "lanes:      %d\n", typ.LaneCount())
	fmt.Fprintf(w, "total bits: %d\n", typ.Bits())
	fmt.Fprintf(w, "scalar:     %t\n", typ.IsScalar())

	return nil
}

func writeRow(w io.Writer, typ types.Type) {
	fmt.Fprintf(w, "0x%02x\t%s\t%d\t%d\t%d\n",
		typ.Raw(), typ, typ.LaneBits(), typ.LaneCount(), typ.Bits())
}
