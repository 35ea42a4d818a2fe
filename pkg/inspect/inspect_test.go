package inspect_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/fathomcg/fathom/pkg/inspect"
)

func TestDumpTable(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		config inspect.Config
		golden string
	}{
		{name: "scalars", config: inspect.Config{}, golden: "table_scalars.txt"},
		{name: "vectors", config: inspect.Config{Vectors: true}, golden: "table.txt"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			ins, err := inspect.New(slogt.New(t), tc.config)
			r.NoError(err)

			var buf bytes.Buffer
			r.NoError(ins.DumpTable(&buf))

			want, err := os.ReadFile(filepath.Join("testdata", tc.golden))
			r.NoError(err)
			r.Equal(string(want), buf.String())
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ins, err := inspect.New(slogt.New(t), inspect.Config{})
	r.NoError(err)

	var buf bytes.Buffer
	r.NoError(ins.Describe(&buf, 0x86))

	r.Equal(`type:       f64x256
byte:       0x86
lane type:  f64
lane bits:  64
lanes:      256
total bits: 16384
scalar:     false
`, buf.String())
}

func TestDescribeScalar(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ins, err := inspect.New(slogt.New(t), inspect.Config{})
	r.NoError(err)

	var buf bytes.Buffer
	r.NoError(ins.Describe(&buf, 0x03))

	r.Equal(`type:       i32
byte:       0x03
lane type:  i32
lane bits:  32
lanes:      1
total bits: 32
scalar:     true
`, buf.String())
}

func TestDescribeRejectsInvalidBytes(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ins, err := inspect.New(slogt.New(t), inspect.Config{})
	r.NoError(err)

	var buf bytes.Buffer

	err = ins.Describe(&buf, 0x10)
	r.EqualError(err, "invalid type byte 0x10")

	err = ins.Describe(&buf, 0xff)
	r.EqualError(err, "invalid type byte 0xff")

	r.Zero(buf.Len())
}
