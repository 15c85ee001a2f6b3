package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
)

var (
	dumpOffset uint64
	dumpLength uint64
	dumpLatin1 bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Uint64Var(&dumpOffset, "offset", 0, "Start offset")
	cmd.Flags().Uint64Var(&dumpLength, "length", 256, "Number of bytes to dump")
	cmd.Flags().
		BoolVar(&dumpLatin1, "latin1", false, "Render the text column as Latin-1 instead of ASCII")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump a byte range",
		Long: `The dump command prints a classic hex dump of a byte range: offset
gutter, sixteen hex bytes per row and a text column. With --latin1 the text
column decodes printable ISO 8859-1 bytes instead of plain ASCII.

Example:
  editctl dump disk.img --offset 4096 --length 64
  editctl dump legacy.dat --latin1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openModel(args[0], filemodel.ReadOnly)
			if err != nil {
				return err
			}
			defer m.Close()

			if dumpOffset >= m.Length() {
				return fmt.Errorf("offset %d is past the end of the file (%d bytes)",
					dumpOffset, m.Length())
			}

			buf := make([]byte, dumpLength)
			n, err := m.Get(dumpOffset, buf)
			if err != nil {
				return err
			}

			hexDump(os.Stdout, dumpOffset, buf[:n], dumpLatin1)
			return nil
		},
	}
}

// hexDump renders rows of sixteen bytes with an offset gutter and a text
// column.
func hexDump(w *os.File, base uint64, data []byte, latin1 bool) {
	for row := 0; row < len(data); row += 16 {
		end := row + 16
		if end > len(data) {
			end = len(data)
		}
		chunk := data[row:end]

		var hexCol strings.Builder
		for i, b := range chunk {
			if i == 8 {
				hexCol.WriteByte(' ')
			}
			fmt.Fprintf(&hexCol, "%02x ", b)
		}

		fmt.Fprintf(w, "%08x  %-49s |%s|\n",
			base+uint64(row), hexCol.String(), textColumn(chunk, latin1))
	}
}

func textColumn(chunk []byte, latin1 bool) string {
	var sb strings.Builder
	for _, b := range chunk {
		switch {
		case b >= 0x20 && b < 0x7f:
			sb.WriteByte(b)
		case latin1 && b >= 0xa0:
			sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
