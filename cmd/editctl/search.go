package main

import (
	"fmt"

	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
)

var (
	searchOffset   uint64
	searchHex      string
	searchText     string
	searchBackward bool
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().Uint64Var(&searchOffset, "offset", 0, "Offset to search from")
	cmd.Flags().StringVar(&searchHex, "hex", "", "Needle as hex digits")
	cmd.Flags().StringVar(&searchText, "text", "", "Needle as literal text")
	cmd.Flags().BoolVar(&searchBackward, "backward", false, "Search backwards from the offset")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <file>",
		Short: "Find a byte string",
		Long: `The search command scans for a byte string and prints the offset of the
first match at or after the offset (or, with --backward, the last match
starting at or before it).

Example:
  editctl search disk.img --text "GRUB"
  editctl search disk.img --hex deadbeef --offset 1048576 --backward`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			needle, err := payloadFromFlags(searchHex, searchText)
			if err != nil {
				return err
			}

			m, err := openModel(args[0], filemodel.ReadOnly)
			if err != nil {
				return err
			}
			defer m.Close()

			dir := filemodel.Forward
			if searchBackward {
				dir = filemodel.Backward
			}

			pos, ok := m.Find(searchOffset, dir, needle)
			if !ok {
				return fmt.Errorf("needle not found (%s from offset %d)", dir, searchOffset)
			}

			fmt.Printf("%d\n", pos)
			return nil
		},
	}
}
