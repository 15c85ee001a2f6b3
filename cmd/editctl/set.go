package main

import (
	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
)

var (
	setOffset uint64
	setHex    string
	setText   string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().Uint64Var(&setOffset, "offset", 0, "Offset to overwrite at")
	cmd.Flags().StringVar(&setHex, "hex", "", "Payload as hex digits")
	cmd.Flags().StringVar(&setText, "text", "", "Payload as literal text")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file>",
		Short: "Overwrite bytes in place and save",
		Long: `The set command overwrites a byte range and saves the file. The range
must lie inside the file; use insert to grow it. Works on block devices.

Example:
  editctl set disk.img --offset 510 --hex 55aa
  editctl set notes.txt --offset 0 --text "Hello"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payloadFromFlags(setHex, setText)
			if err != nil {
				return err
			}

			m, err := openModel(args[0], filemodel.ReadWrite)
			if err != nil {
				return err
			}

			if err := m.Modify(setOffset, data); err != nil {
				m.Close()
				return err
			}

			printInfo("Wrote %d bytes at offset %d\n", len(data), setOffset)
			return saveAndClose(m)
		},
	}
}
