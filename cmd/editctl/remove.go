package main

import (
	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
)

var (
	removeOffset uint64
	removeLength uint64
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().Uint64Var(&removeOffset, "offset", 0, "Offset to remove from")
	cmd.Flags().Uint64Var(&removeLength, "length", 0, "Bytes to remove (clamped to the end)")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file>",
		Short: "Remove a byte range and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openModel(args[0], filemodel.ReadWrite)
			if err != nil {
				return err
			}

			before := m.Length()
			if err := m.Remove(removeOffset, removeLength); err != nil {
				m.Close()
				return err
			}

			printInfo("Removed %d bytes at offset %d\n", before-m.Length(), removeOffset)
			return saveAndClose(m)
		},
	}
}
